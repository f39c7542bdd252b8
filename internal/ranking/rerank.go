package ranking

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Blend weights for the final score. Fixed by product decision; changing them
// silently breaks score comparability across stored history.
const (
	coverageWeight   = 0.5
	importanceWeight = 0.3
	lexicalWeight    = 0.2
)

type RoleSkill struct {
	SkillID          uuid.UUID
	SkillName        string
	ImportanceWeight float64
}

type Candidate struct {
	RoleID      uuid.UUID
	Title       string
	Description string
	// RetrievalScore is the raw similarity from the vector index, carried
	// through for explainability only.
	RetrievalScore float64
}

// MatchResult carries every component score next to the blend so callers can
// show why a role ranked where it did.
type MatchResult struct {
	RoleID          uuid.UUID
	Title           string
	Description     string
	MatchScore      float64
	SkillCoverage   float64
	ImportanceScore float64
	LexicalScore    float64
	RetrievalScore  float64
}

// ComputeCoverage is the fraction of the role's skills the user holds.
func ComputeCoverage(userSkillIDs map[uuid.UUID]struct{}, roleSkills []RoleSkill) float64 {
	if len(roleSkills) == 0 {
		return 0
	}
	matched := 0
	for _, rs := range roleSkills {
		if _, ok := userSkillIDs[rs.SkillID]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(roleSkills))
}

// ComputeImportance is the mean importance weight over matched skills only.
// No overlap scores 0, not a neutral default.
func ComputeImportance(userSkillIDs map[uuid.UUID]struct{}, roleSkills []RoleSkill) float64 {
	sum := 0.0
	matched := 0
	for _, rs := range roleSkills {
		if _, ok := userSkillIDs[rs.SkillID]; ok {
			sum += rs.ImportanceWeight
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	return sum / float64(matched)
}

// ReRank scores each candidate against the user's skill profile and returns
// the topK by blended score, descending, stable on ties.
func ReRank(
	candidates []Candidate,
	userSkillIDs map[uuid.UUID]struct{},
	userSkillNames []string,
	roleSkills map[uuid.UUID][]RoleSkill,
	topK int,
) []MatchResult {
	scored := make([]MatchResult, 0, len(candidates))

	for _, c := range candidates {
		rs := roleSkills[c.RoleID]

		roleSkillNames := make([]string, 0, len(rs))
		for _, s := range rs {
			roleSkillNames = append(roleSkillNames, s.SkillName)
		}

		cov := clamp01(ComputeCoverage(userSkillIDs, rs))
		imp := clamp01(ComputeImportance(userSkillIDs, rs))
		lex := clamp01(LexicalSimilarity(userSkillNames, roleSkillNames))

		final := coverageWeight*cov + importanceWeight*imp + lexicalWeight*lex

		scored = append(scored, MatchResult{
			RoleID:          c.RoleID,
			Title:           c.Title,
			Description:     c.Description,
			MatchScore:      round4(final),
			SkillCoverage:   round4(cov),
			ImportanceScore: round4(imp),
			LexicalScore:    round4(lex),
			RetrievalScore:  round4(c.RetrievalScore),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if topK > 0 && topK < len(scored) {
		scored = scored[:topK]
	}
	return scored
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
