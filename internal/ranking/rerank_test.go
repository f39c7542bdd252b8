package ranking

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func skillSet(ids ...uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestComputeCoverage(t *testing.T) {
	python := uuid.New()
	kubernetes := uuid.New()
	docker := uuid.New()

	role := []RoleSkill{
		{SkillID: python, SkillName: "Python", ImportanceWeight: 0.9},
		{SkillID: kubernetes, SkillName: "Kubernetes", ImportanceWeight: 0.8},
		{SkillID: docker, SkillName: "Docker", ImportanceWeight: 0.5},
	}

	got := ComputeCoverage(skillSet(python, docker), role)
	if math.Abs(got-2.0/3.0) > 1e-9 {
		t.Fatalf("coverage = %v, want 2/3", got)
	}

	if got := ComputeCoverage(skillSet(uuid.New()), role); got != 0 {
		t.Fatalf("no-overlap coverage = %v, want 0", got)
	}
	if got := ComputeCoverage(skillSet(python), nil); got != 0 {
		t.Fatalf("empty role coverage = %v, want 0", got)
	}
}

func TestComputeImportance(t *testing.T) {
	python := uuid.New()
	kubernetes := uuid.New()
	docker := uuid.New()

	role := []RoleSkill{
		{SkillID: python, SkillName: "Python", ImportanceWeight: 0.9},
		{SkillID: kubernetes, SkillName: "Kubernetes", ImportanceWeight: 0.8},
		{SkillID: docker, SkillName: "Docker", ImportanceWeight: 0.5},
	}

	got := ComputeImportance(skillSet(python, docker), role)
	if math.Abs(got-0.7) > 1e-9 {
		t.Fatalf("importance = %v, want 0.7", got)
	}
}

func TestComputeImportanceNoOverlapScoresZero(t *testing.T) {
	role := []RoleSkill{
		{SkillID: uuid.New(), SkillName: "Rust", ImportanceWeight: 0.9},
	}
	if got := ComputeImportance(skillSet(uuid.New()), role); got != 0 {
		t.Fatalf("importance = %v, want 0", got)
	}
	if got := ComputeImportance(skillSet(uuid.New()), nil); got != 0 {
		t.Fatalf("empty role importance = %v, want 0", got)
	}
}

func TestReRankOrdersByBlendedScore(t *testing.T) {
	python := uuid.New()
	kubernetes := uuid.New()
	docker := uuid.New()
	rust := uuid.New()

	strongRole := uuid.New()
	weakRole := uuid.New()

	candidates := []Candidate{
		{RoleID: weakRole, Title: "Systems Programmer", RetrievalScore: 0.95},
		{RoleID: strongRole, Title: "Backend Developer", RetrievalScore: 0.60},
	}
	roleSkills := map[uuid.UUID][]RoleSkill{
		strongRole: {
			{SkillID: python, SkillName: "Python", ImportanceWeight: 0.9},
			{SkillID: kubernetes, SkillName: "Kubernetes", ImportanceWeight: 0.8},
			{SkillID: docker, SkillName: "Docker", ImportanceWeight: 0.5},
		},
		weakRole: {
			{SkillID: rust, SkillName: "Rust", ImportanceWeight: 0.9},
		},
	}

	results := ReRank(candidates, skillSet(python, docker), []string{"Python", "Docker"}, roleSkills, 5)
	if len(results) != 2 {
		t.Fatalf("results = %v", results)
	}
	if results[0].RoleID != strongRole {
		t.Fatalf("top result = %q, want Backend Developer", results[0].Title)
	}

	top := results[0]
	if math.Abs(top.SkillCoverage-0.6667) > 1e-9 {
		t.Fatalf("coverage = %v, want 0.6667", top.SkillCoverage)
	}
	if math.Abs(top.ImportanceScore-0.7) > 1e-9 {
		t.Fatalf("importance = %v, want 0.7", top.ImportanceScore)
	}
	if top.LexicalScore <= 0 {
		t.Fatalf("lexical = %v, want > 0", top.LexicalScore)
	}
	if top.MatchScore <= results[1].MatchScore {
		t.Fatalf("scores not descending: %v then %v", top.MatchScore, results[1].MatchScore)
	}

	// High retrieval similarity must not rescue a role with no skill overlap.
	if results[1].MatchScore != 0 {
		t.Fatalf("no-overlap score = %v, want 0", results[1].MatchScore)
	}
	if results[1].RetrievalScore != 0.95 {
		t.Fatalf("retrieval score not carried through: %v", results[1].RetrievalScore)
	}
}

func TestReRankTruncatesToTopK(t *testing.T) {
	skill := uuid.New()
	roleSkills := make(map[uuid.UUID][]RoleSkill)
	candidates := make([]Candidate, 0, 4)
	for i := 0; i < 4; i++ {
		id := uuid.New()
		candidates = append(candidates, Candidate{RoleID: id})
		roleSkills[id] = []RoleSkill{{SkillID: skill, SkillName: "Go", ImportanceWeight: 0.5}}
	}

	results := ReRank(candidates, skillSet(skill), []string{"Go"}, roleSkills, 2)
	if len(results) != 2 {
		t.Fatalf("len = %d, want 2", len(results))
	}
}

func TestReRankStableOnTies(t *testing.T) {
	skill := uuid.New()
	first := uuid.New()
	second := uuid.New()

	candidates := []Candidate{
		{RoleID: first, Title: "First"},
		{RoleID: second, Title: "Second"},
	}
	roleSkills := map[uuid.UUID][]RoleSkill{
		first:  {{SkillID: skill, SkillName: "Go", ImportanceWeight: 0.5}},
		second: {{SkillID: skill, SkillName: "Go", ImportanceWeight: 0.5}},
	}

	results := ReRank(candidates, skillSet(skill), []string{"Go"}, roleSkills, 0)
	if results[0].RoleID != first || results[1].RoleID != second {
		t.Fatalf("tie order changed: %q, %q", results[0].Title, results[1].Title)
	}
	if results[0].MatchScore != results[1].MatchScore {
		t.Fatalf("expected tie, got %v and %v", results[0].MatchScore, results[1].MatchScore)
	}
}
