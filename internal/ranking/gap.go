package ranking

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// PrioritySkill is one remediation entry: a missing skill and how central it
// is to the role.
type PrioritySkill struct {
	SkillID    uuid.UUID
	SkillName  string
	Importance float64
}

type GapReport struct {
	MissingSkills    []string
	CoveragePercent  float64
	LearningPriority []PrioritySkill
}

// ComputeGap returns the role skills the user lacks, in the role's original
// order, with coverage percentage and a remediation list sorted by importance
// descending. A role with zero skills is vacuously fully covered.
func ComputeGap(userSkillIDs map[uuid.UUID]struct{}, roleSkills []RoleSkill) GapReport {
	missing := make([]RoleSkill, 0)
	for _, rs := range roleSkills {
		if _, ok := userSkillIDs[rs.SkillID]; !ok {
			missing = append(missing, rs)
		}
	}

	coverage := 100.0
	if len(roleSkills) > 0 {
		coverage = float64(len(roleSkills)-len(missing)) / float64(len(roleSkills)) * 100
	}

	priority := make([]PrioritySkill, 0, len(missing))
	for _, m := range missing {
		priority = append(priority, PrioritySkill{
			SkillID:    m.SkillID,
			SkillName:  m.SkillName,
			Importance: m.ImportanceWeight,
		})
	}
	sort.SliceStable(priority, func(i, j int) bool {
		return priority[i].Importance > priority[j].Importance
	})

	names := make([]string, 0, len(missing))
	for _, m := range missing {
		names = append(names, m.SkillName)
	}

	return GapReport{
		MissingSkills:    names,
		CoveragePercent:  round2(coverage),
		LearningPriority: priority,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
