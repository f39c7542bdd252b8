package usecase

import (
	"context"
	"errors"
	"log"

	"skillcompass/internal/repository"

	"github.com/google/uuid"
)

const (
	dashboardPlanSkills      = 5
	dashboardCoursesPerSkill = 2
)

type DashboardSkill struct {
	Skill string `json:"skill"`
}

// DashboardResult aggregates the profile analytics a client renders on one
// screen: what the user knows, where it takes them, and what to learn next.
type DashboardResult struct {
	SkillDistribution []DashboardSkill   `json:"skill_distribution"`
	MatchScore        float64            `json:"match_score"`
	TopRoles          []RoleMatch        `json:"top_roles"`
	SkillGaps         *GapResult         `json:"skill_gaps"`
	LearningPlan      []LearningPlanStep `json:"learning_plan"`
}

type DashboardUsecase interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (DashboardResult, error)
}

type Dashboard struct {
	userSkillsRepo repository.UserSkillRepository
	recs           RecommendationUsecase
	gaps           SkillGapUsecase
	logger         *log.Logger
}

func NewDashboardUsecase(
	userSkillsRepo repository.UserSkillRepository,
	recs RecommendationUsecase,
	gaps SkillGapUsecase,
	logger *log.Logger,
) *Dashboard {
	return &Dashboard{
		userSkillsRepo: userSkillsRepo,
		recs:           recs,
		gaps:           gaps,
		logger:         logger,
	}
}

// Dashboard composes skill distribution, top roles, the gap against the top
// role and a capped learning plan. A user with no skills gets an empty
// dashboard, not an error.
func (u *Dashboard) Dashboard(ctx context.Context, userID uuid.UUID) (DashboardResult, error) {
	result := DashboardResult{
		SkillDistribution: []DashboardSkill{},
		TopRoles:          []RoleMatch{},
		LearningPlan:      []LearningPlanStep{},
	}

	userSkills, err := u.userSkillsRepo.FindByUserID(ctx, userID)
	if err != nil {
		return DashboardResult{}, ErrInternal
	}
	if len(userSkills) == 0 {
		return result, nil
	}
	for _, us := range userSkills {
		result.SkillDistribution = append(result.SkillDistribution, DashboardSkill{Skill: us.SkillName})
	}

	recs, err := u.recs.RecommendRoles(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoUserSkills) {
			return result, nil
		}
		return DashboardResult{}, ErrInternal
	}
	result.TopRoles = recs.Matches
	if len(recs.Matches) == 0 {
		return result, nil
	}
	result.MatchScore = recs.Matches[0].MatchScore

	topRoleID := recs.Matches[0].RoleID
	gap, err := u.gaps.SkillGap(ctx, userID, topRoleID)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return result, nil
		}
		return DashboardResult{}, ErrInternal
	}
	result.SkillGaps = &gap

	if len(gap.MissingSkills) == 0 {
		return result, nil
	}

	plan, err := u.gaps.LearningPlan(ctx, userID, topRoleID)
	if err != nil {
		return DashboardResult{}, ErrInternal
	}
	steps := plan.Steps
	if len(steps) > dashboardPlanSkills {
		steps = steps[:dashboardPlanSkills]
	}
	for i, step := range steps {
		if len(step.Courses) > dashboardCoursesPerSkill {
			steps[i].Courses = step.Courses[:dashboardCoursesPerSkill]
		}
	}
	result.LearningPlan = steps

	return result, nil
}
