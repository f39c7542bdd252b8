package usecase

import (
	"context"
	"errors"
	"log"

	"skillcompass/internal/ranking"
	"skillcompass/internal/repository"

	"github.com/google/uuid"
)

var ErrRoleNotFound = errors.New("role not found")

type PriorityItem struct {
	SkillID    uuid.UUID `json:"skill_id"`
	SkillName  string    `json:"skill_name"`
	Importance float64   `json:"importance"`
}

type GapResult struct {
	RoleID           uuid.UUID      `json:"role_id"`
	RoleTitle        string         `json:"role_title"`
	MissingSkills    []string       `json:"missing_skills"`
	CoveragePercent  float64        `json:"coverage_percent"`
	LearningPriority []PriorityItem `json:"learning_priority"`
}

type CourseItem struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Provider string    `json:"provider"`
	URL      string    `json:"url"`
}

type LearningPlanStep struct {
	SkillName  string       `json:"skill_name"`
	Importance float64      `json:"importance"`
	Courses    []CourseItem `json:"courses"`
}

type LearningPlanResult struct {
	RoleID          uuid.UUID          `json:"role_id"`
	RoleTitle       string             `json:"role_title"`
	CoveragePercent float64            `json:"coverage_percent"`
	Steps           []LearningPlanStep `json:"steps"`
}

type SkillGapUsecase interface {
	SkillGap(ctx context.Context, userID, roleID uuid.UUID) (GapResult, error)
	LearningPlan(ctx context.Context, userID, roleID uuid.UUID) (LearningPlanResult, error)
}

type SkillGap struct {
	userSkillsRepo repository.UserSkillRepository
	rolesRepo      repository.RoleRepository
	coursesRepo    repository.CourseRepository
	logger         *log.Logger
}

func NewSkillGapUsecase(
	userSkillsRepo repository.UserSkillRepository,
	rolesRepo repository.RoleRepository,
	coursesRepo repository.CourseRepository,
	logger *log.Logger,
) *SkillGap {
	return &SkillGap{
		userSkillsRepo: userSkillsRepo,
		rolesRepo:      rolesRepo,
		coursesRepo:    coursesRepo,
		logger:         logger,
	}
}

func (u *SkillGap) SkillGap(ctx context.Context, userID, roleID uuid.UUID) (GapResult, error) {
	if roleID == uuid.Nil {
		return GapResult{}, ErrInvalidInput
	}

	role, err := u.rolesRepo.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return GapResult{}, ErrRoleNotFound
		}
		return GapResult{}, ErrInternal
	}

	userSkills, err := u.userSkillsRepo.FindByUserID(ctx, userID)
	if err != nil {
		return GapResult{}, ErrInternal
	}
	idSet := make(map[uuid.UUID]struct{}, len(userSkills))
	for _, us := range userSkills {
		idSet[us.SkillID] = struct{}{}
	}

	rows, err := u.rolesRepo.SkillsByRoleID(ctx, roleID)
	if err != nil {
		return GapResult{}, ErrInternal
	}
	roleSkills := make([]ranking.RoleSkill, 0, len(rows))
	for _, row := range rows {
		roleSkills = append(roleSkills, ranking.RoleSkill{
			SkillID:          row.SkillID,
			SkillName:        row.SkillName,
			ImportanceWeight: row.ImportanceWeight,
		})
	}

	report := ranking.ComputeGap(idSet, roleSkills)
	priority := make([]PriorityItem, 0, len(report.LearningPriority))
	for _, p := range report.LearningPriority {
		priority = append(priority, PriorityItem{
			SkillID:    p.SkillID,
			SkillName:  p.SkillName,
			Importance: p.Importance,
		})
	}

	return GapResult{
		RoleID:           role.ID,
		RoleTitle:        role.Title,
		MissingSkills:    report.MissingSkills,
		CoveragePercent:  report.CoveragePercent,
		LearningPriority: priority,
	}, nil
}

func (u *SkillGap) LearningPlan(ctx context.Context, userID, roleID uuid.UUID) (LearningPlanResult, error) {
	gap, err := u.SkillGap(ctx, userID, roleID)
	if err != nil {
		return LearningPlanResult{}, err
	}

	courses, err := u.coursesRepo.FindBySkillNames(ctx, gap.MissingSkills)
	if err != nil {
		return LearningPlanResult{}, ErrInternal
	}

	bySkill := make(map[string][]CourseItem)
	for _, c := range courses {
		item := CourseItem{ID: c.ID, Title: c.Title, Provider: c.Provider, URL: c.URL}
		for _, taught := range c.SkillsTaught {
			bySkill[taught] = append(bySkill[taught], item)
		}
	}

	steps := make([]LearningPlanStep, 0, len(gap.LearningPriority))
	for _, p := range gap.LearningPriority {
		steps = append(steps, LearningPlanStep{
			SkillName:  p.SkillName,
			Importance: p.Importance,
			Courses:    bySkill[p.SkillName],
		})
	}

	return LearningPlanResult{
		RoleID:          gap.RoleID,
		RoleTitle:       gap.RoleTitle,
		CoveragePercent: gap.CoveragePercent,
		Steps:           steps,
	}, nil
}
