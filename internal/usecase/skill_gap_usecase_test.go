package usecase

import (
	"errors"
	"testing"

	"skillcompass/internal/repository"

	"github.com/google/uuid"
)

func seedGapWorld() (*fakeRoleRepo, *fakeUserSkillRepo, uuid.UUID, uuid.UUID) {
	python := uuid.New()
	kubernetes := uuid.New()
	docker := uuid.New()

	role := repository.Role{ID: uuid.New(), Title: "DevOps Engineer", Description: "Runs the platform"}

	roles := newFakeRoleRepo()
	roles.roles = []repository.Role{role}
	roles.roleSkills[role.ID] = []repository.RoleSkillRow{
		{SkillID: python, SkillName: "Python", ImportanceWeight: 0.9},
		{SkillID: kubernetes, SkillName: "Kubernetes", ImportanceWeight: 0.8},
		{SkillID: docker, SkillName: "Docker", ImportanceWeight: 0.5},
	}

	userID := uuid.New()
	userSkills := newFakeUserSkillRepo()
	userSkills.put(userID, python, "Python", "manual")
	userSkills.put(userID, docker, "Docker", "manual")

	return roles, userSkills, userID, role.ID
}

func TestSkillGap(t *testing.T) {
	roles, userSkills, userID, roleID := seedGapWorld()
	uc := NewSkillGapUsecase(userSkills, roles, &fakeCourseRepo{}, nil)

	gap, err := uc.SkillGap(t.Context(), userID, roleID)
	if err != nil {
		t.Fatalf("SkillGap: %v", err)
	}
	if gap.RoleTitle != "DevOps Engineer" {
		t.Fatalf("role title = %q", gap.RoleTitle)
	}
	if len(gap.MissingSkills) != 1 || gap.MissingSkills[0] != "Kubernetes" {
		t.Fatalf("missing = %v", gap.MissingSkills)
	}
	if gap.CoveragePercent != 66.67 {
		t.Fatalf("coverage = %v, want 66.67", gap.CoveragePercent)
	}
	if len(gap.LearningPriority) != 1 || gap.LearningPriority[0].Importance != 0.8 {
		t.Fatalf("priority = %+v", gap.LearningPriority)
	}
}

func TestSkillGapRoleNotFound(t *testing.T) {
	roles, userSkills, userID, _ := seedGapWorld()
	uc := NewSkillGapUsecase(userSkills, roles, &fakeCourseRepo{}, nil)

	if _, err := uc.SkillGap(t.Context(), userID, uuid.New()); !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("err = %v, want ErrRoleNotFound", err)
	}
	if _, err := uc.SkillGap(t.Context(), userID, uuid.Nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestSkillGapNoUserSkills(t *testing.T) {
	roles, _, _, roleID := seedGapWorld()
	uc := NewSkillGapUsecase(newFakeUserSkillRepo(), roles, &fakeCourseRepo{}, nil)

	gap, err := uc.SkillGap(t.Context(), uuid.New(), roleID)
	if err != nil {
		t.Fatalf("SkillGap: %v", err)
	}
	if len(gap.MissingSkills) != 3 {
		t.Fatalf("missing = %v", gap.MissingSkills)
	}
	if gap.CoveragePercent != 0 {
		t.Fatalf("coverage = %v, want 0", gap.CoveragePercent)
	}
	// Priority reorders by importance, missing keeps role order.
	if gap.LearningPriority[0].SkillName != "Python" || gap.LearningPriority[2].SkillName != "Docker" {
		t.Fatalf("priority = %+v", gap.LearningPriority)
	}
}

func TestLearningPlanAlignsCoursesToPriority(t *testing.T) {
	roles, userSkills, userID, roleID := seedGapWorld()

	courses := &fakeCourseRepo{courses: []repository.Course{
		{
			ID:           uuid.New(),
			Title:        "Kubernetes in Practice",
			Provider:     "Coursera",
			URL:          "https://example.com/k8s",
			SkillsTaught: []string{"Kubernetes", "Docker"},
		},
		{
			ID:           uuid.New(),
			Title:        "Unrelated Painting Course",
			Provider:     "Udemy",
			URL:          "https://example.com/paint",
			SkillsTaught: []string{"Watercolor"},
		},
	}}

	uc := NewSkillGapUsecase(userSkills, roles, courses, nil)

	plan, err := uc.LearningPlan(t.Context(), userID, roleID)
	if err != nil {
		t.Fatalf("LearningPlan: %v", err)
	}
	if plan.RoleID != roleID || plan.CoveragePercent != 66.67 {
		t.Fatalf("plan = %+v", plan)
	}
	if len(plan.Steps) != 1 {
		t.Fatalf("steps = %+v", plan.Steps)
	}
	step := plan.Steps[0]
	if step.SkillName != "Kubernetes" || step.Importance != 0.8 {
		t.Fatalf("step = %+v", step)
	}
	if len(step.Courses) != 1 || step.Courses[0].Title != "Kubernetes in Practice" {
		t.Fatalf("courses = %+v", step.Courses)
	}
}

func TestLearningPlanNoGap(t *testing.T) {
	roles, userSkills, userID, roleID := seedGapWorld()
	kubernetes := roles.roleSkills[roleID][1]
	userSkills.put(userID, kubernetes.SkillID, kubernetes.SkillName, "manual")

	uc := NewSkillGapUsecase(userSkills, roles, &fakeCourseRepo{}, nil)

	plan, err := uc.LearningPlan(t.Context(), userID, roleID)
	if err != nil {
		t.Fatalf("LearningPlan: %v", err)
	}
	if plan.CoveragePercent != 100.0 || len(plan.Steps) != 0 {
		t.Fatalf("plan = %+v", plan)
	}
}
