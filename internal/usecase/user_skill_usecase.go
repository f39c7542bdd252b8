package usecase

import (
	"context"
	"errors"
	"strings"

	"skillcompass/internal/repository"
	"skillcompass/internal/skills"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound = errors.New("skill not found")
	ErrInvalidInput  = errors.New("invalid input")
)

type UserSkillItem struct {
	ID        uuid.UUID
	SkillID   uuid.UUID
	SkillName string
	Source    string
}

type UserSkillUsecase interface {
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error)
	AddUserSkill(ctx context.Context, userID uuid.UUID, name string) (UserSkillItem, error)
	RemoveUserSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error
}

type UserSkill struct {
	skillsRepo     repository.SkillRepository
	userSkillsRepo repository.UserSkillRepository
}

func NewUserSkillUsecase(skillsRepo repository.SkillRepository, userSkillsRepo repository.UserSkillRepository) *UserSkill {
	return &UserSkill{skillsRepo: skillsRepo, userSkillsRepo: userSkillsRepo}
}

func (u *UserSkill) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error) {
	items, err := u.userSkillsRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]UserSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, UserSkillItem{
			ID:        it.ID,
			SkillID:   it.SkillID,
			SkillName: it.SkillName,
			Source:    it.Source,
		})
	}
	return out, nil
}

func (u *UserSkill) AddUserSkill(ctx context.Context, userID uuid.UUID, name string) (UserSkillItem, error) {
	if strings.TrimSpace(name) == "" {
		return UserSkillItem{}, ErrInvalidInput
	}

	skill, err := u.skillsRepo.GetOrCreate(ctx, skills.Normalize(name), skills.NormalizedKey(name))
	if err != nil {
		return UserSkillItem{}, ErrInternal
	}

	attached, err := u.userSkillsRepo.Attach(ctx, userID, skill.ID, repository.SourceManual)
	if err != nil {
		return UserSkillItem{}, ErrInternal
	}

	return UserSkillItem{
		ID:        attached.ID,
		SkillID:   attached.SkillID,
		SkillName: attached.SkillName,
		Source:    attached.Source,
	}, nil
}

func (u *UserSkill) RemoveUserSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error {
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.userSkillsRepo.Detach(ctx, userID, skillID); err != nil {
		if errors.Is(err, repository.ErrUserSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}
	return nil
}
