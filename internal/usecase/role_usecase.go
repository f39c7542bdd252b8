package usecase

import (
	"context"
	"errors"

	"skillcompass/internal/repository"

	"github.com/google/uuid"
)

type RoleSkillItem struct {
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	ImportanceWeight float64   `json:"importance_weight"`
}

type RoleItem struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Skills      []RoleSkillItem `json:"skills,omitempty"`
}

type RoleUsecase interface {
	ListRoles(ctx context.Context) ([]RoleItem, error)
	GetRole(ctx context.Context, roleID uuid.UUID) (RoleItem, error)
}

type RoleLister struct {
	repo repository.RoleRepository
}

func NewRoleUsecase(repo repository.RoleRepository) *RoleLister {
	return &RoleLister{repo: repo}
}

func (u *RoleLister) ListRoles(ctx context.Context) ([]RoleItem, error) {
	roles, err := u.repo.ListRoles(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]RoleItem, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleItem{ID: r.ID, Title: r.Title, Description: r.Description})
	}
	return out, nil
}

func (u *RoleLister) GetRole(ctx context.Context, roleID uuid.UUID) (RoleItem, error) {
	if roleID == uuid.Nil {
		return RoleItem{}, ErrInvalidInput
	}

	role, err := u.repo.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return RoleItem{}, ErrRoleNotFound
		}
		return RoleItem{}, ErrInternal
	}

	rows, err := u.repo.SkillsByRoleID(ctx, roleID)
	if err != nil {
		return RoleItem{}, ErrInternal
	}
	skills := make([]RoleSkillItem, 0, len(rows))
	for _, row := range rows {
		skills = append(skills, RoleSkillItem{
			SkillID:          row.SkillID,
			SkillName:        row.SkillName,
			ImportanceWeight: row.ImportanceWeight,
		})
	}

	return RoleItem{ID: role.ID, Title: role.Title, Description: role.Description, Skills: skills}, nil
}
