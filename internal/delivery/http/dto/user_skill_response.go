package dto

import "github.com/google/uuid"

type UserSkillResponse struct {
	ID        uuid.UUID `json:"id"`
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
	Source    string    `json:"source"`
}
