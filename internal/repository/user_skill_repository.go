package repository

import (
	"context"
	"errors"

	"skillcompass/internal/database"

	"github.com/google/uuid"
)

var ErrUserSkillNotFound = errors.New("user skill not found")

// Skill provenance values for user skills.
const (
	SourceDocument = "document"
	SourceManual   = "manual"
)

type UserSkill struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	SkillID   uuid.UUID
	SkillName string
	Source    string
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	// Attach is idempotent: a user never holds the same skill twice, and
	// re-adding an existing skill returns the stored row unchanged.
	Attach(ctx context.Context, userID, skillID uuid.UUID, source string) (UserSkill, error)
	Detach(ctx context.Context, userID, skillID uuid.UUID) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT us.id, us.user_id, us.skill_id, s.name, us.source
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &us.Source); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) Attach(ctx context.Context, userID, skillID uuid.UUID, source string) (UserSkill, error) {
	if source == "" {
		source = SourceManual
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO user_skills (id, user_id, skill_id, source)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, skill_id) DO NOTHING`,
		uuid.New(), userID, skillID, source,
	)
	if err != nil {
		return UserSkill{}, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT us.id, us.user_id, us.skill_id, s.name, us.source
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1 AND us.skill_id = $2`,
		userID, skillID,
	)
	var us UserSkill
	if err := row.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &us.Source); err != nil {
		return UserSkill{}, err
	}
	return us, nil
}

func (r *PostgresUserSkillRepository) Detach(ctx context.Context, userID, skillID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserSkillNotFound
	}
	return nil
}
