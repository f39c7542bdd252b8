package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillcompass/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Skill struct {
	ID             uuid.UUID
	Name           string
	NormalizedName string
}

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]Skill, error)
	// GetOrCreate resolves a skill by its normalized identity, creating the
	// row on first sighting. Two raw spellings with the same normalized form
	// resolve to the same Skill.
	GetOrCreate(ctx context.Context, displayName, normalizedName string) (Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, normalized_name FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.NormalizedName); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) GetOrCreate(ctx context.Context, displayName, normalizedName string) (Skill, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, name, normalized_name) VALUES ($1, $2, $3)
		 ON CONFLICT (normalized_name) DO NOTHING`,
		id, displayName, normalizedName,
	)
	if err != nil {
		return Skill{}, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT id, name, normalized_name FROM skills WHERE normalized_name = $1`,
		normalizedName,
	)
	var s Skill
	if err := row.Scan(&s.ID, &s.Name, &s.NormalizedName); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Skill{}, errors.New("skill not found after upsert")
		}
		return Skill{}, err
	}
	return s, nil
}
