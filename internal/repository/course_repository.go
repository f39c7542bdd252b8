package repository

import (
	"context"

	"skillcompass/internal/database"

	"github.com/google/uuid"
)

type Course struct {
	ID           uuid.UUID
	Title        string
	Provider     string
	URL          string
	SkillsTaught []string
}

type CourseRepository interface {
	// FindBySkillNames returns courses teaching any of the given skills,
	// ordered by title for stable output.
	FindBySkillNames(ctx context.Context, skillNames []string) ([]Course, error)
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

func (r *PostgresCourseRepository) FindBySkillNames(ctx context.Context, skillNames []string) ([]Course, error) {
	out := make([]Course, 0)
	if len(skillNames) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, provider, url, skills_taught
		 FROM courses
		 WHERE skills_taught && $1
		 ORDER BY title ASC`,
		skillNames,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Provider, &c.URL, &c.SkillsTaught); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
