package seeder

import (
	"context"
	"fmt"

	"skillcompass/internal/database"
	"skillcompass/internal/skills"
)

type roleSeed struct {
	Title       string
	Description string
	Skills      []roleSkillSeed
}

type roleSkillSeed struct {
	Name       string
	Importance float64
}

type RolesSeeder struct{}

func (RolesSeeder) Name() string { return "roles" }

func (RolesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "roles", "id", "title", "description", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "role_skills", "role_id", "skill_id", "importance_weight", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, r := range defaultRoles() {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO roles (id, title, description) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (title) DO NOTHING`,
			r.Title,
			r.Description,
		); err != nil {
			return err
		}

		for _, rs := range r.Skills {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO skills (id, name, normalized_name) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (normalized_name) DO NOTHING`,
				skills.Normalize(rs.Name),
				skills.NormalizedKey(rs.Name),
			); err != nil {
				return err
			}

			if _, err := tx.Exec(
				ctx,
				`INSERT INTO role_skills (role_id, skill_id, importance_weight)
				 SELECT r.id, s.id, $3 FROM roles r, skills s
				 WHERE r.title = $1 AND s.normalized_name = $2
				 ON CONFLICT (role_id, skill_id) DO NOTHING`,
				r.Title,
				skills.NormalizedKey(rs.Name),
				rs.Importance,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func defaultRoles() []roleSeed {
	return []roleSeed{
		{
			Title:       "Backend Developer",
			Description: "Designs and builds server-side services, APIs and data stores.",
			Skills: []roleSkillSeed{
				{Name: "Python", Importance: 0.9},
				{Name: "Go", Importance: 0.8},
				{Name: "PostgreSQL", Importance: 0.85},
				{Name: "Redis", Importance: 0.6},
				{Name: "Docker", Importance: 0.7},
				{Name: "REST API", Importance: 0.9},
				{Name: "Git", Importance: 0.5},
			},
		},
		{
			Title:       "Frontend Developer",
			Description: "Builds user interfaces and client-side applications for the web.",
			Skills: []roleSkillSeed{
				{Name: "JavaScript", Importance: 0.95},
				{Name: "TypeScript", Importance: 0.8},
				{Name: "React", Importance: 0.9},
				{Name: "HTML", Importance: 0.7},
				{Name: "CSS", Importance: 0.7},
				{Name: "Git", Importance: 0.5},
			},
		},
		{
			Title:       "DevOps Engineer",
			Description: "Automates infrastructure, deployment pipelines and operations.",
			Skills: []roleSkillSeed{
				{Name: "Docker", Importance: 0.9},
				{Name: "Kubernetes", Importance: 0.9},
				{Name: "AWS", Importance: 0.8},
				{Name: "Terraform", Importance: 0.75},
				{Name: "Linux", Importance: 0.8},
				{Name: "CI/CD", Importance: 0.85},
				{Name: "Python", Importance: 0.5},
			},
		},
		{
			Title:       "Data Scientist",
			Description: "Extracts insight from data with statistics and machine learning.",
			Skills: []roleSkillSeed{
				{Name: "Python", Importance: 0.95},
				{Name: "Machine Learning", Importance: 0.9},
				{Name: "SQL", Importance: 0.8},
				{Name: "Pandas", Importance: 0.75},
				{Name: "TensorFlow", Importance: 0.6},
				{Name: "Statistics", Importance: 0.85},
			},
		},
		{
			Title:       "Full Stack Developer",
			Description: "Works across the stack, from user interface to storage.",
			Skills: []roleSkillSeed{
				{Name: "JavaScript", Importance: 0.9},
				{Name: "React", Importance: 0.8},
				{Name: "Node.js", Importance: 0.85},
				{Name: "PostgreSQL", Importance: 0.7},
				{Name: "Docker", Importance: 0.6},
				{Name: "REST API", Importance: 0.8},
				{Name: "Git", Importance: 0.5},
			},
		},
	}
}
