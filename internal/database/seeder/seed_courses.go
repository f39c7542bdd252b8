package seeder

import (
	"context"
	"fmt"

	"skillcompass/internal/database"
)

type CoursesSeeder struct{}

func (CoursesSeeder) Name() string { return "courses" }

func (CoursesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "courses", "id", "title", "provider", "url", "skills_taught", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Title    string
		Provider string
		URL      string
		Skills   []string
	}{
		{
			Title:    "Kubernetes for Developers",
			Provider: "Coursera",
			URL:      "https://www.coursera.org/learn/kubernetes-for-developers",
			Skills:   []string{"Kubernetes", "Docker"},
		},
		{
			Title:    "The Complete Docker Course",
			Provider: "Udemy",
			URL:      "https://www.udemy.com/course/docker-mastery",
			Skills:   []string{"Docker", "CI/CD"},
		},
		{
			Title:    "Terraform on AWS",
			Provider: "Udemy",
			URL:      "https://www.udemy.com/course/terraform-aws",
			Skills:   []string{"Terraform", "AWS"},
		},
		{
			Title:    "Machine Learning Specialization",
			Provider: "Coursera",
			URL:      "https://www.coursera.org/specializations/machine-learning-introduction",
			Skills:   []string{"Machine Learning", "Python", "Statistics"},
		},
		{
			Title:    "Modern React with Hooks",
			Provider: "Udemy",
			URL:      "https://www.udemy.com/course/react-redux",
			Skills:   []string{"React", "JavaScript"},
		},
		{
			Title:    "PostgreSQL for Everybody",
			Provider: "Coursera",
			URL:      "https://www.coursera.org/specializations/postgresql-for-everybody",
			Skills:   []string{"PostgreSQL", "SQL"},
		},
		{
			Title:    "Learn Go",
			Provider: "Boot.dev",
			URL:      "https://www.boot.dev/courses/learn-golang",
			Skills:   []string{"Go", "REST API"},
		},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO courses (id, title, provider, url, skills_taught) VALUES (gen_random_uuid(), $1, $2, $3, $4) ON CONFLICT (url) DO NOTHING`,
			it.Title,
			it.Provider,
			it.URL,
			it.Skills,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
