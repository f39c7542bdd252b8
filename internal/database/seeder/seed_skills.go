package seeder

import (
	"context"
	"fmt"

	"skillcompass/internal/database"
	"skillcompass/internal/skills"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "normalized_name", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, name := range skills.MasterVocabulary {
		display := skills.Normalize(name)
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, normalized_name) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (normalized_name) DO NOTHING`,
			display,
			skills.NormalizedKey(name),
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
