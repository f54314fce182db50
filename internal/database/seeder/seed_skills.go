package seeder

import (
	"context"
	"fmt"

	"skillswap/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
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
		Name     string
		Category string
	}{
		{Name: "Web Development", Category: "Technology"},
		{Name: "Graphic Design", Category: "Design"},
		{Name: "Photography", Category: "Creative"},
		{Name: "Video Editing", Category: "Creative"},
		{Name: "Spanish", Category: "Language"},
		{Name: "French", Category: "Language"},
		{Name: "Guitar", Category: "Music"},
		{Name: "Piano", Category: "Music"},
		{Name: "Cooking", Category: "Lifestyle"},
		{Name: "Yoga", Category: "Fitness"},
		{Name: "Public Speaking", Category: "Professional"},
		{Name: "Excel", Category: "Professional"},
	}

	for _, it := range items {
		affected, err := tx.Exec(
			ctx,
			`INSERT INTO skills (name, category) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
		)
		if err != nil {
			return err
		}
		_ = affected
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
