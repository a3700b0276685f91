package seeder

import (
	"context"

	"talent-match/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
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
		{Name: "JavaScript", Category: "Programming"},
		{Name: "TypeScript", Category: "Programming"},
		{Name: "Go", Category: "Programming"},
		{Name: "React", Category: "Frontend"},
		{Name: "Node.js", Category: "Backend"},
		{Name: "APIs & REST", Category: "Backend"},
		{Name: "PostgreSQL", Category: "Database"},
		{Name: "System Design", Category: "Architecture"},
		{Name: "Data Structures", Category: "Fundamentals"},
		{Name: "Algorithms", Category: "Fundamentals"},
		{Name: "Git & Version Control", Category: "Tools"},
		{Name: "Docker", Category: "DevOps"},
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO skills (name, category) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name, it.Category,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
