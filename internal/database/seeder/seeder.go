package seeder

import (
	"context"
	"log"

	"talent-match/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// RunAll executes the default seeders in order. Seeders are idempotent;
// a failure stops the chain.
func RunAll(ctx context.Context, db database.DB, logger *log.Logger) error {
	seeders := []Seeder{
		SkillsSeeder{},
	}
	for _, s := range seeders {
		if err := s.Run(ctx, db); err != nil {
			return err
		}
		if logger != nil {
			logger.Printf("seeder %s done", s.Name())
		}
	}
	return nil
}
