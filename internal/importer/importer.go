package importer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"talent-match/internal/domain/job"
	"talent-match/internal/repository"
)

// Posting is one raw job ad pulled from a board before requirement
// extraction.
type Posting struct {
	Title       string
	Company     string
	Location    string
	SalaryRange string
	Description string
	URL         string
}

// Source produces postings from one external board.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]Posting, error)
}

// Importer turns board postings into stored job roles. Requirements are
// extracted against the shared skill catalog; postings whose text
// matches no catalog skill are skipped, as are title+company pairs that
// already exist.
type Importer struct {
	roles   repository.JobRoleRepository
	catalog repository.SkillRepository
	log     *log.Logger
	now     func() time.Time
}

func New(roles repository.JobRoleRepository, catalog repository.SkillRepository, logger *log.Logger) *Importer {
	if logger == nil {
		logger = log.Default()
	}
	return &Importer{roles: roles, catalog: catalog, log: logger, now: time.Now}
}

type Stats struct {
	Fetched  int
	Imported int
	Skipped  int
	Errors   int
}

func (im *Importer) Run(ctx context.Context, sources []Source, workers int) (Stats, error) {
	catalog, err := im.catalog.GetAllSkills(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load skill catalog: %w", err)
	}

	existing, err := im.roles.ListRoles(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list existing roles: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, role := range existing {
		seen[dedupKey(role.Title, role.Company)] = true
	}

	var stats Stats
	for _, src := range sources {
		postings, err := src.Fetch(ctx)
		if err != nil {
			im.log.Printf("importer source=%s status=error err=%v", src.Name(), err)
			stats.Errors++
			continue
		}
		stats.Fetched += len(postings)

		pool := NewWorkerPool(workers, workers*2)
		pool.SetRateLimit(0)
		results := pool.Run(ctx)

		type outcome struct {
			imported bool
			key      string
		}
		outcomes := make(chan outcome, len(postings))

		submitted := 0
		for _, p := range postings {
			p := p
			key := dedupKey(p.Title, p.Company)
			if strings.TrimSpace(p.Title) == "" || seen[key] {
				stats.Skipped++
				continue
			}
			seen[key] = true
			submitted++
			pool.Submit(func(ctx context.Context) error {
				reqs := ExtractRequirements(p.Title+" "+p.Description, catalog)
				if len(reqs) == 0 {
					outcomes <- outcome{key: key}
					return nil
				}
				_, err := im.roles.Create(ctx, job.Role{
					Title:        strings.TrimSpace(p.Title),
					Company:      strings.TrimSpace(p.Company),
					Location:     strings.TrimSpace(p.Location),
					SalaryRange:  strings.TrimSpace(p.SalaryRange),
					PostedAt:     im.now(),
					Requirements: reqs,
				})
				if err != nil {
					outcomes <- outcome{key: key}
					return err
				}
				outcomes <- outcome{imported: true, key: key}
				return nil
			})
		}
		pool.Close()

		for res := range results {
			if res.Err != nil {
				im.log.Printf("importer source=%s status=error err=%v", src.Name(), res.Err)
				stats.Errors++
			}
		}
		close(outcomes)
		for o := range outcomes {
			if o.imported {
				stats.Imported++
			} else {
				stats.Skipped++
			}
		}
	}

	im.log.Printf("importer done fetched=%d imported=%d skipped=%d errors=%d",
		stats.Fetched, stats.Imported, stats.Skipped, stats.Errors)
	return stats, nil
}

func dedupKey(title, company string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "|" + strings.ToLower(strings.TrimSpace(company))
}
