package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"talent-match/internal/app"
	"talent-match/internal/config"
	"talent-match/internal/database/migration"
	"talent-match/internal/importer"
	"talent-match/internal/repository"
)

func main() {
	listURL := flag.String("list-url", "", "listing page URL, may contain %d for the page number")
	source := flag.String("source", "careers", "source name used in logs and stats")
	pages := flag.Int("pages", 1, "number of listing pages to walk")
	workers := flag.Int("workers", 4, "concurrent import workers")
	linkSel := flag.String("link-selector", "a", "CSS selector for detail links on the listing page")
	titleSel := flag.String("title-selector", "h1", "CSS selector for the posting title")
	companySel := flag.String("company-selector", "", "CSS selector for the company name")
	locationSel := flag.String("location-selector", "", "CSS selector for the location")
	salarySel := flag.String("salary-selector", "", "CSS selector for the salary range")
	bodySel := flag.String("body-selector", "body", "CSS selector for the posting body")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	if strings.TrimSpace(*listURL) == "" {
		log.Fatalf("provide -list-url")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg, log.Default())
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	if err := migration.Run(migCtx, c.DB); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	roles := repository.NewPostgresJobRoleRepository(c.DB)
	catalog := repository.NewPostgresSkillRepository(c.DB)

	src := importer.NewCareersSource(importer.CareersTarget{
		SourceName:         *source,
		ListURL:            *listURL,
		Pages:              *pages,
		LinkSelector:       *linkSel,
		TitleSelector:      *titleSel,
		CompanySelector:    *companySel,
		LocationSelector:   *locationSel,
		SalarySelector:     *salarySel,
		DetailBodySelector: *bodySel,
	})

	stats, err := importer.New(roles, catalog, log.Default()).Run(ctx, []importer.Source{src}, *workers)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("import done source=%s fetched=%d imported=%d skipped=%d errors=%d",
		*source, stats.Fetched, stats.Imported, stats.Skipped, stats.Errors)
}
