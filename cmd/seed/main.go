package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/somapath/somapath-backend/internal/clients/iefa"
	"github.com/somapath/somapath-backend/internal/clients/scorecard"
	"github.com/somapath/somapath-backend/internal/db"
	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/repos"
	"github.com/somapath/somapath-backend/internal/services"
)

// Search terms cover a spread of well-known US schools so a fresh database
// has a usable directory out of the box.
var universitySearchTerms = []string{
	"Harvard", "Stanford", "MIT", "Yale", "Princeton",
	"Columbia", "University of Pennsylvania", "Duke", "Cornell",
	"Northwestern", "University of California", "University of Michigan",
}

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	universityRepo := repos.NewUniversityRepo(thePG, log)
	scholarshipRepo := repos.NewScholarshipRepo(thePG, log)
	catalogService := services.NewCatalogService(thePG, log, universityRepo, scholarshipRepo, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Info("Seeding scholarships...")
	scholarshipCount := seedScholarships(ctx, log, catalogService)
	log.Info("Scholarships seeded", "count", scholarshipCount)

	log.Info("Seeding universities from College Scorecard...")
	universityCount, err := seedUniversities(ctx, log, catalogService)
	if err != nil {
		log.Error("University seeding failed", "error", err)
		os.Exit(1)
	}
	log.Info("Universities seeded", "count", universityCount)

	log.Info("Database seeding completed")
}

// seedScholarships loads the live IEFA listings plus the curated entries.
// Scrape failures are tolerated so the curated set still lands.
func seedScholarships(ctx context.Context, log *logger.Logger, catalog services.CatalogService) int {
	scraper := iefa.NewScraper(log, nil, "")

	rows := []iefa.Scholarship{}
	scraped, err := scraper.Scrape(ctx, iefa.ScrapeParams{})
	if err != nil {
		log.Warn("IEFA scrape failed, continuing with curated entries", "error", err)
	} else {
		rows = append(rows, scraped...)
	}
	rows = append(rows, iefa.CuratedScholarships()...)

	count := 0
	for _, row := range rows {
		if _, err := catalog.UpsertScholarship(ctx, iefa.ToScholarship(row)); err != nil {
			log.Warn("Upsert scholarship failed", "name", row.Name, "error", err)
			continue
		}
		count++
	}
	return count
}

// seedUniversities fans the search terms out concurrently; each term pulls
// its own Scorecard page and upserts are idempotent on the scorecard id.
func seedUniversities(ctx context.Context, log *logger.Logger, catalog services.CatalogService) (int, error) {
	client, err := scorecard.NewClient(log)
	if err != nil {
		return 0, err
	}

	counts := make([]int, len(universitySearchTerms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, term := range universitySearchTerms {
		g.Go(func() error {
			resp, err := client.Search(gctx, scorecard.SearchParams{Name: term, PerPage: 5})
			if err != nil {
				log.Warn("Scorecard search failed", "term", term, "error", err)
				return nil
			}
			for _, school := range resp.Results {
				if _, err := catalog.UpsertUniversity(gctx, scorecard.ToUniversity(school)); err != nil {
					log.Warn("Upsert university failed", "school", school.Name, "error", err)
					continue
				}
				counts[i]++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return total, nil
}
