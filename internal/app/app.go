// Package app wires config into a ready-to-run scraper, shared by the
// one-shot and scheduled entrypoints.
package app

import (
	"context"
	"log"

	"au-jobs-scraper/internal/ai"
	"au-jobs-scraper/internal/analyzer"
	"au-jobs-scraper/internal/browser"
	"au-jobs-scraper/internal/classify"
	"au-jobs-scraper/internal/config"
	"au-jobs-scraper/internal/database"
	"au-jobs-scraper/internal/dedup"
	"au-jobs-scraper/internal/gazetteer"
	"au-jobs-scraper/internal/normalize"
	"au-jobs-scraper/internal/reporter"
	"au-jobs-scraper/internal/scraper"
	"au-jobs-scraper/internal/scraper/gradconnection"
	"au-jobs-scraper/internal/scraper/indeed"
	"au-jobs-scraper/internal/scraper/prosple"
	"au-jobs-scraper/internal/scraper/seek"
)

// BuildRunner assembles the full pipeline. The returned cleanup closes the
// database pool and the browser in reverse order.
func BuildRunner(ctx context.Context, cfg *config.Config) (*scraper.Runner, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	//connect to database
	repo, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, cleanup, err
	}
	cleanups = append(cleanups, repo.Close)
	log.Println("🗄️ Database connected.")

	//init playwright manager
	bm, err := browser.NewManager()
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	cleanups = append(cleanups, func() { bm.Close() })
	log.Println("✅ Browser initialized successfully!")

	//normalization pipeline
	classifier := classify.New(classify.DefaultTaxonomy(), cfg.EmbeddingThreshold, func() (classify.Embedder, error) {
		return ai.NewEmbedder(cfg.OpenAIKey, cfg.EmbeddingModel)
	})
	pipeline := scraper.NewPipeline(
		classifier,
		normalize.NewLocationNormalizer(gazetteer.Default()),
		normalize.NewSalaryNormalizer(cfg.SalaryMinAnnual, cfg.SalaryMaxAnnual),
	)

	scrapers := []scraper.Scraper{
		seek.New(cfg),
		gradconnection.New(cfg),
		prosple.New(cfg),
		indeed.New(cfg),
	}

	runner := scraper.NewRunner(cfg, bm, pipeline, repo, dedup.NewSeenCache(cfg.CachePath), scrapers)

	//optional telegram reporting
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		rep, err := reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Printf("⚠️ Telegram reporter disabled: %v", err)
		} else {
			runner.WithReporter(rep)
			log.Println("🤖 Telegram reporter initialized.")
		}
	}

	//optional LLM enrichment
	if cfg.AnalyzerEnabled && cfg.OpenAIKey != "" {
		an, err := analyzer.New(cfg.OpenAIKey, cfg.AnalyzerModel)
		if err != nil {
			log.Printf("⚠️ LLM analyzer disabled: %v", err)
		} else {
			runner.WithAnalyzer(an)
			log.Println("🧠 LLM analyzer initialized.")
		}
	}

	return runner, cleanup, nil
}
