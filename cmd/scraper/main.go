package main

import (
	"context"
	"log"
	"time"

	"au-jobs-scraper/internal/app"
	"au-jobs-scraper/internal/config"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Keywords: %v", cfg.SearchKeywords)

	//setup context with timeout = 60 mins
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Minute)
	defer cancel()

	runner, cleanup, err := app.BuildRunner(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer cleanup()

	log.Println("🚀 Starting AU jobs scrape...")
	if err := runner.RunAll(ctx); err != nil {
		log.Fatalf("❌ Run failed: %v", err)
	}
	log.Println("🏁 Execution finished.")
}
