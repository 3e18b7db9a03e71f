package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"au-jobs-scraper/internal/app"
	"au-jobs-scraper/internal/config"
	"au-jobs-scraper/internal/scheduler"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Cron: %s, Keywords: %v", cfg.CronSpec, cfg.SearchKeywords)

	sched := scheduler.New()
	err := sched.Schedule(cfg.CronSpec, func() {
		runOnce(cfg)
	})
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	sched.Start()
	log.Println("🚀 Scheduler running. Press Ctrl+C to stop.")

	//wait for shutdown signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Println("⏹️ Shutting down, waiting for running scrape...")
	sched.Stop()
	log.Println("🏁 Scheduler stopped.")
}

func runOnce(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Minute)
	defer cancel()

	runner, cleanup, err := app.BuildRunner(ctx, cfg)
	if err != nil {
		log.Printf("❌ Failed to build runner: %v", err)
		return
	}
	defer cleanup()

	if err := runner.RunAll(ctx); err != nil {
		log.Printf("❌ Run failed: %v", err)
	}
}
