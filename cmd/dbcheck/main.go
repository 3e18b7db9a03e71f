// Manual smoke check for database connectivity. Connects with the pooled
// repository and prints the most recent stored jobs.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"au-jobs-scraper/internal/database"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		godotenv.Load("../../.env") // Fallback
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set. Please check your .env file.")
	}

	fmt.Println("Attempting to connect to PostgreSQL...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := database.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to the database. Error: %v\n(Check your connection string, password, and ensure you have internet access)", err)
	}
	defer repo.Close()

	fmt.Println("✅ Successfully connected to Supabase Database!")

	jobs, err := repo.GetRecentJobs(ctx, 5)
	if err != nil {
		log.Fatalf("❌ Query failed: %v", err)
	}

	fmt.Printf("📦 %d most recent jobs:\n", len(jobs))
	for _, job := range jobs {
		fmt.Printf("  - [%s] %s @ %s (%s)\n", job.JobRole, job.JobTitle, job.Company, job.CreatedAt.Format("2006-01-02"))
	}
}
