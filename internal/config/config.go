// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Secrets come from the environment only.
	DatabaseURL    string
	OpenAIKey      string
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	// Search criteria
	SearchKeywords []string `yaml:"search_keywords"`
	MaxPages       int      `yaml:"max_pages"`
	Concurrency    int      `yaml:"concurrency"`

	// Recency windows. On the first ever run a wider window backfills the
	// database; subsequent runs only look at recent postings.
	DaysFromPosted        int  `yaml:"days_from_posted"`
	InitialDaysFromPosted int  `yaml:"initial_days_from_posted"`
	InitialRun            bool `yaml:"initial_run"`

	// Salary plausibility bounds (AUD per year).
	SalaryMinAnnual float64 `yaml:"salary_min_annual"`
	SalaryMaxAnnual float64 `yaml:"salary_max_annual"`

	// AI models
	EmbeddingModel     string  `yaml:"embedding_model"`
	EmbeddingThreshold float64 `yaml:"embedding_threshold"`
	AnalyzerModel      string  `yaml:"analyzer_model"`
	AnalyzerEnabled    bool    `yaml:"analyzer_enabled"`

	// Paths
	CachePath string `yaml:"cache_path"`

	// Scheduler
	CronSpec string `yaml:"cron_spec"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if len(cfg.SearchKeywords) == 0 {
		cfg.SearchKeywords = []string{"software engineer", "developer", "data"}
	}

	if cfg.MaxPages == 0 {
		cfg.MaxPages = 5
	}

	if cfg.Concurrency == 0 {
		cfg.Concurrency = 3
	}

	if cfg.DaysFromPosted == 0 {
		cfg.DaysFromPosted = 3
	}

	if cfg.InitialDaysFromPosted == 0 {
		cfg.InitialDaysFromPosted = 30
	}

	if cfg.SalaryMinAnnual == 0 {
		cfg.SalaryMinAnnual = 10_000
	}

	if cfg.SalaryMaxAnnual == 0 {
		cfg.SalaryMaxAnnual = 1_000_000
	}

	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = "text-embedding-3-small"
	}

	if cfg.EmbeddingThreshold == 0 {
		cfg.EmbeddingThreshold = 0.5
	}

	if cfg.AnalyzerModel == "" {
		cfg.AnalyzerModel = "gpt-4o-mini"
	}

	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}

	if cfg.CronSpec == "" {
		cfg.CronSpec = "0 7 * * *"
	}

	//Validate required fields
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	return cfg
}

// PostingWindow returns how many days back the current run should accept
// postings for.
func (c *Config) PostingWindow() int {
	if c.InitialRun {
		return c.InitialDaysFromPosted
	}
	return c.DaysFromPosted
}
