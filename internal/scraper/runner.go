package scraper

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/semaphore"

	"au-jobs-scraper/internal/browser"
	"au-jobs-scraper/internal/config"
	"au-jobs-scraper/internal/database"
	"au-jobs-scraper/internal/dedup"
	"au-jobs-scraper/internal/filter"
	"au-jobs-scraper/internal/models"
)

// Reporter receives newly stored jobs. Implementations must tolerate being
// called from multiple goroutines.
type Reporter interface {
	SendJob(job models.JobPosting) error
	SendStatus(message string) error
}

// Analyzer enriches a stored posting with structured facts, or returns nil.
type Analyzer interface {
	Analyze(ctx context.Context, title, description string) map[string]any
}

// Runner drives all configured platforms through scrape, normalize and
// upsert for every search keyword.
type Runner struct {
	cfg      *config.Config
	browser  *browser.Manager
	pipeline *Pipeline
	repo     *database.Repository
	cache    *dedup.SeenCache
	reporter Reporter
	analyzer Analyzer
	scrapers []Scraper
}

func NewRunner(cfg *config.Config, bm *browser.Manager, pipeline *Pipeline, repo *database.Repository, cache *dedup.SeenCache, scrapers []Scraper) *Runner {
	return &Runner{
		cfg:      cfg,
		browser:  bm,
		pipeline: pipeline,
		repo:     repo,
		cache:    cache,
		scrapers: scrapers,
	}
}

// WithReporter attaches an optional reporter for new jobs.
func (r *Runner) WithReporter(rep Reporter) *Runner {
	r.reporter = rep
	return r
}

// WithAnalyzer attaches an optional LLM analyzer.
func (r *Runner) WithAnalyzer(a Analyzer) *Runner {
	r.analyzer = a
	return r
}

// RunAll scrapes every platform for every configured keyword and stores the
// results. A failing platform is logged and skipped, it never aborts the run.
func (r *Runner) RunAll(ctx context.Context) error {
	var inserted, updated int

	for _, s := range r.scrapers {
		log.Printf("🌐 Scraping %s...", s.Name())

		browserCtx, err := r.browser.NewContext()
		if err != nil {
			log.Printf("⚠️ %s: failed to open browser context: %v", s.Name(), err)
			continue
		}

		for _, keyword := range r.cfg.SearchKeywords {
			page, err := browserCtx.NewPage()
			if err != nil {
				log.Printf("⚠️ %s: failed to open page: %v", s.Name(), err)
				continue
			}

			raws, err := s.Scrape(ctx, page, keyword)
			page.Close()
			if err != nil {
				log.Printf("⚠️ %s: scrape failed for %q: %v", s.Name(), keyword, err)
				continue
			}

			fresh := r.filterSeen(ctx, raws)
			log.Printf("  📦 %s %q: %d scraped, %d new", s.Name(), keyword, len(raws), len(fresh))

			ins, upd := r.processJobs(ctx, fresh)
			inserted += ins
			updated += upd
		}

		browserCtx.Close()
	}

	log.Printf("✅ Run complete: %d inserted, %d updated", inserted, updated)
	if r.reporter != nil {
		r.reporter.SendStatus(runSummary(inserted, updated))
	}
	return nil
}

func runSummary(inserted, updated int) string {
	return fmt.Sprintf("🏁 Scrape finished: %d new jobs, %d updated", inserted, updated)
}

// filterSeen drops jobs whose URL is already in the local cache or already
// stored with a complete record.
func (r *Runner) filterSeen(ctx context.Context, raws []RawJob) []RawJob {
	window := r.cfg.PostingWindow()
	unseen := make([]RawJob, 0, len(raws))
	urls := make([]string, 0, len(raws))
	for _, raw := range raws {
		if r.cache.IsSeen(raw.URL) {
			continue
		}
		if !filter.WithinWindow(raw.PostedAt, window) {
			continue
		}
		unseen = append(unseen, raw)
		urls = append(urls, raw.URL)
	}
	if len(unseen) == 0 {
		return nil
	}

	stored, err := r.repo.CheckExistingURLs(ctx, urls, true)
	if err != nil {
		log.Printf("⚠️ Failed to check existing URLs, processing all: %v", err)
		return unseen
	}
	storedSet := make(map[string]bool, len(stored))
	for _, u := range stored {
		storedSet[u] = true
	}

	fresh := unseen[:0]
	for _, raw := range unseen {
		if storedSet[raw.URL] {
			r.cache.Add([]string{raw.URL})
			continue
		}
		fresh = append(fresh, raw)
	}
	return fresh
}

// processJobs normalizes and upserts jobs with bounded concurrency.
func (r *Runner) processJobs(ctx context.Context, raws []RawJob) (inserted, updated int) {
	sem := semaphore.NewWeighted(int64(r.cfg.Concurrency))
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, raw := range raws {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(raw RawJob) {
			defer wg.Done()
			defer sem.Release(1)

			job := r.pipeline.Build(ctx, raw)
			if r.analyzer != nil {
				job.LLMAnalysis = r.analyzer.Analyze(ctx, job.JobTitle, job.Description)
			}

			result, err := r.repo.UpsertJob(ctx, &job)
			if err != nil {
				log.Printf("⚠️ Failed to store %q at %s: %v", raw.Title, raw.Company, err)
				return
			}
			r.cache.Add([]string{raw.URL})

			mu.Lock()
			if result.Status == database.StatusInserted {
				inserted++
			} else {
				updated++
			}
			mu.Unlock()

			if result.Status == database.StatusInserted && r.reporter != nil {
				if err := r.reporter.SendJob(job); err != nil {
					log.Printf("⚠️ Failed to report %q: %v", job.JobTitle, err)
				}
			}
			log.Printf("      ✅ [%s] %s - %s", result.Status, job.JobTitle, job.Company)
		}(raw)
	}

	wg.Wait()
	return inserted, updated
}
