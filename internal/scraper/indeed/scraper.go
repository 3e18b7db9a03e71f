// Package indeed scrapes au.indeed.com. Indeed sits behind Cloudflare, so
// the driver bails out of a run as soon as a challenge page appears instead
// of hammering it.
package indeed

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/playwright-community/playwright-go"

	"au-jobs-scraper/internal/browser"
	"au-jobs-scraper/internal/config"
	"au-jobs-scraper/internal/scraper"
)

const baseURL = "https://au.indeed.com"

type IndeedScraper struct {
	cfg *config.Config
}

func New(cfg *config.Config) *IndeedScraper {
	return &IndeedScraper{cfg: cfg}
}

func (s *IndeedScraper) Name() string {
	return "Indeed"
}

func (s *IndeedScraper) Scrape(ctx context.Context, page playwright.Page, keyword string) ([]scraper.RawJob, error) {
	var jobs []scraper.RawJob

	for pageNum := 0; pageNum < s.cfg.MaxPages; pageNum++ {
		searchURL := fmt.Sprintf("%s/jobs?q=%s&sort=date&fromage=%d&start=%d",
			baseURL, url.QueryEscape(keyword), s.cfg.PostingWindow(), pageNum*10)
		log.Printf("  🔍 Indeed page %d: %s", pageNum+1, keyword)

		if _, err := page.Goto(searchURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
			Timeout:   playwright.Float(30000),
		}); err != nil {
			return jobs, fmt.Errorf("failed to load search page %d: %w", pageNum+1, err)
		}

		if blocked(page) {
			log.Println("    🛡️ Cloudflare challenge detected. Aborting Indeed for this run.")
			return jobs, nil
		}

		browser.RandomDelay(1500, 3000)
		browser.HumanScroll(page)

		html, err := page.Content()
		if err != nil {
			return jobs, fmt.Errorf("failed to read search page: %w", err)
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return jobs, fmt.Errorf("failed to parse search page: %w", err)
		}

		cards := cardJobs(doc)
		if len(cards) == 0 {
			break
		}
		log.Printf("    📦 Found %d job cards", len(cards))

		for _, card := range cards {
			job, err := s.scrapeDetail(page, card)
			if err != nil {
				log.Printf("    ⚠️ Failed to scrape %s: %v", card.URL, err)
				continue
			}
			jobs = append(jobs, job)
			browser.RandomDelay(800, 2000)
		}
	}

	return jobs, nil
}

func blocked(page playwright.Page) bool {
	title, _ := page.Title()
	return strings.Contains(title, "Just a moment") ||
		strings.Contains(title, "Attention Required") ||
		strings.Contains(title, "Cloudflare")
}

// cardJobs extracts the fields available on the results page itself. The
// detail visit fills in the description and structured salary.
func cardJobs(doc *goquery.Document) []scraper.RawJob {
	seen := make(map[string]bool)
	var jobs []scraper.RawJob
	doc.Find("div.job_seen_beacon").Each(func(_ int, sel *goquery.Selection) {
		titleEl := sel.Find("h2.jobTitle a").First()
		href, ok := titleEl.Attr("href")
		if !ok {
			return
		}
		full := href
		if strings.HasPrefix(href, "/") {
			full = baseURL + href
		}
		if seen[full] {
			return
		}
		seen[full] = true

		job := scraper.RawJob{
			URL:        full,
			Platform:   "Indeed",
			Title:      strings.TrimSpace(titleEl.Text()),
			Company:    strings.TrimSpace(sel.Find(`[data-testid="company-name"]`).First().Text()),
			SalaryText: strings.TrimSpace(sel.Find(`[data-testid="attribute_snippet_testid"], .salary-snippet-container`).First().Text()),
		}
		if loc := strings.TrimSpace(sel.Find(`[data-testid="text-location"]`).First().Text()); loc != "" {
			job.Locations = []string{loc}
		}
		if job.Title != "" {
			jobs = append(jobs, job)
		}
	})
	return jobs
}

func (s *IndeedScraper) scrapeDetail(page playwright.Page, card scraper.RawJob) (scraper.RawJob, error) {
	if _, err := page.Goto(card.URL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return card, err
	}
	if blocked(page) {
		return card, nil // keep the card-level fields we already have
	}
	browser.MouseJiggle(page)

	html, err := page.Content()
	if err != nil {
		return card, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return card, err
	}

	if desc := doc.Find("#jobDescriptionText").First(); desc.Length() > 0 {
		descHTML, _ := desc.Html()
		card.Description = descHTML
	}

	if ld, ok := scraper.ExtractJobPostingLD(doc); ok {
		card.SalaryMin, card.SalaryMax, card.SalaryInterval = ld.SalaryBounds()
		if len(card.Locations) == 0 {
			card.Locations = ld.Locations()
		}
		if ld.DatePosted != "" && len(ld.DatePosted) >= 10 {
			card.PostedAt = ld.DatePosted[:10]
		}
	}

	return card, nil
}
