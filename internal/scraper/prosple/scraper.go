// Package prosple scrapes au.prosple.com, which publishes full schema.org
// JobPosting data on every detail page.
package prosple

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

const baseURL = "https://au.prosple.com"

type ProspleScraper struct {
	cfg *config.Config
}

func New(cfg *config.Config) *ProspleScraper {
	return &ProspleScraper{cfg: cfg}
}

func (s *ProspleScraper) Name() string {
	return "Prosple"
}

func (s *ProspleScraper) Scrape(ctx context.Context, page playwright.Page, keyword string) ([]scraper.RawJob, error) {
	var jobs []scraper.RawJob

	for pageNum := 0; pageNum < s.cfg.MaxPages; pageNum++ {
		searchURL := fmt.Sprintf("%s/search-jobs?keywords=%s&sort=newest_opportunities_first&start=%d",
			baseURL, url.QueryEscape(keyword), pageNum*20)
		log.Printf("  🔍 Prosple page %d: %s", pageNum+1, keyword)

		if _, err := page.Goto(searchURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateNetworkidle,
			Timeout:   playwright.Float(45000),
		}); err != nil {
			return jobs, fmt.Errorf("failed to load search page %d: %w", pageNum+1, err)
		}

		browser.RandomDelay(1000, 2000)

		html, err := page.Content()
		if err != nil {
			return jobs, fmt.Errorf("failed to read search page: %w", err)
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return jobs, fmt.Errorf("failed to parse search page: %w", err)
		}

		urls := detailURLs(doc)
		if len(urls) == 0 {
			break
		}
		log.Printf("    📦 Found %d job links", len(urls))

		for _, detailURL := range urls {
			job, err := s.scrapeDetail(page, detailURL)
			if err != nil {
				log.Printf("    ⚠️ Failed to scrape %s: %v", detailURL, err)
				continue
			}
			if job.Title == "" {
				continue
			}
			jobs = append(jobs, job)
			browser.RandomDelay(500, 1500)
		}
	}

	return jobs, nil
}

func detailURLs(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var urls []string
	doc.Find(`a[href*="/graduate-employers/"], a[href*="/opportunities/"]`).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || !strings.Contains(href, "/jobs-internships/") && !strings.Contains(href, "/opportunities/") {
			return
		}
		full := href
		if strings.HasPrefix(href, "/") {
			full = baseURL + href
		}
		if !seen[full] {
			seen[full] = true
			urls = append(urls, full)
		}
	})
	return urls
}

func (s *ProspleScraper) scrapeDetail(page playwright.Page, detailURL string) (scraper.RawJob, error) {
	if _, err := page.Goto(detailURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return scraper.RawJob{}, err
	}

	html, err := page.Content()
	if err != nil {
		return scraper.RawJob{}, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return scraper.RawJob{}, err
	}

	job := scraper.RawJob{
		URL:      detailURL,
		Platform: s.Name(),
	}

	ld, ok := scraper.ExtractJobPostingLD(doc)
	if !ok {
		// No structured data: fall back to visible markup
		job.Title = strings.TrimSpace(doc.Find("h1").First().Text())
		job.Company = strings.TrimSpace(doc.Find(`[data-testid="organisation-name"], .employer-name`).First().Text())
		if descHTML, err := doc.Find("main").First().Html(); err == nil {
			job.Description = descHTML
		}
		return job, nil
	}

	job.Title = ld.Title
	job.Company = ld.HiringOrganization.Name
	job.Description = ld.Description
	job.Locations = ld.Locations()
	job.SalaryMin, job.SalaryMax, job.SalaryInterval = ld.SalaryBounds()
	if ld.DatePosted != "" && len(ld.DatePosted) >= 10 {
		job.PostedAt = ld.DatePosted[:10]
	}
	if ld.ValidThrough != "" && len(ld.ValidThrough) >= 10 {
		job.ClosingDate = ld.ValidThrough[:10]
	}

	return job, nil
}
