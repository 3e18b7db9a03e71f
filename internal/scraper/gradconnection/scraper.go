// Package gradconnection scrapes au.gradconnection.com listings, the main
// source for graduate programs and internships.
package gradconnection

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

const baseURL = "https://au.gradconnection.com"

type GradConnectionScraper struct {
	cfg *config.Config
}

func New(cfg *config.Config) *GradConnectionScraper {
	return &GradConnectionScraper{cfg: cfg}
}

func (s *GradConnectionScraper) Name() string {
	return "GradConnection"
}

func (s *GradConnectionScraper) Scrape(ctx context.Context, page playwright.Page, keyword string) ([]scraper.RawJob, error) {
	var jobs []scraper.RawJob

	for pageNum := 1; pageNum <= s.cfg.MaxPages; pageNum++ {
		searchURL := fmt.Sprintf("%s/jobs/?title=%s&ordering=-recent_job_created&page=%d",
			baseURL, url.QueryEscape(keyword), pageNum)
		log.Printf("  🔍 GradConnection page %d: %s", pageNum, keyword)

		if _, err := page.Goto(searchURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
			Timeout:   playwright.Float(30000),
		}); err != nil {
			return jobs, fmt.Errorf("failed to load search page %d: %w", pageNum, err)
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
	doc.Find("div.campaign-box a.box-header-title").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
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

func (s *GradConnectionScraper) scrapeDetail(page playwright.Page, detailURL string) (scraper.RawJob, error) {
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
		Title:    strings.TrimSpace(doc.Find("h1.employers-profile-h1").First().Text()),
		Company:  strings.TrimSpace(doc.Find(".employers-panel-title").First().Text()),
	}
	if job.Title == "" {
		job.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	// Campaign facts table: locations, closing date
	doc.Find("ul.box-list li").Each(func(_ int, sel *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(sel.Find("strong, b").First().Text()))
		value := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(sel.Text()), sel.Find("strong, b").First().Text()))
		switch {
		case strings.Contains(label, "location"):
			for _, part := range strings.Split(value, ",") {
				if p := strings.TrimSpace(part); p != "" {
					job.Locations = append(job.Locations, p)
				}
			}
		case strings.Contains(label, "closing"):
			job.ClosingDate = value
		case strings.Contains(label, "salary"):
			job.SalaryText = value
		}
	})

	if desc := doc.Find(".campaign-content-container").First(); desc.Length() > 0 {
		descHTML, _ := desc.Html()
		job.Description = descHTML
	}

	// Prefer structured data when the page ships it
	if ld, ok := scraper.ExtractJobPostingLD(doc); ok {
		if len(job.Locations) == 0 {
			job.Locations = ld.Locations()
		}
		job.SalaryMin, job.SalaryMax, job.SalaryInterval = ld.SalaryBounds()
		if ld.DatePosted != "" {
			job.PostedAt = isoDate(ld.DatePosted)
		}
		if job.ClosingDate == "" && ld.ValidThrough != "" {
			job.ClosingDate = isoDate(ld.ValidThrough)
		}
	}

	return job, nil
}

// isoDate trims a full timestamp down to its date part.
func isoDate(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
