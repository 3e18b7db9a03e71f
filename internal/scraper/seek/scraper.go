// Package seek scrapes seek.com.au search results and job detail pages.
package seek

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/playwright-community/playwright-go"

	"au-jobs-scraper/internal/browser"
	"au-jobs-scraper/internal/config"
	"au-jobs-scraper/internal/scraper"
)

const baseURL = "https://www.seek.com.au"

type SeekScraper struct {
	cfg *config.Config
}

func New(cfg *config.Config) *SeekScraper {
	return &SeekScraper{cfg: cfg}
}

func (s *SeekScraper) Name() string {
	return "Seek"
}

func (s *SeekScraper) Scrape(ctx context.Context, page playwright.Page, keyword string) ([]scraper.RawJob, error) {
	var jobs []scraper.RawJob

	//slugify keyword: "software engineer" -> "software-engineer"
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(keyword)), " ", "-")

	for pageNum := 1; pageNum <= s.cfg.MaxPages; pageNum++ {
		url := fmt.Sprintf("%s/%s-jobs?sortmode=ListedDate&daterange=%d&page=%d",
			baseURL, slug, s.cfg.PostingWindow(), pageNum)
		log.Printf("  🔍 Seek page %d: %s", pageNum, keyword)

		if _, err := page.Goto(url, playwright.PageGotoOptions{
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
			break // past the last page of results
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

// detailURLs pulls the canonical job links off a search results page.
func detailURLs(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var urls []string
	doc.Find(`a[data-automation="jobTitle"]`).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		// strip tracking query params, keep /job/<id>
		if i := strings.IndexByte(href, '?'); i >= 0 {
			href = href[:i]
		}
		full := baseURL + href
		if !seen[full] {
			seen[full] = true
			urls = append(urls, full)
		}
	})
	return urls
}

func (s *SeekScraper) scrapeDetail(page playwright.Page, url string) (scraper.RawJob, error) {
	if _, err := page.Goto(url, playwright.PageGotoOptions{
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
		URL:      url,
		Platform: s.Name(),
		Title:    text(doc, `[data-automation="job-detail-title"]`),
		Company:  text(doc, `[data-automation="advertiser-name"]`),
	}

	if loc := text(doc, `[data-automation="job-detail-location"]`); loc != "" {
		job.Locations = []string{loc}
	}
	job.SalaryText = text(doc, `[data-automation="job-detail-salary"]`)

	if desc := doc.Find(`[data-automation="jobAdDetails"]`).First(); desc.Length() > 0 {
		descHTML, _ := desc.Html()
		job.Description = descHTML
	}

	// "Posted 3d ago" relative labels
	job.PostedAt = scraper.CalculatePostedDate(postedLabel(doc), time.Now())

	return job, nil
}

func postedLabel(doc *goquery.Document) string {
	var label string
	doc.Find("span, div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		t := strings.TrimSpace(sel.Text())
		if strings.HasPrefix(t, "Posted ") && len(t) < 40 {
			label = strings.TrimPrefix(t, "Posted ")
			return false
		}
		return true
	})
	return label
}

func text(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}
