// Define an interface for all site drivers
// Keep drivers thin: extraction only, normalization lives in the pipeline

package scraper

import (
	"context"

	"github.com/playwright-community/playwright-go"

	"au-jobs-scraper/internal/classify"
	"au-jobs-scraper/internal/fingerprint"
	"au-jobs-scraper/internal/models"
	"au-jobs-scraper/internal/normalize"
)

// RawJob is a posting exactly as a site driver saw it, before any
// normalization.
type RawJob struct {
	Title       string
	Company     string
	URL         string
	Platform    string
	Locations   []string
	Description string // may contain HTML
	PostedAt    string // ISO date, "" when the board hides it
	ClosingDate string

	// Salary as displayed on the card or detail page, if any.
	SalaryText string

	// Structured salary from JSON-LD, when the board publishes it.
	SalaryMin      *float64
	SalaryMax      *float64
	SalaryInterval string // "hour", "day", "week", "month", "year"
}

// Scraper defines the interface that all platform drivers must implement.
type Scraper interface {
	// Scrape jobs matching a search keyword.
	Scrape(ctx context.Context, page playwright.Page, keyword string) ([]RawJob, error)

	// Name is the platform name (Seek, GradConnection, ...)
	Name() string
}

// Pipeline turns raw scraped jobs into canonical postings: role
// classification, location and salary normalization, fingerprinting.
type Pipeline struct {
	classifier *classify.Classifier
	locations  *normalize.LocationNormalizer
	salary     *normalize.SalaryNormalizer
}

func NewPipeline(classifier *classify.Classifier, locations *normalize.LocationNormalizer, salary *normalize.SalaryNormalizer) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		locations:  locations,
		salary:     salary,
	}
}

// Build produces the canonical posting for a raw job. Salary resolution
// order: structured data from the board, then the displayed salary string,
// then a scan of the description text.
func (p *Pipeline) Build(ctx context.Context, raw RawJob) models.JobPosting {
	description := StripHTML(raw.Description)

	locations := p.locations.Normalize(raw.Locations)
	if len(locations) == 0 {
		// A record needs at least one location to be persistable; fall back
		// to the country-level sentinel when nothing resolved.
		locations = []models.Location{{City: "Australia"}}
	}

	var salary *models.SalaryRange
	if raw.SalaryMin != nil || raw.SalaryMax != nil {
		salary = p.salary.FromStructured(raw.SalaryMin, raw.SalaryMax, raw.SalaryInterval)
	}
	if salary == nil && raw.SalaryText != "" {
		salary = p.salary.ExtractFromText(raw.SalaryText)
	}
	if salary == nil {
		salary = p.salary.ExtractFromText(description)
	}

	return models.JobPosting{
		JobTitle:    raw.Title,
		JobRole:     p.classifier.Classify(ctx, raw.Title, raw.Company),
		Company:     raw.Company,
		Description: description,
		Locations:   locations,
		SourceURLs:  []string{raw.URL},
		Platforms:   []string{raw.Platform},
		Salary:      salary,
		Seniority:   classify.DetermineSeniority(raw.Title),
		PostedAt:    raw.PostedAt,
		ClosingDate: raw.ClosingDate,
		Fingerprint: fingerprint.Generate(raw.Company, raw.Title),
	}
}
