package scraper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"au-jobs-scraper/internal/classify"
	"au-jobs-scraper/internal/gazetteer"
	"au-jobs-scraper/internal/models"
	"au-jobs-scraper/internal/normalize"
)

func testPipeline() *Pipeline {
	return NewPipeline(
		classify.New(classify.DefaultTaxonomy(), 0, nil),
		normalize.NewLocationNormalizer(gazetteer.Default()),
		normalize.NewSalaryNormalizer(0, 0),
	)
}

func TestPipelineBuild(t *testing.T) {
	p := testPipeline()
	min, max := 80000.0, 100000.0

	job := p.Build(context.Background(), RawJob{
		Title:          "Senior Software Engineer - AI/ML",
		Company:        "Atlassian Pty Ltd",
		URL:            "https://seek.com.au/job/42",
		Platform:       "Seek",
		Locations:      []string{"Fortitude Valley, Brisbane QLD", "Sydney"},
		Description:    "<p>Build ML systems. Salary $70,000 per annum.</p>",
		SalaryMin:      &min,
		SalaryMax:      &max,
		SalaryInterval: "year",
		PostedAt:       "2026-08-20",
	})

	assert.Equal(t, "AI Engineer", job.JobRole)
	assert.Equal(t, "Senior", job.Seniority)
	assert.Equal(t, []models.Location{
		{City: "Brisbane", State: "QLD"},
		{City: "Sydney", State: "NSW"},
	}, job.Locations)
	assert.Equal(t, []string{"https://seek.com.au/job/42"}, job.SourceURLs)
	assert.Equal(t, []string{"Seek"}, job.Platforms)
	assert.Equal(t, "atlassian|senior software engineer aiml", job.Fingerprint)

	// Structured salary wins over the description mention.
	require.NotNil(t, job.Salary)
	assert.Equal(t, 80000.0, job.Salary.AnnualMin)
	assert.Equal(t, 100000.0, job.Salary.AnnualMax)

	assert.NotContains(t, job.Description, "<p>")
}

func TestPipelineBuildSalaryFallbackOrder(t *testing.T) {
	p := testPipeline()
	ctx := context.Background()

	// Displayed salary text beats the description.
	job := p.Build(ctx, RawJob{
		Title:       "Developer",
		Company:     "Canva",
		SalaryText:  "$90,000 - $100,000",
		Description: "Pays $50,000 per annum.",
	})
	require.NotNil(t, job.Salary)
	assert.Equal(t, 90000.0, job.Salary.AnnualMin)

	// Description is the last resort.
	job = p.Build(ctx, RawJob{
		Title:       "Developer",
		Company:     "Canva",
		Description: "Pays $50,000 per annum.",
	})
	require.NotNil(t, job.Salary)
	assert.Equal(t, 50000.0, job.Salary.AnnualMin)

	// No salary anywhere.
	job = p.Build(ctx, RawJob{Title: "Developer", Company: "Canva"})
	assert.Nil(t, job.Salary)
}

func TestPipelineBuildLocationFallback(t *testing.T) {
	p := testPipeline()

	job := p.Build(context.Background(), RawJob{
		Title:     "Developer",
		Company:   "Canva",
		Locations: []string{"Remote"},
	})
	assert.Equal(t, []models.Location{{City: "Australia"}}, job.Locations)
}
