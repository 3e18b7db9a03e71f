package scraper

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "tags removed",
			in:   "<p>Join our <b>growing</b> team</p>",
			want: "Join our growing team",
		},
		{
			name: "entities decoded",
			in:   "Salary &amp; benefits &gt; market rate",
			want: "Salary & benefits > market rate",
		},
		{
			name: "script content dropped",
			in:   `<script>alert("x")</script>About the role`,
			want: "About the role",
		},
		{
			name: "plain text untouched",
			in:   "No markup here",
			want: "No markup here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.in))
		})
	}
}

func TestCalculatePostedDate(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		label string
		want  string
	}{
		{"3d ago", "2026-08-20"},
		{"30d+", "2026-07-24"},
		{"2 days ago", "2026-08-21"},
		{"5h ago", "2026-08-23"},
		{"12m ago", "2026-08-23"},
		{"", "2026-08-23"},
		{"yesterday-ish nonsense", "2026-08-23"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculatePostedDate(tt.label, now))
		})
	}
}

const jobPostingLDPage = `<html><head>
<script type="application/ld+json">{"@context":"https://schema.org","@type":"BreadcrumbList"}</script>
<script type="application/ld+json">{
  "@context": "https://schema.org",
  "@type": "JobPosting",
  "title": "Graduate Data Engineer",
  "datePosted": "2026-08-20T03:00:00Z",
  "validThrough": "2026-09-30T23:59:59Z",
  "description": "<p>Build pipelines.</p>",
  "hiringOrganization": {"@type": "Organization", "name": "Telstra"},
  "jobLocation": [
    {"@type": "Place", "address": {"addressLocality": "Melbourne", "addressRegion": "VIC"}},
    {"@type": "Place", "address": {"addressLocality": "Sydney", "addressRegion": "NSW"}}
  ],
  "baseSalary": {
    "@type": "MonetaryAmount",
    "currency": "AUD",
    "value": {"@type": "QuantitativeValue", "minValue": 75000, "maxValue": 85000, "unitText": "YEAR"}
  }
}</script>
</head><body></body></html>`

func TestExtractJobPostingLD(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(jobPostingLDPage))
	require.NoError(t, err)

	ld, ok := ExtractJobPostingLD(doc)
	require.True(t, ok)

	assert.Equal(t, "Graduate Data Engineer", ld.Title)
	assert.Equal(t, "Telstra", ld.HiringOrganization.Name)
	assert.Equal(t, []string{"Melbourne, VIC", "Sydney, NSW"}, ld.Locations())

	min, max, interval := ld.SalaryBounds()
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 75000.0, *min)
	assert.Equal(t, 85000.0, *max)
	assert.Equal(t, "year", interval)
}

func TestExtractJobPostingLDSingleLocationAndValue(t *testing.T) {
	page := `<html><head><script type="application/ld+json">{
	  "@type": "JobPosting",
	  "title": "Barista",
	  "jobLocation": {"@type": "Place", "address": {"addressLocality": "Hobart", "addressRegion": "TAS"}},
	  "baseSalary": {"value": {"value": 30, "unitText": "HOUR"}}
	}</script></head></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	ld, ok := ExtractJobPostingLD(doc)
	require.True(t, ok)

	assert.Equal(t, []string{"Hobart, TAS"}, ld.Locations())

	min, max, interval := ld.SalaryBounds()
	require.NotNil(t, min)
	assert.Equal(t, 30.0, *min)
	assert.Equal(t, 30.0, *max)
	assert.Equal(t, "hour", interval)
}

func TestExtractJobPostingLDMissing(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body>plain page</body></html>"))
	require.NoError(t, err)

	_, ok := ExtractJobPostingLD(doc)
	assert.False(t, ok)
}
