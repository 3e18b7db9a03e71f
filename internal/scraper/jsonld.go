package scraper

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// JobPostingLD is the schema.org JobPosting subset the boards publish.
// Several fields are polymorphic in the wild (single object vs array), so
// they decode through raw messages.
type JobPostingLD struct {
	Type               string `json:"@type"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	DatePosted         string `json:"datePosted"`
	ValidThrough       string `json:"validThrough"`
	HiringOrganization struct {
		Name string `json:"name"`
	} `json:"hiringOrganization"`
	JobLocationRaw json.RawMessage `json:"jobLocation"`
	BaseSalary     struct {
		Value struct {
			MinValue *float64 `json:"minValue"`
			MaxValue *float64 `json:"maxValue"`
			Value    *float64 `json:"value"`
			UnitText string   `json:"unitText"`
		} `json:"value"`
	} `json:"baseSalary"`
}

type jobLocationLD struct {
	Address struct {
		Locality string `json:"addressLocality"`
		Region   string `json:"addressRegion"`
	} `json:"address"`
}

// Locations flattens jobLocation (object or array) into raw location
// strings suitable for the location normalizer.
func (ld *JobPostingLD) Locations() []string {
	if len(ld.JobLocationRaw) == 0 {
		return nil
	}

	var list []jobLocationLD
	if err := json.Unmarshal(ld.JobLocationRaw, &list); err != nil {
		var single jobLocationLD
		if err := json.Unmarshal(ld.JobLocationRaw, &single); err != nil {
			return nil
		}
		list = []jobLocationLD{single}
	}

	var out []string
	for _, loc := range list {
		parts := make([]string, 0, 2)
		if loc.Address.Locality != "" {
			parts = append(parts, loc.Address.Locality)
		}
		if loc.Address.Region != "" {
			parts = append(parts, loc.Address.Region)
		}
		if len(parts) > 0 {
			out = append(out, strings.Join(parts, ", "))
		}
	}
	return out
}

// SalaryBounds returns structured salary bounds and interval, if published.
// A single value fills both bounds.
func (ld *JobPostingLD) SalaryBounds() (min, max *float64, interval string) {
	v := ld.BaseSalary.Value
	interval = strings.ToLower(v.UnitText)
	if v.MinValue != nil || v.MaxValue != nil {
		return v.MinValue, v.MaxValue, interval
	}
	if v.Value != nil {
		return v.Value, v.Value, interval
	}
	return nil, nil, ""
}

// ExtractJobPostingLD finds the first schema.org JobPosting script in a
// parsed document.
func ExtractJobPostingLD(doc *goquery.Document) (*JobPostingLD, bool) {
	var found *JobPostingLD
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var ld JobPostingLD
		if err := json.Unmarshal([]byte(s.Text()), &ld); err != nil {
			return true
		}
		if ld.Type != "JobPosting" {
			return true
		}
		found = &ld
		return false
	})
	return found, found != nil
}
