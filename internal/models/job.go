package models

import (
	"fmt"
	"time"
)

// Location is a normalized Australian location. State is empty only for the
// country-level sentinel {City: "Australia"}.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

func (l Location) String() string {
	if l.State == "" {
		return l.City
	}
	return fmt.Sprintf("%s, %s", l.City, l.State)
}

// SalaryRange holds an annualized salary band in AUD.
type SalaryRange struct {
	AnnualMin float64 `json:"annual_min"`
	AnnualMax float64 `json:"annual_max"`
}

// JobPosting is the canonical record produced by the normalization pipeline
// and persisted keyed by Fingerprint.
type JobPosting struct {
	JobTitle    string         `json:"job_title"`
	JobRole     string         `json:"job_role"`
	Company     string         `json:"company"`
	Description string         `json:"description"`
	Locations   []Location     `json:"locations"`
	SourceURLs  []string       `json:"source_urls"`
	Platforms   []string       `json:"platforms"`
	Salary      *SalaryRange   `json:"salary,omitempty"`
	Seniority   string         `json:"seniority,omitempty"`
	PostedAt    string         `json:"posted_at,omitempty"`    // YYYY-MM-DD
	ClosingDate string         `json:"closing_date,omitempty"` // YYYY-MM-DD
	Fingerprint string         `json:"fingerprint"`
	LLMAnalysis map[string]any `json:"llm_analysis,omitempty"`
}

// Validate reports data-quality problems that must block persistence.
// A partially-built posting may legitimately fail validation mid-pipeline.
func (j *JobPosting) Validate() []string {
	var errs []string
	if j.JobTitle == "" {
		errs = append(errs, "job_title is required")
	}
	if j.JobRole == "" {
		errs = append(errs, "job_role is required")
	}
	if j.Company == "" {
		errs = append(errs, "company is required")
	}
	if len(j.Locations) == 0 {
		errs = append(errs, "at least one location is required")
	}
	if len(j.SourceURLs) == 0 {
		errs = append(errs, "at least one source_url is required")
	}
	if len(j.Platforms) == 0 {
		errs = append(errs, "at least one platform is required")
	}
	for _, loc := range j.Locations {
		if loc.City == "" {
			errs = append(errs, "location with empty city")
			break
		}
	}
	return errs
}

// StoredJob is a persisted job posting row.
type StoredJob struct {
	ID string `json:"id"`
	JobPosting
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
