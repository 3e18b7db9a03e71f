package database

import (
	mapset "github.com/deckarep/golang-set/v2"

	"au-jobs-scraper/internal/models"
)

// MergeJob folds a freshly scraped candidate into an existing stored record.
// List fields become order-preserving unions; scalar fields take the
// candidate's value only when it is non-empty, so a later sighting never
// blanks out previously known data. The existing fingerprint always wins —
// it is never recomputed for a stored job.
func MergeJob(existing *models.StoredJob, candidate *models.JobPosting) models.JobPosting {
	merged := existing.JobPosting

	merged.Locations = MergeLocations(existing.Locations, candidate.Locations)
	merged.SourceURLs = MergeStrings(existing.SourceURLs, candidate.SourceURLs)
	merged.Platforms = MergeStrings(existing.Platforms, candidate.Platforms)

	if candidate.JobTitle != "" {
		merged.JobTitle = candidate.JobTitle
	}
	if candidate.JobRole != "" {
		merged.JobRole = candidate.JobRole
	}
	if candidate.Company != "" {
		merged.Company = candidate.Company
	}
	if candidate.Description != "" {
		merged.Description = candidate.Description
	}
	if candidate.Salary != nil {
		merged.Salary = candidate.Salary
	}
	if candidate.Seniority != "" {
		merged.Seniority = candidate.Seniority
	}
	if candidate.PostedAt != "" {
		merged.PostedAt = candidate.PostedAt
	}
	if candidate.ClosingDate != "" {
		merged.ClosingDate = candidate.ClosingDate
	}
	if candidate.LLMAnalysis != nil {
		merged.LLMAnalysis = candidate.LLMAnalysis
	}
	return merged
}

// MergeLocations unions two location lists, deduplicated by (city, state),
// keeping first-occurrence order.
func MergeLocations(old, incoming []models.Location) []models.Location {
	seen := mapset.NewThreadUnsafeSet[models.Location]()
	merged := make([]models.Location, 0, len(old)+len(incoming))
	for _, loc := range append(append([]models.Location{}, old...), incoming...) {
		if seen.Add(loc) {
			merged = append(merged, loc)
		}
	}
	return merged
}

// MergeStrings unions two string lists by exact equality, keeping
// first-occurrence order.
func MergeStrings(old, incoming []string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	merged := make([]string, 0, len(old)+len(incoming))
	for _, s := range append(append([]string{}, old...), incoming...) {
		if s == "" {
			continue
		}
		if seen.Add(s) {
			merged = append(merged, s)
		}
	}
	return merged
}
