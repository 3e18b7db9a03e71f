package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPosting() JobPosting {
	return JobPosting{
		JobTitle:   "Software Engineer",
		JobRole:    "Software Engineer",
		Company:    "Atlassian",
		Locations:  []Location{{City: "Sydney", State: "NSW"}},
		SourceURLs: []string{"https://seek.com.au/job/1"},
		Platforms:  []string{"Seek"},
	}
}

func TestValidate(t *testing.T) {
	job := validPosting()
	assert.Empty(t, job.Validate())

	job = validPosting()
	job.JobTitle = ""
	assert.Contains(t, job.Validate(), "job_title is required")

	job = validPosting()
	job.Locations = nil
	assert.Contains(t, job.Validate(), "at least one location is required")

	job = validPosting()
	job.Locations = []Location{{City: "", State: "NSW"}}
	assert.Contains(t, job.Validate(), "location with empty city")
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "Sydney, NSW", Location{City: "Sydney", State: "NSW"}.String())
	assert.Equal(t, "Australia", Location{City: "Australia"}.String())
}
