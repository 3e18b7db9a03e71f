package database

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"au-jobs-scraper/internal/models"
)

func storedFixture() *models.StoredJob {
	return &models.StoredJob{
		ID: "abc-123",
		JobPosting: models.JobPosting{
			JobTitle:    "Software Engineer",
			JobRole:     "Software Engineer",
			Company:     "Atlassian",
			Description: "Original description",
			Locations:   []models.Location{{City: "Sydney", State: "NSW"}},
			SourceURLs:  []string{"https://seek.com.au/job/1"},
			Platforms:   []string{"Seek"},
			Salary:      &models.SalaryRange{AnnualMin: 90000, AnnualMax: 110000},
			Seniority:   "N/A",
			PostedAt:    "2026-08-20",
			Fingerprint: "atlassian|software engineer",
		},
	}
}

func TestMergeJobUnionsListFields(t *testing.T) {
	existing := storedFixture()
	candidate := &models.JobPosting{
		JobTitle:   "Software Engineer",
		Company:    "Atlassian",
		Locations:  []models.Location{{City: "Melbourne", State: "VIC"}, {City: "Sydney", State: "NSW"}},
		SourceURLs: []string{"https://au.indeed.com/job/9"},
		Platforms:  []string{"Indeed"},
	}

	merged := MergeJob(existing, candidate)

	assert.Equal(t, []models.Location{
		{City: "Sydney", State: "NSW"},
		{City: "Melbourne", State: "VIC"},
	}, merged.Locations)
	assert.Equal(t, []string{"https://seek.com.au/job/1", "https://au.indeed.com/job/9"}, merged.SourceURLs)
	assert.Equal(t, []string{"Seek", "Indeed"}, merged.Platforms)
}

func TestMergeJobScalarPreference(t *testing.T) {
	existing := storedFixture()
	candidate := &models.JobPosting{
		JobTitle:    "Software Engineer",
		Company:     "Atlassian",
		Description: "", // empty must not blank the stored value
		Seniority:   "Senior",
	}

	merged := MergeJob(existing, candidate)

	assert.Equal(t, "Original description", merged.Description)
	assert.Equal(t, "Senior", merged.Seniority)
	assert.Equal(t, "2026-08-20", merged.PostedAt)
	assert.Equal(t, existing.Salary, merged.Salary)
}

func TestMergeJobKeepsFingerprint(t *testing.T) {
	existing := storedFixture()
	candidate := &models.JobPosting{
		JobTitle:    "Sr. Software Engineer",
		Company:     "Atlassian Pty Ltd",
		Fingerprint: "something|else",
	}

	merged := MergeJob(existing, candidate)
	assert.Equal(t, "atlassian|software engineer", merged.Fingerprint,
		"a stored job's fingerprint must never be recomputed")
}

func TestMergeLocationsDedupes(t *testing.T) {
	old := []models.Location{{City: "Sydney", State: "NSW"}}
	incoming := []models.Location{{City: "Sydney", State: "NSW"}, {City: "Perth", State: "WA"}}

	merged := MergeLocations(old, incoming)
	assert.Equal(t, []models.Location{
		{City: "Sydney", State: "NSW"},
		{City: "Perth", State: "WA"},
	}, merged)
}

func TestMergeStringsSkipsEmpty(t *testing.T) {
	merged := MergeStrings([]string{"a", ""}, []string{"", "b", "a"})
	assert.Equal(t, []string{"a", "b"}, merged)
}

func TestKeyedMutexSerializesPerKey(t *testing.T) {
	km := newKeyedMutex()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("same-key")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

// Every writer must load its merge base inside the critical section. A
// snapshot taken before the lock could miss URLs committed by a concurrent
// writer and silently drop them on write-back.
func TestLockedReadMergeWriteKeepsAllSightings(t *testing.T) {
	km := newKeyedMutex()
	stored := []string{"https://seek.com.au/job/1"}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			unlock := km.Lock("atlassian|software engineer")
			defer unlock()
			stored = MergeStrings(stored, []string{fmt.Sprintf("https://au.indeed.com/job/%d", i)})
		}(i)
	}
	wg.Wait()

	assert.Len(t, stored, 21, "no concurrent sighting may be lost")
}

func TestKeyedMutexCleansUpIdleEntries(t *testing.T) {
	km := newKeyedMutex()

	unlockA := km.Lock("a")
	unlockB := km.Lock("b")
	unlockA()
	unlockB()

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks, "idle entries must be removed")
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := newKeyedMutex()

	unlockA := km.Lock("a")
	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("b") // must not block on key "a"
		unlockB()
		close(done)
	}()
	<-done
	unlockA()
}
