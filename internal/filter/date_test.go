package filter

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithinWindow(t *testing.T) {
	now := time.Now()
	recent := now.AddDate(0, 0, -2).Format("2006-01-02")
	stale := now.AddDate(0, 0, -10).Format("2006-01-02")

	tests := []struct {
		name string
		date string
		days int
		want bool
	}{
		{"empty passes", "", 3, true},
		{"placeholder passes", "Recent", 3, true},
		{"recent iso date", recent, 3, true},
		{"stale iso date", stale, 3, false},
		{"stale but wide window", stale, 30, true},
		{"iso timestamp", recent + "T09:30:00Z", 3, true},
		{"slash format", now.AddDate(0, 0, -1).Format("02/01/2006"), 3, true},
		{"current year only", fmt.Sprintf("%d", now.Year()), 3, true},
		{"old year only", "2019", 3, false},
		{"unparseable passes", "soonish", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinWindow(tt.date, tt.days))
		})
	}
}

func TestWithinWindowRejectsFarFuture(t *testing.T) {
	future := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	assert.False(t, WithinWindow(future, 3))
}
