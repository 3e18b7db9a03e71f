// Package filter applies recency rules to scraped postings. Boards report
// posting dates in mixed formats; unparseable dates pass through rather
// than dropping a potentially fresh job.
package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	yearOnlyRegex = regexp.MustCompile(`\b(20\d{2})\b`)
)

// WithinWindow reports whether a posting date falls inside the last `days`
// days. Empty and unparseable dates are treated as recent.
func WithinWindow(dateStr string, days int) bool {
	if dateStr == "" || dateStr == "N/A" || dateStr == "Recent" {
		return true
	}

	now := time.Now()

	//Case 1: ISO format "2026-01-27" or 2026-01-27T...
	if isoDateRegex.MatchString(dateStr) {
		jobDate, err := time.Parse("2006-01-02", dateStr[:10])
		if err == nil {
			return withinDays(now, jobDate, days)
		}
	}

	//case 2: dd/mm/yyyy
	if strings.Contains(dateStr, "/") {
		parts := strings.Split(dateStr, "/")
		if len(parts) >= 3 {
			day, _ := strconv.Atoi(parts[0])
			month, _ := strconv.Atoi(parts[1])
			year, _ := strconv.Atoi(parts[2])

			jobDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			return withinDays(now, jobDate, days)
		}
	}

	//case 3: year only fallback
	if match := yearOnlyRegex.FindStringSubmatch(dateStr); match != nil {
		year, _ := strconv.Atoi(match[1])
		return year == now.Year() || year == now.Year()-1
	}

	//default
	return true
}

func withinDays(now, jobDate time.Time, days int) bool {
	diff := now.Sub(jobDate)
	if diff > time.Duration(days)*24*time.Hour {
		return false
	}

	//reject if future date >2 days (timezone issues)
	if diff < -2*24*time.Hour {
		return false
	}
	return true
}
