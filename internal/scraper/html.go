package scraper

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// StripHTML reduces a board's rich description markup to plain text.
func StripHTML(raw string) string {
	text := stripPolicy.Sanitize(raw)
	text = html.UnescapeString(text)
	return strings.TrimSpace(collapseBlankLines(text))
}

var blankLinesRe = regexp.MustCompile(`\n{3,}`)

func collapseBlankLines(s string) string {
	return blankLinesRe.ReplaceAllString(s, "\n\n")
}

var daysAgoRe = regexp.MustCompile(`(\d+)\+?\s*d`)

// CalculatePostedDate converts a relative age label like "3d ago", "30d+" or
// "5h ago" into an ISO date. Hour and minute ages, and anything that does
// not parse, resolve to today.
func CalculatePostedDate(ageLabel string, now time.Time) string {
	label := strings.ToLower(strings.TrimSpace(ageLabel))

	if m := daysAgoRe.FindStringSubmatch(label); m != nil {
		days := 0
		fmt.Sscanf(m[1], "%d", &days)
		return now.AddDate(0, 0, -days).Format("2006-01-02")
	}
	return now.Format("2006-01-02")
}
