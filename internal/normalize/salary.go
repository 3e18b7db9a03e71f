package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"au-jobs-scraper/internal/models"
)

const (
	// Annualization multipliers.
	hoursPerYear  = 2080
	daysPerYear   = 260
	weeksPerYear  = 52
	monthsPerYear = 12

	// Default plausibility bounds for an annual salary in AUD. Anything
	// outside is treated as parsing garbage (years, phone numbers, ...).
	defaultMinAnnual = 10_000
	defaultMaxAnnual = 1_000_000

	// Salary statements sit near the top of a posting; bounding the search
	// window avoids false positives deep in benefits sections.
	windowMaxChars     = 1000
	windowMaxSentences = 5

	// Characters of surrounding context inspected for an interval keyword.
	intervalContext = 50
)

const amount = `(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?)`

var (
	rangeRe        = regexp.MustCompile(`(?i)\$?\s*` + amount + `\s*(k)?\s*(?:-|–|—|\bto\b)\s*\$?\s*` + amount + `\s*(k)?`)
	dollarSingleRe = regexp.MustCompile(`(?i)\$\s*` + amount + `\s*(k)?`)
	bareKRe        = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(k)\b`)

	hourRe  = regexp.MustCompile(`(?i)\b(hourly|hour|hr)\b`)
	dayRe   = regexp.MustCompile(`(?i)\b(daily|day)\b`)
	weekRe  = regexp.MustCompile(`(?i)\b(weekly|week|wk)\b`)
	monthRe = regexp.MustCompile(`(?i)\b(monthly|month|mo|mth)\b`)

	// Scraped descriptions may arrive markdown-escaped.
	unescaper = strings.NewReplacer(`\$`, "$", `\-`, "-", `\.`, ".")
)

// SalaryNormalizer extracts annualized salary ranges from free text or from
// structured min/max+interval triples reported by upstream job boards.
type SalaryNormalizer struct {
	minAnnual float64
	maxAnnual float64
}

// NewSalaryNormalizer builds a normalizer with the given plausibility bounds.
// Zero bounds fall back to the defaults of 10,000 and 1,000,000.
func NewSalaryNormalizer(minAnnual, maxAnnual float64) *SalaryNormalizer {
	if minAnnual <= 0 {
		minAnnual = defaultMinAnnual
	}
	if maxAnnual <= 0 {
		maxAnnual = defaultMaxAnnual
	}
	return &SalaryNormalizer{minAnnual: minAnnual, maxAnnual: maxAnnual}
}

// ExtractFromText scans the head of a posting for a salary statement and
// annualizes it. Returns nil when no plausible salary is found; malformed
// text is never an error.
func (s *SalaryNormalizer) ExtractFromText(text string) *models.SalaryRange {
	if text == "" {
		return nil
	}
	window := salaryWindow(unescaper.Replace(text))

	if m := rangeRe.FindStringSubmatchIndex(window); m != nil {
		low := parseAmount(group(window, m, 1), group(window, m, 2) != "")
		high := parseAmount(group(window, m, 3), group(window, m, 4) != "")
		mult := intervalMultiplier(surrounding(window, m[0], m[1]))
		low, high = low*mult, high*mult
		if low > high {
			low, high = high, low
		}
		return s.checked(low, high)
	}

	for _, re := range []*regexp.Regexp{dollarSingleRe, bareKRe} {
		m := re.FindStringSubmatchIndex(window)
		if m == nil {
			continue
		}
		// A leading unaccompanied hyphen ("-$50,000") is a negation or a
		// parsing artifact, not a salary.
		if precededByHyphen(window, m[0]) {
			return nil
		}
		value := parseAmount(group(window, m, 1), group(window, m, 2) != "")
		value *= intervalMultiplier(surrounding(window, m[0], m[1]))
		return s.checked(value, value)
	}
	return nil
}

// FromStructured annualizes an upstream-reported salary triple. When only one
// bound is present it is used for both ends. A pair like [80, 100000] is
// treated as a mis-split "80-100k" and the first value is scaled up.
func (s *SalaryNormalizer) FromStructured(min, max *float64, interval string) *models.SalaryRange {
	if min == nil && max == nil {
		return nil
	}
	low, high := min, max
	if low == nil {
		low = high
	}
	if high == nil {
		high = low
	}
	lo, hi := *low, *high
	if min != nil && max != nil && hi >= 1000 && lo < 1000 {
		lo *= 1000
	}
	mult := structuredMultiplier(interval)
	lo, hi = lo*mult, hi*mult
	if lo > hi {
		lo, hi = hi, lo
	}
	return &models.SalaryRange{AnnualMin: lo, AnnualMax: hi}
}

func (s *SalaryNormalizer) checked(low, high float64) *models.SalaryRange {
	if low < s.minAnnual || low > s.maxAnnual {
		return nil
	}
	return &models.SalaryRange{AnnualMin: low, AnnualMax: high}
}

// salaryWindow truncates text to the first windowMaxChars characters and
// windowMaxSentences sentence-like chunks.
func salaryWindow(text string) string {
	if len(text) > windowMaxChars {
		cut := windowMaxChars
		for cut > 0 && !isASCIIBoundary(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	sentences := 0
	for i, r := range text {
		switch r {
		case '.', '!', '?', '\n':
			sentences++
			if sentences >= windowMaxSentences {
				return text[:i+1]
			}
		}
	}
	return text
}

func isASCIIBoundary(b byte) bool { return b < 0x80 }

func group(s string, m []int, n int) string {
	if m[2*n] < 0 {
		return ""
	}
	return s[m[2*n]:m[2*n+1]]
}

func surrounding(s string, start, end int) string {
	from := start - intervalContext
	if from < 0 {
		from = 0
	}
	to := end + intervalContext
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

func precededByHyphen(s string, start int) bool {
	for i := start - 1; i >= 0; i-- {
		switch s[i] {
		case ' ', '\t':
			continue
		case '-':
			return true
		default:
			return false
		}
	}
	return false
}

func parseAmount(num string, thousands bool) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", ""), 64)
	if err != nil {
		return 0
	}
	if thousands {
		v *= 1000
	}
	return v
}

// intervalMultiplier detects the pay period from surrounding text.
// Yearly is the default when no keyword is present.
func intervalMultiplier(context string) float64 {
	switch {
	case hourRe.MatchString(context):
		return hoursPerYear
	case dayRe.MatchString(context):
		return daysPerYear
	case weekRe.MatchString(context):
		return weeksPerYear
	case monthRe.MatchString(context):
		return monthsPerYear
	default:
		return 1
	}
}

// structuredMultiplier maps an upstream interval label to its multiplier.
func structuredMultiplier(interval string) float64 {
	switch strings.ToLower(strings.TrimSpace(interval)) {
	case "hour", "hourly":
		return hoursPerYear
	case "day", "daily":
		return daysPerYear
	case "week", "weekly":
		return weeksPerYear
	case "month", "monthly":
		return monthsPerYear
	default:
		return 1
	}
}
