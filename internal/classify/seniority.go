package classify

import (
	"regexp"
	"strings"
)

func lowerTrim(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

var seniorityPreClean = regexp.MustCompile(`[^a-z0-9+ ]+`)

// Ordered: a title carrying both "senior" and "graduate" reads as senior.
var seniorityLevels = []struct {
	level    string
	patterns []*regexp.Regexp
}{
	{"Senior", compilePatterns(`\bsenior\b`, `\blead\b`, `\bprincipal\b`, `\bmanager\b`, `\bhead\b`, `\bstaff\b`)},
	{"Junior", compilePatterns(`\bjunior\b`, `\bgraduate\b`, `\bentry\b`, `\bentry level\b`, `\bintern\b`, `\binternship\b`, `\btrainee\b`)},
	{"Intermediate", compilePatterns(`\bintermediate\b`, `\bmid\b`, `\bmid level\b`, `\bmid-level\b`)},
}

func compilePatterns(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return res
}

// DetermineSeniority classifies a job title as Senior, Junior, Intermediate
// or "N/A" when no seniority keyword is present.
func DetermineSeniority(title string) string {
	text := seniorityPreClean.ReplaceAllString(lowerTrim(title), " ")
	text = spaceRe.ReplaceAllString(text, " ")
	for _, sl := range seniorityLevels {
		for _, re := range sl.patterns {
			if re.MatchString(text) {
				return sl.level
			}
		}
	}
	return "N/A"
}
