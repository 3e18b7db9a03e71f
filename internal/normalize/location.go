// Package normalize turns noisy scraped strings into canonical structured
// fields: free-text locations into {city, state} pairs and salary text into
// annualized ranges.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"au-jobs-scraper/internal/gazetteer"
	"au-jobs-scraper/internal/models"
)

var titleCaser = cases.Title(language.English)

// LocationNormalizer maps raw location strings onto the Australian gazetteer.
type LocationNormalizer struct {
	gaz *gazetteer.Gazetteer
}

func NewLocationNormalizer(g *gazetteer.Gazetteer) *LocationNormalizer {
	return &LocationNormalizer{gaz: g}
}

// Normalize converts raw location strings into an ordered, deduplicated list
// of known cities. State-only entries and regional descriptors are dropped;
// suburbs collapse onto their main city ("Fortitude Valley, Brisbane QLD" ->
// Brisbane/QLD). "Australia" and "AU" survive as a country-level sentinel.
// Malformed input is never an error: unrecognized entries are skipped.
func (n *LocationNormalizer) Normalize(locations []string) []models.Location {
	var out []models.Location
	for _, raw := range locations {
		loc := strings.TrimSpace(raw)
		if loc == "" {
			continue
		}
		lower := strings.ToLower(loc)

		if lower == "australia" || lower == "au" {
			out = append(out, models.Location{City: "Australia", State: ""})
			continue
		}
		if n.gaz.IsStateName(lower) {
			continue
		}
		if n.gaz.IsNonCity(lower) {
			continue
		}

		if state, start, ok := n.gaz.FindStateAbbrev(loc); ok {
			// Everything before the abbreviation is "Suburb, City" or "City".
			prefix := strings.TrimSpace(loc[:start])
			prefix = strings.TrimSpace(strings.TrimSuffix(prefix, ","))
			candidate := prefix
			if i := strings.LastIndex(prefix, ","); i >= 0 {
				candidate = strings.TrimSpace(prefix[i+1:])
			}
			if _, known := n.gaz.StateFor(candidate); known {
				out = append(out, models.Location{City: titleCaser.String(strings.ToLower(candidate)), State: state})
			}
			// Unknown city with a known state: skip rather than emit an
			// empty city, which would violate the output invariant.
			continue
		}

		// No state token. Scan comma-separated segments from the right for a
		// known city, or try the whole string.
		if strings.Contains(loc, ",") {
			parts := strings.Split(loc, ",")
			for i := len(parts) - 1; i >= 0; i-- {
				part := strings.TrimSpace(parts[i])
				if state, known := n.gaz.StateFor(part); known {
					out = append(out, models.Location{City: titleCaser.String(strings.ToLower(part)), State: state})
					break
				}
			}
			continue
		}
		if state, known := n.gaz.StateFor(lower); known {
			out = append(out, models.Location{City: titleCaser.String(lower), State: state})
		}
	}
	return dedupeLocations(out)
}

func dedupeLocations(locs []models.Location) []models.Location {
	seen := make(map[models.Location]struct{}, len(locs))
	unique := make([]models.Location, 0, len(locs))
	for _, loc := range locs {
		if _, dup := seen[loc]; dup {
			continue
		}
		seen[loc] = struct{}{}
		unique = append(unique, loc)
	}
	return unique
}
