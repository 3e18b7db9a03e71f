// Package gazetteer holds the static Australian location data used by the
// location normalizer: a city-to-state lookup, a stoplist of state names, and
// regex patterns for regional descriptors that are not cities.
package gazetteer

import (
	"fmt"
	"regexp"
	"strings"
)

// Gazetteer is immutable after construction. Tests substitute smaller
// fixtures through New.
type Gazetteer struct {
	cityToState map[string]string
	stateNames  map[string]struct{}
	nonCity     []*regexp.Regexp
	stateAbbrev *regexp.Regexp
}

// New builds a Gazetteer from raw data. City keys and state names are
// matched lowercased; states are the abbreviation tokens matched on word
// boundaries anywhere in a location string.
func New(cityToState map[string]string, stateNames []string, nonCityPatterns []string, states []string) (*Gazetteer, error) {
	g := &Gazetteer{
		cityToState: make(map[string]string, len(cityToState)),
		stateNames:  make(map[string]struct{}, len(stateNames)),
	}
	for city, state := range cityToState {
		g.cityToState[strings.ToLower(city)] = state
	}
	for _, name := range stateNames {
		g.stateNames[strings.ToLower(name)] = struct{}{}
	}
	for _, pattern := range nonCityPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile non-city pattern %q: %w", pattern, err)
		}
		g.nonCity = append(g.nonCity, re)
	}
	re, err := regexp.Compile(`(?i)\b(` + strings.Join(states, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compile state pattern: %w", err)
	}
	g.stateAbbrev = re
	return g, nil
}

// StateFor looks up the state for a known city (case-insensitive).
func (g *Gazetteer) StateFor(city string) (string, bool) {
	state, ok := g.cityToState[strings.ToLower(strings.TrimSpace(city))]
	return state, ok
}

// IsStateName reports whether s is a state/territory full name or abbreviation.
func (g *Gazetteer) IsStateName(s string) bool {
	_, ok := g.stateNames[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsNonCity reports whether s matches a regional descriptor pattern
// ("inner suburbs", "metro", "greater melbourne", ...).
func (g *Gazetteer) IsNonCity(s string) bool {
	for _, re := range g.nonCity {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// FindStateAbbrev returns the first state abbreviation token found in s,
// uppercased, with the index where the match starts.
func (g *Gazetteer) FindStateAbbrev(s string) (state string, start int, ok bool) {
	loc := g.stateAbbrev.FindStringSubmatchIndex(s)
	if loc == nil {
		return "", 0, false
	}
	return strings.ToUpper(s[loc[2]:loc[3]]), loc[0], true
}
