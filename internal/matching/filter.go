// Package matching implements the preference filter applied to approved
// profiles: a single stable pass with case-insensitive checks for gender,
// age band and city. It never errors; a candidate is only excluded by an
// active check it fails.
package matching

import (
	"strconv"
	"strings"

	"github.com/shubhmangal/backend/internal/domain"
)

// AgeRange is the inclusive numeric range a preference band resolves to.
type AgeRange struct {
	Min int
	Max int
}

// openEndedMax caps bands like "40+".
const openEndedMax = 999

// ParseAgeBand resolves a preference band into an inclusive range.
// "26-30" parses to [26,30], "40+" to [40,999]; "Any" or anything
// unparseable falls back to [0,999].
func ParseAgeBand(band string) AgeRange {
	full := AgeRange{Min: 0, Max: openEndedMax}
	if band == "" || band == domain.Any {
		return full
	}
	if lo, hi, ok := strings.Cut(band, "-"); ok {
		min, err1 := strconv.Atoi(strings.TrimSpace(lo))
		max, err2 := strconv.Atoi(strings.TrimSpace(hi))
		if err1 != nil || err2 != nil {
			return full
		}
		return AgeRange{Min: min, Max: max}
	}
	if strings.HasSuffix(band, "+") {
		min, err := strconv.Atoi(strings.TrimSuffix(band, "+"))
		if err != nil {
			return full
		}
		return AgeRange{Min: min, Max: openEndedMax}
	}
	return full
}

// Filter returns the candidates matching prefs, preserving input order.
// Candidates are expected to arrive newest-first and already restricted to
// approved, non-married profiles. Hobby preferences are deliberately not
// applied; they are collected metadata only, and adding hobby-overlap
// filtering would change match counts callers depend on.
func Filter(candidates []domain.Profile, prefs domain.PreferenceSet) []domain.Profile {
	matches := make([]domain.Profile, 0, len(candidates))
	for _, p := range candidates {
		if !matchGender(p, prefs.Gender) {
			continue
		}
		if !matchAge(p, prefs.AgeBand) {
			continue
		}
		if !matchCity(p, prefs.City) {
			continue
		}
		matches = append(matches, p)
	}
	return matches
}

func matchGender(p domain.Profile, want string) bool {
	if want == "" || want == domain.Any {
		return true
	}
	if p.Gender == "" {
		return false
	}
	return strings.EqualFold(p.Gender, want)
}

func matchAge(p domain.Profile, band string) bool {
	if band == "" || band == domain.Any {
		return true
	}
	if p.Age == nil {
		return false
	}
	r := ParseAgeBand(band)
	return *p.Age >= r.Min && *p.Age <= r.Max
}

// matchCity is a substring check, not an exact one, so a location like
// "Kathmandu, Baneshwor" matches the preference "Kathmandu".
func matchCity(p domain.Profile, want string) bool {
	if want == "" || want == domain.Any {
		return true
	}
	if p.Location == "" {
		return false
	}
	return strings.Contains(strings.ToLower(p.Location), strings.ToLower(want))
}
