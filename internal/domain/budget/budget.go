// Package budget decides whether a candidate's hourly rate fits a project's
// budget bracket.
package budget

import (
	"math"
	"strconv"
	"strings"

	"github.com/okian/matchcore/internal/domain/model"
)

// Uncapped is the rate used for open-ended ranges and missing data.
const Uncapped = 9999

// Caps maps a budget bracket to the maximum acceptable hourly rate.
type Caps map[string]float64

// Filter applies bracket caps to candidates.
type Filter struct {
	caps       Caps
	defaultCap float64
}

// NewFilter copies caps. Unknown brackets fall back to the lowest cap.
func NewFilter(caps Caps) *Filter {
	f := &Filter{caps: make(Caps, len(caps)), defaultCap: 0}
	lowest := math.Inf(1)
	for bracket, limit := range caps {
		f.caps[bracket] = limit
		if limit < lowest {
			lowest = limit
		}
	}
	if !math.IsInf(lowest, 1) {
		f.defaultCap = lowest
	}
	return f
}

// MaxRate returns the cap for bracket.
func (f *Filter) MaxRate(bracket string) float64 {
	if limit, ok := f.caps[bracket]; ok {
		return limit
	}
	return f.defaultCap
}

// Passes reports whether the candidate's minimum rate is within the cap.
// Only the lower bound of the range is considered.
func (f *Filter) Passes(c model.ProfessionalProfile, bracket string) bool {
	lo, _ := ParseRateRange(c.HourlyRateRange)
	return lo <= f.MaxRate(bracket)
}

// Split partitions candidates into those within budget and the ids of
// those excluded. Input order is preserved in both outputs.
func (f *Filter) Split(candidates []model.ProfessionalProfile, bracket string) ([]model.ProfessionalProfile, []string) {
	kept := make([]model.ProfessionalProfile, 0, len(candidates))
	excluded := []string{}
	for _, c := range candidates {
		if f.Passes(c, bracket) {
			kept = append(kept, c)
			continue
		}
		excluded = append(excluded, c.ID)
	}
	return kept, excluded
}

// ParseRateRange parses "min-max", "min+" or a bare number. An empty string
// yields (0, Uncapped). Fragments that are not numbers parse as 0.
func ParseRateRange(s string) (lo, hi float64) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return 0, Uncapped
	case strings.Contains(s, "+"):
		prefix, _, _ := strings.Cut(s, "+")
		return parseNumber(prefix), Uncapped
	case strings.Contains(s, "-"):
		left, right, _ := strings.Cut(s, "-")
		return parseNumber(left), parseNumber(right)
	default:
		n := parseNumber(s)
		return n, n
	}
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
