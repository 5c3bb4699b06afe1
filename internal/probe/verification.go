package probe

import (
	"fmt"
	"math"

	"github.com/okian/matchcore/internal/domain/budget"
	"github.com/okian/matchcore/internal/domain/model"
)

// scoreTolerance absorbs rounding of the total and its components.
const scoreTolerance = 0.011

// Verify checks one team reply against its request and returns every
// violation found.
func Verify(req TeamRequest, resp TeamResponse, filter *budget.Filter) []string {
	var out []string
	size := 0
	if req.TeamSize != nil {
		size = *req.TeamSize
	}
	if len(resp.Team) > size {
		out = append(out, fmt.Sprintf("team has %d members, requested %d", len(resp.Team), size))
	}

	pool := make(map[string]model.ProfessionalProfile, len(req.Candidates))
	for _, c := range req.Candidates {
		pool[c.ID] = c
	}
	excluded := make(map[string]struct{}, len(resp.ExcludedByBudget))
	for _, id := range resp.ExcludedByBudget {
		excluded[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(resp.Team))
	for i, m := range resp.Team {
		id := m.Candidate.ID
		if _, dup := seen[id]; dup {
			out = append(out, fmt.Sprintf("duplicate member %s", id))
		}
		seen[id] = struct{}{}

		if m.Rank != i+1 {
			out = append(out, fmt.Sprintf("member %s has rank %d at position %d", id, m.Rank, i+1))
		}
		c, ok := pool[id]
		if !ok {
			out = append(out, fmt.Sprintf("member %s is not in the pool", id))
			continue
		}
		if _, ok := excluded[id]; ok {
			out = append(out, fmt.Sprintf("member %s was reported over budget", id))
		}
		if filter != nil && !filter.Passes(c, req.Project.BudgetRange) {
			out = append(out, fmt.Sprintf("member %s asks %q above %s", id, c.HourlyRateRange, req.Project.BudgetRange))
		}

		b := m.Breakdown
		sum := b.Capability + b.Industry + b.TextSimilarity + b.Experience + b.Availability
		if math.Abs(sum-m.Score) > scoreTolerance {
			out = append(out, fmt.Sprintf("member %s score %.2f differs from breakdown sum %.2f", id, m.Score, sum))
		}
	}
	return out
}
