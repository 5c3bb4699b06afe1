// Package team selects a bounded, role-diverse team from scored candidates.
package team

import (
	"sort"

	"github.com/okian/matchcore/internal/domain/model"
)

// Sort returns a copy of candidates ordered by score descending, ties
// broken by candidate id ascending.
func Sort(candidates []model.ScoredCandidate) []model.ScoredCandidate {
	out := append([]model.ScoredCandidate(nil), candidates...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Candidate.ID < out[j].Candidate.ID
	})
	return out
}

// Assemble picks up to size members: first at most one per primary role in
// score order, then any unused candidates in the same order. The input is
// not modified. A size of zero or less yields an empty team.
func Assemble(candidates []model.ScoredCandidate, size int) model.Team {
	if size <= 0 || len(candidates) == 0 {
		return model.Team{}
	}
	ranked := Sort(candidates)
	diverse := diversityPass(ranked, size)
	return fillPass(ranked, diverse, size)
}

// diversityPass admits the best candidate of each role until size is hit.
func diversityPass(ranked []model.ScoredCandidate, size int) model.Team {
	picked := make(model.Team, 0, min(size, len(ranked)))
	roles := make(map[string]struct{})
	ids := make(map[string]struct{})
	for _, c := range ranked {
		if len(picked) == size {
			break
		}
		if _, dup := ids[c.Candidate.ID]; dup {
			continue
		}
		if _, taken := roles[c.Candidate.PrimaryRole]; taken {
			continue
		}
		roles[c.Candidate.PrimaryRole] = struct{}{}
		ids[c.Candidate.ID] = struct{}{}
		picked = append(picked, c)
	}
	return picked
}

// fillPass returns base extended with unused candidates until size is hit.
func fillPass(ranked []model.ScoredCandidate, base model.Team, size int) model.Team {
	out := make(model.Team, len(base), min(size, len(ranked)))
	copy(out, base)
	ids := make(map[string]struct{}, len(base))
	for _, m := range base {
		ids[m.Candidate.ID] = struct{}{}
	}
	for _, c := range ranked {
		if len(out) == size {
			break
		}
		if _, used := ids[c.Candidate.ID]; used {
			continue
		}
		ids[c.Candidate.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}
