// Package matching generates role-diverse teams for a project from a pool
// of candidate profiles.
package matching

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/matchcore/internal/domain/budget"
	"github.com/okian/matchcore/internal/domain/model"
	"github.com/okian/matchcore/internal/domain/scoring"
	"github.com/okian/matchcore/internal/domain/signals"
	"github.com/okian/matchcore/internal/domain/team"
	"github.com/okian/matchcore/internal/domain/tfidf"
)

const defaultParallelThreshold = 64

// Tables is the static data the engine is built from.
type Tables struct {
	Capabilities map[string][]string
	Roles        map[string][]string
	Industries   map[string][]string
	BudgetCaps   map[string]float64
	Experience   map[string]float64
	Availability map[string]float64
}

// Engine scores candidates and assembles teams. It holds no per-request
// state and is safe for concurrent use.
type Engine struct {
	extractor *signals.Extractor
	budget    *budget.Filter
	scorer    *scoring.Scorer
	parallel  Parallel
	threshold int
}

// NewEngine builds an engine from t. The tables are copied.
func NewEngine(t Tables, opts ...Option) *Engine {
	x := signals.NewExtractor(
		signals.NewLexicon(t.Capabilities),
		signals.NewLexicon(t.Roles),
		signals.NewLexicon(t.Industries),
	)
	caps := make(budget.Caps, len(t.BudgetCaps))
	for k, v := range t.BudgetCaps {
		caps[k] = v
	}

	e := &Engine{
		extractor: x,
		budget:    budget.NewFilter(caps),
		scorer: scoring.NewScorer(x,
			scoring.WithExperienceTiers(t.Experience),
			scoring.WithAvailabilityTiers(t.Availability),
		),
		threshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Signals tags free text against every lexicon.
func (e *Engine) Signals(s string) model.SignalSet {
	return e.extractor.ExtractAll(s)
}

// ProjectSignals tags the project description. The declared industry is
// matched literally by the scorer and is not tagged.
func (e *Engine) ProjectSignals(p model.ProjectInput) model.SignalSet {
	return e.extractor.ExtractAll(p.Description)
}

// Ranking is the budget-filtered pool scored and sorted for a project.
type Ranking struct {
	Candidates       []model.ScoredCandidate
	ProjectSignals   model.SignalSet
	ExcludedByBudget []string
}

// GenerateTeam scores the pool against project and assembles a team of at
// most teamSize members. A teamSize of zero or less yields an empty team.
//
// An empty pool, or one emptied by the budget filter, returns
// model.ErrNoEligibleCandidates together with a Result carrying the
// project signals and the exclusions.
func (e *Engine) GenerateTeam(ctx context.Context, project model.ProjectInput, candidates []model.ProfessionalProfile, teamSize int) (model.Result, error) {
	r, err := e.Rank(ctx, project, candidates)
	res := model.Result{
		Team:             model.Team{},
		ProjectSignals:   r.ProjectSignals,
		ExcludedByBudget: r.ExcludedByBudget,
		EligibleCount:    len(r.Candidates),
		RequestedSize:    teamSize,
	}
	if err != nil {
		return res, err
	}

	res.Team = team.Assemble(r.Candidates, teamSize)
	return res, nil
}

// Rank returns every candidate within budget, scored and sorted by score
// descending with ties broken by id.
func (e *Engine) Rank(ctx context.Context, project model.ProjectInput, candidates []model.ProfessionalProfile) (Ranking, error) {
	r := Ranking{
		Candidates:       []model.ScoredCandidate{},
		ProjectSignals:   e.ProjectSignals(project),
		ExcludedByBudget: []string{},
	}
	if err := validate(candidates); err != nil {
		return r, err
	}
	if len(candidates) == 0 {
		return r, fmt.Errorf("empty candidate pool: %w", model.ErrNoEligibleCandidates)
	}

	eligible, excluded := e.budget.Split(candidates, project.BudgetRange)
	r.ExcludedByBudget = excluded
	if len(eligible) == 0 {
		return r, fmt.Errorf("all %d candidates over budget %q: %w", len(candidates), project.BudgetRange, model.ErrNoEligibleCandidates)
	}

	scored, err := e.score(ctx, project, r.ProjectSignals, eligible)
	if err != nil {
		return r, err
	}
	r.Candidates = team.Sort(scored)
	return r, nil
}

// Replacements suggests up to limit candidates of role that are not in
// excludeIDs, best first. An empty role matches every role and a limit of
// zero or less returns all matches. Scoring runs over the restricted pool.
func (e *Engine) Replacements(ctx context.Context, project model.ProjectInput, candidates []model.ProfessionalProfile, role string, excludeIDs []string, limit int) ([]model.ScoredCandidate, error) {
	if err := validate(candidates); err != nil {
		return nil, err
	}

	skip := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		skip[id] = struct{}{}
	}
	role = strings.TrimSpace(role)
	pool := make([]model.ProfessionalProfile, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := skip[c.ID]; ok {
			continue
		}
		if role != "" && !strings.EqualFold(strings.TrimSpace(c.PrimaryRole), role) {
			continue
		}
		pool = append(pool, c)
	}

	r, err := e.Rank(ctx, project, pool)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(r.Candidates) > limit {
		return r.Candidates[:limit], nil
	}
	return r.Candidates, nil
}

// score rates eligible candidates against project. The IDF table is built
// from every eligible summary plus the project description, last, before
// any candidate is scored.
func (e *Engine) score(ctx context.Context, project model.ProjectInput, ps model.SignalSet, eligible []model.ProfessionalProfile) ([]model.ScoredCandidate, error) {
	corpus := make([][]string, 0, len(eligible)+1)
	for _, c := range eligible {
		corpus = append(corpus, tfidf.Tokenize(c.ProfessionalSummary))
	}
	ptoks := tfidf.Tokenize(project.Description)
	corpus = append(corpus, ptoks)
	idf := tfidf.BuildIDF(corpus)

	in := scoring.Input{
		Project:        project,
		ProjectSignals: ps,
		ProjectVector:  tfidf.Vectorize(ptoks, idf),
		IDF:            idf,
	}

	out := make([]model.ScoredCandidate, len(eligible))
	one := func(_ context.Context, i int) error {
		out[i] = e.scorer.Score(in, eligible[i], corpus[i])
		return nil
	}

	if e.parallel != nil && len(eligible) >= e.threshold {
		if err := e.parallel.Run(ctx, len(eligible), one); err != nil {
			return nil, fmt.Errorf("score candidates: %w", err)
		}
		return out, nil
	}

	for i := range eligible {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("score candidates: %w", err)
		}
		_ = one(ctx, i)
	}
	return out, nil
}

func validate(candidates []model.ProfessionalProfile) error {
	seen := make(map[string]struct{}, len(candidates))
	for i, c := range candidates {
		if strings.TrimSpace(c.ID) == "" {
			return fmt.Errorf("candidate %d: empty id: %w", i, model.ErrInvalidCandidate)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("candidate %d: duplicate id %q: %w", i, c.ID, model.ErrInvalidCandidate)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
