package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/matchcore/internal/adapters/worker"
	"github.com/okian/matchcore/internal/domain/budget"
	"github.com/okian/matchcore/pkg/logger"
)

// ErrViolations is returned when any team broke an invariant.
var ErrViolations = errors.New("team invariant violations")

type round struct {
	req    TeamRequest
	resp   TeamResponse
	status int
	err    error
}

// Run executes cfg.Rounds team requests and verifies every reply.
func Run(ctx context.Context, cfg Config) (Stats, error) {
	start := time.Now()
	log := logger.Get().Named("probe")
	stats := Stats{Rounds: cfg.Rounds}

	log.Info(ctx, "starting probe",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("rounds", cfg.Rounds),
		logger.Int("pool", cfg.Pool),
		logger.Int("teamSize", cfg.TeamSize),
		logger.Int("workers", cfg.Workers),
	)

	client := NewClient(cfg.BaseURL, cfg.Timeout)
	if err := client.Health(ctx); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gen := NewGenerator(seed)
	reqs := make([]TeamRequest, cfg.Rounds)
	for i := range reqs {
		size := cfg.TeamSize
		reqs[i] = TeamRequest{Project: gen.Project(), Candidates: gen.Pool(cfg.Pool), TeamSize: &size}
	}

	pool := worker.NewPool(cfg.Workers, worker.WithName("probe"), worker.WithLogger(log))
	rounds, err := worker.Map(ctx, pool, reqs, func(ctx context.Context, req TeamRequest) (round, error) {
		r := round{req: req}
		r.resp, r.status, r.err = client.GenerateTeam(ctx, req)
		if cfg.Verbose {
			log.Info(ctx, "round done", logger.Int("status", r.status), logger.Int("team", len(r.resp.Team)))
		}
		return r, nil
	})
	if err != nil {
		return stats, fmt.Errorf("run rounds: %w", err)
	}

	filter := budget.NewFilter(cfg.BudgetCaps)
	for i, r := range rounds {
		switch {
		case r.err != nil:
			stats.Failed++
			log.Warn(ctx, "round failed", logger.Int("round", i), logger.Error(r.err))
		case r.status == http.StatusUnprocessableEntity:
			stats.NoEligible++
			if len(r.resp.ExcludedByBudget) != len(r.req.Candidates) {
				stats.Violations = append(stats.Violations,
					fmt.Sprintf("round %d: no eligible candidates but only %d of %d excluded", i, len(r.resp.ExcludedByBudget), len(r.req.Candidates)))
			}
		case r.status != http.StatusOK:
			stats.Failed++
			log.Warn(ctx, "unexpected status", logger.Int("round", i), logger.Int("status", r.status), logger.String("message", r.resp.Message))
		default:
			stats.Teams++
			for _, v := range Verify(r.req, r.resp, filter) {
				stats.Violations = append(stats.Violations, fmt.Sprintf("round %d: %s", i, v))
			}
		}
	}
	stats.Duration = time.Since(start)

	log.Info(ctx, "probe finished",
		logger.Int("teams", stats.Teams),
		logger.Int("noEligible", stats.NoEligible),
		logger.Int("failed", stats.Failed),
		logger.Int("violations", len(stats.Violations)),
		logger.Duration("duration", stats.Duration),
	)
	if len(stats.Violations) > 0 {
		return stats, fmt.Errorf("%w: %d found, first: %s", ErrViolations, len(stats.Violations), stats.Violations[0])
	}
	return stats, nil
}
