// Package service wires the matching engine with logging, metrics and
// request limits for the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/matchcore/internal/adapters/worker"
	"github.com/okian/matchcore/internal/domain/matching"
	"github.com/okian/matchcore/internal/domain/model"
	"github.com/okian/matchcore/pkg/logger"
	"github.com/okian/matchcore/pkg/metrics"
)

// Service implements the API dependencies for team matching.
type Service struct {
	mu sync.RWMutex

	engine *matching.Engine
	pool   *worker.Pool
	tables matching.Tables

	// Configuration
	workerCount       int
	parallelThreshold int
	defaultTeamSize   int
	maxTeamSize       int
	maxCandidates     int

	started bool

	// Counters for /stats
	teamsGenerated   atomic.Int64
	noEligible       atomic.Int64
	replacements     atomic.Int64
	candidatesScored atomic.Int64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the goroutine limit for scoring large pools.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithParallelThreshold sets the smallest pool scored in parallel.
func WithParallelThreshold(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.parallelThreshold = n
		}
	}
}

// WithTeamSizes sets the size used when a request names none and the
// upper clamp. Invalid pairs are ignored.
func WithTeamSizes(defaultSize, maxSize int) Option {
	return func(s *Service) {
		if defaultSize > 0 && maxSize >= defaultSize {
			s.defaultTeamSize = defaultSize
			s.maxTeamSize = maxSize
		}
	}
}

// WithMaxCandidates caps the pool size accepted per request.
func WithMaxCandidates(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxCandidates = n
		}
	}
}

// WithTables sets the lexicons and tier tables for the engine.
func WithTables(t matching.Tables) Option {
	return func(s *Service) {
		s.tables = t
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. Call Start before serving requests.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:       runtime.NumCPU(),
		parallelThreshold: 64,
		defaultTeamSize:   4,
		maxTeamSize:       20,
		maxCandidates:     5_000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start builds the engine and its worker pool.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.pool = worker.NewPool(s.workerCount, worker.WithName("scoring"), worker.WithLogger(s.logger.Named("scoring")))
	s.engine = matching.NewEngine(s.tables, matching.WithParallel(s.pool, s.parallelThreshold))
	s.started = true

	s.logger.Info(ctx, "matching service started",
		logger.Int("workers", s.workerCount),
		logger.Int("parallelThreshold", s.parallelThreshold),
		logger.Int("maxTeamSize", s.maxTeamSize),
		logger.Int("maxCandidates", s.maxCandidates),
	)
	return nil
}

// Stop marks the service stopped. In-flight requests finish normally.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "matching service stopped")
}

func (s *Service) getEngine() (*matching.Engine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.engine, nil
}

// DefaultTeamSize is used when a request omits the team size.
func (s *Service) DefaultTeamSize() int {
	return s.defaultTeamSize
}

// ClampTeamSize limits n to the configured maximum. Values of zero or less
// pass through so they produce an empty team.
func (s *Service) ClampTeamSize(n int) int {
	return min(n, s.maxTeamSize)
}

func (s *Service) checkPool(candidates []model.ProfessionalProfile) error {
	if len(candidates) > s.maxCandidates {
		return fmt.Errorf("%w: %d exceeds %d", ErrTooManyCandidates, len(candidates), s.maxCandidates)
	}
	return nil
}

// GenerateTeam assembles a team of at most teamSize members, clamped to the
// configured maximum.
func (s *Service) GenerateTeam(ctx context.Context, project model.ProjectInput, candidates []model.ProfessionalProfile, teamSize int) (model.Result, error) {
	e, err := s.getEngine()
	if err != nil {
		return model.Result{}, err
	}
	if err := s.checkPool(candidates); err != nil {
		return model.Result{}, err
	}

	start := time.Now()
	res, err := e.GenerateTeam(ctx, project, candidates, s.ClampTeamSize(teamSize))
	took := time.Since(start)

	metrics.RecordGenerationLatency(float64(took.Microseconds()) / 1000)
	metrics.RecordBudgetExcluded(len(res.ExcludedByBudget))

	if errors.Is(err, model.ErrNoEligibleCandidates) {
		s.noEligible.Add(1)
		metrics.RecordNoEligible()
		s.logger.Warn(ctx, "no eligible candidates",
			logger.Int("pool", len(candidates)),
			logger.Int("excluded", len(res.ExcludedByBudget)),
			logger.String("budgetRange", project.BudgetRange),
		)
		return res, err
	}
	if err != nil {
		return res, err
	}

	s.teamsGenerated.Add(1)
	s.candidatesScored.Add(int64(res.EligibleCount))
	metrics.RecordTeamGenerated(len(res.Team))
	metrics.RecordCandidatesScored(res.EligibleCount)

	s.logger.Info(ctx, "team generated",
		logger.Int("teamSize", len(res.Team)),
		logger.Int("requested", res.RequestedSize),
		logger.Int("eligible", res.EligibleCount),
		logger.Int("excluded", len(res.ExcludedByBudget)),
		logger.Duration("took", took),
	)
	return res, nil
}

// Replacements suggests candidates of role to swap into a team. A limit of
// zero or less means the maximum team size.
func (s *Service) Replacements(ctx context.Context, project model.ProjectInput, candidates []model.ProfessionalProfile, role string, excludeIDs []string, limit int) ([]model.ScoredCandidate, error) {
	e, err := s.getEngine()
	if err != nil {
		return nil, err
	}
	if err := s.checkPool(candidates); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.maxTeamSize
	}
	out, err := e.Replacements(ctx, project, candidates, role, excludeIDs, s.ClampTeamSize(limit))
	if err != nil {
		if errors.Is(err, model.ErrNoEligibleCandidates) {
			s.noEligible.Add(1)
			metrics.RecordNoEligible()
		}
		return nil, err
	}

	s.replacements.Add(1)
	metrics.RecordReplacementRequest()
	s.logger.Debug(ctx, "replacements suggested",
		logger.String("role", role),
		logger.Int("suggested", len(out)),
		logger.Strings("excluded", excludeIDs),
	)
	return out, nil
}

// Signals tags free text against the configured lexicons.
func (s *Service) Signals(_ context.Context, text string) (model.SignalSet, error) {
	e, err := s.getEngine()
	if err != nil {
		return model.SignalSet{}, err
	}
	return e.Signals(text), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":           s.started,
		"workerCount":       s.workerCount,
		"parallelThreshold": s.parallelThreshold,
		"defaultTeamSize":   s.defaultTeamSize,
		"maxTeamSize":       s.maxTeamSize,
		"maxCandidates":     s.maxCandidates,
		"teamsGenerated":    s.teamsGenerated.Load(),
		"noEligible":        s.noEligible.Load(),
		"replacements":      s.replacements.Load(),
		"candidatesScored":  s.candidatesScored.Load(),
	}
}
