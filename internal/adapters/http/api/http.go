// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/matchcore/internal/app"
	"github.com/okian/matchcore/internal/domain/model"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 8 << 20

// Dependencies required by HTTP handlers.
type Dependencies interface {
	GenerateTeam(ctx context.Context, project model.ProjectInput, candidates []model.ProfessionalProfile, teamSize int) (model.Result, error)
	Replacements(ctx context.Context, project model.ProjectInput, candidates []model.ProfessionalProfile, role string, excludeIDs []string, limit int) ([]model.ScoredCandidate, error)
	Signals(ctx context.Context, text string) (model.SignalSet, error)
	DefaultTeamSize() int
}

// Entry is one ranked candidate in a response. Rank starts at 1.
type Entry struct {
	Rank      int                       `json:"rank"`
	Candidate model.ProfessionalProfile `json:"candidate"`
	Score     float64                   `json:"score"`
	Breakdown model.Breakdown           `json:"breakdown"`
}

func entries(scored []model.ScoredCandidate) []Entry {
	out := make([]Entry, len(scored))
	for i, s := range scored {
		out[i] = Entry{Rank: i + 1, Candidate: s.Candidate, Score: s.Score, Breakdown: s.Breakdown}
	}
	return out
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	metricsHandler http.Handler
	statsHandler   *StatsHandler
	teamsHandler   *TeamsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		metricsHandler: NewMetricsHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		teamsHandler:   NewTeamsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("GET /metrics", s.metricsHandler)
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("POST /v1/teams", MetricsMiddleware(RequestID(s.teamsHandler.HandleGenerateTeam), "teams"))
	mux.HandleFunc("POST /v1/replacements", MetricsMiddleware(RequestID(s.teamsHandler.HandleReplacements), "replacements"))
	mux.HandleFunc("POST /v1/signals", MetricsMiddleware(RequestID(s.teamsHandler.HandleSignals), "signals"))
}

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg, RequestID: RequestIDFrom(r.Context())})
}

// decode reads a JSON body into v.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// kindOf maps an upstream error to its API kind, or nil when it has none.
func kindOf(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidCandidate), errors.Is(err, service.ErrTooManyCandidates):
		return ErrBadRequest
	case errors.Is(err, model.ErrNoEligibleCandidates):
		return ErrNoEligible
	case errors.Is(err, service.ErrNotStarted):
		return ErrUnavailable
	default:
		return nil
	}
}

// wrapUpstream annotates an error returned by the dependencies with op and
// its API kind.
func wrapUpstream(op string, err error) error {
	if kind := kindOf(err); kind != nil {
		return WrapKind(op, kind, err)
	}
	return Wrap(op, err)
}

// classify maps an API error to an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, ErrNoEligible):
		return http.StatusUnprocessableEntity, "no_eligible_candidates"
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
