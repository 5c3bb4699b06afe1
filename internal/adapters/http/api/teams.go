package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/okian/matchcore/internal/domain/model"
)

// teamRequest mirrors the OpenAPI schema for POST /v1/teams. A nil
// TeamSize means the server default.
type teamRequest struct {
	Project    model.ProjectInput          `json:"project"`
	Candidates []model.ProfessionalProfile `json:"candidates"`
	TeamSize   *int                        `json:"team_size"`
}

type teamResponse struct {
	RequestID        string          `json:"request_id"`
	Team             []Entry         `json:"team"`
	ProjectSignals   model.SignalSet `json:"project_signals"`
	ExcludedByBudget []string        `json:"excluded_by_budget"`
	EligibleCount    int             `json:"eligible_count"`
	RequestedSize    int             `json:"requested_size"`
}

type noEligibleResponse struct {
	errorResponse
	ProjectSignals   model.SignalSet `json:"project_signals"`
	ExcludedByBudget []string        `json:"excluded_by_budget"`
}

type replacementRequest struct {
	Project    model.ProjectInput          `json:"project"`
	Candidates []model.ProfessionalProfile `json:"candidates"`
	Role       string                      `json:"role"`
	ExcludeIDs []string                    `json:"exclude_ids"`
	Limit      int                         `json:"limit"`
}

type replacementResponse struct {
	RequestID   string  `json:"request_id"`
	Suggestions []Entry `json:"suggestions"`
}

type signalsRequest struct {
	Text *string `json:"text"`
}

// TeamsHandler serves team generation, replacements and signal tagging.
type TeamsHandler struct {
	deps Dependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps Dependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleGenerateTeam handles POST /v1/teams requests.
func (h *TeamsHandler) HandleGenerateTeam(w http.ResponseWriter, r *http.Request) {
	const op = "api.generate_team"
	var req teamRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	size := h.deps.DefaultTeamSize()
	if req.TeamSize != nil {
		size = *req.TeamSize
	}

	res, err := h.deps.GenerateTeam(r.Context(), req.Project, req.Candidates, size)
	if err != nil {
		err = wrapUpstream(op, err)
		status, code := classify(err)
		if status == http.StatusUnprocessableEntity {
			writeJSON(w, status, noEligibleResponse{
				errorResponse: errorResponse{
					Code:      code,
					Message:   err.Error(),
					RequestID: RequestIDFrom(r.Context()),
				},
				ProjectSignals:   res.ProjectSignals,
				ExcludedByBudget: nonNil(res.ExcludedByBudget),
			})
			return
		}
		writeError(w, r, status, code, err)
		return
	}

	writeJSON(w, http.StatusOK, teamResponse{
		RequestID:        RequestIDFrom(r.Context()),
		Team:             entries(res.Team),
		ProjectSignals:   res.ProjectSignals,
		ExcludedByBudget: nonNil(res.ExcludedByBudget),
		EligibleCount:    res.EligibleCount,
		RequestedSize:    res.RequestedSize,
	})
}

// HandleReplacements handles POST /v1/replacements requests.
func (h *TeamsHandler) HandleReplacements(w http.ResponseWriter, r *http.Request) {
	const op = "api.replacements"
	var req replacementRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	out, err := h.deps.Replacements(r.Context(), req.Project, req.Candidates, strings.TrimSpace(req.Role), req.ExcludeIDs, req.Limit)
	if err != nil {
		err = wrapUpstream(op, err)
		status, code := classify(err)
		writeError(w, r, status, code, err)
		return
	}
	writeJSON(w, http.StatusOK, replacementResponse{
		RequestID:   RequestIDFrom(r.Context()),
		Suggestions: entries(out),
	})
}

// HandleSignals handles POST /v1/signals requests.
func (h *TeamsHandler) HandleSignals(w http.ResponseWriter, r *http.Request) {
	const op = "api.signals"
	var req signalsRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if req.Text == nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing text")))
		return
	}

	s, err := h.deps.Signals(r.Context(), *req.Text)
	if err != nil {
		err = wrapUpstream(op, err)
		status, code := classify(err)
		writeError(w, r, status, code, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
