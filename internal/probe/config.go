// Package probe drives a running matchcore server with random candidate
// pools and checks every returned team against the matching invariants.
package probe

import (
	"time"

	"github.com/okian/matchcore/internal/domain/model"
)

// Config holds configuration for a probe run.
type Config struct {
	BaseURL  string        // server base URL, e.g. http://localhost:9080
	Pool     int           // candidates per request
	Rounds   int           // number of requests
	TeamSize int           // requested team size
	Workers  int           // concurrent requests
	Timeout  time.Duration // per-request timeout
	Seed     uint64        // pool generator seed; 0 picks one from the clock
	Verbose  bool          // log every round

	// BudgetCaps must match the server's table for the budget check.
	BudgetCaps map[string]float64
}

// TeamRequest is the body of POST /v1/teams.
type TeamRequest struct {
	Project    model.ProjectInput          `json:"project"`
	Candidates []model.ProfessionalProfile `json:"candidates"`
	TeamSize   *int                        `json:"team_size,omitempty"`
}

// Member is one entry of a team response.
type Member struct {
	Rank      int                       `json:"rank"`
	Candidate model.ProfessionalProfile `json:"candidate"`
	Score     float64                   `json:"score"`
	Breakdown model.Breakdown           `json:"breakdown"`
}

// TeamResponse is the body of a POST /v1/teams reply.
type TeamResponse struct {
	RequestID        string          `json:"request_id"`
	Team             []Member        `json:"team"`
	ProjectSignals   model.SignalSet `json:"project_signals"`
	ExcludedByBudget []string        `json:"excluded_by_budget"`
	Code             string          `json:"code"`
	Message          string          `json:"message"`
}

// Stats summarizes a run.
type Stats struct {
	Rounds     int
	Teams      int
	NoEligible int
	Failed     int
	Violations []string
	Duration   time.Duration
}
