// Package model contains domain models passed between layers.
package model

// ProjectInput is the founder-side description of the work to staff.
type ProjectInput struct {
	Description string `json:"description"`
	Industry    string `json:"industry"`     // canonical tag or free string, optional
	BudgetRange string `json:"budget_range"` // e.g. "under_5000", "50000_plus"
}

// ProfessionalProfile is a candidate from the approved pool.
type ProfessionalProfile struct {
	ID                  string   `json:"id"`
	PrimaryRole         string   `json:"primary_role"`
	YearsExperience     string   `json:"years_experience"`
	IndustryExperience  []string `json:"industry_experience"`
	HourlyRateRange     string   `json:"hourly_rate_range"` // "min-max", "min+" or a bare number
	Availability        string   `json:"availability"`
	ProfessionalSummary string   `json:"professional_summary"`
}

// SignalSet holds the canonical tags detected in a piece of text.
// Each slice is sorted and free of duplicates.
type SignalSet struct {
	Capabilities []string `json:"capabilities"`
	Roles        []string `json:"roles"`
	Industries   []string `json:"industries"`
}

// Breakdown records every component that contributed to a score.
type Breakdown struct {
	Capability        float64   `json:"capability"`
	CapabilityOverlap int       `json:"capability_overlap"`
	Industry          float64   `json:"industry"`
	IndustryDeclared  bool      `json:"industry_declared"` // project industry found in candidate's declared list
	TextSimilarity    float64   `json:"text_similarity"`
	RawSimilarity     float64   `json:"raw_similarity"`
	Experience        float64   `json:"experience"`
	Availability      float64   `json:"availability"`
	ProjectSignals    SignalSet `json:"project_signals"`
	CandidateSignals  SignalSet `json:"candidate_signals"`
}

// ScoredCandidate pairs a profile with its score and the audit breakdown.
type ScoredCandidate struct {
	Candidate ProfessionalProfile `json:"candidate"`
	Score     float64             `json:"score"` // rounded to 2 decimals
	Breakdown Breakdown           `json:"breakdown"`
}

// Team is an ordered selection of scored candidates with unique ids.
type Team []ScoredCandidate

// IDs returns member ids in team order.
func (t Team) IDs() []string {
	ids := make([]string, len(t))
	for i, m := range t {
		ids[i] = m.Candidate.ID
	}
	return ids
}

// Result is what a team generation produces.
type Result struct {
	Team             Team      `json:"team"`
	ProjectSignals   SignalSet `json:"project_signals"`
	ExcludedByBudget []string  `json:"excluded_by_budget"`
	EligibleCount    int       `json:"eligible_count"`
	RequestedSize    int       `json:"requested_size"`
}
