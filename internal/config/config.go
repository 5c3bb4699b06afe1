// Package config defines service configuration and its loading.
//
// Defaults come from New, then an optional YAML file, then MATCHCORE_*
// environment variables. Lexicons and tier tables are plain data here and
// become immutable domain values through MatchingTables.
package config

import (
	"fmt"
	"runtime"

	"github.com/okian/matchcore/internal/domain/matching"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// WorkerCount bounds the goroutines used to score one large pool.
	WorkerCount int `koanf:"worker_count"`

	// ParallelThreshold is the smallest eligible pool scored in parallel.
	ParallelThreshold int `koanf:"parallel_threshold"`

	// DefaultTeamSize applies when a request omits team_size.
	DefaultTeamSize int `koanf:"default_team_size"`

	// MaxTeamSize clamps requested team sizes.
	MaxTeamSize int `koanf:"max_team_size"`

	// MaxCandidates rejects larger pools.
	MaxCandidates int `koanf:"max_candidates"`

	Lexicons Lexicons `koanf:"lexicons"`

	// BudgetCaps maps a budget bracket to the highest hourly rate it allows.
	BudgetCaps map[string]float64 `koanf:"budget_caps"`

	ExperienceScores   map[string]float64 `koanf:"experience_scores"`
	AvailabilityScores map[string]float64 `koanf:"availability_scores"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		WorkerCount:        runtime.NumCPU(),
		ParallelThreshold:  64,
		DefaultTeamSize:    4,
		MaxTeamSize:        20,
		MaxCandidates:      5_000,
		Lexicons:           defaultLexicons(),
		BudgetCaps:         defaultBudgetCaps(),
		ExperienceScores:   defaultExperienceScores(),
		AvailabilityScores: defaultAvailabilityScores(),
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxTeamSize < 1:
		return fmt.Errorf("%w: max_team_size must be at least 1", ErrInvalidConfig)
	case c.DefaultTeamSize < 1 || c.DefaultTeamSize > c.MaxTeamSize:
		return fmt.Errorf("%w: default_team_size must be within [1, max_team_size]", ErrInvalidConfig)
	case c.MaxCandidates < 1:
		return fmt.Errorf("%w: max_candidates must be at least 1", ErrInvalidConfig)
	case len(c.Lexicons.Capabilities) == 0:
		return fmt.Errorf("%w: lexicons.capabilities is empty", ErrInvalidConfig)
	case len(c.Lexicons.Roles) == 0:
		return fmt.Errorf("%w: lexicons.roles is empty", ErrInvalidConfig)
	case len(c.Lexicons.Industries) == 0:
		return fmt.Errorf("%w: lexicons.industries is empty", ErrInvalidConfig)
	case len(c.BudgetCaps) == 0:
		return fmt.Errorf("%w: budget_caps is empty", ErrInvalidConfig)
	}

	tables := map[string]map[string]float64{
		"budget_caps":         c.BudgetCaps,
		"experience_scores":   c.ExperienceScores,
		"availability_scores": c.AvailabilityScores,
	}
	for name, table := range tables {
		for k, v := range table {
			if v < 0 {
				return fmt.Errorf("%w: %s.%s is negative", ErrInvalidConfig, name, k)
			}
		}
	}
	return nil
}

// MatchingTables converts the configured data into engine tables.
func (c *Config) MatchingTables() matching.Tables {
	return matching.Tables{
		Capabilities: c.Lexicons.Capabilities,
		Roles:        c.Lexicons.Roles,
		Industries:   c.Lexicons.Industries,
		BudgetCaps:   c.BudgetCaps,
		Experience:   c.ExperienceScores,
		Availability: c.AvailabilityScores,
	}
}
