package model

import "errors"

// Sentinel error kinds shared by the matching packages.
var (
	// ErrNoEligibleCandidates is returned when the pool is empty, either as
	// supplied or after budget filtering. It is distinct from an empty team.
	ErrNoEligibleCandidates = errors.New("no eligible candidates")

	// ErrInvalidCandidate marks a caller contract violation in the pool,
	// such as a missing or duplicated candidate id.
	ErrInvalidCandidate = errors.New("invalid candidate")
)
