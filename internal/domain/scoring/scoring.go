// Package scoring combines capability, industry, text similarity,
// experience and availability signals into one ranking score.
package scoring

import (
	"math"
	"strings"

	"github.com/okian/matchcore/internal/domain/model"
	"github.com/okian/matchcore/internal/domain/signals"
	"github.com/okian/matchcore/internal/domain/tfidf"
)

// Component points.
const (
	CapabilityStrong = 40 // two or more shared capability tags
	CapabilitySingle = 28
	CapabilityFloor  = 8 // no shared tags; unclear signals are not zeroed

	IndustryDeclared  = 12
	IndustryExtracted = 8

	TextSimilarityMax = 25
)

// Tiers holds the fixed lookup tables for experience and availability.
type Tiers map[string]float64

// lowest returns the smallest score in t, or 0 for an empty table.
func (t Tiers) lowest() float64 {
	lowest := math.Inf(1)
	for _, v := range t {
		if v < lowest {
			lowest = v
		}
	}
	if math.IsInf(lowest, 1) {
		return 0
	}
	return lowest
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithExperienceTiers sets experience scores. Unknown values score as the
// lowest tier.
func WithExperienceTiers(tiers map[string]float64) Option {
	return func(s *Scorer) {
		s.experience = copyTiers(tiers)
	}
}

// WithAvailabilityTiers sets availability scores. Unknown values score as
// the lowest tier.
func WithAvailabilityTiers(tiers map[string]float64) Option {
	return func(s *Scorer) {
		s.availability = copyTiers(tiers)
	}
}

func copyTiers(in map[string]float64) Tiers {
	out := make(Tiers, len(in))
	for k, v := range in {
		if v >= 0 {
			out[k] = v
		}
	}
	return out
}

// Input carries the project-side values shared by every candidate. IDF and
// ProjectVector must come from the same fully built table.
type Input struct {
	Project        model.ProjectInput
	ProjectSignals model.SignalSet
	ProjectVector  tfidf.Vector
	IDF            tfidf.IDF
}

// Scorer computes scores with fixed tiers and no learned parameters.
type Scorer struct {
	extractor    *signals.Extractor
	experience   Tiers
	availability Tiers
}

// NewScorer creates a scorer that tags candidate text with extractor.
func NewScorer(extractor *signals.Extractor, opts ...Option) *Scorer {
	s := &Scorer{
		extractor:    extractor,
		experience:   Tiers{},
		availability: Tiers{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score rates one candidate. tokens are the candidate's TF-IDF terms.
// Signals come from the summary alone; declared industries only count
// through the literal industry match.
func (s *Scorer) Score(in Input, c model.ProfessionalProfile, tokens []string) model.ScoredCandidate {
	cs := s.extractor.ExtractAll(c.ProfessionalSummary)

	overlap := signals.Overlap(in.ProjectSignals.Capabilities, cs.Capabilities)
	declared := declaresIndustry(c.IndustryExperience, in.Project.Industry)
	raw := tfidf.CosineSimilarity(in.ProjectVector, tfidf.Vectorize(tokens, in.IDF))

	b := model.Breakdown{
		Capability:        CapabilityScore(overlap),
		CapabilityOverlap: overlap,
		Industry:          industryScore(declared, signals.Overlap(in.ProjectSignals.Industries, cs.Industries)),
		IndustryDeclared:  declared,
		TextSimilarity:    math.Min(TextSimilarityMax, raw*TextSimilarityMax),
		RawSimilarity:     raw,
		Experience:        s.ExperienceScore(c.YearsExperience),
		Availability:      s.AvailabilityScore(c.Availability),
		ProjectSignals:    in.ProjectSignals,
		CandidateSignals:  cs,
	}

	return model.ScoredCandidate{
		Candidate: c,
		Score:     Round2(b.Capability + b.Industry + b.TextSimilarity + b.Experience + b.Availability),
		Breakdown: b,
	}
}

// CapabilityScore maps the number of shared capability tags to points.
func CapabilityScore(overlap int) float64 {
	switch {
	case overlap >= 2:
		return CapabilityStrong
	case overlap == 1:
		return CapabilitySingle
	default:
		return CapabilityFloor
	}
}

func industryScore(declared bool, extractedOverlap int) float64 {
	switch {
	case declared:
		return IndustryDeclared
	case extractedOverlap > 0:
		return IndustryExtracted
	default:
		return 0
	}
}

func declaresIndustry(experience []string, industry string) bool {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return false
	}
	for _, e := range experience {
		if strings.EqualFold(strings.TrimSpace(e), industry) {
			return true
		}
	}
	return false
}

// ExperienceScore looks up the experience tier.
func (s *Scorer) ExperienceScore(years string) float64 {
	if v, ok := s.experience[years]; ok {
		return v
	}
	return s.experience.lowest()
}

// AvailabilityScore looks up the availability tier.
func (s *Scorer) AvailabilityScore(availability string) float64 {
	if v, ok := s.availability[availability]; ok {
		return v
	}
	return s.availability.lowest()
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
