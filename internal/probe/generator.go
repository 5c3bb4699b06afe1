package probe

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/matchcore/internal/domain/model"
)

var (
	roles = []string{
		"frontend_developer", "backend_developer", "fullstack_developer", "mobile_developer",
		"data_scientist", "ml_engineer", "devops_engineer", "ui_ux_designer", "product_manager",
	}
	experience   = []string{"0_2", "3_5", "6_10", "10_plus"}
	availability = []string{"full_time", "part_time", "project_based", "limited"}
	industries   = []string{"fintech", "healthtech", "edtech", "ecommerce", "saas", "logistics"}
	brackets     = []string{"under_5000", "5000_10000", "10000_25000", "25000_50000", "50000_plus"}
	phrases      = []string{
		"machine learning models", "forecasting pipelines", "executive dashboards", "data analysis",
		"React web app", "REST API backend", "microservice migration", "mobile app for iOS and Android",
		"Kubernetes deployment", "Figma wireframe and prototype", "payments checkout", "scheduling for patients",
		"online store", "growth marketing campaigns", "product strategy and roadmap", "test automation",
	}
)

// Generator builds random projects and candidate pools.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *Generator) pick(from []string) string {
	return from[g.rng.IntN(len(from))]
}

func (g *Generator) sentence(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = g.pick(phrases)
	}
	return strings.Join(parts, " and ")
}

// Project returns a random project.
func (g *Generator) Project() model.ProjectInput {
	return model.ProjectInput{
		Description: "We need " + g.sentence(2+g.rng.IntN(2)),
		Industry:    g.pick(industries),
		BudgetRange: g.pick(brackets),
	}
}

// Pool returns n candidates with unique UUID ids.
func (g *Generator) Pool(n int) []model.ProfessionalProfile {
	out := make([]model.ProfessionalProfile, n)
	for i := range out {
		out[i] = model.ProfessionalProfile{
			ID:                  uuid.NewString(),
			PrimaryRole:         g.pick(roles),
			YearsExperience:     g.pick(experience),
			IndustryExperience:  []string{g.pick(industries)},
			HourlyRateRange:     g.rateRange(),
			Availability:        g.pick(availability),
			ProfessionalSummary: g.sentence(1 + g.rng.IntN(3)),
		}
	}
	return out
}

func (g *Generator) rateRange() string {
	lo := 20 + 10*g.rng.IntN(20)
	switch g.rng.IntN(4) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%d+", lo)
	default:
		return fmt.Sprintf("%d-%d", lo, lo+25)
	}
}
