package scoring_test

import (
	"testing"

	"github.com/okian/matchcore/internal/domain/model"
	"github.com/okian/matchcore/internal/domain/scoring"
	"github.com/okian/matchcore/internal/domain/signals"
	"github.com/okian/matchcore/internal/domain/tfidf"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestScorer() (*scoring.Scorer, *signals.Extractor) {
	x := signals.NewExtractor(
		signals.NewLexicon(map[string][]string{
			"machine_learning": {"machine learning", "forecasting"},
			"data_analytics":   {"data analysis", "dashboards"},
			"web_development":  {"react"},
		}),
		signals.NewLexicon(map[string][]string{
			"data_scientist": {"data scientist"},
		}),
		signals.NewLexicon(map[string][]string{
			"fintech":    {"fintech", "payments"},
			"healthtech": {"healthcare"},
		}),
	)
	s := scoring.NewScorer(x,
		scoring.WithExperienceTiers(map[string]float64{"0_2": 3, "3_5": 7, "6_10": 11, "10_plus": 15}),
		scoring.WithAvailabilityTiers(map[string]float64{"full_time": 8, "part_time": 5, "limited": 2}),
	)
	return s, x
}

func inputFor(x *signals.Extractor, project model.ProjectInput, corpus ...[]string) scoring.Input {
	ptoks := tfidf.Tokenize(project.Description)
	idf := tfidf.BuildIDF(append(corpus, ptoks))
	return scoring.Input{
		Project:        project,
		ProjectSignals: x.ExtractAll(project.Description),
		ProjectVector:  tfidf.Vectorize(ptoks, idf),
		IDF:            idf,
	}
}

func TestScorer_CapabilityOverlap(t *testing.T) {
	Convey("Given a project about machine learning and data analysis", t, func() {
		s, x := newTestScorer()
		project := model.ProjectInput{
			Description: "Machine learning and data analysis for churn",
			BudgetRange: "under_5000",
		}
		candidate := model.ProfessionalProfile{
			ID:                  "p1",
			PrimaryRole:         "data_scientist",
			YearsExperience:     "6_10",
			Availability:        "full_time",
			HourlyRateRange:     "50-75",
			ProfessionalSummary: "Forecasting models and executive dashboards",
		}
		ctoks := tfidf.Tokenize(candidate.ProfessionalSummary)
		in := inputFor(x, project, ctoks)

		Convey("When scoring a candidate using aliases of the same tags", func() {
			got := s.Score(in, candidate, ctoks)

			Convey("Then both sides carry both capability tags", func() {
				So(got.Breakdown.ProjectSignals.Capabilities, ShouldResemble, []string{"data_analytics", "machine_learning"})
				So(got.Breakdown.CandidateSignals.Capabilities, ShouldResemble, []string{"data_analytics", "machine_learning"})
			})

			Convey("Then the overlap is two and the capability score is 40", func() {
				So(got.Breakdown.CapabilityOverlap, ShouldEqual, 2)
				So(got.Breakdown.Capability, ShouldEqual, 40)
			})

			Convey("Then the total is the rounded sum of the components", func() {
				b := got.Breakdown
				So(got.Score, ShouldEqual, scoring.Round2(b.Capability+b.Industry+b.TextSimilarity+b.Experience+b.Availability))
				So(b.Experience, ShouldEqual, 11)
				So(b.Availability, ShouldEqual, 8)
				So(b.Industry, ShouldEqual, 0)
			})

			Convey("Then the original profile is kept", func() {
				So(got.Candidate, ShouldResemble, candidate)
			})
		})
	})
}

func TestCapabilityScore(t *testing.T) {
	Convey("Given overlap counts", t, func() {
		So(scoring.CapabilityScore(0), ShouldEqual, 8)
		So(scoring.CapabilityScore(1), ShouldEqual, 28)
		So(scoring.CapabilityScore(2), ShouldEqual, 40)
		So(scoring.CapabilityScore(7), ShouldEqual, 40)

		Convey("Then more overlap never scores lower", func() {
			for i := 0; i < 5; i++ {
				So(scoring.CapabilityScore(i+1), ShouldBeGreaterThanOrEqualTo, scoring.CapabilityScore(i))
			}
		})
	})
}

func TestScorer_Industry(t *testing.T) {
	Convey("Given a fintech project", t, func() {
		s, x := newTestScorer()
		project := model.ProjectInput{Description: "Build a payments ledger", Industry: "fintech"}
		in := inputFor(x, project)

		Convey("When the candidate declares the same industry", func() {
			c := model.ProfessionalProfile{ID: "a", IndustryExperience: []string{"healthtech", "fintech"}}
			got := s.Score(in, c, nil)
			So(got.Breakdown.Industry, ShouldEqual, 12)
			So(got.Breakdown.IndustryDeclared, ShouldBeTrue)
		})

		Convey("When only the extracted industries intersect", func() {
			c := model.ProfessionalProfile{ID: "b", ProfessionalSummary: "Worked on payments at a bank"}
			got := s.Score(in, c, nil)
			So(got.Breakdown.Industry, ShouldEqual, 8)
			So(got.Breakdown.IndustryDeclared, ShouldBeFalse)
		})

		Convey("When nothing matches", func() {
			c := model.ProfessionalProfile{ID: "c", ProfessionalSummary: "Healthcare scheduling apps"}
			got := s.Score(in, c, nil)
			So(got.Breakdown.Industry, ShouldEqual, 0)
		})

		Convey("When the project declares no industry", func() {
			noIndustry := inputFor(x, model.ProjectInput{Description: "Generic app"})
			c := model.ProfessionalProfile{ID: "d", IndustryExperience: []string{""}}
			So(s.Score(noIndustry, c, nil).Breakdown.Industry, ShouldEqual, 0)
		})
	})
}

func TestScorer_Degenerate(t *testing.T) {
	Convey("Given an empty project description", t, func() {
		s, x := newTestScorer()
		in := inputFor(x, model.ProjectInput{})

		Convey("When scoring a candidate with unknown tiers", func() {
			c := model.ProfessionalProfile{
				ID:                  "z",
				YearsExperience:     "forever",
				Availability:        "whenever",
				ProfessionalSummary: "React dashboards",
			}
			got := s.Score(in, c, tfidf.Tokenize(c.ProfessionalSummary))

			Convey("Then it falls back to floors and lowest tiers", func() {
				So(got.Breakdown.Capability, ShouldEqual, 8)
				So(got.Breakdown.TextSimilarity, ShouldEqual, 0)
				So(got.Breakdown.RawSimilarity, ShouldEqual, 0)
				So(got.Breakdown.Experience, ShouldEqual, 3)
				So(got.Breakdown.Availability, ShouldEqual, 2)
				So(got.Score, ShouldEqual, 13)
			})
		})
	})

	Convey("Given a scorer without tier tables", t, func() {
		x := signals.NewExtractor(signals.Lexicon{}, signals.Lexicon{}, signals.Lexicon{})
		s := scoring.NewScorer(x)
		So(s.ExperienceScore("10_plus"), ShouldEqual, 0)
		So(s.AvailabilityScore("full_time"), ShouldEqual, 0)
	})
}

func TestScorer_TextSimilarity(t *testing.T) {
	Convey("Given a candidate whose summary equals the project description", t, func() {
		s, x := newTestScorer()
		desc := "Realtime churn forecasting service"
		project := model.ProjectInput{Description: desc}
		toks := tfidf.Tokenize(desc)
		in := inputFor(x, project, toks)

		got := s.Score(in, model.ProfessionalProfile{ID: "twin", ProfessionalSummary: desc}, toks)

		Convey("Then the similarity component is capped at 25", func() {
			So(got.Breakdown.RawSimilarity, ShouldEqual, 1.0)
			So(got.Breakdown.TextSimilarity, ShouldEqual, 25)
		})
	})
}

func TestRound2(t *testing.T) {
	Convey("Given values with many decimals", t, func() {
		So(scoring.Round2(12.345678), ShouldEqual, 12.35)
		So(scoring.Round2(12.344), ShouldEqual, 12.34)
		So(scoring.Round2(0), ShouldEqual, 0)
	})
}

func TestScorer_SignalsFromSummaryOnly(t *testing.T) {
	Convey("Given a fintech project whose description names no industry", t, func() {
		s, x := newTestScorer()
		in := inputFor(x, model.ProjectInput{Description: "Build a ledger", Industry: "fintech"})

		Convey("When the candidate only declares industries", func() {
			c := model.ProfessionalProfile{
				ID:                  "a",
				ProfessionalSummary: "I build things",
				IndustryExperience:  []string{"payments", "healthcare"},
			}
			got := s.Score(in, c, nil)

			Convey("Then the declared list is not tagged", func() {
				So(got.Breakdown.CandidateSignals.Industries, ShouldBeEmpty)
				So(got.Breakdown.ProjectSignals.Industries, ShouldBeEmpty)
				So(got.Breakdown.Industry, ShouldEqual, 0)
			})
		})

		Convey("When the declared list names the project industry literally", func() {
			c := model.ProfessionalProfile{ID: "b", ProfessionalSummary: "I build things", IndustryExperience: []string{"Fintech"}}
			got := s.Score(in, c, nil)
			So(got.Breakdown.Industry, ShouldEqual, 12)
			So(got.Breakdown.IndustryDeclared, ShouldBeTrue)
		})
	})
}
