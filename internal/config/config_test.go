package config_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/okian/matchcore/internal/config"
	"github.com/okian/matchcore/internal/domain/matching"
	"github.com/okian/matchcore/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU())
			convey.So(cfg.DefaultTeamSize, convey.ShouldEqual, 4)
			convey.So(cfg.MaxTeamSize, convey.ShouldEqual, 20)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then the budget table caps the lowest bracket at 75", func() {
			convey.So(cfg.BudgetCaps["under_5000"], convey.ShouldEqual, 75)
			convey.So(cfg.BudgetCaps["50000_plus"], convey.ShouldEqual, 9999)
		})

		convey.Convey("Then experience tiers rise with tenure", func() {
			e := cfg.ExperienceScores
			convey.So(e["0_2"], convey.ShouldBeLessThan, e["3_5"])
			convey.So(e["3_5"], convey.ShouldBeLessThan, e["6_10"])
			convey.So(e["6_10"], convey.ShouldBeLessThan, e["10_plus"])
		})

		convey.Convey("Then every default alias is at least three characters", func() {
			for _, lex := range []map[string][]string{cfg.Lexicons.Capabilities, cfg.Lexicons.Roles, cfg.Lexicons.Industries} {
				convey.So(lex, convey.ShouldNotBeEmpty)
				for _, aliases := range lex {
					for _, a := range aliases {
						convey.So(len(a), convey.ShouldBeGreaterThanOrEqualTo, 3)
					}
				}
			}
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with one bad setting", t, func() {
		cases := map[string]func(*config.Config){
			"empty addr":        func(c *config.Config) { c.Addr = "" },
			"zero max team":     func(c *config.Config) { c.MaxTeamSize = 0 },
			"default above max": func(c *config.Config) { c.DefaultTeamSize = c.MaxTeamSize + 1 },
			"no candidates":     func(c *config.Config) { c.MaxCandidates = 0 },
			"no capabilities":   func(c *config.Config) { c.Lexicons.Capabilities = nil },
			"no roles":          func(c *config.Config) { c.Lexicons.Roles = map[string][]string{} },
			"no industries":     func(c *config.Config) { c.Lexicons.Industries = nil },
			"no caps":           func(c *config.Config) { c.BudgetCaps = nil },
			"negative cap":      func(c *config.Config) { c.BudgetCaps["under_5000"] = -1 },
			"negative tier":     func(c *config.Config) { c.AvailabilityScores["limited"] = -2 },
		}

		for name, mutate := range cases {
			cfg := config.New()
			mutate(cfg)
			err := cfg.Validate()
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(name, convey.ShouldNotBeEmpty)
		}
	})
}

func TestConfig_MatchingTables(t *testing.T) {
	convey.Convey("Given the default tables", t, func() {
		e := matching.NewEngine(config.New().MatchingTables())

		convey.Convey("Then the default lexicons tag founder language", func() {
			s := e.Signals("We need machine learning forecasting and a dashboard for our fintech payments app")
			convey.So(s.Capabilities, convey.ShouldContain, "machine_learning")
			convey.So(s.Capabilities, convey.ShouldContain, "data_analytics")
			convey.So(s.Industries, convey.ShouldContain, "fintech")
		})

		convey.Convey("Then everyday words do not trigger domain tags", func() {
			s := e.Signals("A growth stage team building cryptography tools, of course")
			convey.So(s.Capabilities, convey.ShouldNotContain, "growth_marketing")
			convey.So(s.Capabilities, convey.ShouldNotContain, "blockchain")
			convey.So(s.Industries, convey.ShouldNotContain, "edtech")
			convey.So(s.Industries, convey.ShouldNotContain, "web3")

			social := e.Signals("Sign in with social media accounts")
			convey.So(social.Industries, convey.ShouldNotContain, "media")
		})

		convey.Convey("Then the phrases that replaced them still tag", func() {
			s := e.Signals("Growth marketing for an online course platform run by a cryptocurrency media company")
			convey.So(s.Capabilities, convey.ShouldContain, "growth_marketing")
			convey.So(s.Capabilities, convey.ShouldContain, "blockchain")
			convey.So(s.Industries, convey.ShouldContain, "edtech")
			convey.So(s.Industries, convey.ShouldContain, "media")
			convey.So(s.Industries, convey.ShouldContain, "web3")
		})

		convey.Convey("Then the defaults drive a full generation", func() {
			pool := []model.ProfessionalProfile{
				{ID: "a", PrimaryRole: "data_scientist", YearsExperience: "10_plus", Availability: "full_time", HourlyRateRange: "50-70", ProfessionalSummary: "Machine learning forecasting"},
				{ID: "b", PrimaryRole: "data_scientist", YearsExperience: "0_2", Availability: "limited", HourlyRateRange: "150+", ProfessionalSummary: "Machine learning"},
			}
			res, err := e.GenerateTeam(t.Context(), model.ProjectInput{Description: "Machine learning forecasting", BudgetRange: "under_5000"}, pool, 2)
			convey.So(err, convey.ShouldBeNil)
			convey.So(res.Team.IDs(), convey.ShouldResemble, []string{"a"})
			convey.So(res.ExcludedByBudget, convey.ShouldResemble, []string{"b"})
		})
	})
}
