package probe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/matchcore/internal/adapters/http/api"
	service "github.com/okian/matchcore/internal/app"
	"github.com/okian/matchcore/internal/config"
	"github.com/okian/matchcore/internal/domain/budget"
	"github.com/okian/matchcore/internal/domain/model"
	"github.com/okian/matchcore/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestGenerator(t *testing.T) {
	Convey("Given a seeded generator", t, func() {
		g := NewGenerator(7)

		Convey("When generating a pool", func() {
			pool := g.Pool(200)

			Convey("Then every id is unique and every field is populated", func() {
				seen := map[string]bool{}
				for _, c := range pool {
					So(seen[c.ID], ShouldBeFalse)
					seen[c.ID] = true
					So(c.PrimaryRole, ShouldNotBeEmpty)
					So(c.ProfessionalSummary, ShouldNotBeEmpty)
				}
				So(len(seen), ShouldEqual, 200)
			})
		})

		Convey("Then projects are deterministic for a seed", func() {
			a, b := NewGenerator(42).Project(), NewGenerator(42).Project()
			So(a, ShouldResemble, b)
			So(a.Description, ShouldStartWith, "We need ")
		})
	})
}

func member(rank int, id, rate string, score float64) Member {
	return Member{
		Rank:      rank,
		Candidate: model.ProfessionalProfile{ID: id, HourlyRateRange: rate},
		Score:     score,
		Breakdown: model.Breakdown{Capability: score},
	}
}

func TestVerify(t *testing.T) {
	Convey("Given a request for two members", t, func() {
		size := 2
		req := TeamRequest{
			Project: model.ProjectInput{BudgetRange: "under_5000"},
			Candidates: []model.ProfessionalProfile{
				{ID: "a", HourlyRateRange: "40-60"},
				{ID: "b", HourlyRateRange: "50+"},
				{ID: "pricey", HourlyRateRange: "120-150"},
			},
			TeamSize: &size,
		}
		filter := budget.NewFilter(budget.Caps{"under_5000": 75})

		Convey("When the reply is well formed", func() {
			resp := TeamResponse{
				Team:             []Member{member(1, "a", "40-60", 40), member(2, "b", "50+", 28)},
				ExcludedByBudget: []string{"pricey"},
			}
			So(Verify(req, resp, filter), ShouldBeEmpty)
		})

		Convey("When the reply breaks the invariants", func() {
			bad := member(3, "a", "40-60", 40)
			bad.Score = 99
			resp := TeamResponse{
				Team: []Member{
					member(1, "a", "40-60", 40),
					member(2, "pricey", "120-150", 10),
					bad,
					member(4, "ghost", "", 8),
				},
				ExcludedByBudget: []string{"pricey"},
			}
			got := Verify(req, resp, filter)

			Convey("Then every problem is reported", func() {
				So(got, ShouldContain, "team has 4 members, requested 2")
				So(got, ShouldContain, "duplicate member a")
				So(got, ShouldContain, "member pricey was reported over budget")
				So(got, ShouldContain, `member pricey asks "120-150" above under_5000`)
				So(got, ShouldContain, "member a score 99.00 differs from breakdown sum 40.00")
				So(got, ShouldContain, "member ghost is not in the pool")
			})
		})
	})
}

func newTestServer() *httptest.Server {
	svc := service.New(
		service.WithTables(config.New().MatchingTables()),
		service.WithWorkerCount(2),
		service.WithParallelThreshold(8),
	)
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func TestRun(t *testing.T) {
	Convey("Given a running matchcore server", t, func() {
		srv := newTestServer()
		defer srv.Close()

		cfg := Config{
			BaseURL:    srv.URL,
			Pool:       30,
			Rounds:     12,
			TeamSize:   4,
			Workers:    3,
			Timeout:    5 * time.Second,
			Seed:       99,
			BudgetCaps: config.New().BudgetCaps,
		}

		Convey("When the probe runs", func() {
			stats, err := Run(context.Background(), cfg)

			Convey("Then every round is answered without violations", func() {
				So(err, ShouldBeNil)
				So(stats.Violations, ShouldBeEmpty)
				So(stats.Failed, ShouldEqual, 0)
				So(stats.Teams+stats.NoEligible, ShouldEqual, cfg.Rounds)
			})
		})

		Convey("When the server is unreachable", func() {
			cfg.BaseURL = "http://127.0.0.1:1"
			_, err := Run(context.Background(), cfg)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrViolations), ShouldBeFalse)
		})
	})
}
