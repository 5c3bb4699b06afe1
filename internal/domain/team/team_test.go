package team_test

import (
	"testing"

	"github.com/okian/matchcore/internal/domain/model"
	"github.com/okian/matchcore/internal/domain/team"
	. "github.com/smartystreets/goconvey/convey"
)

func scored(id, role string, score float64) model.ScoredCandidate {
	return model.ScoredCandidate{
		Candidate: model.ProfessionalProfile{ID: id, PrimaryRole: role},
		Score:     score,
	}
}

func TestAssemble_RoleDiversityThenFill(t *testing.T) {
	Convey("Given six candidates, three of them frontend developers", t, func() {
		pool := []model.ScoredCandidate{
			scored("fe-1", "frontend_developer", 90),
			scored("fe-2", "frontend_developer", 88),
			scored("fe-3", "frontend_developer", 86),
			scored("be-1", "backend_developer", 70),
			scored("ds-1", "data_scientist", 60),
			scored("pm-1", "product_manager", 50),
		}

		Convey("When assembling a team of four", func() {
			got := team.Assemble(pool, 4)

			Convey("Then the first pass admits one frontend developer per role", func() {
				So(got.IDs(), ShouldResemble, []string{"fe-1", "be-1", "ds-1", "pm-1"})
			})
		})

		Convey("When assembling a team of six", func() {
			got := team.Assemble(pool, 6)

			Convey("Then the remaining slots are filled by descending score", func() {
				So(got.IDs(), ShouldResemble, []string{"fe-1", "be-1", "ds-1", "pm-1", "fe-2", "fe-3"})
			})
		})

		Convey("When only two distinct roles exist", func() {
			narrow := []model.ScoredCandidate{
				scored("fe-1", "frontend_developer", 90),
				scored("fe-2", "frontend_developer", 88),
				scored("fe-3", "frontend_developer", 86),
				scored("be-1", "backend_developer", 70),
				scored("fe-4", "frontend_developer", 65),
				scored("be-2", "backend_developer", 40),
			}
			got := team.Assemble(narrow, 4)

			Convey("Then extra frontend developers fill the gap in score order", func() {
				So(got.IDs(), ShouldResemble, []string{"fe-1", "be-1", "fe-2", "fe-3"})
			})
		})

		Convey("Then the input order is untouched", func() {
			_ = team.Assemble(pool, 4)
			So(pool[0].Candidate.ID, ShouldEqual, "fe-1")
			So(pool[3].Candidate.ID, ShouldEqual, "be-1")
		})
	})
}

func TestAssemble_Bounds(t *testing.T) {
	Convey("Given a small pool", t, func() {
		pool := []model.ScoredCandidate{
			scored("a", "x", 10),
			scored("b", "y", 20),
		}

		Convey("When the team size exceeds the pool", func() {
			got := team.Assemble(pool, 5)
			So(got.IDs(), ShouldResemble, []string{"b", "a"})
		})

		Convey("When the team size is zero or negative", func() {
			So(team.Assemble(pool, 0), ShouldBeEmpty)
			So(team.Assemble(pool, -3), ShouldBeEmpty)
		})

		Convey("When the pool is empty", func() {
			So(team.Assemble(nil, 3), ShouldBeEmpty)
		})
	})
}

func TestAssemble_Invariants(t *testing.T) {
	Convey("Given a pool with repeated ids and roles", t, func() {
		pool := []model.ScoredCandidate{
			scored("a", "r1", 50),
			scored("a", "r2", 50),
			scored("b", "r1", 40),
			scored("c", "r3", 30),
			scored("c", "r3", 30),
		}

		for size := 0; size <= 6; size++ {
			got := team.Assemble(pool, size)
			So(len(got), ShouldBeLessThanOrEqualTo, size)
			seen := map[string]bool{}
			for _, id := range got.IDs() {
				So(seen[id], ShouldBeFalse)
				seen[id] = true
			}
		}
	})
}

func TestSort(t *testing.T) {
	Convey("Given candidates with tied scores", t, func() {
		pool := []model.ScoredCandidate{
			scored("zed", "r", 70),
			scored("amy", "r", 70),
			scored("bob", "r", 90),
		}

		Convey("Then ties are broken by id ascending", func() {
			So(model.Team(team.Sort(pool)).IDs(), ShouldResemble, []string{"bob", "amy", "zed"})
		})

		Convey("Then the tie-break decides the diversity pick", func() {
			So(team.Assemble(pool, 1).IDs(), ShouldResemble, []string{"bob"})
			So(team.Assemble(pool, 2).IDs(), ShouldResemble, []string{"bob", "amy"})
		})
	})
}
