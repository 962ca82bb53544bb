package scheduler

import (
	"context"
	"math"
	"testing"

	"GridironOracle/internal/cache"
	"GridironOracle/internal/model"
	"GridironOracle/internal/projection"
	"GridironOracle/internal/store"
)

const testSeason = 2025

func newTestScheduler(st *store.Memory) *Scheduler {
	eng := projection.NewEngine(st, 2)
	return NewScheduler(context.Background(), st, eng, cache.NewNoop(), testSeason, "internal")
}

func TestProjectionTask_SavesNextWeek(t *testing.T) {
	st := store.NewMemory()
	st.AddPlayer(model.Player{GSISID: "00-0001", Position: model.PositionQB, Team: "KC"})
	st.AddWeeklyStats("00-0001", testSeason, 1, model.StatBundle{"passing_yards": 250}, 100)
	st.AddWeeklyStats("00-0001", testSeason, 2, model.StatBundle{"passing_yards": 310}, 100)

	sched := newTestScheduler(st)
	sched.RunProjectionsNow()

	// Latest recorded week is 2, so the refresh targets week 3.
	proj, ok := st.Projection("00-0001", testSeason, 3, "internal")
	if !ok {
		t.Fatal("expected a saved projection for week 3")
	}
	if proj.PassingYards <= 0 {
		t.Errorf("expected a positive passing line, got %v", proj.PassingYards)
	}

	if _, ok := st.Projection("00-0001", testSeason, 2, "internal"); ok {
		t.Error("refresh must not project an already-played week")
	}
}

func TestProjectionTask_NoRecordedStats(t *testing.T) {
	st := store.NewMemory()
	st.AddPlayer(model.Player{GSISID: "00-0002", Position: model.PositionRB, Team: "SF"})

	sched := newTestScheduler(st)
	sched.RunProjectionsNow()

	if _, ok := st.Projection("00-0002", testSeason, 1, "internal"); ok {
		t.Error("expected no projections when the season has no stats yet")
	}
}

func TestScoringTask_ScoresLatestWeek(t *testing.T) {
	st := store.NewMemory()
	st.AddLeague(model.League{
		LeagueKey:   "league-1",
		Name:        "Test League",
		ScoringJSON: `{"Passing Yards": {"value": 0.04}, "Passing Touchdowns": {"value": 4}}`,
	})
	st.AddPlayer(model.Player{GSISID: "00-0001", Position: model.PositionQB, Team: "KC"})
	st.AddPlayer(model.Player{GSISID: "00-0002", Position: model.PositionWR, Team: "DAL"})
	st.AddWeeklyStats("00-0001", testSeason, 1, model.StatBundle{"passing_yards": 300, "passing_tds": 2}, 100)
	// Second player has no week-1 stat line; scoring skips them.

	sched := newTestScheduler(st)
	sched.scoringTask()

	row, ok := st.Score("league-1", "00-0001", testSeason, 1)
	if !ok {
		t.Fatal("expected a saved score")
	}
	if math.Abs(row.Total-20.0) > 1e-9 {
		t.Errorf("expected total 20.0, got %v", row.Total)
	}
	if math.Abs(row.Breakdown[model.StatPassingYards]-12.0) > 1e-9 {
		t.Errorf("expected passing_yards 12.0, got %v", row.Breakdown[model.StatPassingYards])
	}

	if _, ok := st.Score("league-1", "00-0002", testSeason, 1); ok {
		t.Error("player without a stat line must not be scored")
	}
}

func TestScoringTask_BadLeagueRulesSkipped(t *testing.T) {
	st := store.NewMemory()
	st.AddLeague(model.League{LeagueKey: "broken", ScoringJSON: `not json`})
	st.AddLeague(model.League{
		LeagueKey:   "ok",
		ScoringJSON: `{"Rushing Yards": {"value": 0.1}}`,
	})
	st.AddPlayer(model.Player{GSISID: "00-0003", Position: model.PositionRB, Team: "SF"})
	st.AddWeeklyStats("00-0003", testSeason, 1, model.StatBundle{"rushing_yards": 90}, 80)

	sched := newTestScheduler(st)
	sched.scoringTask()

	if _, ok := st.Score("broken", "00-0003", testSeason, 1); ok {
		t.Error("league with unparsable rules must not produce scores")
	}
	row, ok := st.Score("ok", "00-0003", testSeason, 1)
	if !ok {
		t.Fatal("healthy league should still score")
	}
	if math.Abs(row.Total-9.0) > 1e-9 {
		t.Errorf("expected total 9.0, got %v", row.Total)
	}
}

func TestRegisterAll_RejectsBadSpec(t *testing.T) {
	sched := newTestScheduler(store.NewMemory())
	if err := sched.RegisterAll("not a cron spec", "0 0 5 * * 2"); err == nil {
		t.Error("expected error for invalid cron spec")
	}
	if err := sched.RegisterAll("0 0 6 * * 3", "0 0 5 * * 2"); err != nil {
		t.Errorf("valid specs should register: %v", err)
	}
}
