package projection

import (
	"testing"

	"GridironOracle/internal/model"
)

// Ranks that make the matchup multiplier exactly 1.0, isolating the factor
// under test: 1.2 - (16.5-1)*0.4/31 = 1.0 and 1.2 - (13.4-1)*0.5/31 = 1.0.
var (
	neutralDefense = map[string]float64{
		model.RankPassDefense: 16.5,
		model.RankRushDefense: 16.5,
	}
	neutralOffense = map[string]float64{model.RankScoring: 13.4}
)

func starterInputs(recent []model.StatBundle) model.ProjectionInputs {
	return model.ProjectionInputs{
		RecentStats:     recent,
		DepthChartOrder: 1,
		SnapShare:       100,
		OpponentDefense: neutralDefense,
		TeamOffense:     neutralOffense,
	}
}

func TestModels_NoHistoryYieldsZeroLine(t *testing.T) {
	for _, mdl := range []Model{qbModel{}, rbModel{}, wrModel{}, teModel{}, kModel{}} {
		out := mdl.Project(starterInputs(nil))
		for stat, v := range out.Bundle() {
			if v != 0 {
				t.Errorf("%s: expected zero %s, got %v", mdl.Position(), stat, v)
			}
		}
		if out.Confidence != 0.5 {
			t.Errorf("%s: expected default confidence 0.5, got %v", mdl.Position(), out.Confidence)
		}
	}
}

func TestQB_SingleGameShrinkage(t *testing.T) {
	out := qbModel{}.Project(starterInputs([]model.StatBundle{
		{"passing_yards": 300, "passing_tds": 3, "passing_ints": 1, "rushing_yards": 20},
	}))

	if !almostEqual(out.PassingYards, 300*0.9) {
		t.Errorf("expected %v passing yards, got %v", 300*0.9, out.PassingYards)
	}
	if !almostEqual(out.PassingTDs, 3*0.95) {
		t.Errorf("expected %v passing TDs, got %v", 3*0.95, out.PassingTDs)
	}
	// Turnovers shrink upward, not downward.
	if !almostEqual(out.PassingInts, 1*1.05) {
		t.Errorf("expected %v ints, got %v", 1*1.05, out.PassingInts)
	}
	// QB rushing discounted to 0.3 of usage.
	if !almostEqual(out.RushingYards, 20*0.3) {
		t.Errorf("expected %v rushing yards, got %v", 20*0.3, out.RushingYards)
	}
}

func TestQB_RecencyWeighting(t *testing.T) {
	// Two games: weights renormalize to 4/7 newest, 3/7 oldest.
	out := qbModel{}.Project(starterInputs([]model.StatBundle{
		{"passing_yards": 100},
		{"passing_yards": 200},
	}))

	want := (100*(0.3/0.7) + 200*(0.4/0.7)) * 0.9
	if !almostEqual(out.PassingYards, want) {
		t.Errorf("expected %v passing yards, got %v", want, out.PassingYards)
	}

	// Reversing the order must change the result: recent games weigh more.
	rev := qbModel{}.Project(starterInputs([]model.StatBundle{
		{"passing_yards": 200},
		{"passing_yards": 100},
	}))
	if rev.PassingYards >= out.PassingYards {
		t.Errorf("expected older-heavy history to project lower: %v vs %v", rev.PassingYards, out.PassingYards)
	}
}

func TestRB_ThreeGameWindow(t *testing.T) {
	// Four games supplied; the oldest must be ignored entirely.
	out := rbModel{}.Project(starterInputs([]model.StatBundle{
		{"rushing_yards": 1000},
		{"rushing_yards": 10},
		{"rushing_yards": 10},
		{"rushing_yards": 10},
	}))

	if !almostEqual(out.RushingYards, 10*0.85) {
		t.Errorf("expected %v rushing yards, got %v", 10*0.85, out.RushingYards)
	}
}

func TestRB_ReceivingDiscount(t *testing.T) {
	out := rbModel{}.Project(starterInputs([]model.StatBundle{
		{"rushing_yards": 100, "receiving_yards": 50, "receptions": 5},
	}))

	if !almostEqual(out.RushingYards, 100*0.85) {
		t.Errorf("expected %v rushing yards, got %v", 100*0.85, out.RushingYards)
	}
	if !almostEqual(out.ReceivingYards, 50*0.9*0.8) {
		t.Errorf("expected %v receiving yards, got %v", 50*0.9*0.8, out.ReceivingYards)
	}
	if !almostEqual(out.Receptions, 5*0.9*0.8) {
		t.Errorf("expected %v receptions, got %v", 5*0.9*0.8, out.Receptions)
	}
}

func TestWR_UsageScaling(t *testing.T) {
	in := starterInputs([]model.StatBundle{
		{"receiving_yards": 80, "receptions": 6, "rushing_yards": 10},
	})
	in.DepthChartOrder = 2
	in.SnapShare = 50
	// usage = 0.6*0.5 + 0.4*0.5 = 0.5
	out := wrModel{}.Project(in)

	if !almostEqual(out.ReceivingYards, 80*0.9*0.5) {
		t.Errorf("expected %v receiving yards, got %v", 80*0.9*0.5, out.ReceivingYards)
	}
	if !almostEqual(out.RushingYards, 10*0.5*0.2) {
		t.Errorf("expected %v rushing yards, got %v", 10*0.5*0.2, out.RushingYards)
	}
}

func TestTE_PassDefenseMultiplier(t *testing.T) {
	history := []model.StatBundle{{"receiving_yards": 100}}

	in := starterInputs(history)
	in.OpponentDefense = map[string]float64{model.RankPassDefense: 1}
	best := teModel{}.Project(in)
	if !almostEqual(best.ReceivingYards, 100*0.9*1.2) {
		t.Errorf("rank 1 defense: expected %v, got %v", 100*0.9*1.2, best.ReceivingYards)
	}

	in.OpponentDefense = map[string]float64{model.RankPassDefense: 32}
	worst := teModel{}.Project(in)
	if !almostEqual(worst.ReceivingYards, 100*0.9*0.8) {
		t.Errorf("rank 32 defense: expected %v, got %v", 100*0.9*0.8, worst.ReceivingYards)
	}
}

func TestK_UniformAverageAndOffenseSpread(t *testing.T) {
	history := []model.StatBundle{
		{"field_goals": 2, "extra_points": 3},
		{"field_goals": 4, "extra_points": 1},
	}

	in := starterInputs(history)
	out := kModel{}.Project(in)
	if !almostEqual(out.FieldGoals, 3.0) {
		t.Errorf("expected plain average 3.0, got %v", out.FieldGoals)
	}
	if !almostEqual(out.ExtraPoints, 2.0) {
		t.Errorf("expected plain average 2.0, got %v", out.ExtraPoints)
	}

	// Kicker spread is wider: rank 32 offense maps to 0.7.
	in.TeamOffense = map[string]float64{model.RankScoring: 32}
	worst := kModel{}.Project(in)
	if !almostEqual(worst.FieldGoals, 3*0.7) {
		t.Errorf("rank 32 offense: expected %v, got %v", 3*0.7, worst.FieldGoals)
	}
}

func TestModels_InjuryAppliedLast(t *testing.T) {
	in := starterInputs([]model.StatBundle{{"receiving_yards": 100}})
	in.InjuryStatus = "Doubtful"

	out := teModel{}.Project(in)
	if !almostEqual(out.ReceivingYards, 100*0.9*0.1) {
		t.Errorf("expected %v receiving yards, got %v", 100*0.9*0.1, out.ReceivingYards)
	}
	if !almostEqual(out.Confidence, 0.05) {
		t.Errorf("expected confidence 0.05, got %v", out.Confidence)
	}
}
