package model

// Position identifies a player's position group.
type Position string

const (
	PositionQB Position = "QB"
	PositionRB Position = "RB"
	PositionWR Position = "WR"
	PositionTE Position = "TE"
	PositionK  Position = "K"
)

// Rank metric keys for opponent/team strength maps. Rank 1 = best.
const (
	RankPassDefense = "pass_defense_rank"
	RankRushDefense = "rush_defense_rank"
	RankScoring     = "scoring_rank"
)

// ProjectionInputs carries everything a position model needs for one
// projection. Constructed fresh per request; never persisted.
type ProjectionInputs struct {
	RecentStats     []StatBundle // chronological, most recent last
	DepthChartOrder int          // 1 = starter
	SnapShare       float64      // 0..100
	InjuryStatus    string       // empty means no report
	OpponentDefense map[string]float64
	TeamOffense     map[string]float64
}

// ProjectionOutput is a projected stat line plus a confidence in [0,1].
// Outputs are values; adjustments return a new instance.
type ProjectionOutput struct {
	PassingYards       float64 `json:"passing_yards"`
	PassingTDs         float64 `json:"passing_tds"`
	PassingInts        float64 `json:"passing_ints"`
	RushingYards       float64 `json:"rushing_yards"`
	RushingTDs         float64 `json:"rushing_tds"`
	ReceivingYards     float64 `json:"receiving_yards"`
	ReceivingTDs       float64 `json:"receiving_tds"`
	Receptions         float64 `json:"receptions"`
	FumblesLost        float64 `json:"fumbles_lost"`
	FieldGoals         float64 `json:"field_goals"`
	FieldGoalAttempts  float64 `json:"field_goal_attempts"`
	ExtraPoints        float64 `json:"extra_points"`
	ExtraPointAttempts float64 `json:"extra_point_attempts"`
	Confidence         float64 `json:"confidence"`
}

// Scale returns a copy with every counting-stat field multiplied by f.
// Confidence is left untouched; each field is enumerated explicitly so the
// compiler keeps this transform in sync with the schema.
func (p ProjectionOutput) Scale(f float64) ProjectionOutput {
	return ProjectionOutput{
		PassingYards:       p.PassingYards * f,
		PassingTDs:         p.PassingTDs * f,
		PassingInts:        p.PassingInts * f,
		RushingYards:       p.RushingYards * f,
		RushingTDs:         p.RushingTDs * f,
		ReceivingYards:     p.ReceivingYards * f,
		ReceivingTDs:       p.ReceivingTDs * f,
		Receptions:         p.Receptions * f,
		FumblesLost:        p.FumblesLost * f,
		FieldGoals:         p.FieldGoals * f,
		FieldGoalAttempts:  p.FieldGoalAttempts * f,
		ExtraPoints:        p.ExtraPoints * f,
		ExtraPointAttempts: p.ExtraPointAttempts * f,
		Confidence:         p.Confidence,
	}
}

// Bundle returns the projection's stat fields as a StatBundle keyed by
// canonical names. Confidence is not a stat and is excluded.
func (p ProjectionOutput) Bundle() StatBundle {
	return StatBundle{
		string(StatPassingYards):       p.PassingYards,
		string(StatPassingTDs):         p.PassingTDs,
		string(StatPassingInts):        p.PassingInts,
		string(StatRushingYards):       p.RushingYards,
		string(StatRushingTDs):         p.RushingTDs,
		string(StatReceivingYards):     p.ReceivingYards,
		string(StatReceivingTDs):       p.ReceivingTDs,
		string(StatReceptions):         p.Receptions,
		string(StatFumblesLost):        p.FumblesLost,
		string(StatFieldGoals):         p.FieldGoals,
		string(StatFieldGoalAttempts):  p.FieldGoalAttempts,
		string(StatExtraPoints):        p.ExtraPoints,
		string(StatExtraPointAttempts): p.ExtraPointAttempts,
	}
}
