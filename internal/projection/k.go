package projection

import "GridironOracle/internal/model"

// kWeights are uniform: kicking volume is team-driven week to week, so a
// plain four-game average beats chasing recency.
var kWeights = []float64{0.25, 0.25, 0.25, 0.25}

type kModel struct{}

func (kModel) Position() model.Position { return model.PositionK }

func (kModel) Project(in model.ProjectionInputs) model.ProjectionOutput {
	base := weightedRecent(in.RecentStats, kWeights, []model.StatType{
		model.StatFieldGoals, model.StatFieldGoalAttempts,
		model.StatExtraPoints, model.StatExtraPointAttempts,
	})

	out := model.ProjectionOutput{
		FieldGoals:         base[model.StatFieldGoals],
		FieldGoalAttempts:  base[model.StatFieldGoalAttempts],
		ExtraPoints:        base[model.StatExtraPoints],
		ExtraPointAttempts: base[model.StatExtraPointAttempts],
		Confidence:         defaultConfidence,
	}

	usage := UsageFactor(in.DepthChartOrder, in.SnapShare)
	out.FieldGoals *= usage
	out.FieldGoalAttempts *= usage
	out.ExtraPoints *= usage
	out.ExtraPointAttempts *= usage

	// More scoring drives, more kicks.
	scoringMult := rankMultiplier(rankOrDefault(in.TeamOffense, model.RankScoring), scoringRankStep)
	out.FieldGoals *= scoringMult
	out.FieldGoalAttempts *= scoringMult
	out.ExtraPoints *= scoringMult
	out.ExtraPointAttempts *= scoringMult

	return ApplyInjury(out, in.InjuryStatus)
}
