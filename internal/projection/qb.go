package projection

import "GridironOracle/internal/model"

// qbWeights favor the most recent of the last four games.
var qbWeights = []float64{0.4, 0.3, 0.2, 0.1}

type qbModel struct{}

func (qbModel) Position() model.Position { return model.PositionQB }

func (qbModel) Project(in model.ProjectionInputs) model.ProjectionOutput {
	base := weightedRecent(in.RecentStats, qbWeights, []model.StatType{
		model.StatPassingYards, model.StatPassingTDs, model.StatPassingInts,
		model.StatRushingYards, model.StatRushingTDs,
	})

	// Regression to mean; interceptions shrink upward to reflect variance.
	out := model.ProjectionOutput{
		PassingYards: base[model.StatPassingYards] * 0.9,
		PassingTDs:   base[model.StatPassingTDs] * 0.95,
		PassingInts:  base[model.StatPassingInts] * 1.05,
		RushingYards: base[model.StatRushingYards],
		RushingTDs:   base[model.StatRushingTDs],
		Confidence:   defaultConfidence,
	}

	usage := UsageFactor(in.DepthChartOrder, in.SnapShare)
	out.PassingYards *= usage
	out.PassingTDs *= usage
	out.PassingInts *= usage
	// Usage in the passing role translates poorly to QB rushing.
	out.RushingYards *= usage * 0.3
	out.RushingTDs *= usage * 0.2

	passMult := rankMultiplier(rankOrDefault(in.OpponentDefense, model.RankPassDefense), defenseRankStep)
	rushMult := rankMultiplier(rankOrDefault(in.OpponentDefense, model.RankRushDefense), defenseRankStep)
	out.PassingYards *= passMult
	out.PassingTDs *= passMult
	out.RushingYards *= rushMult
	out.RushingTDs *= rushMult

	return ApplyInjury(out, in.InjuryStatus)
}
