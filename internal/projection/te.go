package projection

import "GridironOracle/internal/model"

var teWeights = []float64{0.4, 0.3, 0.2, 0.1}

type teModel struct{}

func (teModel) Position() model.Position { return model.PositionTE }

func (teModel) Project(in model.ProjectionInputs) model.ProjectionOutput {
	base := weightedRecent(in.RecentStats, teWeights, []model.StatType{
		model.StatReceivingYards, model.StatReceivingTDs, model.StatReceptions,
	})

	out := model.ProjectionOutput{
		ReceivingYards: base[model.StatReceivingYards] * 0.9,
		ReceivingTDs:   base[model.StatReceivingTDs] * 0.95,
		Receptions:     base[model.StatReceptions] * 0.9,
		Confidence:     defaultConfidence,
	}

	usage := UsageFactor(in.DepthChartOrder, in.SnapShare)
	out.ReceivingYards *= usage
	out.ReceivingTDs *= usage
	out.Receptions *= usage

	passMult := rankMultiplier(rankOrDefault(in.OpponentDefense, model.RankPassDefense), defenseRankStep)
	out.ReceivingYards *= passMult
	out.ReceivingTDs *= passMult
	out.Receptions *= passMult

	return ApplyInjury(out, in.InjuryStatus)
}
