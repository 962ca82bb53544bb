package projection

import "GridironOracle/internal/model"

var wrWeights = []float64{0.4, 0.3, 0.2, 0.1}

type wrModel struct{}

func (wrModel) Position() model.Position { return model.PositionWR }

func (wrModel) Project(in model.ProjectionInputs) model.ProjectionOutput {
	base := weightedRecent(in.RecentStats, wrWeights, []model.StatType{
		model.StatReceivingYards, model.StatReceivingTDs, model.StatReceptions,
		model.StatRushingYards, model.StatRushingTDs,
	})

	out := model.ProjectionOutput{
		ReceivingYards: base[model.StatReceivingYards] * 0.9,
		ReceivingTDs:   base[model.StatReceivingTDs] * 0.95,
		Receptions:     base[model.StatReceptions] * 0.9,
		RushingYards:   base[model.StatRushingYards],
		RushingTDs:     base[model.StatRushingTDs],
		Confidence:     defaultConfidence,
	}

	usage := UsageFactor(in.DepthChartOrder, in.SnapShare)
	out.ReceivingYards *= usage
	out.ReceivingTDs *= usage
	out.Receptions *= usage
	// End-arounds are opportunistic, not a usage-driven role.
	out.RushingYards *= usage * 0.2
	out.RushingTDs *= usage * 0.1

	passMult := rankMultiplier(rankOrDefault(in.OpponentDefense, model.RankPassDefense), defenseRankStep)
	out.ReceivingYards *= passMult
	out.ReceivingTDs *= passMult
	out.Receptions *= passMult

	return ApplyInjury(out, in.InjuryStatus)
}
