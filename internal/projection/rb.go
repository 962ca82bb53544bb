package projection

import "GridironOracle/internal/model"

// rbWeights use a shorter three-game window; back usage turns over faster
// than any other position's.
var rbWeights = []float64{0.5, 0.3, 0.2}

type rbModel struct{}

func (rbModel) Position() model.Position { return model.PositionRB }

func (rbModel) Project(in model.ProjectionInputs) model.ProjectionOutput {
	base := weightedRecent(in.RecentStats, rbWeights, []model.StatType{
		model.StatRushingYards, model.StatRushingTDs,
		model.StatReceivingYards, model.StatReceivingTDs, model.StatReceptions,
	})

	out := model.ProjectionOutput{
		RushingYards:   base[model.StatRushingYards] * 0.85,
		RushingTDs:     base[model.StatRushingTDs] * 0.9,
		ReceivingYards: base[model.StatReceivingYards] * 0.9,
		ReceivingTDs:   base[model.StatReceivingTDs] * 0.9,
		Receptions:     base[model.StatReceptions] * 0.9,
		Confidence:     defaultConfidence,
	}

	usage := UsageFactor(in.DepthChartOrder, in.SnapShare)
	out.RushingYards *= usage
	out.RushingTDs *= usage
	// Receiving work survives a timeshare better than carries do.
	out.ReceivingYards *= usage * 0.8
	out.ReceivingTDs *= usage * 0.8
	out.Receptions *= usage * 0.8

	rushMult := rankMultiplier(rankOrDefault(in.OpponentDefense, model.RankRushDefense), defenseRankStep)
	passMult := rankMultiplier(rankOrDefault(in.OpponentDefense, model.RankPassDefense), defenseRankStep)
	out.RushingYards *= rushMult
	out.RushingTDs *= rushMult
	out.ReceivingYards *= passMult
	out.ReceivingTDs *= passMult
	out.Receptions *= passMult

	return ApplyInjury(out, in.InjuryStatus)
}
