package projection

import "GridironOracle/internal/model"

// defaultConfidence applies before any stronger signal, including the
// all-zero projection for a player with no tracked history.
const defaultConfidence = 0.5

// defaultRank is the league-average rank assumed when a metric is missing.
const defaultRank = 16.0

// Matchup multipliers are linear in rank with 1.2 at rank 1. Rank 32 maps
// to 0.8 for pass/rush defense and to 0.7 for the kicker's scoring-offense
// dependency, which gets a wider spread since kicking volume tracks the
// offense more tightly than skill production tracks a defense.
const (
	defenseRankStep = 0.4 / 31
	scoringRankStep = 0.5 / 31
)

// Model projects one position group's stat line.
type Model interface {
	Position() model.Position
	Project(in model.ProjectionInputs) model.ProjectionOutput
}

// weightedRecent computes a recency-weighted average of the trailing
// window for each requested stat. Weights run most-recent-first and are
// renormalized over however many games actually exist; zero games yields
// zero values for every stat.
func weightedRecent(recent []model.StatBundle, weights []float64, stats []model.StatType) map[model.StatType]float64 {
	out := make(map[model.StatType]float64, len(stats))
	if len(recent) == 0 {
		return out
	}

	n := len(weights)
	if len(recent) < n {
		n = len(recent)
	}
	games := recent[len(recent)-n:]

	total := 0.0
	for _, w := range weights[:n] {
		total += w
	}

	for i, game := range games {
		// games run oldest-first within the window
		w := weights[n-1-i] / total
		for _, s := range stats {
			out[s] += game.Get(s) * w
		}
	}
	return out
}

// rankMultiplier converts a 1-based strength rank into a linear multiplier.
func rankMultiplier(rank, step float64) float64 {
	return 1.2 - (rank-1)*step
}

func rankOrDefault(ranks map[string]float64, key string) float64 {
	if v, ok := ranks[key]; ok {
		return v
	}
	return defaultRank
}
