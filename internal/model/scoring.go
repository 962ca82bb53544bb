package model

// Tier is one (min, max, points) band of a tiered scoring rule. Ranges are
// inclusive on both ends.
type Tier struct {
	Min    float64
	Max    float64
	Points float64
}

// ScoringRule configures how one stat category is scored. When Tiers is
// non-empty it takes precedence over Points/Threshold/MaxPoints. Rules are
// created once per league and never mutated; a rule change means a re-parse.
type ScoringRule struct {
	Stat      StatType
	Points    float64
	Threshold *float64
	MaxPoints *float64
	Tiers     []Tier
}

// ScoringSystem maps canonical stat types to their rules, covering only
// the stats a league actually scores.
type ScoringSystem map[StatType]ScoringRule
