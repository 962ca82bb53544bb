package scoring

import "GridironOracle/internal/model"

// Engine evaluates stat bundles against an immutable rule set. It holds no
// mutable state between calls, so one engine may score any number of
// players concurrently.
type Engine struct {
	system model.ScoringSystem
}

// NewEngine creates an engine over the given rule set. The engine holds a
// reference and never mutates it.
func NewEngine(system model.ScoringSystem) *Engine {
	return &Engine{system: system}
}

// Parse is a convenience that parses a raw configuration and wraps the
// result in an engine.
func Parse(raw []byte, unit Unit) (*Engine, error) {
	system, err := NewParser(unit).Parse(raw)
	if err != nil {
		return nil, err
	}
	return NewEngine(system), nil
}

// Calculate scores a stat bundle, returning the total and a per-stat
// breakdown. A rule whose stat is absent from the bundle (under every alias
// spelling) contributes nothing and is omitted from the breakdown; absence
// is "not scored", never an error.
func (e *Engine) Calculate(stats model.StatBundle) (float64, map[model.StatType]float64) {
	total := 0.0
	breakdown := make(map[model.StatType]float64, len(e.system))

	for stat, rule := range e.system {
		value, ok := stats.Resolve(stat)
		if !ok {
			continue
		}
		pts := scoreValue(value, rule)
		total += pts
		breakdown[stat] = pts
	}
	return total, breakdown
}

// scoreValue applies one rule to one observed value.
//
// Tiered: the first tier whose inclusive [min, max] range contains the
// value wins; positive tier points are a per-unit rate, non-positive points
// apply flat. Threshold: a binary gate, not a floor. Standard: rate times
// value, capped at max_points when configured.
func scoreValue(value float64, rule model.ScoringRule) float64 {
	if len(rule.Tiers) > 0 {
		for _, t := range rule.Tiers {
			if value >= t.Min && value <= t.Max {
				if t.Points > 0 {
					return t.Points * value
				}
				return t.Points
			}
		}
		return 0
	}

	if rule.Threshold != nil && value < *rule.Threshold {
		return 0
	}

	pts := rule.Points * value
	if rule.MaxPoints != nil && pts > *rule.MaxPoints {
		pts = *rule.MaxPoints
	}
	return pts
}
