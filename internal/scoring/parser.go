package scoring

import (
	"encoding/json"
	"fmt"
	"math"

	"GridironOracle/internal/model"
)

// Unit selects which side of the ball a scoring configuration describes.
// External platforms spell "Interceptions" identically for quarterbacks
// throwing them and for defenses catching them; the active unit decides
// which canonical stat the name resolves to.
type Unit string

const (
	UnitOffense Unit = "offense"
	UnitDefense Unit = "defense"
)

// ParseError reports a syntactically malformed scoring configuration.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse scoring rules: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// offenseStatNames maps platform stat-category spellings to canonical
// offensive stats.
var offenseStatNames = map[string]model.StatType{
	"Passing Yards":          model.StatPassingYards,
	"Passing Touchdowns":     model.StatPassingTDs,
	"Interceptions":          model.StatPassingInts,
	"Rushing Yards":          model.StatRushingYards,
	"Rushing Touchdowns":     model.StatRushingTDs,
	"Reception Yards":        model.StatReceivingYards,
	"Reception Touchdowns":   model.StatReceivingTDs,
	"Receptions":             model.StatReceptions,
	"Fumbles Lost":           model.StatFumblesLost,
	"Field Goals Made":       model.StatFieldGoals,
	"Field Goals Attempted":  model.StatFieldGoalAttempts,
	"Extra Points Made":      model.StatExtraPoints,
	"Extra Points Attempted": model.StatExtraPointAttempts,
}

// defenseStatNames maps the same platform spellings for defense/special
// teams rule sets.
var defenseStatNames = map[string]model.StatType{
	"Interceptions":     model.StatDefensiveInts,
	"Fumbles Recovered": model.StatDefensiveFumbles,
	"Sacks":             model.StatDefensiveSacks,
	"Touchdowns":        model.StatDefensiveTDs,
	"Safeties":          model.StatDefensiveSafeties,
	"Points Allowed":    model.StatDefensivePointsAllowed,
	"Yards Allowed":     model.StatDefensiveYardsAllowed,
}

// Parser converts platform scoring configurations into canonical rule sets.
type Parser struct {
	names map[string]model.StatType
}

// NewParser returns a parser scoped to the given unit.
func NewParser(unit Unit) *Parser {
	if unit == UnitDefense {
		return &Parser{names: defenseStatNames}
	}
	return &Parser{names: offenseStatNames}
}

type tierConfig struct {
	Min   float64  `json:"min"`
	Max   *float64 `json:"max"`
	Value float64  `json:"value"`
}

type statConfig struct {
	Value     float64      `json:"value"`
	Threshold *float64     `json:"threshold"`
	MaxPoints *float64     `json:"max_points"`
	Tiers     []tierConfig `json:"tiers"`
}

// Parse converts a raw scoring document into a ScoringSystem. Unrecognized
// stat names and malformed individual entries are skipped so a league
// scoring future-defined stats never blocks the ones we do recognize; only
// a malformed document is an error.
func (p *Parser) Parse(raw []byte) (model.ScoringSystem, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	system := make(model.ScoringSystem)
	for name, rawCfg := range doc {
		stat, ok := p.names[name]
		if !ok {
			continue
		}
		var cfg statConfig
		if err := json.Unmarshal(rawCfg, &cfg); err != nil {
			continue // wrong value types; keep the rest of the config
		}
		rule := model.ScoringRule{
			Stat:      stat,
			Points:    cfg.Value,
			Threshold: cfg.Threshold,
			MaxPoints: cfg.MaxPoints,
		}
		for _, t := range cfg.Tiers {
			max := math.Inf(1)
			if t.Max != nil {
				max = *t.Max
			}
			rule.Tiers = append(rule.Tiers, model.Tier{Min: t.Min, Max: max, Points: t.Value})
		}
		system[stat] = rule
	}
	return system, nil
}
