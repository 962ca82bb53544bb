package model

// StatBundle maps canonical stat names to numeric values, representing one
// game's or one projection's box score. Absent keys read as zero.
type StatBundle map[string]float64

// StatType identifies a canonical stat category.
type StatType string

const (
	StatPassingYards       StatType = "passing_yards"
	StatPassingTDs         StatType = "passing_tds"
	StatPassingInts        StatType = "passing_ints"
	StatRushingYards       StatType = "rushing_yards"
	StatRushingTDs         StatType = "rushing_tds"
	StatReceivingYards     StatType = "receiving_yards"
	StatReceivingTDs       StatType = "receiving_tds"
	StatReceptions         StatType = "receptions"
	StatFumblesLost        StatType = "fumbles_lost"
	StatFieldGoals         StatType = "field_goals"
	StatFieldGoalAttempts  StatType = "field_goal_attempts"
	StatExtraPoints        StatType = "extra_points"
	StatExtraPointAttempts StatType = "extra_point_attempts"

	StatDefensiveInts          StatType = "defensive_ints"
	StatDefensiveFumbles       StatType = "defensive_fumbles"
	StatDefensiveSacks         StatType = "defensive_sacks"
	StatDefensiveTDs           StatType = "defensive_tds"
	StatDefensiveSafeties      StatType = "defensive_safeties"
	StatDefensivePointsAllowed StatType = "defensive_points_allowed"
	StatDefensiveYardsAllowed  StatType = "defensive_yards_allowed"
)

// statAliases lists the source-field spellings each canonical stat may
// arrive under. Observed data comes from several feeds with different
// column naming.
var statAliases = map[StatType][]string{
	StatPassingYards:       {"passing_yards", "pass_yds", "passing_yds"},
	StatPassingTDs:         {"passing_tds", "pass_td", "passing_td"},
	StatPassingInts:        {"passing_ints", "pass_int", "passing_int"},
	StatRushingYards:       {"rushing_yards", "rush_yds", "rushing_yds"},
	StatRushingTDs:         {"rushing_tds", "rush_td", "rushing_td"},
	StatReceivingYards:     {"receiving_yards", "rec_yds", "receiving_yds"},
	StatReceivingTDs:       {"receiving_tds", "rec_td", "receiving_td"},
	StatReceptions:         {"receptions", "rec", "catches"},
	StatFumblesLost:        {"fumbles_lost", "fumbles", "fum_lost"},
	StatFieldGoals:         {"field_goals", "fg_made", "fg"},
	StatFieldGoalAttempts:  {"field_goal_attempts", "fg_att", "fg_attempts"},
	StatExtraPoints:        {"extra_points", "xp_made", "xp"},
	StatExtraPointAttempts: {"extra_point_attempts", "xp_att", "xp_attempts"},
}

// Aliases returns the accepted source-field spellings for s. Stats without
// an alias entry are matched by their canonical name only.
func (s StatType) Aliases() []string {
	if a, ok := statAliases[s]; ok {
		return a
	}
	return []string{string(s)}
}

// Known reports whether s is one of the canonical stat categories.
func (s StatType) Known() bool {
	switch s {
	case StatPassingYards, StatPassingTDs, StatPassingInts,
		StatRushingYards, StatRushingTDs,
		StatReceivingYards, StatReceivingTDs, StatReceptions,
		StatFumblesLost,
		StatFieldGoals, StatFieldGoalAttempts, StatExtraPoints, StatExtraPointAttempts,
		StatDefensiveInts, StatDefensiveFumbles, StatDefensiveSacks,
		StatDefensiveTDs, StatDefensiveSafeties,
		StatDefensivePointsAllowed, StatDefensiveYardsAllowed:
		return true
	}
	return false
}

// Resolve looks s up in the bundle under each accepted alias spelling.
// The second return is false when no alias is present.
func (b StatBundle) Resolve(s StatType) (float64, bool) {
	for _, key := range s.Aliases() {
		if v, ok := b[key]; ok {
			return v, true
		}
	}
	return 0, false
}

// Get returns the value stored under the canonical key, zero if absent.
func (b StatBundle) Get(s StatType) float64 {
	return b[string(s)]
}
