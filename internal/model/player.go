package model

// Player is a tracked player. GSISID is the league-independent identifier
// used to join data across public sources.
type Player struct {
	GSISID   string
	Name     string
	Position Position
	Team     string
}

// League holds a league's raw scoring configuration as supplied by the
// external platform. The JSON is re-parsed whenever rules change.
type League struct {
	LeagueKey   string
	Name        string
	ScoringJSON string
}
