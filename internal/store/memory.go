package store

import (
	"context"
	"sort"
	"sync"

	"GridironOracle/internal/model"
)

type playerWeek struct {
	GSISID string
	Season int
	Week   int
}

type teamWeek struct {
	Team   string
	Season int
	Week   int
}

type projKey struct {
	GSISID string
	Season int
	Week   int
	Source string
}

type scoreKey struct {
	LeagueKey string
	GSISID    string
	Season    int
	Week      int
}

// ScoreRow is one persisted scoring result.
type ScoreRow struct {
	Total     float64
	Breakdown map[model.StatType]float64
}

type matchupRow struct {
	Defense map[string]float64
	Offense map[string]float64
}

// Memory is an in-memory Store used by tests and by database-less runs.
type Memory struct {
	mu          sync.RWMutex
	players     map[string]model.Player
	leagues     map[string]model.League
	stats       map[playerWeek]model.StatBundle
	snaps       map[playerWeek]float64
	depth       map[playerWeek]int
	injuries    map[playerWeek]string
	matchups    map[teamWeek]matchupRow
	projections map[projKey]model.ProjectionOutput
	scores      map[scoreKey]ScoreRow
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		players:     make(map[string]model.Player),
		leagues:     make(map[string]model.League),
		stats:       make(map[playerWeek]model.StatBundle),
		snaps:       make(map[playerWeek]float64),
		depth:       make(map[playerWeek]int),
		injuries:    make(map[playerWeek]string),
		matchups:    make(map[teamWeek]matchupRow),
		projections: make(map[projKey]model.ProjectionOutput),
		scores:      make(map[scoreKey]ScoreRow),
	}
}

// Seed helpers.

func (m *Memory) AddPlayer(p model.Player) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players[p.GSISID] = p
}

func (m *Memory) AddLeague(l model.League) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leagues[l.LeagueKey] = l
}

func (m *Memory) AddWeeklyStats(gsisID string, season, week int, stats model.StatBundle, snapPct float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := playerWeek{gsisID, season, week}
	m.stats[key] = stats
	m.snaps[key] = snapPct
}

func (m *Memory) AddDepthOrder(gsisID string, season, week, order int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.depth[playerWeek{gsisID, season, week}] = order
}

func (m *Memory) AddInjury(gsisID string, season, week int, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.injuries[playerWeek{gsisID, season, week}] = status
}

func (m *Memory) AddMatchup(team string, season, week int, defense, offense map[string]float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchups[teamWeek{team, season, week}] = matchupRow{Defense: defense, Offense: offense}
}

// Store implementation.

func (m *Memory) RecentStats(_ context.Context, gsisID string, season, beforeWeek, limit int) ([]model.StatBundle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var weeks []int
	for key := range m.stats {
		if key.GSISID == gsisID && key.Season == season && key.Week < beforeWeek {
			weeks = append(weeks, key.Week)
		}
	}
	sort.Ints(weeks)
	if len(weeks) > limit {
		weeks = weeks[len(weeks)-limit:]
	}

	out := make([]model.StatBundle, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, m.stats[playerWeek{gsisID, season, w}])
	}
	return out, nil
}

func (m *Memory) PlayerStats(_ context.Context, gsisID string, season, week int) (model.StatBundle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if stats, ok := m.stats[playerWeek{gsisID, season, week}]; ok {
		return stats, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) DepthOrder(_ context.Context, gsisID string, season, week int) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if order, ok := m.depth[playerWeek{gsisID, season, week}]; ok {
		return order, nil
	}
	return 0, ErrNotFound
}

func (m *Memory) SnapShare(_ context.Context, gsisID string, season, week int) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if snap, ok := m.snaps[playerWeek{gsisID, season, week}]; ok {
		return snap, nil
	}
	return 0, ErrNotFound
}

func (m *Memory) InjuryStatus(_ context.Context, gsisID string, season, week int) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if status, ok := m.injuries[playerWeek{gsisID, season, week}]; ok {
		return status, nil
	}
	return "", ErrNotFound
}

func (m *Memory) MatchupContext(_ context.Context, gsisID string, season, week int) (map[string]float64, map[string]float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	player, ok := m.players[gsisID]
	if !ok {
		return nil, nil, ErrNotFound
	}
	if row, ok := m.matchups[teamWeek{player.Team, season, week}]; ok {
		return row.Defense, row.Offense, nil
	}
	return nil, nil, ErrNotFound
}

func (m *Memory) ListPlayers(_ context.Context) ([]model.Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	players := make([]model.Player, 0, len(m.players))
	for _, p := range m.players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].GSISID < players[j].GSISID })
	return players, nil
}

func (m *Memory) ListLeagues(_ context.Context) ([]model.League, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	leagues := make([]model.League, 0, len(m.leagues))
	for _, l := range m.leagues {
		leagues = append(leagues, l)
	}
	sort.Slice(leagues, func(i, j int) bool { return leagues[i].LeagueKey < leagues[j].LeagueKey })
	return leagues, nil
}

func (m *Memory) LatestWeek(_ context.Context, season int) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	latest := 0
	for key := range m.stats {
		if key.Season == season && key.Week > latest {
			latest = key.Week
		}
	}
	if latest == 0 {
		return 0, ErrNotFound
	}
	return latest, nil
}

func (m *Memory) SaveProjection(_ context.Context, gsisID string, season, week int, source string, p model.ProjectionOutput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projections[projKey{gsisID, season, week, source}] = p
	return nil
}

func (m *Memory) SaveScore(_ context.Context, leagueKey, gsisID string, season, week int, total float64, breakdown map[model.StatType]float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[scoreKey{leagueKey, gsisID, season, week}] = ScoreRow{Total: total, Breakdown: breakdown}
	return nil
}

// Projection returns a saved projection, for test assertions.
func (m *Memory) Projection(gsisID string, season, week int, source string) (model.ProjectionOutput, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.projections[projKey{gsisID, season, week, source}]
	return p, ok
}

// Score returns a saved score, for test assertions.
func (m *Memory) Score(leagueKey, gsisID string, season, week int) (ScoreRow, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	row, ok := m.scores[scoreKey{leagueKey, gsisID, season, week}]
	return row, ok
}

func (m *Memory) Close() error { return nil }
