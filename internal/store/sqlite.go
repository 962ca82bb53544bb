package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"GridironOracle/internal/model"

	_ "modernc.org/sqlite"
)

// SQLite persists players, observed stats, usage context, and engine output
// to a SQLite database.
type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// OpenSQLite opens (or creates) the database and runs migrations.
func OpenSQLite(dbPath string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboard reads don't block engine writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLite) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS players (
			gsis_id  TEXT PRIMARY KEY,
			name     TEXT,
			position TEXT,
			team     TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS leagues (
			league_key   TEXT PRIMARY KEY,
			name         TEXT,
			scoring_json TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS weekly_stats (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			gsis_id    TEXT NOT NULL,
			season     INTEGER NOT NULL,
			week       INTEGER NOT NULL,
			stats_json TEXT NOT NULL,
			snap_pct   REAL,
			UNIQUE(gsis_id, season, week)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stats_player ON weekly_stats(gsis_id, season, week)`,

		`CREATE TABLE IF NOT EXISTS depth_charts (
			gsis_id     TEXT NOT NULL,
			season      INTEGER NOT NULL,
			week        INTEGER NOT NULL,
			depth_order INTEGER NOT NULL,
			UNIQUE(gsis_id, season, week)
		)`,

		`CREATE TABLE IF NOT EXISTS injuries (
			gsis_id TEXT NOT NULL,
			season  INTEGER NOT NULL,
			week    INTEGER NOT NULL,
			status  TEXT NOT NULL,
			UNIQUE(gsis_id, season, week)
		)`,

		`CREATE TABLE IF NOT EXISTS matchups (
			team              TEXT NOT NULL,
			season            INTEGER NOT NULL,
			week              INTEGER NOT NULL,
			pass_defense_rank REAL,
			rush_defense_rank REAL,
			scoring_rank      REAL,
			UNIQUE(team, season, week)
		)`,

		`CREATE TABLE IF NOT EXISTS projections (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			gsis_id    TEXT NOT NULL,
			season     INTEGER NOT NULL,
			week       INTEGER NOT NULL,
			source     TEXT NOT NULL,
			proj_json  TEXT NOT NULL,
			confidence REAL,
			updated_at INTEGER NOT NULL,
			UNIQUE(gsis_id, season, week, source)
		)`,

		`CREATE TABLE IF NOT EXISTS scores (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			league_key     TEXT NOT NULL,
			gsis_id        TEXT NOT NULL,
			season         INTEGER NOT NULL,
			week           INTEGER NOT NULL,
			total          REAL NOT NULL,
			breakdown_json TEXT,
			updated_at     INTEGER NOT NULL,
			UNIQUE(league_key, gsis_id, season, week)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLite) RecentStats(ctx context.Context, gsisID string, season, beforeWeek, limit int) ([]model.StatBundle, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT stats_json FROM weekly_stats
		 WHERE gsis_id = ? AND season = ? AND week < ?
		 ORDER BY week DESC LIMIT ?`,
		gsisID, season, beforeWeek, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent stats: %w", err)
	}
	defer rows.Close()

	var newestFirst []model.StatBundle
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan recent stats: %w", err)
		}
		var bundle model.StatBundle
		if err := json.Unmarshal([]byte(raw), &bundle); err != nil {
			return nil, fmt.Errorf("decode stats json: %w", err)
		}
		newestFirst = append(newestFirst, bundle)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse into chronological order, most recent last.
	out := make([]model.StatBundle, len(newestFirst))
	for i, b := range newestFirst {
		out[len(newestFirst)-1-i] = b
	}
	return out, nil
}

func (s *SQLite) PlayerStats(ctx context.Context, gsisID string, season, week int) (model.StatBundle, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT stats_json FROM weekly_stats WHERE gsis_id = ? AND season = ? AND week = ?`,
		gsisID, season, week).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query player stats: %w", err)
	}
	var bundle model.StatBundle
	if err := json.Unmarshal([]byte(raw), &bundle); err != nil {
		return nil, fmt.Errorf("decode stats json: %w", err)
	}
	return bundle, nil
}

func (s *SQLite) DepthOrder(ctx context.Context, gsisID string, season, week int) (int, error) {
	var order int
	err := s.db.QueryRowContext(ctx,
		`SELECT depth_order FROM depth_charts WHERE gsis_id = ? AND season = ? AND week = ?`,
		gsisID, season, week).Scan(&order)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("query depth order: %w", err)
	}
	return order, nil
}

func (s *SQLite) SnapShare(ctx context.Context, gsisID string, season, week int) (float64, error) {
	var snap sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT snap_pct FROM weekly_stats WHERE gsis_id = ? AND season = ? AND week = ?`,
		gsisID, season, week).Scan(&snap)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !snap.Valid) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("query snap share: %w", err)
	}
	return snap.Float64, nil
}

func (s *SQLite) InjuryStatus(ctx context.Context, gsisID string, season, week int) (string, error) {
	var status string
	err := s.db.QueryRowContext(ctx,
		`SELECT status FROM injuries WHERE gsis_id = ? AND season = ? AND week = ?`,
		gsisID, season, week).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("query injury status: %w", err)
	}
	return status, nil
}

func (s *SQLite) MatchupContext(ctx context.Context, gsisID string, season, week int) (map[string]float64, map[string]float64, error) {
	var pass, rush, scoring sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT m.pass_defense_rank, m.rush_defense_rank, m.scoring_rank
		 FROM matchups m JOIN players p ON p.team = m.team
		 WHERE p.gsis_id = ? AND m.season = ? AND m.week = ?`,
		gsisID, season, week).Scan(&pass, &rush, &scoring)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("query matchup: %w", err)
	}

	defense := map[string]float64{}
	if pass.Valid {
		defense[model.RankPassDefense] = pass.Float64
	}
	if rush.Valid {
		defense[model.RankRushDefense] = rush.Float64
	}
	offense := map[string]float64{}
	if scoring.Valid {
		offense[model.RankScoring] = scoring.Float64
	}
	return defense, offense, nil
}

func (s *SQLite) ListPlayers(ctx context.Context) ([]model.Player, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT gsis_id, name, position, team FROM players`)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	var players []model.Player
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.GSISID, &p.Name, &p.Position, &p.Team); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *SQLite) ListLeagues(ctx context.Context) ([]model.League, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT league_key, name, scoring_json FROM leagues`)
	if err != nil {
		return nil, fmt.Errorf("query leagues: %w", err)
	}
	defer rows.Close()

	var leagues []model.League
	for rows.Next() {
		var l model.League
		if err := rows.Scan(&l.LeagueKey, &l.Name, &l.ScoringJSON); err != nil {
			return nil, fmt.Errorf("scan league: %w", err)
		}
		leagues = append(leagues, l)
	}
	return leagues, rows.Err()
}

func (s *SQLite) LatestWeek(ctx context.Context, season int) (int, error) {
	var week sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(week) FROM weekly_stats WHERE season = ?`, season).Scan(&week)
	if err != nil {
		return 0, fmt.Errorf("query latest week: %w", err)
	}
	if !week.Valid {
		return 0, ErrNotFound
	}
	return int(week.Int64), nil
}

func (s *SQLite) SaveProjection(ctx context.Context, gsisID string, season, week int, source string, p model.ProjectionOutput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode projection: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projections (gsis_id, season, week, source, proj_json, confidence, updated_at)
		 VALUES (?,?,?,?,?,?,?)
		 ON CONFLICT(gsis_id, season, week, source) DO UPDATE SET
		   proj_json = excluded.proj_json,
		   confidence = excluded.confidence,
		   updated_at = excluded.updated_at`,
		gsisID, season, week, source, string(raw), p.Confidence, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("save projection: %w", err)
	}
	return nil
}

func (s *SQLite) SaveScore(ctx context.Context, leagueKey, gsisID string, season, week int, total float64, breakdown map[model.StatType]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(breakdown)
	if err != nil {
		return fmt.Errorf("encode breakdown: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO scores (league_key, gsis_id, season, week, total, breakdown_json, updated_at)
		 VALUES (?,?,?,?,?,?,?)
		 ON CONFLICT(league_key, gsis_id, season, week) DO UPDATE SET
		   total = excluded.total,
		   breakdown_json = excluded.breakdown_json,
		   updated_at = excluded.updated_at`,
		leagueKey, gsisID, season, week, total, string(raw), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}

// Upsert helpers used by the external sync job and by tests.

func (s *SQLite) UpsertPlayer(ctx context.Context, p model.Player) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO players (gsis_id, name, position, team) VALUES (?,?,?,?)
		 ON CONFLICT(gsis_id) DO UPDATE SET name=excluded.name, position=excluded.position, team=excluded.team`,
		p.GSISID, p.Name, string(p.Position), p.Team)
	return err
}

func (s *SQLite) UpsertLeague(ctx context.Context, l model.League) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leagues (league_key, name, scoring_json) VALUES (?,?,?)
		 ON CONFLICT(league_key) DO UPDATE SET name=excluded.name, scoring_json=excluded.scoring_json`,
		l.LeagueKey, l.Name, l.ScoringJSON)
	return err
}

func (s *SQLite) UpsertWeeklyStats(ctx context.Context, gsisID string, season, week int, stats model.StatBundle, snapPct float64) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO weekly_stats (gsis_id, season, week, stats_json, snap_pct) VALUES (?,?,?,?,?)
		 ON CONFLICT(gsis_id, season, week) DO UPDATE SET stats_json=excluded.stats_json, snap_pct=excluded.snap_pct`,
		gsisID, season, week, string(raw), snapPct)
	return err
}

func (s *SQLite) UpsertDepthOrder(ctx context.Context, gsisID string, season, week, order int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO depth_charts (gsis_id, season, week, depth_order) VALUES (?,?,?,?)
		 ON CONFLICT(gsis_id, season, week) DO UPDATE SET depth_order=excluded.depth_order`,
		gsisID, season, week, order)
	return err
}

func (s *SQLite) UpsertInjury(ctx context.Context, gsisID string, season, week int, status string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO injuries (gsis_id, season, week, status) VALUES (?,?,?,?)
		 ON CONFLICT(gsis_id, season, week) DO UPDATE SET status=excluded.status`,
		gsisID, season, week, status)
	return err
}

func (s *SQLite) UpsertMatchup(ctx context.Context, team string, season, week int, passDefRank, rushDefRank, scoringRank float64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO matchups (team, season, week, pass_defense_rank, rush_defense_rank, scoring_rank)
		 VALUES (?,?,?,?,?,?)
		 ON CONFLICT(team, season, week) DO UPDATE SET
		   pass_defense_rank=excluded.pass_defense_rank,
		   rush_defense_rank=excluded.rush_defense_rank,
		   scoring_rank=excluded.scoring_rank`,
		team, season, week, passDefRank, rushDefRank, scoringRank)
	return err
}

func (s *SQLite) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}
