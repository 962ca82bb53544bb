package store

import (
	"context"
	"errors"

	"GridironOracle/internal/model"
)

// ErrNotFound reports that no row matched a lookup. Callers decide whether
// absence means a default or a failure.
var ErrNotFound = errors.New("store: not found")

// Store is the data-access and persistence collaborator for the engines.
// Reads are independent per player; implementations must be safe for
// concurrent use.
type Store interface {
	// RecentStats returns up to limit game stat bundles for the player,
	// strictly before beforeWeek, in chronological order with the most
	// recent game last.
	RecentStats(ctx context.Context, gsisID string, season, beforeWeek, limit int) ([]model.StatBundle, error)
	// PlayerStats returns the observed bundle for one game week.
	PlayerStats(ctx context.Context, gsisID string, season, week int) (model.StatBundle, error)
	// DepthOrder returns the player's depth-chart rank (1 = starter).
	DepthOrder(ctx context.Context, gsisID string, season, week int) (int, error)
	// SnapShare returns the player's snap percentage in [0,100].
	SnapShare(ctx context.Context, gsisID string, season, week int) (float64, error)
	// InjuryStatus returns the report status, ErrNotFound when unlisted.
	InjuryStatus(ctx context.Context, gsisID string, season, week int) (string, error)
	// MatchupContext returns the opponent-defense and own-offense rank
	// metrics for the player's game that week, already resolved to numbers.
	MatchupContext(ctx context.Context, gsisID string, season, week int) (defense, offense map[string]float64, err error)

	ListPlayers(ctx context.Context) ([]model.Player, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	// LatestWeek returns the most recent week with recorded stats.
	LatestWeek(ctx context.Context, season int) (int, error)

	// SaveProjection upserts a projection keyed (player, season, week, source).
	SaveProjection(ctx context.Context, gsisID string, season, week int, source string, p model.ProjectionOutput) error
	// SaveScore upserts computed fantasy points for a league's rules.
	SaveScore(ctx context.Context, leagueKey, gsisID string, season, week int, total float64, breakdown map[model.StatType]float64) error

	Close() error
}
