package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"GridironOracle/internal/model"

	"github.com/redis/go-redis/v9"
)

// TTL constants
const (
	ProjectionTTL = 24 * time.Hour
	ScoreTTL      = 6 * time.Hour
)

// ErrMiss reports that the key is not cached.
var ErrMiss = errors.New("cache: miss")

// Redis caches engine output in Redis as JSON payloads.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a cache over the given connection settings and verifies
// connectivity.
func NewRedis(ctx context.Context, addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Redis{client: client}, nil
}

func projectionKey(gsisID string, season, week int) string {
	return fmt.Sprintf("proj:%s:%d:%d", gsisID, season, week)
}

func scoreKey(leagueKey, gsisID string, season, week int) string {
	return fmt.Sprintf("score:%s:%s:%d:%d", leagueKey, gsisID, season, week)
}

func (r *Redis) WriteProjection(ctx context.Context, gsisID string, season, week int, p model.ProjectionOutput) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling projection: %w", err)
	}
	return r.client.Set(ctx, projectionKey(gsisID, season, week), data, ProjectionTTL).Err()
}

func (r *Redis) ReadProjection(ctx context.Context, gsisID string, season, week int) (model.ProjectionOutput, error) {
	data, err := r.client.Get(ctx, projectionKey(gsisID, season, week)).Result()
	if errors.Is(err, redis.Nil) {
		return model.ProjectionOutput{}, ErrMiss
	}
	if err != nil {
		return model.ProjectionOutput{}, err
	}

	var p model.ProjectionOutput
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return model.ProjectionOutput{}, fmt.Errorf("unmarshaling projection: %w", err)
	}
	return p, nil
}

func (r *Redis) WriteScore(ctx context.Context, leagueKey, gsisID string, season, week int, total float64) error {
	return r.client.Set(ctx, scoreKey(leagueKey, gsisID, season, week), total, ScoreTTL).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
