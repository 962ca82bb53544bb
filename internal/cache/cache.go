package cache

import (
	"context"

	"GridironOracle/internal/model"
)

// Cache publishes freshly computed projections and scores for fast reads
// by downstream consumers.
type Cache interface {
	WriteProjection(ctx context.Context, gsisID string, season, week int, p model.ProjectionOutput) error
	ReadProjection(ctx context.Context, gsisID string, season, week int) (model.ProjectionOutput, error)
	WriteScore(ctx context.Context, leagueKey, gsisID string, season, week int, total float64) error
	Close() error
}

// Noop is used when no cache backend is configured.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) WriteProjection(_ context.Context, _ string, _, _ int, _ model.ProjectionOutput) error {
	return nil
}

func (n *Noop) ReadProjection(_ context.Context, _ string, _, _ int) (model.ProjectionOutput, error) {
	return model.ProjectionOutput{}, ErrMiss
}

func (n *Noop) WriteScore(_ context.Context, _, _ string, _, _ int, _ float64) error { return nil }

func (n *Noop) Close() error { return nil }
