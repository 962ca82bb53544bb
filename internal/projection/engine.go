package projection

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"GridironOracle/internal/model"
	"GridironOracle/internal/store"

	"github.com/google/uuid"
)

const (
	historyWindow     = 4
	defaultDepthOrder = 3 // assume third string when unlisted
	defaultSnapShare  = 50.0
)

// StatSource supplies the historical and contextual inputs projections
// need. Reads are independent per player and must be safe for concurrent
// use; absence is signalled with store.ErrNotFound.
type StatSource interface {
	RecentStats(ctx context.Context, gsisID string, season, beforeWeek, limit int) ([]model.StatBundle, error)
	DepthOrder(ctx context.Context, gsisID string, season, week int) (int, error)
	SnapShare(ctx context.Context, gsisID string, season, week int) (float64, error)
	InjuryStatus(ctx context.Context, gsisID string, season, week int) (string, error)
	MatchupContext(ctx context.Context, gsisID string, season, week int) (defense, offense map[string]float64, err error)
}

// Engine selects the model for a position and assembles its inputs from the
// stat source. The model registry is fixed at construction; the engine
// itself holds no mutable state.
type Engine struct {
	source  StatSource
	models  map[model.Position]Model
	workers int
}

// NewEngine creates a projection engine over the given source. workers
// bounds batch fan-out; values below 1 fall back to 4.
func NewEngine(source StatSource, workers int) *Engine {
	if workers < 1 {
		workers = 4
	}
	return &Engine{
		source: source,
		models: map[model.Position]Model{
			model.PositionQB: qbModel{},
			model.PositionRB: rbModel{},
			model.PositionWR: wrModel{},
			model.PositionTE: teModel{},
			model.PositionK:  kModel{},
		},
		workers: workers,
	}
}

// Generate projects one player's stat line for the target week. A position
// with no registered model yields a zero line with zero confidence rather
// than an error; a player with no history yields a zero line at the default
// confidence.
func (e *Engine) Generate(ctx context.Context, gsisID string, season, week int, position model.Position) (model.ProjectionOutput, error) {
	mdl, ok := e.models[position]
	if !ok {
		return model.ProjectionOutput{}, nil
	}

	in, err := e.gatherInputs(ctx, gsisID, season, week)
	if err != nil {
		return model.ProjectionOutput{}, err
	}
	return mdl.Project(in), nil
}

// gatherInputs collects projection inputs from the source. History is
// filtered to weeks strictly before the target so a projection never sees
// the game it predicts. Missing usage context degrades to conservative
// defaults instead of failing.
func (e *Engine) gatherInputs(ctx context.Context, gsisID string, season, week int) (model.ProjectionInputs, error) {
	recent, err := e.source.RecentStats(ctx, gsisID, season, week, historyWindow)
	if err != nil {
		return model.ProjectionInputs{}, fmt.Errorf("recent stats for %s: %w", gsisID, err)
	}

	depth, err := e.source.DepthOrder(ctx, gsisID, season, week)
	if errors.Is(err, store.ErrNotFound) {
		depth = defaultDepthOrder
	} else if err != nil {
		return model.ProjectionInputs{}, fmt.Errorf("depth order for %s: %w", gsisID, err)
	}

	snap, err := e.source.SnapShare(ctx, gsisID, season, week)
	if errors.Is(err, store.ErrNotFound) {
		snap = defaultSnapShare
	} else if err != nil {
		return model.ProjectionInputs{}, fmt.Errorf("snap share for %s: %w", gsisID, err)
	}

	injury, err := e.source.InjuryStatus(ctx, gsisID, season, week)
	if errors.Is(err, store.ErrNotFound) {
		injury = ""
	} else if err != nil {
		return model.ProjectionInputs{}, fmt.Errorf("injury status for %s: %w", gsisID, err)
	}

	defense, offense, err := e.source.MatchupContext(ctx, gsisID, season, week)
	if errors.Is(err, store.ErrNotFound) {
		defense, offense = nil, nil // models assume league-average ranks
	} else if err != nil {
		return model.ProjectionInputs{}, fmt.Errorf("matchup for %s: %w", gsisID, err)
	}

	return model.ProjectionInputs{
		RecentStats:     recent,
		DepthChartOrder: depth,
		SnapShare:       snap,
		InjuryStatus:    injury,
		OpponentDefense: defense,
		TeamOffense:     offense,
	}, nil
}

// Request identifies one player to project in a batch.
type Request struct {
	GSISID   string
	Season   int
	Week     int
	Position model.Position
}

// Result is one row of a batch run: a projection or an error descriptor.
// Err is empty on success.
type Result struct {
	GSISID     string
	Season     int
	Week       int
	Projection model.ProjectionOutput
	Err        string
}

// Failed reports whether the row carries an error instead of a projection.
func (r Result) Failed() bool { return r.Err != "" }

// GenerateBatch projects every request independently over a bounded worker
// pool. A failure assembling one player's inputs is recorded in that row
// and never aborts the rest; results keep request order and the returned
// slice always has one row per request.
func (e *Engine) GenerateBatch(ctx context.Context, reqs []Request) []Result {
	runID := uuid.NewString()
	log.Printf("[INFO] projection batch %s: %d players", runID, len(reqs))

	results := make([]Result, len(reqs))
	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup

	for i, req := range reqs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, req Request) {
			defer wg.Done()
			defer func() { <-sem }()

			res := Result{GSISID: req.GSISID, Season: req.Season, Week: req.Week}
			switch {
			case req.GSISID == "":
				res.Err = "missing player identifier"
			default:
				proj, err := e.Generate(ctx, req.GSISID, req.Season, req.Week, req.Position)
				if err != nil {
					res.Err = err.Error()
				} else {
					res.Projection = proj
				}
			}
			results[i] = res
		}(i, req)
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	log.Printf("[INFO] projection batch %s done: %d ok, %d failed", runID, len(results)-failed, failed)
	return results
}
