package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"

	"GridironOracle/internal/cache"
	"GridironOracle/internal/model"
	"GridironOracle/internal/projection"
	"GridironOracle/internal/scoring"
	"GridironOracle/internal/store"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the recurring engine runs: a projection refresh for the
// upcoming week and a scoring pass over the last completed week.
type Scheduler struct {
	Cron    *cron.Cron
	Store   store.Store
	Engine  *projection.Engine
	Cache   cache.Cache
	Ctx     context.Context
	Season  int
	Source  string
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, st store.Store, eng *projection.Engine, c cache.Cache, season int, source string) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Store:  st,
		Engine: eng,
		Cache:  c,
		Ctx:    ctx,
		Season: season,
		Source: source,
	}
}

// RegisterAll registers the projection and scoring tasks.
func (s *Scheduler) RegisterAll(projectionCron, scoringCron string) error {
	if _, err := s.Cron.AddFunc(projectionCron, s.projectionTask); err != nil {
		return fmt.Errorf("register projection task: %w", err)
	}
	if _, err := s.Cron.AddFunc(scoringCron, s.scoringTask); err != nil {
		return fmt.Errorf("register scoring task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunProjectionsNow executes the projection task immediately (for manual
// trigger / RUN_ON_START).
func (s *Scheduler) RunProjectionsNow() {
	s.projectionTask()
}

// projectionTask projects every tracked player for the week after the most
// recent recorded one, then persists and caches the results.
func (s *Scheduler) projectionTask() {
	log.Println("[INFO] running projection refresh")

	latest, err := s.Store.LatestWeek(s.Ctx, s.Season)
	if errors.Is(err, store.ErrNotFound) {
		log.Printf("[WARN] no recorded stats for season %d, skipping projections", s.Season)
		return
	}
	if err != nil {
		log.Printf("[ERROR] latest week: %v", err)
		return
	}
	targetWeek := latest + 1

	players, err := s.Store.ListPlayers(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] list players: %v", err)
		return
	}

	reqs := make([]projection.Request, 0, len(players))
	for _, p := range players {
		reqs = append(reqs, projection.Request{
			GSISID:   p.GSISID,
			Season:   s.Season,
			Week:     targetWeek,
			Position: p.Position,
		})
	}

	results := s.Engine.GenerateBatch(s.Ctx, reqs)
	saved := 0
	for _, res := range results {
		if res.Failed() {
			log.Printf("[WARN] projection %s week %d: %s", res.GSISID, res.Week, res.Err)
			continue
		}
		if err := s.Store.SaveProjection(s.Ctx, res.GSISID, res.Season, res.Week, s.Source, res.Projection); err != nil {
			log.Printf("[ERROR] save projection %s: %v", res.GSISID, err)
			continue
		}
		if err := s.Cache.WriteProjection(s.Ctx, res.GSISID, res.Season, res.Week, res.Projection); err != nil {
			log.Printf("[WARN] cache projection %s: %v", res.GSISID, err)
		}
		saved++
	}
	log.Printf("[INFO] projection refresh done: %d/%d saved for week %d", saved, len(results), targetWeek)
}

// scoringTask scores the most recent completed week for every league.
func (s *Scheduler) scoringTask() {
	log.Println("[INFO] running scoring pass")

	week, err := s.Store.LatestWeek(s.Ctx, s.Season)
	if errors.Is(err, store.ErrNotFound) {
		log.Printf("[WARN] no recorded stats for season %d, skipping scoring", s.Season)
		return
	}
	if err != nil {
		log.Printf("[ERROR] latest week: %v", err)
		return
	}

	leagues, err := s.Store.ListLeagues(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] list leagues: %v", err)
		return
	}
	players, err := s.Store.ListPlayers(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] list players: %v", err)
		return
	}

	for _, league := range leagues {
		engine, err := scoring.Parse([]byte(league.ScoringJSON), scoring.UnitOffense)
		if err != nil {
			log.Printf("[ERROR] league %s scoring rules: %v", league.LeagueKey, err)
			continue
		}
		scored := s.scoreLeague(league, engine, players, week)
		log.Printf("[INFO] league %s: scored %d players for week %d", league.LeagueKey, scored, week)
	}
}

func (s *Scheduler) scoreLeague(league model.League, engine *scoring.Engine, players []model.Player, week int) int {
	scored := 0
	for _, p := range players {
		stats, err := s.Store.PlayerStats(s.Ctx, p.GSISID, s.Season, week)
		if errors.Is(err, store.ErrNotFound) {
			continue // bye week or inactive
		}
		if err != nil {
			log.Printf("[ERROR] stats %s week %d: %v", p.GSISID, week, err)
			continue
		}

		total, breakdown := engine.Calculate(stats)
		if err := s.Store.SaveScore(s.Ctx, league.LeagueKey, p.GSISID, s.Season, week, total, breakdown); err != nil {
			log.Printf("[ERROR] save score %s: %v", p.GSISID, err)
			continue
		}
		if err := s.Cache.WriteScore(s.Ctx, league.LeagueKey, p.GSISID, s.Season, week, total); err != nil {
			log.Printf("[WARN] cache score %s: %v", p.GSISID, err)
		}
		scored++
	}
	return scored
}
