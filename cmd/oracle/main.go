package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"GridironOracle/internal/cache"
	"GridironOracle/internal/config"
	"GridironOracle/internal/projection"
	"GridironOracle/internal/scheduler"
	"GridironOracle/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] GridironOracle starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init store
	st, err := store.OpenSQLite(cfg.Database.SQLitePath)
	if err != nil {
		log.Fatalf("[FATAL] open store: %v", err)
	}
	defer st.Close()

	// Init cache
	var c cache.Cache
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Printf("[WARN] init redis cache failed, using noop: %v", err)
			c = cache.NewNoop()
		} else {
			c = rc
			defer rc.Close()
		}
	} else {
		c = cache.NewNoop()
	}

	// Init projection engine
	eng := projection.NewEngine(st, cfg.Engine.BatchWorkers)

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, st, eng, c, cfg.Engine.Season, cfg.Engine.ProjectionSource)
	if err := sched.RegisterAll(cfg.Schedule.ProjectionCron, cfg.Schedule.ScoringCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing projection refresh now")
		go sched.RunProjectionsNow()
	}

	log.Println("[INFO] GridironOracle is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] GridironOracle stopped")
}
