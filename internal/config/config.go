package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Schedule struct {
		ProjectionCron string `yaml:"projection_cron"`
		ScoringCron    string `yaml:"scoring_cron"`
	} `yaml:"schedule"`
	Engine struct {
		Season           int    `yaml:"season"`
		BatchWorkers     int    `yaml:"batch_workers"`
		ProjectionSource string `yaml:"projection_source"`
	} `yaml:"engine"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("CRON_PROJECTIONS"); v != "" {
		cfg.Schedule.ProjectionCron = v
	}
	if v := os.Getenv("CRON_SCORING"); v != "" {
		cfg.Schedule.ScoringCron = v
	}
	if v := os.Getenv("SEASON"); v != "" {
		if season, err := strconv.Atoi(v); err == nil {
			cfg.Engine.Season = season
		}
	}
	if v := os.Getenv("BATCH_WORKERS"); v != "" {
		if workers, err := strconv.Atoi(v); err == nil {
			cfg.Engine.BatchWorkers = workers
		}
	}

	// Defaults
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/gridiron_oracle.db"
	}
	if cfg.Schedule.ProjectionCron == "" {
		// Wednesday 06:00, after Tuesday stat corrections land
		cfg.Schedule.ProjectionCron = "0 0 6 * * 3"
	}
	if cfg.Schedule.ScoringCron == "" {
		// Tuesday 05:00, once Monday night stats are final
		cfg.Schedule.ScoringCron = "0 0 5 * * 2"
	}
	if cfg.Engine.Season == 0 {
		cfg.Engine.Season = 2025
	}
	if cfg.Engine.BatchWorkers == 0 {
		cfg.Engine.BatchWorkers = 4
	}
	if cfg.Engine.ProjectionSource == "" {
		cfg.Engine.ProjectionSource = "internal"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Database.SQLitePath == "" {
		return fmt.Errorf("database.sqlite_path is required")
	}
	if c.Engine.Season <= 0 {
		return fmt.Errorf("engine.season must be positive")
	}
	if c.Engine.BatchWorkers <= 0 {
		return fmt.Errorf("engine.batch_workers must be positive")
	}
	return nil
}
