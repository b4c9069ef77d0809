// Package config reads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultWidth    = 400
	DefaultHeight   = 400
	DefaultDelay    = 1000 * time.Millisecond
	DefaultWatchURL = "ws://localhost:8080/watch"
)

type Config struct {
	Width, Height int
	Delay         time.Duration
	Seed          int64
	SpectateAddr  string
	WatchURL      string
	LogLevel      log.Level
}

// Load applies .env (if present) and then reads the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Delay:        DefaultDelay,
		Seed:         time.Now().UnixNano(),
		SpectateAddr: getenv("COLORMATCH_SPECTATE_ADDR"),
		WatchURL:     DefaultWatchURL,
		LogLevel:     log.InfoLevel,
	}

	var err error
	if cfg.Width, err = positive(getenv, "COLORMATCH_WIDTH", cfg.Width); err != nil {
		return nil, err
	}
	if cfg.Height, err = positive(getenv, "COLORMATCH_HEIGHT", cfg.Height); err != nil {
		return nil, err
	}
	delayMs, err := positive(getenv, "COLORMATCH_DELAY_MS", int(cfg.Delay/time.Millisecond))
	if err != nil {
		return nil, err
	}
	cfg.Delay = time.Duration(delayMs) * time.Millisecond

	if s := getenv("COLORMATCH_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("COLORMATCH_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if s := getenv("COLORMATCH_WATCH_URL"); s != "" {
		cfg.WatchURL = s
	}
	if s := getenv("COLORMATCH_LOG_LEVEL"); s != "" {
		level, err := log.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("COLORMATCH_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

func positive(getenv func(string) string, key string, def int) (int, error) {
	s := getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, v)
	}
	return v, nil
}
