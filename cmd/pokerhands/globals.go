package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"github.com/lox/pokerhands/internal/config"
	"github.com/lox/pokerhands/internal/store"
	"github.com/lox/pokerhands/poker"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string           `short:"c" default:"pokerhands.hcl" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" help:"Log level (overrides config)"`
	Version  kong.VersionFlag `short:"v" help:"Show version"`
}

// setup loads the config, applies flag overrides and builds the logger.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return cfg, logger, nil
}

// rules returns the flag value if set, otherwise the configured rules.
func rules(cfg *config.Config, flag string) (poker.Rules, error) {
	if flag != "" {
		return poker.ParseRules(flag)
	}
	return cfg.ParsedRules(), nil
}

// openStore opens the configured tally store. The returned func releases it.
func openStore(cfg *config.Config, logger *log.Logger) (store.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		ttl, err := cfg.StoreTTL()
		if err != nil {
			return nil, nil, err
		}
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.Store.RedisAddr,
			DB:   cfg.Store.RedisDB,
		})
		logger.Debug("Using redis store", "addr", cfg.Store.RedisAddr, "db", cfg.Store.RedisDB, "ttl", ttl)
		return store.NewRedisStore(rdb, ttl), func() { _ = rdb.Close() }, nil
	default:
		logger.Warn("Using in-memory store, records will not outlive this process")
		return store.NewMemoryStore(), func() {}, nil
	}
}
