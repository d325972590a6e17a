// Package config loads pokerhands configuration from an HCL file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerhands/poker"
)

// Store backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config represents the complete configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	Rules    string          `hcl:"rules,optional"`
	Workers  int             `hcl:"workers,optional"`
	Server   *ServerSettings `hcl:"server,block"`
	Store    *StoreSettings  `hcl:"store,block"`
}

// ServerSettings configures the websocket service
type ServerSettings struct {
	Address string `hcl:"address,optional"`
}

// StoreSettings configures where saved tallies go
type StoreSettings struct {
	Backend   string `hcl:"backend,optional"`
	RedisAddr string `hcl:"redis_addr,optional"`
	RedisDB   int    `hcl:"redis_db,optional"`
	TTL       string `hcl:"ttl,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Rules == "" {
		c.Rules = poker.RulesStandard.String()
	}
	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Server.Address == "" {
		c.Server.Address = "localhost:8080"
	}
	if c.Store == nil {
		c.Store = &StoreSettings{}
	}
	if c.Store.Backend == "" {
		c.Store.Backend = BackendMemory
	}
	if c.Store.RedisAddr == "" {
		c.Store.RedisAddr = "localhost:6379"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if _, err := poker.ParseRules(c.Rules); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Workers)
	}

	switch c.Store.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("invalid store backend %q (want memory or redis)", c.Store.Backend)
	}
	if _, err := c.StoreTTL(); err != nil {
		return err
	}
	return nil
}

// ParsedRules returns the configured rule set.
func (c *Config) ParsedRules() poker.Rules {
	r, _ := poker.ParseRules(c.Rules)
	return r
}

// StoreTTL returns how long saved records live. Zero means forever.
func (c *Config) StoreTTL() (time.Duration, error) {
	if c.Store.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Store.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid store ttl %q: %w", c.Store.TTL, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("store ttl must not be negative: %s", d)
	}
	return d, nil
}
