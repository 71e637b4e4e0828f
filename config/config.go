package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tradekit/roadmap/projection"
	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Projection ProjectionConfig `json:"projection" yaml:"projection"`
	Server     ServerConfig     `json:"server" yaml:"server"`
	Limits     LimitsConfig     `json:"limits" yaml:"limits"`
}

// ProjectionConfig holds the default projection parameters. CLI flags and
// API request fields override these per run.
type ProjectionConfig struct {
	CurrentBalance  float64 `json:"current_balance" yaml:"current_balance"`
	TargetBalance   float64 `json:"target_balance" yaml:"target_balance"`
	RiskPercent     float64 `json:"risk_per_trade_percent" yaml:"risk_per_trade_percent"`
	RiskRewardRatio float64 `json:"risk_reward_ratio" yaml:"risk_reward_ratio"`
}

// ServerConfig contains HTTP API parameters
type ServerConfig struct {
	Addr           string   `json:"addr" yaml:"addr"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
	ReadTimeout    string   `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout   string   `json:"write_timeout" yaml:"write_timeout"`
	LogLevel       string   `json:"log_level" yaml:"log_level"`
}

// LimitsConfig contains safety guards applied at the boundary
type LimitsConfig struct {
	// MaxTrades caps the number of simulated trades per run. 0 disables
	// the cap. Validated inputs terminate on their own; the cap exists so
	// a request can never pin a server in a near-flat compounding loop.
	MaxTrades int `json:"max_trades" yaml:"max_trades"`
}

// ParseReadTimeout converts the read timeout string to time.Duration
func (s ServerConfig) ParseReadTimeout() (time.Duration, error) {
	if s.ReadTimeout == "" {
		return 0, nil
	}
	return time.ParseDuration(s.ReadTimeout)
}

// ParseWriteTimeout converts the write timeout string to time.Duration
func (s ServerConfig) ParseWriteTimeout() (time.Duration, error) {
	if s.WriteTimeout == "" {
		return 0, nil
	}
	return time.ParseDuration(s.WriteTimeout)
}

// ProjectionInput builds the engine config from the configured defaults.
func (c *Config) ProjectionInput() projection.Config {
	return projection.Config{
		CurrentBalance:  c.Projection.CurrentBalance,
		TargetBalance:   c.Projection.TargetBalance,
		RiskPerTradePct: c.Projection.RiskPercent,
		RiskRewardRatio: c.Projection.RiskRewardRatio,
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := projection.Validate(c.ProjectionInput()); err != nil {
		return err
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if _, err := c.Server.ParseReadTimeout(); err != nil {
		return fmt.Errorf("server.read_timeout: %w", err)
	}
	if _, err := c.Server.ParseWriteTimeout(); err != nil {
		return fmt.Errorf("server.write_timeout: %w", err)
	}
	if c.Limits.MaxTrades < 0 {
		return fmt.Errorf("limits.max_trades must not be negative")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Projection: ProjectionConfig{
			CurrentBalance:  200,
			TargetBalance:   2000,
			RiskPercent:     2,
			RiskRewardRatio: 3,
		},
		Server: ServerConfig{
			Addr: ":8000",
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:3001",
			},
			ReadTimeout:  "5s",
			WriteTimeout: "10s",
			LogLevel:     "info",
		},
		Limits: LimitsConfig{
			MaxTrades: 10000,
		},
	}
}
