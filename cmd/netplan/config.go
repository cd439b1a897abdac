package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/rhartert/netplan/network"
	"github.com/rhartert/netplan/planner"
)

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
}

type EngineConfig struct {
	GlobalPacketSize *float64 `toml:"global_packet_size"`
	DuplicateLinks   string   `toml:"duplicate_links"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   *bool  `toml:"compress"`
}

type MetricsConfig struct {
	Textfile string `toml:"textfile"`
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (cfg *Config) setDefaults() {
	if cfg.Engine.DuplicateLinks == "" {
		cfg.Engine.DuplicateLinks = network.MinCostDuplicate.String()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 100
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 7
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = 30
	}
	if cfg.Log.Compress == nil {
		compress := true
		cfg.Log.Compress = &compress
	}
}

// loadConfig reads the TOML file at path. A missing file yields the default
// configuration.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	cfg.setDefaults()

	if _, err := cfg.plannerConfig(); err != nil {
		return nil, err
	}
	if n := cfg.Engine.GlobalPacketSize; n != nil && !(*n >= 0) {
		return nil, fmt.Errorf("global_packet_size must be non-negative, got %v", *n)
	}
	return &cfg, nil
}

func (cfg *Config) plannerConfig() (planner.Config, error) {
	policy, err := network.ParseDuplicatePolicy(cfg.Engine.DuplicateLinks)
	if err != nil {
		return planner.Config{}, err
	}
	return planner.Config{
		GlobalPacketSize: cfg.Engine.GlobalPacketSize,
		DuplicateLinks:   policy,
	}, nil
}
