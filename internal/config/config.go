// Package config содержит логику чтения конфигурации игрового магазина.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const defaultLogFile = "debug.log"

// Config содержит параметры конфигурации игрового магазина.
type Config struct {
	LogFile   string `env:"LOG_FILE"`
	LogAppend bool   `env:"LOG_APPEND"`
	SeedFile  string `env:"SEED_FILE"`
	NoSeed    bool   `env:"NO_SEED"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Значения из окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envCfg := *cfg

	flag.StringVar(&cfg.LogFile, "l", defaultLogFile, "trace log file path")
	flag.BoolVar(&cfg.LogAppend, "append", false, "append to the trace log instead of truncating it")
	flag.StringVar(&cfg.SeedFile, "s", "", "YAML file with startup accounts and games")
	flag.BoolVar(&cfg.NoSeed, "no-seed", false, "start with an empty store")

	flag.Parse()

	if envCfg.LogFile != "" {
		cfg.LogFile = envCfg.LogFile
	}
	if envCfg.LogAppend {
		cfg.LogAppend = true
	}
	if envCfg.SeedFile != "" {
		cfg.SeedFile = envCfg.SeedFile
	}
	if envCfg.NoSeed {
		cfg.NoSeed = true
	}

	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile
	}

	return cfg, nil
}
