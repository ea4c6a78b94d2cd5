// Package config loads and holds all simulation configuration.
// Settings are layered: defaults → huntsim-config.json → environment variables (env vars win).
package config

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
)

// Config holds the full simulation configuration.
type Config struct {
	LogLevel string `json:"logLevel"`

	// RoomsLayoutFile names a JSON file describing a custom room graph. It
	// is loaded like every other setting, but nothing reads it: the binary
	// always builds the built-in default house layout.
	RoomsLayoutFile string `json:"roomsLayoutFile"`

	MaxOccupancy   int `json:"maxOccupancy"`
	MaxConnections int `json:"maxConnections"`
	BoredomMax     int `json:"boredomMax"`
	FearMax        int `json:"fearMax"`

	// HunterCount is the number of default (non-interactive) hunters the
	// binary creates for a run.
	HunterCount int `json:"hunterCount"`

	// RandomSeed seeds the simulation's RNG deterministically. Zero means
	// draw a seed from process entropy.
	RandomSeed uint64 `json:"randomSeed"`
}

// Load returns config with defaults overridden by huntsim-config.json and env vars.
func Load() *Config {
	cfg := defaults()
	loadFile(cfg, "huntsim-config.json")
	loadEnv(cfg)
	return cfg
}

func defaults() *Config {
	return &Config{
		LogLevel:        "info",
		RoomsLayoutFile: "",
		MaxOccupancy:    8,
		MaxConnections:  8,
		BoredomMax:      15,
		FearMax:         15,
		HunterCount:     4,
		RandomSeed:      0,
	}
}

func loadFile(cfg *Config, path string) {
	data, err := os.ReadFile(path) //nolint:gosec // G703: path is a controlled config file path, not user input
	if err != nil {
		return // file is optional
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("[CONFIG] Warning: could not parse %s: %v", path, err)
	} else {
		log.Printf("[CONFIG] Loaded %s", path)
	}
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ROOMS_LAYOUT_FILE"); v != "" {
		cfg.RoomsLayoutFile = v
	}
	if v := os.Getenv("MAX_OCCUPANCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxOccupancy = n
		}
	}
	if v := os.Getenv("MAX_CONNECTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxConnections = n
		}
	}
	if v := os.Getenv("BOREDOM_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BoredomMax = n
		}
	}
	if v := os.Getenv("FEAR_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FearMax = n
		}
	}
	if v := os.Getenv("HUNTER_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HunterCount = n
		}
	}
	if v := os.Getenv("RANDOM_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.RandomSeed = n
		}
	}
}
