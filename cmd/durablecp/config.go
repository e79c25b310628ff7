package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	Source       string   `toml:"source"`
	Destinations []string `toml:"destinations"`
	Fsync        bool     `toml:"fsync"`
	Stats        bool     `toml:"stats"`
}

type runConfig struct {
	Source       string
	Destinations []string
	Fsync        bool
	Stats        bool
}

func defaultRunConfig() runConfig {
	return runConfig{Fsync: true}
}

func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("source") {
		cfg.Source = strings.TrimSpace(raw.Source)
	}
	if meta.IsDefined("destinations") {
		cfg.Destinations = normalizeDestinations(raw.Destinations)
	}
	if meta.IsDefined("fsync") {
		cfg.Fsync = raw.Fsync
	}
	if meta.IsDefined("stats") {
		cfg.Stats = raw.Stats
	}

	if err := validateRunConfig(cfg); err != nil {
		return runConfig{}, err
	}
	return cfg, nil
}

func normalizeDestinations(in []string) []string {
	out := make([]string, 0, len(in))
	for _, dst := range in {
		dst = strings.TrimSpace(dst)
		if dst == "" {
			continue
		}
		out = append(out, dst)
	}
	return out
}

func validateRunConfig(cfg runConfig) error {
	if cfg.Source == "" {
		return fmt.Errorf("config missing source")
	}
	if len(cfg.Destinations) == 0 {
		return fmt.Errorf("config missing destinations")
	}
	for _, dst := range cfg.Destinations {
		if dst == cfg.Source {
			return fmt.Errorf("destination %q equals source", dst)
		}
	}
	return nil
}
