package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/closer/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "toml config file")
	stats := flag.Bool("stats", false, "print close metrics on exit")
	noFsync := flag.Bool("no-fsync", false, "skip the durable sync on close")
	flag.Parse()

	logging.ConfigureRuntime()

	cfg, err := resolveConfig(*configPath, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "durablecp: %v\n", err)
		os.Exit(2)
	}
	if *stats {
		cfg.Stats = true
	}
	if *noFsync {
		cfg.Fsync = false
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "durablecp: %v\n", err)
		os.Exit(1)
	}
	if cfg.Stats {
		if err := printStats(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "durablecp: %v\n", err)
			os.Exit(1)
		}
	}
}

func resolveConfig(path string, args []string) (runConfig, error) {
	if path != "" {
		return loadRunConfig(path)
	}
	if len(args) >= 2 {
		cfg := defaultRunConfig()
		cfg.Source = args[0]
		cfg.Destinations = normalizeDestinations(args[1:])
		return cfg, validateRunConfig(cfg)
	}
	return runConfig{}, fmt.Errorf("usage: durablecp -config file.toml | durablecp <src> <dst>...")
}
