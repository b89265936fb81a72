package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Jobenas/stm32bridge/internal/board"
	"github.com/Jobenas/stm32bridge/internal/config"
	"github.com/Jobenas/stm32bridge/internal/repository"
	"github.com/Jobenas/stm32bridge/internal/repository/sqlite"
	"github.com/Jobenas/stm32bridge/internal/scrape"
	"github.com/Jobenas/stm32bridge/internal/service"
)

// loadConfig loads the config honoring the --config override
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		cfg, _, err := config.LoadFromPath(configPath)
		return cfg, err
	}
	cfg, path, err := config.Load()
	if err != nil {
		return nil, err
	}
	if path != "" {
		log.Printf("Using config %s", path)
	}
	return cfg, nil
}

// newService wires the scraper, cache and generator from config. The
// returned cleanup closes the cache and must always be called.
func newService(cfg *config.Config, timeoutOverride time.Duration, hseOverride int64) (*service.BridgeService, func(), error) {
	var store repository.SpecStore
	if cfg.Cache.Enabled {
		repo, err := sqlite.New(cfg.Cache.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open cache: %w", err)
		}
		store = repo
	}

	timeout := cfg.Fetch.Timeout()
	if timeoutOverride > 0 {
		timeout = timeoutOverride
	}
	scraper := scrape.New(
		scrape.WithTimeout(timeout),
		scrape.WithUserAgent(cfg.Fetch.UserAgent),
		scrape.WithCacheSize(cfg.Fetch.PageCacheSize),
	)

	hse := cfg.Board.HSEValueHz
	if hseOverride > 0 {
		hse = hseOverride
	}
	generator := board.NewGenerator(board.WithHSEValue(hse))

	cleanup := func() {
		if store == nil {
			return
		}
		if err := store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: closing cache: %v\n", err)
		}
	}
	return service.New(scraper, store, generator), cleanup, nil
}
