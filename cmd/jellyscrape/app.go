package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vmunix/jellyscrape/internal/config"
	"github.com/vmunix/jellyscrape/internal/scraper"
	"github.com/vmunix/jellyscrape/pkg/jellyfin"
)

// app holds what the server-facing commands share.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	client  *jellyfin.Client
	sink    *printSink
	scraper *scraper.Scraper
}

// setup loads the config and builds the client and scraper for cmd.
func setup(cmd *cobra.Command) (*app, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.Discover(); err != nil {
			return nil, fmt.Errorf("%w (run 'jellyscrape init' to create one)", err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	logger, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", path, "server", cfg.Jellyfin.URL, "library_id", cfg.Jellyfin.LibraryID)

	return newApp(cfg, logger, &printSink{out: cmd.OutOrStdout(), json: jsonOutput, log: logger}), nil
}

func newApp(cfg *config.Config, logger *slog.Logger, sink *printSink) *app {
	a := &app{
		cfg:  cfg,
		log:  logger,
		sink: sink,
		client: jellyfin.New(cfg.Jellyfin.URL, cfg.Jellyfin.Username, cfg.Jellyfin.Password,
			jellyfin.WithLibraryID(cfg.Jellyfin.LibraryID),
			jellyfin.WithTempDir(cfg.Scraper.TempDir),
			jellyfin.WithLogger(logger),
		),
	}
	a.scraper = a.newScraper(cfg.Scraper.FilterByName)
	return a
}

// newScraper builds a scraper over the app's client that reports to its sink.
func (a *app) newScraper(filterByName bool) *scraper.Scraper {
	return scraper.New(a.client, a.sink,
		scraper.WithLogger(a.log),
		scraper.WithFilterByName(filterByName),
	)
}
