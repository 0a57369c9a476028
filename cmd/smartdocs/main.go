// Command smartdocs indexes documents with the dates and places they
// mention and serves temporal and geographic search over them.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jana0025/IR-PROJECT/internal/adapters/driven/config/file"
	"github.com/jana0025/IR-PROJECT/internal/adapters/driving/cli"
	"github.com/jana0025/IR-PROJECT/internal/app"
	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := cli.Config{
		Version:  version,
		Settings: domain.DefaultAppSettings(),
	}

	dir, err := file.DefaultDir()
	if err != nil {
		return err
	}
	store, err := file.NewConfigStore(dir)
	if err != nil {
		// Keep going so "config set" can repair a broken file.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	} else {
		cfg.Store = store
	}

	settings, err := file.LoadSettings(cfg.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
	} else {
		cfg.Settings = settings
	}

	cfg.Bootstrap = func(ctx context.Context) (cli.Services, func() error, error) {
		return bootstrap(ctx, cfg.Settings)
	}
	return cli.Execute(ctx, cfg)
}

func bootstrap(ctx context.Context, settings domain.AppSettings) (cli.Services, func() error, error) {
	a, err := app.New(ctx, settings)
	if err != nil {
		return cli.Services{}, nil, err
	}
	logger.Debug("Search backend: %s", a.Engine.Name())

	return cli.Services{
		Search:      a.Search,
		Ingest:      a.Ingest,
		Analytics:   a.Analytics,
		EnsureIndex: a.EnsureIndex,
		Supports:    a.Supports,
		Health:      a.Engine,
		Metrics:     a.MetricsHandler(),
	}, a.Close, nil
}
