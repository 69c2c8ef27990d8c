package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alexanderramin/wcagcheck/internal/catalog"
	"github.com/alexanderramin/wcagcheck/internal/cli"
	"github.com/alexanderramin/wcagcheck/internal/config"
	"github.com/alexanderramin/wcagcheck/internal/db"
	"github.com/alexanderramin/wcagcheck/internal/observability"
	"github.com/alexanderramin/wcagcheck/internal/projection"
	"github.com/alexanderramin/wcagcheck/internal/repository"
	"github.com/alexanderramin/wcagcheck/internal/service"
	"github.com/alexanderramin/wcagcheck/internal/store"
	"github.com/mattn/go-isatty"
)

// projectionTTL bounds how long a filtered rule list is reused.
const projectionTTL = 5 * time.Minute

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	observer := observability.NewLogObserver(logger)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	kv := repository.NewSQLiteKVRepo(database)
	exports := repository.NewSQLiteExportLogRepo(database)

	ctx := context.Background()
	st := store.New(ctx, store.NewKVPersister(kv), store.WithObserver(observer))
	memo := projection.NewMemo(catalog.Default(), projectionTTL)

	app := &cli.App{
		Catalog: catalog.Default(),
		Memo:    memo,
		Store:   st,
		Exports: service.NewExportService(st, memo, exports,
			service.WithFallbackName(cfg.FallbackName),
			service.WithObserver(observer),
		),
		ExportDir: cfg.ExportDir,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
