package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"deal-tracker/config"
	"deal-tracker/internal/deal"
	dealRepo "deal-tracker/internal/deal/repository/sqlite"
	dealUC "deal-tracker/internal/deal/usecase"
	"deal-tracker/pkg/log"
	"deal-tracker/pkg/sqlite"
)

// app is the shared state of one dealctl invocation.
type app struct {
	cfg   *config.Config
	l     log.Logger
	db    *sql.DB
	deals deal.UseCase
}

func openApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	l := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     "console",
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	db, err := sqlite.Open(ctx, cfg.SQLite.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.SQLite.Path, err)
	}
	if err := dealRepo.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &app{
		cfg:   cfg,
		l:     l,
		db:    db,
		deals: dealUC.New(dealRepo.New(db, l), l, dealUC.ReminderConfig{}),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
