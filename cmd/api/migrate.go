package main

import (
	"context"
	"errors"
	"time"

	pg "brigadas-forestales/internal/adapters/storage/postgres"
	"brigadas-forestales/internal/config"
	"brigadas-forestales/internal/platform/logger"
)

func runMigrate(parent context.Context, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if cfg.DBDSN == "" {
		return errors.New("migrate: DB_DSN es obligatorio")
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	defer syncLogger(log)

	db, err := pg.Open(cfg.DBDSN, 1)
	if err != nil {
		return err
	}
	defer db.Close()

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, 30*time.Second)
	defer cancel()

	if err := pg.Migrate(ctx, db); err != nil {
		return err
	}
	log.Info("esquema aplicado", nil)
	return nil
}
