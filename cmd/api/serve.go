package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brigadas-forestales/internal/adapters/auditlog/amqpsink"
	"brigadas-forestales/internal/adapters/auditlog/mongosink"
	"brigadas-forestales/internal/adapters/auth/session"
	pg "brigadas-forestales/internal/adapters/storage/postgres"
	"brigadas-forestales/internal/config"
	"brigadas-forestales/internal/domain/auditlog"
	"brigadas-forestales/internal/platform/logger"
	"brigadas-forestales/internal/router"
)

func runServe(parent context.Context, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	defer syncLogger(log)

	loc, _ := cfg.Location() // ya validado

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN, cfg.DBMaxOpenConns)
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		defer db.Close()
	} else {
		log.Warn("DB_DSN vacío: usando repos in-memory", nil)
	}

	sink := openAuditSink(ctx, cfg, log)
	history := auditlog.NewDispatcher(sink, auditlog.Options{
		QueueSize: cfg.AuditQueueSize,
		Logger:    log,
	})

	sessions, err := session.NewManager(session.Config{Secret: cfg.SessionSecret, TTL: cfg.SessionTTL})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Sessions:       sessions,
			DB:             db,
			Logger:         log,
			History:        history,
			DebugAuth:      cfg.DebugAuth,
			Location:       loc,
			PasswordCost:   cfg.BcryptCost,
			RequestTimeout: cfg.RequestTimeout,
			AllowedOrigins: cfg.AllowedOrigins,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "audit_sink": cfg.AuditSink, "tz": cfg.TZName})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", map[string]any{"error": err})
	}
	if err := history.Close(shutdownCtx); err != nil {
		log.Error("historial close", map[string]any{"error": err})
	}
	return nil
}

// openAuditSink cae al sink de log si el configurado no está disponible.
func openAuditSink(ctx context.Context, cfg config.App, log logger.Logger) auditlog.Sink {
	switch cfg.AuditSink {
	case config.AuditSinkMongo:
		if cfg.MongoURI == "" {
			log.Warn("MONGO_URI vacío: historial solo en log", nil)
			break
		}
		openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		s, err := mongosink.Open(openCtx, mongosink.Config{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDB,
			Collection: cfg.MongoCollection,
		})
		if err != nil {
			log.Error("mongo no disponible: historial solo en log", map[string]any{"error": err})
			break
		}
		return s
	case config.AuditSinkAMQP:
		if cfg.RabbitURL == "" {
			log.Warn("RABBIT_URL vacío: historial solo en log", nil)
			break
		}
		s, err := amqpsink.Dial(cfg.RabbitURL, cfg.AuditExchange)
		if err != nil {
			log.Error("rabbitmq no disponible: historial solo en log", map[string]any{"error": err})
			break
		}
		return s
	}
	return auditlog.NewLogSink(log)
}

func syncLogger(log logger.Logger) {
	if s, ok := log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
