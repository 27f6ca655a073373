package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/atharhub/athar/internal/api"
	"github.com/atharhub/athar/internal/config"
	"github.com/atharhub/athar/internal/db"
	"github.com/atharhub/athar/internal/impact"
	"github.com/atharhub/athar/internal/jobs"
	"github.com/atharhub/athar/internal/logging"
	"github.com/atharhub/athar/internal/observability"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Closer()
	logger := lg.Sugar

	flushSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, "")
	if err != nil {
		logger.Warnw("sentry init failed", "err", err)
	}
	defer flushSentry()

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalw("db connect", "err", err)
	}
	defer func() { _ = database.Close() }()

	if err := db.Migrate(database); err != nil {
		logger.Fatalw("db migrate", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.Seed(ctx, database); err != nil {
		logger.Fatalw("db seed", "err", err)
	}

	runner := jobs.New(ctx, logger)
	runner.Every(time.Minute, "refresh_stats", jobs.RefreshStats(database))

	agg := impact.New(db.Store{DB: database}, logger)
	srv := api.New(database, agg, logger, cfg.Location)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			logger.Warnw("shutdown", "err", err)
		}
	}()

	logger.Infow("listening", "addr", cfg.HTTPAddr)
	if err := srv.Run(cfg.HTTPAddr); err != nil {
		logger.Fatalw("server", "err", err)
	}
}
