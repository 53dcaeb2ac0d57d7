package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	"github.com/tuanvumaihuynh/product-catalog/internal/http"
	"github.com/tuanvumaihuynh/product-catalog/internal/log"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db/sqlc"
	"github.com/tuanvumaihuynh/product-catalog/internal/telemetry"
	"github.com/tuanvumaihuynh/product-catalog/pkg/cmdutil"
)

type serverConfig struct {
	Log      config.Log
	Postgres config.Postgres
	HTTP     config.HTTP
	Outbox   config.Outbox
	Otel     config.Otel
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running server application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	cfg, err := config.New[serverConfig]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	logger.InfoContext(ctx, "connected to database", slog.String("database", cfg.Postgres.DB))

	dbClient := db.NewClient(pgxPool)
	queries := *sqlc.New()

	if failed := db.NewSchemaInitializer(pgxPool, dbClient, queries, logger).Run(ctx); failed > 0 {
		logger.WarnContext(ctx, "schema initialization finished with errors", slog.Int("failed_steps", failed))
	}

	productRepository := repository.NewProductRepository(dbClient, queries)
	outboxMsgRepository := repository.NewOutboxMsgRepository(dbClient, queries)

	productService := service.NewProductService(cfg.Outbox, dbClient, productRepository, outboxMsgRepository)

	interruptChan := cmdutil.InterruptChan()

	svc := http.New(cfg.HTTP, logger, productService, dbClient)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}

	logger.InfoContext(ctx, "http service started",
		slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)),
		slog.Bool("outbox_enabled", cfg.Outbox.Enabled))

	<-interruptChan

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "http service is stopped")

	return nil
}
