package db

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db/sqlc"
)

// MigrateFunc applies the schema migrations.
type MigrateFunc func(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error

// SchemaInitializer makes sure the product table exists and runs the
// maintenance guards on every start. No step may fail the process: errors are
// logged and the next step still runs.
type SchemaInitializer struct {
	pool    *pgxpool.Pool
	db      DB
	queries sqlc.Queries
	migrate MigrateFunc
	logger  *slog.Logger
}

func NewSchemaInitializer(pool *pgxpool.Pool, db DB, queries sqlc.Queries, logger *slog.Logger) *SchemaInitializer {
	return &SchemaInitializer{
		pool:    pool,
		db:      db,
		queries: queries,
		migrate: Migrate,
		logger:  logger.With(slog.String("component", "schema")),
	}
}

// Run executes every step and reports how many of them failed.
func (s *SchemaInitializer) Run(ctx context.Context) int {
	failed := 0

	if err := s.migrate(ctx, s.pool, s.logger); err != nil {
		failed++
		s.logger.ErrorContext(ctx, "failed to create or verify product table", slog.Any("error", err))
	} else {
		s.logger.InfoContext(ctx, "product table created or already exists")
	}

	if err := s.queries.ProductResetIDSequence(ctx, s.db); err != nil {
		failed++
		s.logger.ErrorContext(ctx, "failed to reset product id sequence", slog.Any("error", err))
	} else {
		s.logger.InfoContext(ctx, "product id sequence reset")
	}

	tag, err := s.queries.ProductDeleteInvalid(ctx, s.db)
	if err != nil {
		failed++
		s.logger.ErrorContext(ctx, "failed to remove rows with invalid id", slog.Any("error", err))
	} else {
		s.logger.InfoContext(ctx, "rows with invalid id removed", slog.Int64("count", tag.RowsAffected()))
	}

	return failed
}
