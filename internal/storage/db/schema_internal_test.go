package db

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db/sqlc"
)

type execFunc func(sql string) (pgconn.CommandTag, error)

type fakeDB struct {
	exec     execFunc
	executed []string
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.executed = append(f.executed, sql)
	return f.exec(sql)
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func (f *fakeDB) WithTx(_ context.Context, txFunc func(DB) error) error {
	return txFunc(f)
}

func newTestInitializer(db DB, migrateErr error) (*SchemaInitializer, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := NewSchemaInitializer(nil, db, *sqlc.New(), logger)
	s.migrate = func(context.Context, *pgxpool.Pool, *slog.Logger) error {
		return migrateErr
	}
	return s, &buf
}

func TestSchemaInitializerRun(t *testing.T) {
	t.Run("Should run every step", func(t *testing.T) {
		db := &fakeDB{exec: func(string) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}}
		s, buf := newTestInitializer(db, nil)

		failed := s.Run(context.Background())

		assert.Equal(t, 0, failed)
		assert.Len(t, db.executed, 2)
		assert.Contains(t, buf.String(), "product table created or already exists")
		assert.Contains(t, buf.String(), "rows with invalid id removed")
	})

	t.Run("Should keep going when steps fail", func(t *testing.T) {
		db := &fakeDB{exec: func(sql string) (pgconn.CommandTag, error) {
			if strings.Contains(sql, "setval") {
				return pgconn.CommandTag{}, errors.New("permission denied")
			}
			return pgconn.NewCommandTag("DELETE 1"), nil
		}}
		s, buf := newTestInitializer(db, errors.New("relation locked"))

		failed := s.Run(context.Background())

		assert.Equal(t, 2, failed)
		assert.Len(t, db.executed, 2)
		assert.Contains(t, buf.String(), "failed to create or verify product table")
		assert.Contains(t, buf.String(), "failed to reset product id sequence")
		assert.Contains(t, buf.String(), "count=1")
	})
}
