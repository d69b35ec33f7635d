package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/mo"
	"go.uber.org/zap"
)

type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresStore struct {
	db    Database
	close func()
}

func NewPostgresStore(db Database) *PostgresStore {
	return &PostgresStore{
		db:    db,
		close: func() {},
	}
}

// OpenPostgres connects a pool, pings it and applies migrations.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	cfgpool, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("can't parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("can't ping postgres: %w", err)
	}
	if err = RunPostgresMigrations(pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{
		db:    pool,
		close: pool.Close,
	}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (mo.Option[string], error) {
	var value string
	err := s.db.QueryRow(ctx, "SELECT value FROM kv_entries WHERE key = $1", key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return mo.None[string](), nil
	}
	if err != nil {
		zap.L().Error("can't get entry", zap.String("key", key), zap.Error(err))
		return mo.None[string](), fmt.Errorf("failed to get %s: %w", key, err)
	}
	return mo.Some(value), nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query := `
        INSERT INTO kv_entries (key, value)
        VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
    `
	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		zap.L().Error("can't set entry", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, "DELETE FROM kv_entries WHERE key = $1", key); err != nil {
		zap.L().Error("can't remove entry", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.close()
	return nil
}
