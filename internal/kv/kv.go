package kv

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/mo"
)

// Store is a flat string key-value store. Get returns None for absent keys.
type Store interface {
	Get(ctx context.Context, key string) (mo.Option[string], error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

const (
	schemeMemory   = "memory"
	schemePostgres = "postgres"
	schemePgSQL    = "postgresql"
	schemeSQLite   = "sqlite"
)

// Open picks a driver by DSN scheme: memory://, postgres://, postgresql://
// or sqlite://<path>. An empty DSN opens an in-memory store.
func Open(ctx context.Context, dsn string) (Store, error) {
	scheme, rest, found := strings.Cut(dsn, "://")
	if dsn == "" || !found {
		scheme = schemeMemory
	}

	switch scheme {
	case schemeMemory:
		return NewMemoryStore(), nil
	case schemePostgres, schemePgSQL:
		store, err := OpenPostgres(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return store, nil
	case schemeSQLite:
		store, err := OpenSQLite(ctx, rest)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported store scheme: %s", scheme)
	}
}
