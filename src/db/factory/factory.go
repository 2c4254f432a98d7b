// Package factory opens the configured record store backend.
package factory

import (
	"context"
	"fmt"

	"fintrack-server/src/config"
	"fintrack-server/src/db"
	"fintrack-server/src/db/postgres"
	"fintrack-server/src/db/sqlite"
)

// Open returns the store selected by cfg.DBBackend. SQLite is the
// default; Postgres is opted into with DB_BACKEND=postgres.
func Open(ctx context.Context, cfg config.Config) (db.Store, error) {
	switch cfg.DBBackend {
	case "sqlite":
		return sqlite.New(cfg.SQLitePath)
	case "postgres":
		return postgres.New(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported db backend: %s", cfg.DBBackend)
	}
}
