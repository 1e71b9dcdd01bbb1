package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"esgtracker/internal/adapters/migrator"
	"esgtracker/internal/domain"
)

//go:embed migrations/*.sql
var migrations embed.FS

const defaultTimeout = 5 * time.Second

type DB struct {
	Pool    *pgxpool.Pool
	Timeout time.Duration
}

func Connect(ctx context.Context, url string, timeout time.Duration) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &DB{Pool: pool, Timeout: timeout}, nil
}

func (db *DB) Close() { db.Pool.Close() }

func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	if err := db.Pool.Ping(ctx); err != nil {
		return storageErr("ping", err)
	}
	return nil
}

// Migrate runs a goose command (up, down, status) against the embedded
// migrations.
func (db *DB) Migrate(ctx context.Context, command string) error {
	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	defer sqlDB.Close()
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}
	return migrator.Run(ctx, goose.DialectPostgres, sqlDB, fsys, command)
}

func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.Timeout)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("postgres %s: %w: %w", op, domain.ErrStorage, err)
}
