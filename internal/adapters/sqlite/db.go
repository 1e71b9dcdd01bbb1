// Package sqlite is a single-file store for local runs and tests. It
// implements the same repositories as the postgres adapter.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"esgtracker/internal/adapters/migrator"
	"esgtracker/internal/domain"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	defaultTimeout = 5 * time.Second
	// Fixed-width UTC layout so text ordering matches time ordering.
	timeLayout = "2006-01-02 15:04:05.000000000"
)

type DB struct {
	SQL     *sql.DB
	Path    string
	Timeout time.Duration
}

// Open opens or creates the database file. Writes are serialized through a
// single connection.
func Open(ctx context.Context, path string, timeout time.Duration) (*DB, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve sqlite path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure sqlite dir: %w", err)
	}

	dsn := absPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &DB{SQL: sqlDB, Path: absPath, Timeout: timeout}, nil
}

func (db *DB) Close() { _ = db.SQL.Close() }

func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	if err := db.SQL.PingContext(ctx); err != nil {
		return storageErr("ping", err)
	}
	return nil
}

// Migrate runs a goose command (up, down, status) against the embedded
// migrations.
func (db *DB) Migrate(ctx context.Context, command string) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}
	return migrator.Run(ctx, goose.DialectSQLite3, db.SQL, fsys, command)
}

func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.Timeout)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("sqlite %s: %w: %w", op, domain.ErrStorage, err)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.ParseInLocation(timeLayout, s, time.UTC)
}
