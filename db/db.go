// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/habit-tracker/db/migrations"
)

const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

func init() {
	// modernc registers "sqlite", which sqlx does not know the bindvar style of.
	sqlx.BindDriver(TypeSQLite, sqlx.QUESTION)
}

// Open connects to the database of the given type. url is a file path (or
// ":memory:") for sqlite and a connection string for postgres.
func Open(ctx context.Context, dbType, url string) (*sqlx.DB, error) {
	var driver string
	switch dbType {
	case TypeSQLite:
		driver = TypeSQLite
	case TypePostgres:
		driver = TypePostgres
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sqlx.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	if dbType == TypeSQLite {
		// One writer at a time; also keeps ":memory:" on a single database.
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return conn, nil
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// Migrate applies every pending embedded migration.
// Safe to call on an up-to-date database.
func Migrate(ctx context.Context, conn *sqlx.DB, dbType string) error {
	dialect := "sqlite3"
	if dbType == TypePostgres {
		dialect = "postgres"
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, conn.DB, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
