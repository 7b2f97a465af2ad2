// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/audiobook-votes/cliparse"
)

// Open connects to the configured database and verifies the connection.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	var conn *sql.DB
	var err error

	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite:
		conn, err = sql.Open("sqlite", sqliteDSN(cfg.DatabaseURL))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		// SQLite allows one writer; a single connection keeps writers queued in the pool
		// instead of failing with SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
	case cliparse.DatabasePostgres:
		conn, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// sqliteDSN turns foreign key enforcement on, which SQLite leaves off by default.
func sqliteDSN(url string) string {
	if strings.Contains(url, "foreign_keys") {
		return url
	}
	if !strings.HasPrefix(url, "file:") {
		url = "file:" + url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	var schema string
	switch dialect {
	case cliparse.DatabaseSQLite:
		schema = sqliteSchema
	case cliparse.DatabasePostgres:
		schema = postgresSchema
	default:
		return fmt.Errorf("unsupported database type %q", dialect)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const sqliteSchema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username VARCHAR(80) NOT NULL UNIQUE
);

-- Audiobooks
CREATE TABLE IF NOT EXISTS audiobook (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title VARCHAR(150) NOT NULL,
    author VARCHAR(150) NOT NULL,
    cover_image VARCHAR(200)
);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(id),
    audiobook_id INTEGER NOT NULL REFERENCES audiobook(id),
    UNIQUE (user_id, audiobook_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_audiobook_id ON vote(audiobook_id);
`

const postgresSchema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    username VARCHAR(80) NOT NULL UNIQUE
);

-- Audiobooks
CREATE TABLE IF NOT EXISTS audiobook (
    id BIGSERIAL PRIMARY KEY,
    title VARCHAR(150) NOT NULL,
    author VARCHAR(150) NOT NULL,
    cover_image VARCHAR(200)
);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id),
    audiobook_id BIGINT NOT NULL REFERENCES audiobook(id),
    UNIQUE (user_id, audiobook_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_audiobook_id ON vote(audiobook_id);
`
