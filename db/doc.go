// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema, and seeds the catalogue.

# Connecting

Open picks the driver from the configured database type and pings it:

	conn, err := db.Open(cfg)

SQLite (modernc.org/sqlite) is the default. Foreign keys are switched on
through the DSN and the pool is limited to one connection. PostgreSQL uses
github.com/lib/pq.

# Schema Creation

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: id, username (unique)
  - audiobook: id, title, author, cover_image (nullable)
  - vote: id, user_id, audiobook_id, UNIQUE (user_id, audiobook_id)

# Relationships

	users 1──* vote
	audiobook 1──* vote

# Seeding

Seed fills an empty audiobook table with SeedAudioBooks in one transaction
and does nothing when the table already has rows.
*/
package db
