// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DatabaseURL: SQLite file or PostgreSQL connection string
    (default for SQLite: audiobooks.db, required for PostgreSQL)
  - EnvFile: .env file loaded before reading the environment (default: .env)

# CLI Flags

	-p    Server port
	-d    Database URL
	-t    Database type
	-env  Path to a .env file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ENV_FILE      → -env

CLI flags take precedence over environment variables, and variables already
present in the environment take precedence over the .env file. A missing
.env file is ignored.
*/
package cliparse
