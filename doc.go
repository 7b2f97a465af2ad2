// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the audiobook voting API server.

Users cast one vote per audiobook, and clients list audiobooks with their
vote counts and whether a given user has voted for each.

# Starting the Server

With no configuration the server listens on :5000 and stores data in
audiobooks.db (SQLite):

	go run .

PostgreSQL instead:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

Settings may also live in a .env file (see package cliparse).

# Startup

On boot the server creates the schema if needed and seeds nine audiobooks
when the audiobook table is empty. Restarting never duplicates them.

# Architecture

  - handlers: HTTP request handlers (users, audiobooks, votes)
  - store: Store interface and its SQL implementation
  - router: Route definitions using Go 1.22+ routing
  - middleware: request IDs, CORS, logging, request parsing, JSON helpers
  - models: Request/response types and validation
  - db: Connection, schema creation, seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
