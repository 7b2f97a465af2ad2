// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/danielhkuo/audiobook-votes/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrAudioBookNotFound = errors.New("audiobook not found")
	ErrDuplicateVote     = errors.New("user has already voted for this audiobook")
)

// Store is everything the handlers need from persistence.
type Store interface {
	Ping(ctx context.Context) error

	ListUsers(ctx context.Context) ([]models.User, error)
	// FindOrCreateUser returns the user with this username, creating it if
	// needed. created reports whether a new row was inserted.
	FindOrCreateUser(ctx context.Context, username string) (user models.User, created bool, err error)

	CreateAudioBook(ctx context.Context, book models.AudioBook) (models.AudioBook, error)
	// ListAudioBooks returns every audiobook with its vote count, and
	// UserVoted set for books that userID voted on. An empty or unknown
	// userID marks nothing.
	ListAudioBooks(ctx context.Context, userID models.ID) ([]models.AudioBookWithVotes, error)

	CastVote(ctx context.Context, userID, audioBookID models.ID) (models.Vote, error)
}

// SQLStore implements Store on database/sql. Queries use $N placeholders,
// accepted by both the SQLite and PostgreSQL drivers.
type SQLStore struct {
	db *sql.DB
}

var _ Store = (*SQLStore)(nil)

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// parseID converts a client reference to a row id. ok is false for values
// that cannot name any row.
func parseID(id models.ID) (n int64, ok bool) {
	n, err := strconv.ParseInt(id.String(), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func (s *SQLStore) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, username FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (s *SQLStore) FindOrCreateUser(ctx context.Context, username string) (models.User, bool, error) {
	user := models.User{Username: username}

	// ON CONFLICT leaves the existing row alone, so two racing requests for
	// the same name both end up with one user.
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username) VALUES ($1)
		ON CONFLICT (username) DO NOTHING
		RETURNING id
	`, username).Scan(&user.ID)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, false, fmt.Errorf("failed to insert user: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT id FROM users WHERE username = $1
	`, username).Scan(&user.ID)
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to query user: %w", err)
	}

	return user, false, nil
}
