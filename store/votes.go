// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/audiobook-votes/models"
)

// CastVote records a vote after checking, in order, that the user exists,
// that the audiobook exists, and that the pair has not voted yet. The
// duplicate check is the UNIQUE (user_id, audiobook_id) constraint itself.
func (s *SQLStore) CastVote(ctx context.Context, userID, audioBookID models.ID) (models.Vote, error) {
	uid, ok := parseID(userID)
	if !ok {
		return models.Vote{}, ErrUserNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := rowExists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, uid, ErrUserNotFound); err != nil {
		return models.Vote{}, err
	}

	bid, ok := parseID(audioBookID)
	if !ok {
		return models.Vote{}, ErrAudioBookNotFound
	}
	if err := rowExists(ctx, tx, `SELECT EXISTS(SELECT 1 FROM audiobook WHERE id = $1)`, bid, ErrAudioBookNotFound); err != nil {
		return models.Vote{}, err
	}

	vote := models.Vote{UserID: uid, AudioBookID: bid}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO vote (user_id, audiobook_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, audiobook_id) DO NOTHING
		RETURNING id
	`, uid, bid).Scan(&vote.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vote{}, ErrDuplicateVote
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Vote{}, fmt.Errorf("failed to commit vote: %w", err)
	}

	return vote, nil
}

func rowExists(ctx context.Context, tx *sql.Tx, query string, id int64, notFound error) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check existence: %w", err)
	}
	if !exists {
		return notFound
	}
	return nil
}
