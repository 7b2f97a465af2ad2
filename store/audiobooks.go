// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/audiobook-votes/models"
)

func (s *SQLStore) CreateAudioBook(ctx context.Context, book models.AudioBook) (models.AudioBook, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO audiobook (title, author, cover_image)
		VALUES ($1, $2, $3)
		RETURNING id
	`, book.Title, book.Author, book.CoverImage).Scan(&book.ID)
	if err != nil {
		return models.AudioBook{}, fmt.Errorf("failed to insert audiobook: %w", err)
	}

	return book, nil
}

// The LEFT OUTER JOIN keeps books without votes (COUNT(v.id) = 0). A NULL
// user parameter makes the EXISTS false for every row.
const listAudioBooksQuery = `
	SELECT a.id, a.title, a.author, a.cover_image,
	       COUNT(v.id) AS vote_count,
	       EXISTS (
	           SELECT 1 FROM vote uv
	           WHERE uv.audiobook_id = a.id AND uv.user_id = $1
	       ) AS user_voted
	FROM audiobook a
	LEFT OUTER JOIN vote v ON v.audiobook_id = a.id
	GROUP BY a.id, a.title, a.author, a.cover_image
	ORDER BY a.id
`

func (s *SQLStore) ListAudioBooks(ctx context.Context, userID models.ID) ([]models.AudioBookWithVotes, error) {
	var voter sql.NullInt64
	if id, ok := parseID(userID); ok {
		voter = sql.NullInt64{Int64: id, Valid: true}
	}

	rows, err := s.db.QueryContext(ctx, listAudioBooksQuery, voter)
	if err != nil {
		return nil, fmt.Errorf("failed to query audiobooks: %w", err)
	}
	defer rows.Close()

	books := []models.AudioBookWithVotes{}
	for rows.Next() {
		var b models.AudioBookWithVotes
		var cover sql.NullString
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &cover, &b.VoteCount, &b.UserVoted); err != nil {
			return nil, fmt.Errorf("failed to scan audiobook: %w", err)
		}
		if cover.Valid {
			b.CoverImage = &cover.String
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audiobooks: %w", err)
	}

	return books, nil
}
