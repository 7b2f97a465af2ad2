// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/audiobook-votes/models"
)

const coverBase = "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/"

func cover(path string) *string {
	s := coverBase + path
	return &s
}

// SeedAudioBooks is the catalogue inserted into an empty audiobook table.
var SeedAudioBooks = []models.AudioBook{
	{Title: "The Help", Author: "Kathryn Stockett", CoverImage: cover("1622355533i/4667024.jpg")},
	{Title: "Harry Potter and the Sorcerer's Stone", Author: "J.K. Rowling", CoverImage: cover("1474154022i/3.jpg")},
	{Title: "Harry Potter and the Prisoner of Azkaban", Author: "J.K. Rowling", CoverImage: cover("1630547330i/5.jpg")},
	{Title: "Bossypants", Author: "Tina Fey", CoverImage: cover("1481509554i/9418327.jpg")},
	{Title: "Ready Player One", Author: "Ernest Cline", CoverImage: cover("1500930947i/9969571.jpg")},
	{Title: "Harry Potter and the Chamber of Secrets", Author: "J.K. Rowling", CoverImage: cover("1474169725i/15881.jpg")},
	{Title: "The Book Thief", Author: "Markus Zusak", CoverImage: cover("1522157426i/19063.jpg")},
	{Title: "Harry Potter and the Deathly Hallows", Author: "J.K. Rowling", CoverImage: cover("1663805647i/136251.jpg")},
	{Title: "Water for Elephants", Author: "Sara Gruen", CoverImage: cover("1722456144i/43641.jpg")},
}

// Seed inserts SeedAudioBooks if the audiobook table is empty and returns how
// many rows it added. The count and inserts share one transaction, so repeated
// boots never duplicate the catalogue.
func Seed(ctx context.Context, db *sql.DB) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM audiobook`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count audiobooks: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, book := range SeedAudioBooks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO audiobook (title, author, cover_image)
			VALUES ($1, $2, $3)
		`, book.Title, book.Author, book.CoverImage)
		if err != nil {
			return 0, fmt.Errorf("failed to seed %q: %w", book.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}

	slog.Info("audiobooks seeded", "count", len(SeedAudioBooks))
	return len(SeedAudioBooks), nil
}
