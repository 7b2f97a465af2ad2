// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/audiobook-votes/middleware"
	"github.com/danielhkuo/audiobook-votes/models"
	"github.com/danielhkuo/audiobook-votes/store"
)

type AudioBookHandler struct {
	store store.Store
}

func NewAudioBookHandler(s store.Store) *AudioBookHandler {
	return &AudioBookHandler{store: s}
}

// ListAudioBooks handles GET /audiobooks?user_id=
// user_id must be present; an empty value just marks no votes
func (h *AudioBookHandler) ListAudioBooks(w http.ResponseWriter, r *http.Request) {
	var req models.ListAudioBooksRequest
	req.BindForm(r.URL.Query())
	if err := req.Validate(); err != nil {
		middleware.ValidationError(w, err)
		return
	}

	books, err := h.store.ListAudioBooks(r.Context(), req.UserID)
	if err != nil {
		slog.Error("failed to list audiobooks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, books)
}

// CreateAudioBook handles POST /audiobooks
func (h *AudioBookHandler) CreateAudioBook(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAudioBookRequest
	if err := middleware.ParseRequest(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		middleware.ValidationError(w, err)
		return
	}

	book, err := h.store.CreateAudioBook(r.Context(), models.AudioBook{
		Title:      req.Title,
		Author:     req.Author,
		CoverImage: &req.CoverImage,
	})
	if err != nil {
		slog.Error("failed to create audiobook", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("audiobook created", "audiobook_id", book.ID, "title", book.Title)

	// A new book has no votes yet
	middleware.JSONResponse(w, http.StatusCreated, models.AudioBookWithVotes{AudioBook: book})
}
