// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/audiobook-votes/middleware"
	"github.com/danielhkuo/audiobook-votes/models"
	"github.com/danielhkuo/audiobook-votes/store"
)

type VoteHandler struct {
	store store.Store
}

func NewVoteHandler(s store.Store) *VoteHandler {
	return &VoteHandler{store: s}
}

// CastVote handles POST /votes
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseRequest(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		middleware.ValidationError(w, err)
		return
	}

	vote, err := h.store.CastVote(r.Context(), req.UserID, req.AudioBookID)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, store.ErrAudioBookNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Audiobook not found")
		return
	case errors.Is(err, store.ErrDuplicateVote):
		middleware.ErrorResponse(w, http.StatusBadRequest, "User has already voted for this audiobook")
		return
	case err != nil:
		slog.Error("failed to cast vote", "error", err, "user_id", req.UserID, "audiobook_id", req.AudioBookID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("vote cast", "vote_id", vote.ID, "user_id", vote.UserID, "audiobook_id", vote.AudioBookID)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		Message: "Vote cast successfully",
		Vote:    vote,
	})
}
