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

type UserHandler struct {
	store store.Store
}

func NewUserHandler(s store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}

// CreateUser handles POST /users
// Returns the existing user (200) when the username is taken, otherwise 201
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.ParseRequest(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		middleware.ValidationError(w, err)
		return
	}

	user, created, err := h.store.FindOrCreateUser(r.Context(), req.Username)
	if err != nil {
		slog.Error("failed to find or create user", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !created {
		middleware.JSONResponse(w, http.StatusOK, models.ExistingUserResponse{
			Success: true,
			User:    user,
		})
		return
	}

	slog.Info("user created", "user_id", user.ID, "username", user.Username)
	middleware.JSONResponse(w, http.StatusCreated, user)
}
