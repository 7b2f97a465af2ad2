// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/audiobook-votes/handlers"
	"github.com/danielhkuo/audiobook-votes/middleware"
	"github.com/danielhkuo/audiobook-votes/store"
)

func NewRouter(s store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(s)
	audioBookHandler := handlers.NewAudioBookHandler(s)
	voteHandler := handlers.NewVoteHandler(s)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := s.Ping(r.Context()); err != nil {
			slog.Warn("health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Users
	mux.HandleFunc("GET /users", middleware.WithLogging(userHandler.ListUsers))
	mux.HandleFunc("POST /users", middleware.WithLogging(userHandler.CreateUser))

	// Audiobooks
	mux.HandleFunc("GET /audiobooks", middleware.WithLogging(audioBookHandler.ListAudioBooks))
	mux.HandleFunc("POST /audiobooks", middleware.WithLogging(audioBookHandler.CreateAudioBook))

	// Votes
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.CastVote))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("audiobook-votes API v1"))
	})

	return mux
}
