package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/audiobook-votes/cliparse"
	"github.com/danielhkuo/audiobook-votes/db"
	"github.com/danielhkuo/audiobook-votes/middleware"
	"github.com/danielhkuo/audiobook-votes/router"
	"github.com/danielhkuo/audiobook-votes/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Seed the catalogue on first boot
	seeded, err := db.Seed(context.Background(), dbConn)
	if err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	if seeded == 0 {
		slog.Info("audiobooks already present, skipping seed")
	}

	// Create router
	mux := router.NewRouter(store.NewSQLStore(dbConn))

	// Create server
	server := http.Server{
		Handler: middleware.WithRequestID(middleware.CORS(mux)),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		if err := server.Shutdown(context.Background()); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
