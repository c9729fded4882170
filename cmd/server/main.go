package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/ritikas/giftpool/internal/auth"
	"github.com/ritikas/giftpool/internal/config"
	"github.com/ritikas/giftpool/internal/server"
	"github.com/ritikas/giftpool/internal/service"
	"github.com/ritikas/giftpool/internal/sse"
	"github.com/ritikas/giftpool/internal/storage/sqlite"
	"github.com/ritikas/giftpool/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	// One database file per tenant namespace.
	dbPath := filepath.Join(cfg.DataDir, cfg.Namespace+".db")
	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath, "namespace", cfg.Namespace)

	hub := sse.NewHub()
	sessions := auth.NewSessionManager(cfg.JWTSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)

	staticDir, err := filepath.Abs(cfg.StaticDir)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	slog.Info("Serving static files", "path", staticDir)

	app := &server.App{
		Sessions:      service.NewSessionService(sessions, store),
		Coworkers:     service.NewCoworkerService(store, hub),
		Contributions: service.NewContributionService(store, hub),
		Payments:      service.NewPaymentService(store, hub),
		Hub:           hub,
		SessionMgr:    sessions,
		Store:         store,
		StaticDir:     staticDir,
	}

	// Wrap with h2c for HTTP/2 without TLS.
	handler := h2c.NewHandler(server.NewRouter(app), &http2.Server{})

	slog.Info("Server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
