// Package server wires the HTTP API: a chi router over the domain services,
// the SSE snapshot feed, and the static SPA files.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ritikas/giftpool/internal/auth"
	"github.com/ritikas/giftpool/internal/calculator"
	"github.com/ritikas/giftpool/internal/service"
	"github.com/ritikas/giftpool/internal/sse"
	"github.com/ritikas/giftpool/internal/storage"
)

// App bundles the handlers' dependencies.
type App struct {
	Sessions      *service.SessionService
	Coworkers     *service.CoworkerService
	Contributions *service.ContributionService
	Payments      *service.PaymentService
	Hub           *sse.Hub
	SessionMgr    *auth.SessionManager
	Store         storage.Store
	StaticDir     string
}

func (a *App) json(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": code, "message": message})
}

// serviceError maps domain errors onto HTTP statuses. Anything unrecognized
// is an internal error; per the error model it has already been logged and is
// terminal for this operation.
func (a *App) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrInvalidBirthday),
		errors.Is(err, service.ErrSelfContribution),
		errors.Is(err, calculator.ErrPledgeAmountRequired):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, service.ErrCoworkerNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	default:
		a.error(w, http.StatusInternalServerError, "internal", "operation failed")
	}
}

// Health reports liveness.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Static serves the SPA assets, falling back to index.html for unknown
// non-API paths so client-side routing works.
func (a *App) Static(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		http.NotFound(w, r)
		return
	}

	urlPath := r.URL.Path
	if urlPath == "/" {
		urlPath = "/index.html"
	}

	filePath := filepath.Join(a.StaticDir, filepath.Clean(urlPath))
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(a.StaticDir, "index.html"))
		return
	}

	http.ServeFile(w, r, filePath)
}
