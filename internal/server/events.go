package server

import (
	"log/slog"
	"net/http"

	"github.com/ritikas/giftpool/internal/sse"
)

// Events streams live collection snapshots. The client is primed with the
// current state of every collection so "read all" and "live updates" are one
// subscription, then receives a fresh snapshot after every write.
func (a *App) Events(w http.ResponseWriter, r *http.Request) {
	client := a.Hub.Register()
	defer a.Hub.Unregister(client)

	a.prime(r, client)
	a.Hub.ServeHTTP(w, r, client)
}

// prime queues the current snapshots onto a newly connected client. A failed
// read only costs the initial snapshot of that collection; the stream itself
// still runs and the next write re-broadcasts.
func (a *App) prime(r *http.Request, client *sse.Client) {
	ctx := r.Context()

	if coworkers, err := a.Store.ListCoworkers(ctx); err == nil {
		client.Outbound <- sse.Snapshot{Collection: sse.CollectionCoworkers, Data: coworkers}
	} else {
		slog.Error("Initial coworkers snapshot failed", "error", err)
	}

	if contributions, err := a.Store.ListContributions(ctx); err == nil {
		client.Outbound <- sse.Snapshot{Collection: sse.CollectionContributions, Data: contributions}
	} else {
		slog.Error("Initial contributions snapshot failed", "error", err)
	}

	if info, err := a.Store.GetPaymentInfo(ctx); err == nil {
		client.Outbound <- sse.Snapshot{Collection: sse.CollectionPaymentInfo, Data: info}
	} else {
		slog.Error("Initial payment info snapshot failed", "error", err)
	}
}
