// Package sse delivers live collection snapshots to connected browsers over
// Server-Sent Events.
//
// The store is the single source of truth: after every successful write a
// service reloads the affected collection in full and broadcasts it here.
// Clients hold no merge logic; each snapshot unconditionally replaces their
// in-memory view of that collection. Slow clients drop snapshots rather than
// block writers, which is safe because a later snapshot supersedes anything
// a client missed.
package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collection names the collections a snapshot can replace.
type Collection string

const (
	CollectionCoworkers     Collection = "coworkers"
	CollectionContributions Collection = "contributions"
	CollectionPaymentInfo   Collection = "paymentInfo"
)

// Snapshot is one whole-collection replacement event.
type Snapshot struct {
	Collection Collection `json:"collection"`
	Data       any        `json:"data"`
}

// Client is one connected event stream.
type Client struct {
	ID       string
	Outbound chan Snapshot
	done     chan struct{}
}

var connectedClients = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "giftpool_sse_clients",
	Help: "Number of connected snapshot stream clients.",
})

// Hub fans snapshots out to every connected client.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
	}
}

// Register adds a new client to the hub and returns it.
func (h *Hub) Register() *Client {
	client := &Client{
		ID:       uuid.New().String(),
		Outbound: make(chan Snapshot, 16),
		done:     make(chan struct{}),
	}

	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
	connectedClients.Inc()

	slog.Debug("SSE client connected", "client_id", client.ID)
	return client
}

// Unregister removes a client and releases its channels. Safe to call once
// per client.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	if !h.clients[client] {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	h.mu.Unlock()
	connectedClients.Dec()

	close(client.done)
	slog.Debug("SSE client disconnected", "client_id", client.ID)
}

// Broadcast sends a snapshot to every connected client. Clients whose
// outbound buffer is full miss this snapshot; the next one replaces it anyway.
func (h *Hub) Broadcast(snapshot Snapshot) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.Outbound <- snapshot:
		case <-client.done:
		default:
			slog.Warn("Dropping snapshot; client buffer full",
				"client_id", client.ID,
				"collection", snapshot.Collection,
			)
		}
	}
}

// ClientCount reports how many clients are connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP streams the client's snapshots until the request context ends or
// the client is unregistered. Heartbeat comments keep idle connections alive
// through proxies.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request, client *Client) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-client.done:
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case snapshot := <-client.Outbound:
			payload, err := json.Marshal(snapshot)
			if err != nil {
				slog.Warn("Failed to marshal snapshot", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
