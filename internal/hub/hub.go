// Package hub keeps the registry of rooms and attaches websocket players
// to them.
package hub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ctchen222/tictactoe-ai/internal/hub/types"
	"ctchen222/tictactoe-ai/internal/player"
	"ctchen222/tictactoe-ai/internal/room"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("hub")
	meter  = otel.Meter("hub")
)

// Options tunes the hub's rooms and background work.
type Options struct {
	Layout            room.Layout
	IdleTimeout       time.Duration
	HeartbeatInterval time.Duration
	JanitorInterval   time.Duration
}

// Hub manages all the rooms and players.
type Hub struct {
	opts           Options
	moveCalculator room.MoveCalculator

	mu    sync.RWMutex
	rooms map[string]*room.Room

	register   chan *types.RegistrationRequest
	unregister chan *player.Player

	activeRooms metric.Int64UpDownCounter
}

// NewHub creates a new hub. Every room shares the one move calculator.
func NewHub(calculator room.MoveCalculator, opts Options) *Hub {
	activeRooms, err := meter.Int64UpDownCounter("hub.rooms.active",
		metric.WithDescription("Rooms currently held by the hub"))
	if err != nil {
		slog.Warn("failed to create hub.rooms.active counter", "error", err)
	}

	return &Hub{
		opts:           opts.withDefaults(),
		moveCalculator: calculator,
		rooms:          make(map[string]*room.Room),
		register:       make(chan *types.RegistrationRequest),
		unregister:     make(chan *player.Player),
		activeRooms:    activeRooms,
	}
}

// Run starts the hub and blocks until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	heartbeat := time.NewTicker(h.opts.HeartbeatInterval)
	defer heartbeat.Stop()
	janitor := time.NewTicker(h.opts.JanitorInterval)
	defer janitor.Stop()

	slog.InfoContext(ctx, "Hub started",
		"heartbeat", h.opts.HeartbeatInterval.String(),
		"janitor", h.opts.JanitorInterval.String(),
		"idle_timeout", h.opts.IdleTimeout.String())

	for {
		select {
		case <-ctx.Done():
			h.disconnectAll()
			slog.Info("Hub stopped")
			return

		case req := <-h.register:
			h.handleRegistration(ctx, req)

		case p := <-h.unregister:
			h.handleUnregistration(ctx, p)

		case <-heartbeat.C:
			h.ping(ctx)

		case now := <-janitor.C:
			h.evictIdle(ctx, now)
		}
	}
}

// CreateRoom opens a room with a fresh game.
func (h *Hub) CreateRoom(ctx context.Context) *room.Room {
	ctx, span := tracer.Start(ctx, "hub.CreateRoom")
	defer span.End()

	r := room.NewRoom(uuid.NewString(), h.opts.Layout, h.moveCalculator)
	span.SetAttributes(attribute.String("room.id", r.ID))

	h.mu.Lock()
	h.rooms[r.ID] = r
	h.mu.Unlock()

	if h.activeRooms != nil {
		h.activeRooms.Add(ctx, 1)
	}
	slog.InfoContext(ctx, "Room created", "room.id", r.ID)
	return r
}

// Room looks up a room by id.
func (h *Hub) Room(id string) (*room.Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.rooms[id]
	return r, ok
}

// CloseRoom removes a room and disconnects its players. It reports whether
// the room existed.
func (h *Hub) CloseRoom(ctx context.Context, id string) bool {
	ctx, span := tracer.Start(ctx, "hub.CloseRoom", trace.WithAttributes(
		attribute.String("room.id", id),
	))
	defer span.End()

	h.mu.Lock()
	r, ok := h.rooms[id]
	if ok {
		delete(h.rooms, id)
	}
	h.mu.Unlock()

	if !ok {
		return false
	}

	r.CloseAll()
	if h.activeRooms != nil {
		h.activeRooms.Add(ctx, -1)
	}
	slog.InfoContext(ctx, "Room closed", "room.id", id)
	return true
}

// Register returns the register channel.
func (h *Hub) Register() chan<- *types.RegistrationRequest {
	return h.register
}

// Unregister returns the unregister channel.
func (h *Hub) Unregister() chan<- *player.Player {
	return h.unregister
}
