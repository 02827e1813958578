package hub

import (
	"context"
	"log/slog"

	"ctchen222/tictactoe-ai/internal/player"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// handleUnregistration detaches a disconnected player from whichever room
// holds it. The room itself stays open for the janitor to reclaim.
func (h *Hub) handleUnregistration(ctx context.Context, p *player.Player) {
	ctx, span := tracer.Start(ctx, "hub.handleUnregistration", trace.WithAttributes(
		attribute.String("player.id", p.ID),
	))
	defer span.End()

	for _, r := range h.snapshot() {
		if r.RemovePlayer(p.ID) {
			span.SetAttributes(attribute.String("room.id", r.ID))
			slog.InfoContext(ctx, "Player removed from room", "player.id", p.ID, "room.id", r.ID, "players.remaining", r.PlayerCount())
			return
		}
	}
	slog.DebugContext(ctx, "Unregistered player was in no room", "player.id", p.ID)
}

// ping sends a heartbeat to every connected player.
func (h *Hub) ping(ctx context.Context) {
	for _, r := range h.snapshot() {
		r.Ping(ctx)
	}
}

// disconnectAll closes every player connection on shutdown.
func (h *Hub) disconnectAll() {
	for _, r := range h.snapshot() {
		r.CloseAll()
	}
}
