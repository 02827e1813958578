package hub

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// evictIdle closes rooms that have no players and saw no activity for longer
// than the idle timeout. It returns how many rooms were closed.
func (h *Hub) evictIdle(ctx context.Context, now time.Time) int {
	ctx, span := tracer.Start(ctx, "hub.evictIdle")
	defer span.End()

	evicted := 0
	for _, r := range h.snapshot() {
		if r.PlayerCount() > 0 {
			continue
		}
		if now.Sub(r.LastActivity()) <= h.opts.IdleTimeout {
			continue
		}
		if h.CloseRoom(ctx, r.ID) {
			evicted++
		}
	}

	span.SetAttributes(attribute.Int("rooms.evicted", evicted))
	if evicted > 0 {
		slog.InfoContext(ctx, "Evicted idle rooms", "count", evicted, "rooms.remaining", h.RoomCount())
	}
	return evicted
}
