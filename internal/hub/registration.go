package hub

import (
	"context"
	"log/slog"

	"ctchen222/tictactoe-ai/internal/hub/types"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// handleRegistration attaches a websocket player to the requested room,
// opening a new one when the id is empty or unknown. The player gets its
// assignment and the current board before its read pump starts.
func (h *Hub) handleRegistration(ctx context.Context, req *types.RegistrationRequest) {
	spanCtx := ctx
	if req.Ctx != nil {
		spanCtx = trace.ContextWithSpanContext(ctx, trace.SpanContextFromContext(req.Ctx))
	}
	spanCtx, span := tracer.Start(spanCtx, "hub.handleRegistration", trace.WithAttributes(
		attribute.String("player.id", req.Player.ID),
		attribute.String("room.requested_id", req.RoomID),
	))
	defer span.End()

	r, ok := h.Room(req.RoomID)
	if !ok {
		if req.RoomID != "" {
			slog.InfoContext(spanCtx, "Requested room not found, opening a new one", "room.requested_id", req.RoomID, "player.id", req.Player.ID)
		}
		r = h.CreateRoom(spanCtx)
	}
	span.SetAttributes(attribute.String("room.id", r.ID))

	r.AddPlayer(req.Player)
	if err := r.SendState(spanCtx, req.Player); err != nil {
		slog.ErrorContext(spanCtx, "Error sending initial state to player", "player.id", req.Player.ID, "room.id", r.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error sending initial state")
		r.RemovePlayer(req.Player.ID)
		req.Player.Conn.Close()
		return
	}

	// The pump outlives the HTTP request, so it runs on the hub's context.
	go r.ReadPump(ctx, req.Player, h.unregister)
	slog.InfoContext(spanCtx, "Player joined room", "player.id", req.Player.ID, "room.id", r.ID)
}
