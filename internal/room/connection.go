package room

import (
	"context"
	"encoding/json"
	"log/slog"

	"ctchen222/tictactoe-ai/internal/player"
	"ctchen222/tictactoe-ai/pkg/proto"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Broadcast sends the current state to every player in the room.
func (r *Room) Broadcast(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.broadcastLocked(ctx)
}

// broadcastLocked sends the current state while r.mu is held, so updates
// reach each player in the order the state changed.
func (r *Room) broadcastLocked(ctx context.Context) {
	message := r.renderStateLocked().Message()

	ctx, span := tracer.Start(ctx, "room.Broadcast", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("message.type", message.Type),
		attribute.Int("player.count", len(r.players)),
	))
	defer span.End()

	data, err := json.Marshal(message)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error marshalling message")
		return
	}

	for _, p := range r.players {
		if err := p.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.ErrorContext(ctx, "error writing message to player", "player.id", p.ID, "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Error writing message to player")
		}
	}
}

// SendState sends the room's assignment and current state to one player.
func (r *Room) SendState(ctx context.Context, p *player.Player) error {
	assignment, err := json.Marshal(&proto.PlayerAssignmentMessage{
		Type:     proto.TypeAssignment,
		RoomID:   r.ID,
		PlayerID: p.ID,
		Mark:     humanMark.String(),
	})
	if err != nil {
		return err
	}
	if err := p.WriteMessage(websocket.TextMessage, assignment); err != nil {
		return err
	}

	update, err := json.Marshal(r.QueryRenderState().Message())
	if err != nil {
		return err
	}
	return p.WriteMessage(websocket.TextMessage, update)
}

// ReadPump pumps messages from the player's connection into the room until
// the connection fails, then hands the player to unregister.
func (r *Room) ReadPump(ctx context.Context, p *player.Player, unregister chan<- *player.Player) {
	ctx, span := tracer.Start(ctx, "room.ReadPump", trace.WithAttributes(
		attribute.String("player.id", p.ID),
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	defer func() {
		p.Conn.Close()
		select {
		case unregister <- p:
		case <-ctx.Done():
		}
		slog.InfoContext(ctx, "Player disconnected", "player.id", p.ID, "room.id", r.ID)
	}()

	for {
		_, msg, err := p.Conn.ReadMessage()
		if err != nil {
			slog.WarnContext(ctx, "Player connection error", "player.id", p.ID, "room.id", r.ID, "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Player connection error")
			return
		}
		r.HandleMessage(ctx, p, msg)
	}
}

// Ping sends a heartbeat to every player.
func (r *Room) Ping(ctx context.Context) {
	r.mu.Lock()
	players := make([]*player.Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, p)
	}
	r.mu.Unlock()

	for _, p := range players {
		if err := p.WriteMessage(websocket.PingMessage, nil); err != nil {
			slog.WarnContext(ctx, "Failed to send ping to player, assuming disconnect", "player.id", p.ID, "room.id", r.ID, "error", err)
		}
	}
}

// CloseAll closes every player's connection. Their read pumps then exit.
func (r *Room) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.players {
		if err := p.Conn.Close(); err != nil {
			slog.Warn("error closing player connection", "player.id", id, "room.id", r.ID, "error", err)
		}
	}
}
