package room

import (
	"context"
	"encoding/json"
	"log/slog"

	"ctchen222/tictactoe-ai/internal/player"
	"ctchen222/tictactoe-ai/internal/validator"
	"ctchen222/tictactoe-ai/pkg/proto"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HandleMessage handles a message from a player. It acts as a dispatcher.
func (r *Room) HandleMessage(ctx context.Context, p *player.Player, rawMessage []byte) {
	ctx, span := tracer.Start(ctx, "room.HandleMessage", trace.WithAttributes(
		attribute.String("player.id", p.ID),
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	var message proto.ClientToServerMessage
	if err := json.Unmarshal(rawMessage, &message); err != nil {
		slog.ErrorContext(ctx, "error unmarshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error unmarshalling message")
		return
	}

	if err := validator.GetValidator().Struct(message); err != nil {
		slog.WarnContext(ctx, "invalid message from player", "player.id", p.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		return
	}

	span.SetAttributes(attribute.String("message.type", message.Type))

	switch message.Type {
	case proto.TypeClick:
		r.handleClick(ctx, p, &message)
	case proto.TypeRestart:
		r.HandleRestartRequest(ctx)
	}
}

// handleClick processes a player's click.
func (r *Room) handleClick(ctx context.Context, p *player.Player, message *proto.ClientToServerMessage) {
	if len(message.Position) != 2 {
		slog.WarnContext(ctx, "click without a position", "player.id", p.ID, "room.id", r.ID)
		return
	}

	r.HandleHumanClick(ctx, message.Position[0], message.Position[1])
}
