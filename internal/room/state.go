package room

import (
	"context"
	"log/slog"

	"ctchen222/tictactoe-ai/internal/game"
	"ctchen222/tictactoe-ai/pkg/proto"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var gamesFinished metric.Int64Counter

func init() {
	var err error
	gamesFinished, err = meter.Int64Counter("room.games.finished",
		metric.WithDescription("Games that reached a win or a draw"))
	if err != nil {
		slog.Warn("failed to create room.games.finished counter", "error", err)
	}
}

// RenderState is a read-only snapshot of a room's game.
type RenderState struct {
	Board   game.Board
	Next    game.Cell
	Outcome game.Outcome
}

// Message converts the snapshot into the update sent to clients.
func (s RenderState) Message() *proto.ServerToClientMessage {
	return proto.NewUpdateMessage(s.Board, s.Next, s.Outcome)
}

// recordFinished counts a finished game by who won. The caller holds r.mu.
func (r *Room) recordFinished(ctx context.Context) {
	outcome := r.game.Outcome
	label := "draw"
	if outcome.Status == game.Win {
		label = "computer"
		if outcome.Winner == humanMark {
			label = "human"
		}
	}

	slog.InfoContext(ctx, "Game finished", "room.id", r.ID, "outcome", outcome.String())
	if gamesFinished != nil {
		gamesFinished.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", label)))
	}
}
