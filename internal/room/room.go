// Package room hosts a single human-versus-computer game and the clients
// watching it.
package room

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ctchen222/tictactoe-ai/internal/game"
	"ctchen222/tictactoe-ai/internal/player"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("room")
	meter  = otel.Meter("room")
)

// The human always plays PlayerOne and moves first.
const (
	humanMark = game.PlayerOne
	botMark   = game.PlayerTwo
)

//go:generate mockgen -source=room.go -destination=mocks/move_calculator_mock.go -package=mocks

// MoveCalculator defines an interface for an agent that can calculate the computer's move.
type MoveCalculator interface {
	CalculateNextMove(ctx context.Context, board game.Board) (game.Position, bool)
}

// Room represents a game room.
type Room struct {
	ID             string
	layout         Layout
	moveCalculator MoveCalculator

	mu           sync.Mutex
	game         *game.Game
	players      map[string]*player.Player
	lastActivity time.Time
}

// NewRoom creates a room with a fresh game.
func NewRoom(id string, layout Layout, calculator MoveCalculator) *Room {
	return &Room{
		ID:             id,
		layout:         layout,
		moveCalculator: calculator,
		game:           game.NewGame(),
		players:        make(map[string]*player.Player),
		lastActivity:   time.Now(),
	}
}

// HandleHumanClick plays the human's move at the clicked pixel and, if the
// game goes on, the computer's reply. Clicks outside the board, on occupied
// cells or after the game ended are ignored. It reports whether the state
// changed.
func (r *Room) HandleHumanClick(ctx context.Context, x, y int) bool {
	ctx, span := tracer.Start(ctx, "room.HandleHumanClick", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.Int("click.x", x),
		attribute.Int("click.y", y),
	))
	defer span.End()

	pos, ok := r.layout.CellAt(x, y)
	if !ok {
		slog.DebugContext(ctx, "Ignoring click outside the board", "room.id", r.ID, "x", x, "y", y)
		span.SetAttributes(attribute.Bool("click.on_board", false))
		return false
	}
	span.SetAttributes(attribute.Int("move.row", pos.Row), attribute.Int("move.col", pos.Col))

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.game.ApplyMove(pos.Row, pos.Col, humanMark); err != nil {
		slog.DebugContext(ctx, "Ignoring move", "room.id", r.ID, "position", pos.String(), "reason", err)
		span.SetAttributes(attribute.Bool("move.valid", false))
		return false
	}
	span.SetAttributes(attribute.Bool("move.valid", true))

	if !r.game.IsOver() {
		r.playComputerMove(ctx, span)
	}

	r.lastActivity = time.Now()
	if r.game.IsOver() {
		r.recordFinished(ctx)
	}
	r.broadcastLocked(ctx)
	return true
}

// playComputerMove asks the calculator for a reply and applies it. The
// caller holds r.mu.
func (r *Room) playComputerMove(ctx context.Context, span trace.Span) {
	reply, ok := r.moveCalculator.CalculateNextMove(ctx, r.game.Board)
	if !ok {
		slog.ErrorContext(ctx, "Move calculator found no move on an open board", "room.id", r.ID)
		span.SetStatus(codes.Error, "No computer move on an open board")
		return
	}

	if err := r.game.ApplyMove(reply.Row, reply.Col, botMark); err != nil {
		slog.ErrorContext(ctx, "Move calculator returned an illegal move", "room.id", r.ID, "position", reply.String(), "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Illegal computer move")
		return
	}
	span.SetAttributes(attribute.Int("reply.row", reply.Row), attribute.Int("reply.col", reply.Col))
}

// HandleRestartRequest starts a new game in the room.
func (r *Room) HandleRestartRequest(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "room.HandleRestartRequest", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.game.Reset()
	r.lastActivity = time.Now()
	slog.InfoContext(ctx, "Room game restarted", "room.id", r.ID)

	r.broadcastLocked(ctx)
}

// QueryRenderState returns a copy of what a renderer needs to draw the room.
func (r *Room) QueryRenderState() RenderState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renderStateLocked()
}

func (r *Room) renderStateLocked() RenderState {
	return RenderState{
		Board:   r.game.Board,
		Next:    r.game.CurrentTurn,
		Outcome: r.game.Outcome,
	}
}

// LastActivity returns when the room last changed or gained a player.
func (r *Room) LastActivity() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastActivity
}

// Layout returns the pixel layout used to map clicks to cells.
func (r *Room) Layout() Layout {
	return r.layout
}
