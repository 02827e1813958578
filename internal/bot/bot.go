// Package bot implements the computer opponent: an exhaustive minimax search
// that never loses.
package bot

import (
	"context"
	"log/slog"
	"time"

	"ctchen222/tictactoe-ai/internal/game"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")
)

// BotMoveCalculator implements the room.MoveCalculator interface.
type BotMoveCalculator struct {
	movesCalculated metric.Int64Counter
	searchDuration  metric.Float64Histogram
}

// NewBotMoveCalculator creates a calculator that reports search metrics.
func NewBotMoveCalculator() *BotMoveCalculator {
	c := &BotMoveCalculator{}

	var err error
	c.movesCalculated, err = meter.Int64Counter("bot.moves.calculated",
		metric.WithDescription("Number of moves chosen by the bot"))
	if err != nil {
		slog.Warn("failed to create bot.moves.calculated counter", "error", err)
	}
	c.searchDuration, err = meter.Float64Histogram("bot.search.duration",
		metric.WithDescription("Time spent searching for the bot's move"),
		metric.WithUnit("ms"))
	if err != nil {
		slog.Warn("failed to create bot.search.duration histogram", "error", err)
	}

	return c
}

// CalculateNextMove searches a copy of board for the bot's best move.
func (c *BotMoveCalculator) CalculateNextMove(ctx context.Context, board game.Board) (game.Position, bool) {
	ctx, span := tracer.Start(ctx, "bot.CalculateNextMove", trace.WithAttributes(
		attribute.Int("board.empty_cells", len(board.EmptyCells())),
	))
	defer span.End()

	start := time.Now()
	pos, ok := BestMove(&board)
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	span.SetAttributes(
		attribute.Bool("move.found", ok),
		attribute.Int("move.row", pos.Row),
		attribute.Int("move.col", pos.Col),
	)

	if c.searchDuration != nil {
		c.searchDuration.Record(ctx, elapsed)
	}
	if ok && c.movesCalculated != nil {
		c.movesCalculated.Add(ctx, 1)
	}

	slog.DebugContext(ctx, "Bot chose move", "found", ok, "position", pos.String(), "elapsed_ms", elapsed)
	return pos, ok
}
