// Package game holds the tic-tac-toe rules engine: the board, move
// validation and terminal-state detection.
package game

import (
	"errors"
)

// Cell is the content of a board square.
type Cell uint8

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

// String returns the mark drawn for the cell. PlayerOne draws circles and
// PlayerTwo draws crosses.
func (c Cell) String() string {
	switch c {
	case PlayerOne:
		return "O"
	case PlayerTwo:
		return "X"
	default:
		return ""
	}
}

// Opponent returns the other player.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

var (
	ErrOutOfRange      = errors.New("position out of range")
	ErrCellOccupied    = errors.New("cell already occupied")
	ErrGameAlreadyOver = errors.New("game already finished")
	ErrNotYourTurn     = errors.New("not player's turn")
)

// Game is the state of one match: the board, the player to move and the
// outcome computed after the last move.
type Game struct {
	Board       Board
	CurrentTurn Cell
	Outcome     Outcome
}

// NewGame returns an empty board with PlayerOne to move.
func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset clears the board, gives the move back to PlayerOne and marks the game
// as in progress.
func (g *Game) Reset() {
	*g = Game{
		Board:       Board{},
		CurrentTurn: PlayerOne,
		Outcome:     Outcome{Status: InProgress},
	}
}

// IsCellEmpty reports whether the cell at row, col is free.
func (g *Game) IsCellEmpty(row, col int) (bool, error) {
	return g.Board.IsCellEmpty(row, col)
}

// ApplyMove places player's mark at row, col and re-evaluates the board.
// The game is left untouched when an error is returned.
func (g *Game) ApplyMove(row, col int, player Cell) error {
	if g.Outcome.Terminal() {
		return ErrGameAlreadyOver
	}
	if !inBounds(row, col) {
		return ErrOutOfRange
	}
	if player != g.CurrentTurn {
		return ErrNotYourTurn
	}
	if g.Board[row][col] != Empty {
		return ErrCellOccupied
	}

	g.Board[row][col] = player
	g.CurrentTurn = player.Opponent()
	g.Outcome = Evaluate(g.Board)
	return nil
}

// IsOver reports whether the game reached a win or a draw.
func (g *Game) IsOver() bool {
	return g.Outcome.Terminal()
}
