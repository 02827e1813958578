package bot

import (
	"fmt"

	"ctchen222/tictactoe-ai/internal/game"
)

// The bot always plays PlayerTwo, the maximizing side of the search.
const (
	botMark      = game.PlayerTwo
	opponentMark = game.PlayerOne
)

// Scores returned by Minimax for terminal boards.
const (
	ScoreBotWin      = 1
	ScoreDraw        = 0
	ScoreOpponentWin = -1
)

// Sentinels outside the score range, used to seed max/min tracking.
const (
	minScore = -100
	maxScore = 100
)

// Minimax scores board assuming both sides play perfectly from here on.
// When maximizing is true the bot moves next, otherwise its opponent does.
// The board is modified during the search and restored before returning.
func Minimax(board *game.Board, maximizing bool) int {
	if _, won := game.WinningLine(*board, botMark); won {
		return ScoreBotWin
	}
	if _, won := game.WinningLine(*board, opponentMark); won {
		return ScoreOpponentWin
	}
	if game.IsBoardFull(*board) {
		return ScoreDraw
	}

	if maximizing {
		best := minScore
		forEachEmpty(board, func(pos game.Position) {
			best = max(best, tryMove(board, pos, botMark, func() int {
				return Minimax(board, false)
			}))
		})
		return best
	}

	best := maxScore
	forEachEmpty(board, func(pos game.Position) {
		best = min(best, tryMove(board, pos, opponentMark, func() int {
			return Minimax(board, true)
		}))
	})
	return best
}

// BestMove returns the bot's optimal move on board. Ties go to the first
// empty cell in row-major order. It reports false only when the board is
// full. Calling it on a board that already has a winner panics.
func BestMove(board *game.Board) (game.Position, bool) {
	if outcome := game.Evaluate(*board); outcome.Status == game.Win {
		panic(fmt.Sprintf("bot: BestMove called on a finished board: %v", outcome))
	}

	bestScore := minScore
	var move game.Position
	found := false

	forEachEmpty(board, func(pos game.Position) {
		score := tryMove(board, pos, botMark, func() int {
			return Minimax(board, false)
		})
		if score > bestScore {
			bestScore = score
			move = pos
			found = true
		}
	})

	return move, found
}

// tryMove places mark at pos for the duration of eval and always clears it
// again, even if eval panics.
func tryMove(board *game.Board, pos game.Position, mark game.Cell, eval func() int) int {
	board[pos.Row][pos.Col] = mark
	defer func() { board[pos.Row][pos.Col] = game.Empty }()
	return eval()
}

// forEachEmpty calls fn for every empty cell in row-major order. Cells are
// checked as the scan reaches them so fn may mutate and restore the board.
func forEachEmpty(board *game.Board, fn func(game.Position)) {
	for r := range game.Size {
		for c := range game.Size {
			if board[r][c] == game.Empty {
				fn(game.Position{Row: r, Col: c})
			}
		}
	}
}
