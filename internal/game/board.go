package game

// Board is the 3x3 grid, stored row-major.
type Board [Size][Size]Cell

// IsCellEmpty reports whether the cell at row, col holds no mark.
func (b Board) IsCellEmpty(row, col int) (bool, error) {
	if !inBounds(row, col) {
		return false, ErrOutOfRange
	}
	return b[row][col] == Empty, nil
}

// EmptyCells returns the empty positions in row-major order.
func (b Board) EmptyCells() []Position {
	var cells []Position
	for r := range Size {
		for c := range Size {
			if b[r][c] == Empty {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Count returns how many cells hold the given value.
func (b Board) Count(cell Cell) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if b[r][c] == cell {
				n++
			}
		}
	}
	return n
}

// IsBoardFull reports whether no empty cell remains.
func IsBoardFull(b Board) bool {
	for r := range Size {
		for c := range Size {
			if b[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// scanOrder lists every line in the order Evaluate checks them: rows top to
// bottom, columns left to right, then the main and anti diagonals.
var scanOrder = [...]WinLine{
	Row(0), Row(1), Row(2),
	Column(0), Column(1), Column(2),
	MainDiagonal(), AntiDiagonal(),
}

// WinningLine returns the first line, in scan order, fully occupied by player.
func WinningLine(b Board, player Cell) (WinLine, bool) {
	if player == Empty {
		return WinLine{}, false
	}
	for _, line := range scanOrder {
		if owns(b, line, player) {
			return line, true
		}
	}
	return WinLine{}, false
}

func owns(b Board, line WinLine, player Cell) bool {
	for _, p := range line.Cells() {
		if b[p.Row][p.Col] != player {
			return false
		}
	}
	return true
}

// Evaluate computes the outcome of a board. Each line is checked against
// PlayerOne and then PlayerTwo before moving on to the next line.
func Evaluate(b Board) Outcome {
	for _, line := range scanOrder {
		for _, player := range [...]Cell{PlayerOne, PlayerTwo} {
			if owns(b, line, player) {
				return winOutcome(player, line)
			}
		}
	}

	if IsBoardFull(b) {
		return Outcome{Status: Draw}
	}

	return Outcome{Status: InProgress}
}
