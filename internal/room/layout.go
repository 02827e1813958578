package room

import "ctchen222/tictactoe-ai/internal/game"

// Layout is the renderer's window geometry. Cells are square with a side of
// Width / 3.
type Layout struct {
	Width  int
	Height int
}

// CellSize returns the side of a cell in pixels.
func (l Layout) CellSize() int {
	return l.Width / game.Size
}

// CellAt maps a pixel to the cell under it. It reports false for pixels
// outside the window or outside the grid.
func (l Layout) CellAt(x, y int) (game.Position, bool) {
	size := l.CellSize()
	if size <= 0 || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return game.Position{}, false
	}

	pos := game.Position{Row: y / size, Col: x / size}
	if !pos.InBounds() {
		return game.Position{}, false
	}
	return pos, true
}
