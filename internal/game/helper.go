package game

import "fmt"

// Border
const (
	BorderMin = 0 // First index of the board
	BorderMax = 2 // Last index of the board
)

// Size is the number of rows and columns on the board.
const Size = BorderMax + 1

// Position addresses a single cell on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// InBounds reports whether the position lies on the board.
func (p Position) InBounds() bool {
	return inBounds(p.Row, p.Col)
}

func inBounds(row, col int) bool {
	return row >= BorderMin && row <= BorderMax && col >= BorderMin && col <= BorderMax
}
