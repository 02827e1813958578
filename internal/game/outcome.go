package game

import "fmt"

// LineKind identifies the geometry of a winning line.
type LineKind uint8

const (
	LineNone LineKind = iota
	LineRow
	LineColumn
	LineDiagonal
)

func (k LineKind) String() string {
	switch k {
	case LineRow:
		return "row"
	case LineColumn:
		return "column"
	case LineDiagonal:
		return "diagonal"
	default:
		return "none"
	}
}

// Diagonal indexes used by WinLine.Index when Kind is LineDiagonal.
const (
	DiagonalMain = 0 // top-left to bottom-right
	DiagonalAnti = 1 // top-right to bottom-left
)

// WinLine is one of the eight lines of three cells: a row, a column or a diagonal.
type WinLine struct {
	Kind  LineKind
	Index int
}

func Row(i int) WinLine     { return WinLine{Kind: LineRow, Index: i} }
func Column(i int) WinLine  { return WinLine{Kind: LineColumn, Index: i} }
func MainDiagonal() WinLine { return WinLine{Kind: LineDiagonal, Index: DiagonalMain} }
func AntiDiagonal() WinLine { return WinLine{Kind: LineDiagonal, Index: DiagonalAnti} }

// Cells returns the three positions covered by the line, in scan order.
func (l WinLine) Cells() [Size]Position {
	var cells [Size]Position
	for i := range Size {
		switch l.Kind {
		case LineRow:
			cells[i] = Position{Row: l.Index, Col: i}
		case LineColumn:
			cells[i] = Position{Row: i, Col: l.Index}
		case LineDiagonal:
			if l.Index == DiagonalMain {
				cells[i] = Position{Row: i, Col: i}
			} else {
				cells[i] = Position{Row: i, Col: BorderMax - i}
			}
		}
	}
	return cells
}

func (l WinLine) String() string {
	if l.Kind == LineDiagonal {
		if l.Index == DiagonalMain {
			return "diagonal(main)"
		}
		return "diagonal(anti)"
	}
	return fmt.Sprintf("%s(%d)", l.Kind, l.Index)
}

// Status is the coarse state of a game.
type Status uint8

const (
	InProgress Status = iota
	Win
	Draw
)

func (s Status) String() string {
	switch s {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Outcome is the result of evaluating a board. Winner and Line are only set
// when Status is Win, and always describe the same line.
type Outcome struct {
	Status Status
	Winner Cell
	Line   WinLine
}

// Terminal reports whether no further moves are legal.
func (o Outcome) Terminal() bool {
	return o.Status != InProgress
}

func (o Outcome) String() string {
	if o.Status == Win {
		return fmt.Sprintf("win(%s, %s)", o.Winner, o.Line)
	}
	return o.Status.String()
}

func winOutcome(player Cell, line WinLine) Outcome {
	return Outcome{Status: Win, Winner: player, Line: line}
}
