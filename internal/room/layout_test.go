package room

import (
	"testing"

	"ctchen222/tictactoe-ai/internal/game"

	"github.com/stretchr/testify/assert"
)

func TestLayout_CellAt(t *testing.T) {
	layout := Layout{Width: 600, Height: 600}

	testCases := []struct {
		name   string
		x, y   int
		want   game.Position
		wantOK bool
	}{
		{name: "Top left corner", x: 0, y: 0, want: game.Position{Row: 0, Col: 0}, wantOK: true},
		{name: "Centre", x: 300, y: 300, want: game.Position{Row: 1, Col: 1}, wantOK: true},
		{name: "x picks the column", x: 450, y: 50, want: game.Position{Row: 0, Col: 2}, wantOK: true},
		{name: "y picks the row", x: 50, y: 450, want: game.Position{Row: 2, Col: 0}, wantOK: true},
		{name: "Last pixel", x: 599, y: 599, want: game.Position{Row: 2, Col: 2}, wantOK: true},
		{name: "Cell boundary", x: 200, y: 199, want: game.Position{Row: 0, Col: 1}, wantOK: true},
		{name: "Right of the window", x: 600, y: 10, wantOK: false},
		{name: "Below the window", x: 10, y: 600, wantOK: false},
		{name: "Negative x", x: -1, y: 10, wantOK: false},
		{name: "Negative y", x: 10, y: -1, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := layout.CellAt(tc.x, tc.y)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestLayout_CellAt_TallWindow(t *testing.T) {
	// Cells stay square, so the strip under the grid is not part of the board.
	layout := Layout{Width: 300, Height: 400}
	assert.Equal(t, 100, layout.CellSize())

	pos, ok := layout.CellAt(250, 299)
	assert.True(t, ok)
	assert.Equal(t, game.Position{Row: 2, Col: 2}, pos)

	_, ok = layout.CellAt(150, 350)
	assert.False(t, ok)
}

func TestLayout_CellAt_Degenerate(t *testing.T) {
	_, ok := Layout{Width: 2, Height: 2}.CellAt(1, 1)
	assert.False(t, ok)

	_, ok = Layout{}.CellAt(0, 0)
	assert.False(t, ok)
}
