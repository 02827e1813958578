package proto

import "ctchen222/tictactoe-ai/internal/game"

// Message types exchanged over the websocket.
const (
	TypeClick      = "click"
	TypeRestart    = "restart"
	TypeUpdate     = "update"
	TypeAssignment = "assignment"
)

// ClientToServerMessage represents a message from the client to the server.
// Position is the clicked pixel as [x, y].
type ClientToServerMessage struct {
	Type     string `json:"type" validate:"required,oneof=click restart"`
	Position []int  `json:"position,omitempty" validate:"omitempty,len=2"`
}

// WinLineMessage describes the line to strike through.
type WinLineMessage struct {
	Kind  string   `json:"kind"`
	Index int      `json:"index"`
	Cells [][2]int `json:"cells"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type   string          `json:"type" validate:"required"`
	Reason string          `json:"reason,omitempty"`
	Board  [][]string      `json:"board,omitempty"`
	Next   string          `json:"next,omitempty"`
	Status string          `json:"status,omitempty"`
	Winner string          `json:"winner,omitempty"`
	Line   *WinLineMessage `json:"line,omitempty"`
}

// PlayerAssignmentMessage tells a client which room it joined.
type PlayerAssignmentMessage struct {
	Type     string `json:"type"`
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId,omitempty"`
	Mark     string `json:"mark"`
}

// BoardAsStrings converts the board to rows of mark strings.
func BoardAsStrings(b game.Board) [][]string {
	board := make([][]string, game.Size)
	for r := range game.Size {
		board[r] = make([]string, game.Size)
		for c := range game.Size {
			board[r][c] = b[r][c].String()
		}
	}
	return board
}

// NewUpdateMessage builds the render update sent after every state change.
// Next is left empty once the game is over.
func NewUpdateMessage(b game.Board, next game.Cell, outcome game.Outcome) *ServerToClientMessage {
	msg := &ServerToClientMessage{
		Type:   TypeUpdate,
		Board:  BoardAsStrings(b),
		Status: outcome.Status.String(),
	}

	if !outcome.Terminal() {
		msg.Next = next.String()
	}

	if outcome.Status == game.Win {
		msg.Winner = outcome.Winner.String()
		msg.Line = NewWinLineMessage(outcome.Line)
	}

	return msg
}

// NewWinLineMessage converts a win line for the wire.
func NewWinLineMessage(line game.WinLine) *WinLineMessage {
	cells := line.Cells()
	msg := &WinLineMessage{
		Kind:  line.Kind.String(),
		Index: line.Index,
		Cells: make([][2]int, 0, len(cells)),
	}
	for _, p := range cells {
		msg.Cells = append(msg.Cells, [2]int{p.Row, p.Col})
	}
	return msg
}
