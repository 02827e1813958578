package models

import "ctchen222/tictactoe-ai/pkg/proto"

// ClickRequest is a click on the board, in pixels. Pointers let a zero
// coordinate pass the required check.
type ClickRequest struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

// RoomResponse carries a room id and what a renderer needs to draw it.
type RoomResponse struct {
	RoomID string                       `json:"roomId"`
	State  *proto.ServerToClientMessage `json:"state"`
}

// ClickResponse reports whether a click changed the game, and the state
// after it.
type ClickResponse struct {
	Changed bool `json:"changed"`
	RoomResponse
}
