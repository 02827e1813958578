package types

import (
	"context"

	"ctchen222/tictactoe-ai/internal/player"
)

// RegistrationRequest represents a request to attach a player to a room.
type RegistrationRequest struct {
	Player *player.Player
	RoomID string // Empty or unknown ids get a new room
	Ctx    context.Context
}
