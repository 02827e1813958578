package hub

import (
	"time"

	"ctchen222/tictactoe-ai/internal/room"
)

const (
	defaultIdleTimeout       = 30 * time.Minute
	defaultHeartbeatInterval = 10 * time.Second
	defaultJanitorInterval   = time.Minute
	defaultBoardSize         = 600
)

func (o Options) withDefaults() Options {
	if o.Layout.Width <= 0 || o.Layout.Height <= 0 {
		o.Layout = room.Layout{Width: defaultBoardSize, Height: defaultBoardSize}
	}
	if o.IdleTimeout <= 0 {
		o.IdleTimeout = defaultIdleTimeout
	}
	if o.HeartbeatInterval <= 0 {
		o.HeartbeatInterval = defaultHeartbeatInterval
	}
	if o.JanitorInterval <= 0 {
		o.JanitorInterval = defaultJanitorInterval
	}
	return o
}

// snapshot copies the room list so callers can work on rooms without
// holding the registry lock.
func (h *Hub) snapshot() []*room.Room {
	h.mu.RLock()
	defer h.mu.RUnlock()
	rooms := make([]*room.Room, 0, len(h.rooms))
	for _, r := range h.rooms {
		rooms = append(rooms, r)
	}
	return rooms
}

// RoomCount returns the number of open rooms.
func (h *Hub) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}
