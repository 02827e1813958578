package room

import (
	"time"

	"ctchen222/tictactoe-ai/internal/player"
)

// AddPlayer adds a player to the room.
func (r *Room) AddPlayer(p *player.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[p.ID] = p
	r.lastActivity = time.Now()
}

// RemovePlayer removes a player from the room and reports whether it was there.
func (r *Room) RemovePlayer(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[id]; !ok {
		return false
	}
	delete(r.players, id)
	return true
}

// PlayerCount returns the number of connected players.
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}
