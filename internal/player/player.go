package player

import "sync"

//go:generate mockgen -source=player.go -destination=mocks/connection_mock.go -package=mocks

// Connection is an interface that abstracts the websocket connection.
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	Close() error
}

// Player is a client watching and playing in a room: usually one browser tab.
type Player struct {
	ID   string
	Conn Connection

	writeMu sync.Mutex
}

// NewPlayer creates a player bound to a connection.
func NewPlayer(id string, conn Connection) *Player {
	return &Player{ID: id, Conn: conn}
}

// WriteMessage sends a frame to the player. Websocket connections allow a
// single concurrent writer, so writes are serialized here.
func (p *Player) WriteMessage(messageType int, data []byte) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	return p.Conn.WriteMessage(messageType, data)
}
