package service

import (
	"context"
	"log/slog"
	"net/http"

	"ctchen222/tictactoe-ai/internal/api/models"
	"ctchen222/tictactoe-ai/internal/api/response"
	"ctchen222/tictactoe-ai/internal/room"
)

var ErrRoomNotFound = response.NewError(http.StatusNotFound, "room not found")

// RoomStore is where rooms live. The hub implements it.
type RoomStore interface {
	CreateRoom(ctx context.Context) *room.Room
	Room(id string) (*room.Room, bool)
	CloseRoom(ctx context.Context, id string) bool
}

//go:generate mockgen -source=room_service.go -destination=mocks/room_service_mock.go -package=mocks

// RoomService defines the interface for room-related business logic.
type RoomService interface {
	Create(ctx context.Context) (*models.RoomResponse, error)
	Get(ctx context.Context, id string) (*models.RoomResponse, error)
	Click(ctx context.Context, id string, x, y int) (*models.ClickResponse, error)
	Restart(ctx context.Context, id string) (*models.RoomResponse, error)
	Close(ctx context.Context, id string) error
}

type roomService struct {
	store RoomStore
}

// NewRoomService creates a new RoomService.
func NewRoomService(store RoomStore) RoomService {
	return &roomService{store: store}
}

// Create opens a room with a fresh game.
func (s *roomService) Create(ctx context.Context) (*models.RoomResponse, error) {
	return render(s.store.CreateRoom(ctx)), nil
}

// Get returns a room's current state without changing it.
func (s *roomService) Get(ctx context.Context, id string) (*models.RoomResponse, error) {
	r, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return render(r), nil
}

// Click plays the human's click and the computer's reply. Ignored clicks
// are not errors; Changed reports them.
func (s *roomService) Click(ctx context.Context, id string, x, y int) (*models.ClickResponse, error) {
	r, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := r.HandleHumanClick(ctx, x, y)
	return &models.ClickResponse{Changed: changed, RoomResponse: *render(r)}, nil
}

// Restart starts a new game in the room.
func (s *roomService) Restart(ctx context.Context, id string) (*models.RoomResponse, error) {
	r, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	r.HandleRestartRequest(ctx)
	return render(r), nil
}

// Close removes the room.
func (s *roomService) Close(ctx context.Context, id string) error {
	if !s.store.CloseRoom(ctx, id) {
		slog.DebugContext(ctx, "Close requested for unknown room", "room.id", id)
		return ErrRoomNotFound
	}
	return nil
}

func (s *roomService) find(ctx context.Context, id string) (*room.Room, error) {
	r, ok := s.store.Room(id)
	if !ok {
		slog.DebugContext(ctx, "Room not found", "room.id", id)
		return nil, ErrRoomNotFound
	}
	return r, nil
}

func render(r *room.Room) *models.RoomResponse {
	return &models.RoomResponse{
		RoomID: r.ID,
		State:  r.QueryRenderState().Message(),
	}
}
