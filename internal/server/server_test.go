package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ctchen222/tictactoe-ai/internal/api/controller"
	"ctchen222/tictactoe-ai/internal/api/service"
	"ctchen222/tictactoe-ai/internal/bot"
	"ctchen222/tictactoe-ai/internal/hub"
	"ctchen222/tictactoe-ai/pkg/proto"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *hub.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<canvas></canvas>"), 0o644))

	h := hub.NewHub(bot.NewBotMoveCalculator(), hub.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	rc := controller.NewRoomController(service.NewRoomService(h))
	ts := httptest.NewServer(NewServer(h, rc, staticDir).Handler())
	t.Cleanup(func() {
		cancel()
		<-done
		ts.Close()
	})
	return ts, h
}

func TestServer_Healthz(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_Static(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), "<canvas>")
}

func TestServer_CreateRoomOverHTTP(t *testing.T) {
	ts, h := newTestServer(t)

	res, err := http.Post(ts.URL+"/api/rooms", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var env struct {
		Extras struct {
			RoomID string `json:"roomId"`
		} `json:"extras"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	_, ok := h.Room(env.Extras.RoomID)
	assert.True(t, ok)

	click, err := http.Post(ts.URL+"/api/rooms/"+env.Extras.RoomID+"/click", "application/json", strings.NewReader(`{"x":300,"y":300}`))
	require.NoError(t, err)
	defer click.Body.Close()
	assert.Equal(t, http.StatusOK, click.StatusCode)
}

func readJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestServer_WebSocketGame(t *testing.T) {
	ts, h := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	var assignment proto.PlayerAssignmentMessage
	readJSON(t, conn, &assignment)
	assert.Equal(t, proto.TypeAssignment, assignment.Type)
	assert.Equal(t, "O", assignment.Mark)
	_, ok := h.Room(assignment.RoomID)
	require.True(t, ok)

	var initial proto.ServerToClientMessage
	readJSON(t, conn, &initial)
	assert.Equal(t, proto.TypeUpdate, initial.Type)
	assert.Equal(t, "in_progress", initial.Status)

	require.NoError(t, conn.WriteJSON(proto.ClientToServerMessage{Type: proto.TypeClick, Position: []int{300, 300}}))

	var update proto.ServerToClientMessage
	readJSON(t, conn, &update)
	assert.Equal(t, "O", update.Board[1][1])
	assert.Equal(t, "O", update.Next, "computer has already replied")

	marks := 0
	for _, row := range update.Board {
		for _, cell := range row {
			if cell != "" {
				marks++
			}
		}
	}
	assert.Equal(t, 2, marks)

	// A second viewer of the same room sees the same board.
	viewer, _, err := websocket.DefaultDialer.Dial(wsURL+"?roomId="+assignment.RoomID, nil)
	require.NoError(t, err)
	defer viewer.Close()

	var viewerAssignment proto.PlayerAssignmentMessage
	readJSON(t, viewer, &viewerAssignment)
	assert.Equal(t, assignment.RoomID, viewerAssignment.RoomID)

	var viewerState proto.ServerToClientMessage
	readJSON(t, viewer, &viewerState)
	assert.Equal(t, update.Board, viewerState.Board)
}
