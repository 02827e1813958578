package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ctchen222/tictactoe-ai/internal/api/models"
	"ctchen222/tictactoe-ai/internal/api/response"
	"ctchen222/tictactoe-ai/internal/api/service"
	"ctchen222/tictactoe-ai/internal/api/service/mocks"
	"ctchen222/tictactoe-ai/pkg/proto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockRoomService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockRoomService(ctrl)

	router := gin.New()
	NewRoomController(svc).RegisterRoutes(router.Group("/api"))
	return router, svc
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Extras  json.RawMessage `json:"extras"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func sampleRoom() *models.RoomResponse {
	return &models.RoomResponse{
		RoomID: "room-1",
		State: &proto.ServerToClientMessage{
			Type:   proto.TypeUpdate,
			Board:  [][]string{{"", "", ""}, {"", "", ""}, {"", "", ""}},
			Next:   "O",
			Status: "in_progress",
		},
	}
}

func TestRoomController_Create(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Create(gomock.Any()).Return(sampleRoom(), nil)

	w := serve(router, http.MethodPost, "/api/rooms", "")

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, http.StatusCreated, env.Code)

	var got models.RoomResponse
	require.NoError(t, json.Unmarshal(env.Extras, &got))
	assert.Equal(t, *sampleRoom(), got)
}

func TestRoomController_Get(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Get(gomock.Any(), "room-1").Return(sampleRoom(), nil)
	svc.EXPECT().Get(gomock.Any(), "missing").Return(nil, service.ErrRoomNotFound)

	w := serve(router, http.MethodGet, "/api/rooms/room-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode(t, w).Success)

	w = serve(router, http.MethodGet, "/api/rooms/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusNotFound, env.Code)
	assert.JSONEq(t, `{"message":"room not found"}`, string(env.Extras))
}

func TestRoomController_Click(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expect   func(svc *mocks.MockRoomService)
		wantCode int
	}{
		{
			name: "Valid click",
			body: `{"x":100,"y":450}`,
			expect: func(svc *mocks.MockRoomService) {
				svc.EXPECT().Click(gomock.Any(), "room-1", 100, 450).
					Return(&models.ClickResponse{Changed: true, RoomResponse: *sampleRoom()}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "Zero coordinates are allowed",
			body: `{"x":0,"y":0}`,
			expect: func(svc *mocks.MockRoomService) {
				svc.EXPECT().Click(gomock.Any(), "room-1", 0, 0).
					Return(&models.ClickResponse{Changed: true, RoomResponse: *sampleRoom()}, nil)
			},
			wantCode: http.StatusOK,
		},
		{name: "Missing y", body: `{"x":10}`, wantCode: http.StatusBadRequest},
		{name: "Not JSON", body: `click`, wantCode: http.StatusBadRequest},
		{name: "Wrong type", body: `{"x":"left","y":1}`, wantCode: http.StatusBadRequest},
		{
			name: "Unknown room",
			body: `{"x":1,"y":1}`,
			expect: func(svc *mocks.MockRoomService) {
				svc.EXPECT().Click(gomock.Any(), "room-1", 1, 1).Return(nil, service.ErrRoomNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "Unexpected failure",
			body: `{"x":1,"y":1}`,
			expect: func(svc *mocks.MockRoomService) {
				svc.EXPECT().Click(gomock.Any(), "room-1", 1, 1).Return(nil, errors.New("boom"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, svc := newTestRouter(t)
			if tc.expect != nil {
				tc.expect(svc)
			}

			w := serve(router, http.MethodPost, "/api/rooms/room-1/click", tc.body)

			assert.Equal(t, tc.wantCode, w.Code)
			env := decode(t, w)
			assert.Equal(t, tc.wantCode, env.Code)
			assert.Equal(t, tc.wantCode == http.StatusOK, env.Success)
		})
	}
}

func TestRoomController_Click_ReportsChanged(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Click(gomock.Any(), "room-1", 5, 5).
		Return(&models.ClickResponse{Changed: false, RoomResponse: *sampleRoom()}, nil)

	w := serve(router, http.MethodPost, "/api/rooms/room-1/click", `{"x":5,"y":5}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.ClickResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Extras, &got))
	assert.False(t, got.Changed)
	assert.Equal(t, "room-1", got.RoomID)
}

func TestRoomController_Restart(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Restart(gomock.Any(), "room-1").Return(sampleRoom(), nil)

	w := serve(router, http.MethodPost, "/api/rooms/room-1/restart", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoomController_Close(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().Close(gomock.Any(), "room-1").Return(nil)
	svc.EXPECT().Close(gomock.Any(), "gone").Return(response.NewError(http.StatusNotFound, "room not found"))

	w := serve(router, http.MethodDelete, "/api/rooms/room-1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodDelete, "/api/rooms/gone", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
