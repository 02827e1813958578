package controller

import (
	"net/http"

	"ctchen222/tictactoe-ai/internal/api/models"
	"ctchen222/tictactoe-ai/internal/api/response"
	"ctchen222/tictactoe-ai/internal/api/service"

	"github.com/gin-gonic/gin"
)

// RoomController handles room-related HTTP requests.
type RoomController struct {
	roomService service.RoomService
}

// NewRoomController creates a new RoomController.
func NewRoomController(roomService service.RoomService) *RoomController {
	return &RoomController{
		roomService: roomService,
	}
}

// Create handles the room creation endpoint.
func (rc *RoomController) Create(c *gin.Context) {
	res, err := rc.roomService.Create(c.Request.Context())
	if err != nil {
		response.ErrorFrom(c, err)
		return
	}

	response.CreatedResponse(c, res)
}

// Get returns a room's render state.
func (rc *RoomController) Get(c *gin.Context) {
	res, err := rc.roomService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ErrorFrom(c, err)
		return
	}

	response.SuccessResponse(c, res)
}

// Click handles a click on the board, given in pixels.
func (rc *RoomController) Click(c *gin.Context) {
	var req models.ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := rc.roomService.Click(c.Request.Context(), c.Param("id"), *req.X, *req.Y)
	if err != nil {
		response.ErrorFrom(c, err)
		return
	}

	response.SuccessResponse(c, res)
}

// Restart starts a new game in the room.
func (rc *RoomController) Restart(c *gin.Context) {
	res, err := rc.roomService.Restart(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ErrorFrom(c, err)
		return
	}

	response.SuccessResponse(c, res)
}

// Close removes the room and disconnects its viewers.
func (rc *RoomController) Close(c *gin.Context) {
	if err := rc.roomService.Close(c.Request.Context(), c.Param("id")); err != nil {
		response.ErrorFrom(c, err)
		return
	}

	response.SuccessResponse(c, gin.H{"message": "Room closed"})
}

// RegisterRoutes mounts the room endpoints on a router group.
func (rc *RoomController) RegisterRoutes(rg *gin.RouterGroup) {
	rooms := rg.Group("/rooms")
	rooms.POST("", rc.Create)
	rooms.GET("/:id", rc.Get)
	rooms.POST("/:id/click", rc.Click)
	rooms.POST("/:id/restart", rc.Restart)
	rooms.DELETE("/:id", rc.Close)
}
