package server

import (
	"log/slog"
	"net/http"
	"time"

	"ctchen222/tictactoe-ai/internal/api/controller"
	"ctchen222/tictactoe-ai/internal/hub"
	"ctchen222/tictactoe-ai/internal/hub/types"
	"ctchen222/tictactoe-ai/internal/player"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

type Server struct {
	hub            *hub.Hub
	roomController *controller.RoomController
	staticDir      string
	upgrader       websocket.Upgrader
	engine         *gin.Engine
}

func NewServer(h *hub.Hub, roomController *controller.RoomController, staticDir string) *Server {
	s := &Server{
		hub:            h,
		roomController: roomController,
		staticDir:      staticDir,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.engine = s.newEngine()
	return s
}

func (s *Server) newEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.roomController.RegisterRoutes(engine.Group("/api"))
	engine.GET("/ws", s.handleWebSocket)

	// Everything else is the browser renderer.
	engine.NoRoute(gin.WrapH(http.FileServer(http.Dir(s.staticDir))))
	return engine
}

// Engine returns the gin engine with every route registered.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Handler returns the engine wrapped with HTTP tracing and metrics.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.engine, "http.server")
}

// handleWebSocket's only responsibility is to upgrade the connection and
// pass a registration request to the hub.
func (s *Server) handleWebSocket(c *gin.Context) {
	r := c.Request
	ctx, span := tracer.Start(r.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", r.URL.String()),
		attribute.String("http.method", r.Method),
	))
	defer span.End()

	conn, err := s.upgrader.Upgrade(c.Writer, r, nil)
	if err != nil {
		slog.WarnContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}

	roomID := c.Query("roomId")
	p := player.NewPlayer(uuid.NewString(), conn)
	span.SetAttributes(attribute.String("player.id", p.ID), attribute.String("room.requested_id", roomID))

	select {
	case s.hub.Register() <- &types.RegistrationRequest{Player: p, RoomID: roomID, Ctx: ctx}:
	case <-ctx.Done():
		conn.Close()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.DebugContext(c.Request.Context(), "HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String())
	}
}
