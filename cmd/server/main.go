package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ctchen222/tictactoe-ai/internal/api/controller"
	"ctchen222/tictactoe-ai/internal/api/service"
	"ctchen222/tictactoe-ai/internal/bot"
	"ctchen222/tictactoe-ai/internal/config"
	"ctchen222/tictactoe-ai/internal/hub"
	"ctchen222/tictactoe-ai/internal/logger"
	"ctchen222/tictactoe-ai/internal/room"
	"ctchen222/tictactoe-ai/internal/server"
	"ctchen222/tictactoe-ai/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

var configPath = ""

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "path to a YAML config file; empty reads the environment only")
	pflag.Parse()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(start(ctx))
}

func start(ctx context.Context) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	// Create hub
	h := hub.NewHub(bot.NewBotMoveCalculator(), hub.Options{
		Layout:            room.Layout{Width: cfg.Board.Width, Height: cfg.Board.Height},
		IdleTimeout:       cfg.Rooms.IdleTimeout,
		HeartbeatInterval: cfg.Rooms.HeartbeatInterval,
		JanitorInterval:   cfg.Rooms.JanitorInterval,
	})

	// Create services and controllers
	roomController := controller.NewRoomController(service.NewRoomService(h))

	// Create the Gin-based server
	srv := server.NewServer(h, roomController, cfg.HTTP.StaticDir)

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: srv.Handler(),
	}

	errg, ctx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		h.Run(ctx)
		return nil
	})

	errg.Go(func() error {
		slog.Info("http server started", "addr", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	})

	errg.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := errg.Wait(); err != nil {
		slog.Error("server error", "error", err)
		return 1
	}

	slog.Info("Server exiting")
	return 0
}
