package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "./web", cfg.HTTP.StaticDir)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 600, cfg.Board.Width)
	assert.Equal(t, 600, cfg.Board.Height)
	assert.Equal(t, 30*time.Minute, cfg.Rooms.IdleTimeout)
	assert.Equal(t, time.Minute, cfg.Rooms.JanitorInterval)
	assert.Equal(t, 10*time.Second, cfg.Rooms.HeartbeatInterval)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "otel-collector:4317", cfg.Telemetry.Endpoint)
	assert.Equal(t, "tic-tac-toe", cfg.Telemetry.ServiceName)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log-level: debug
http:
  addr: ":9090"
board:
  width: 300
  height: 400
rooms:
  idle-timeout: 5m
telemetry:
  enabled: true
  endpoint: localhost:4317
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 300, cfg.Board.Width)
	assert.Equal(t, 400, cfg.Board.Height)
	assert.Equal(t, 5*time.Minute, cfg.Rooms.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Rooms.HeartbeatInterval, "unset keys keep their default")
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "http:\n  addr: \":9090\"\n")
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("BOARD_WIDTH", "900")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, 900, cfg.Board.Width)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})

	t.Run("Invalid board", func(t *testing.T) {
		t.Setenv("BOARD_WIDTH", "0")
		_, err := Load("")
		assert.ErrorContains(t, err, "board size must be positive")
	})

	t.Run("MustLoad panics", func(t *testing.T) {
		t.Setenv("ROOM_IDLE_TIMEOUT", "-1s")
		assert.Panics(t, func() { MustLoad("") })
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		HTTP:  HTTP{ShutdownTimeout: time.Second},
		Board: Board{Width: 600, Height: 600},
		Rooms: Rooms{IdleTimeout: time.Minute, JanitorInterval: time.Second, HeartbeatInterval: time.Second},
	}
	require.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{name: "Zero height", mutate: func(c *Config) { c.Board.Height = 0 }, want: "board size"},
		{name: "No shutdown timeout", mutate: func(c *Config) { c.HTTP.ShutdownTimeout = 0 }, want: "shutdown-timeout"},
		{name: "No janitor interval", mutate: func(c *Config) { c.Rooms.JanitorInterval = 0 }, want: "janitor-interval"},
		{name: "No heartbeat interval", mutate: func(c *Config) { c.Rooms.HeartbeatInterval = 0 }, want: "heartbeat-interval"},
		{name: "Telemetry without endpoint", mutate: func(c *Config) { c.Telemetry.Enabled = true }, want: "endpoint"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			assert.ErrorContains(t, c.Validate(), tc.want)
		})
	}
}
