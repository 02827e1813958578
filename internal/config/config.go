package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTP      HTTP      `yaml:"http"`
	Board     Board     `yaml:"board"`
	Rooms     Rooms     `yaml:"rooms"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type HTTP struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	StaticDir       string        `yaml:"static-dir" env:"HTTP_STATIC_DIR" env-default:"./web"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Board is the renderer's window in pixels.
type Board struct {
	Width  int `yaml:"width" env:"BOARD_WIDTH" env-default:"600"`
	Height int `yaml:"height" env:"BOARD_HEIGHT" env-default:"600"`
}

type Rooms struct {
	IdleTimeout       time.Duration `yaml:"idle-timeout" env:"ROOM_IDLE_TIMEOUT" env-default:"30m"`
	JanitorInterval   time.Duration `yaml:"janitor-interval" env:"ROOM_JANITOR_INTERVAL" env-default:"1m"`
	HeartbeatInterval time.Duration `yaml:"heartbeat-interval" env:"ROOM_HEARTBEAT_INTERVAL" env-default:"10s"`
}

type Telemetry struct {
	Enabled      bool   `yaml:"enabled" env:"OTEL_ENABLED" env-default:"false"`
	Endpoint     string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"otel-collector:4317"`
	ServiceName  string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe"`
	StdoutTraces bool   `yaml:"stdout-traces" env:"OTEL_STDOUT_TRACES" env-default:"false"`
}

// Load reads the YAML file at path, then the environment. An empty path
// reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Validate rejects sizes and intervals the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size must be positive, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("http shutdown-timeout must be positive"))
	}
	if c.Rooms.IdleTimeout <= 0 {
		errs = append(errs, errors.New("rooms idle-timeout must be positive"))
	}
	if c.Rooms.JanitorInterval <= 0 {
		errs = append(errs, errors.New("rooms janitor-interval must be positive"))
	}
	if c.Rooms.HeartbeatInterval <= 0 {
		errs = append(errs, errors.New("rooms heartbeat-interval must be positive"))
	}
	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		errs = append(errs, errors.New("telemetry endpoint is required when telemetry is enabled"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
