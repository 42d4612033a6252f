package server

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration, sourced from the environment.
type Config struct {
	Addr            string `env:"WIRECREW_ADDR" envDefault:":8080"`
	AllowAnyOrigin  bool   `env:"WIRECREW_ALLOW_ANY_ORIGIN" envDefault:"true"`
	RoomIdleMinutes int    `env:"WIRECREW_ROOM_IDLE_MINUTES" envDefault:"60"`
	MaxRoomPlayers  int    `env:"WIRECREW_MAX_ROOM_PLAYERS" envDefault:"5"`
}

// LoadConfig parses configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxRoomPlayers < 2 {
		cfg.MaxRoomPlayers = 2
	}
	return cfg, nil
}
