package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the coordinator's process configuration, read from the
// environment
type Config struct {
	// ListenAddr is the HTTP gateway's bind address
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// RedisAddr is the room and user store
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// CallbackBaseURL is where condition events are POSTed for the dialogue
	// layer
	CallbackBaseURL string `env:"CALLBACK_BASE_URL,notEmpty"`

	// RoomSize is the number of players a game needs
	RoomSize int `env:"ROOM_SIZE" envDefault:"10"`

	// PollInterval is the delay between condition re-evaluations
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"1s"`

	// PollTTL bounds every wait and every armed poller
	PollTTL time.Duration `env:"POLL_TTL" envDefault:"2m"`

	// LogLevel is a zerolog level name
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
