package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// GameConfig holds the settings of the console game.
type GameConfig struct {
	BlackName string `env:"OTHELLO_BLACK_NAME"`
	WhiteName string `env:"OTHELLO_WHITE_NAME"`
	Color     bool   `env:"OTHELLO_COLOR"      env-default:"true"`
}

// ServerConfig holds the settings of the rules server.
type ServerConfig struct {
	ServerHost string `env:"OTHELLO_SERVER_HOST"    env-default:"localhost"`
	ServerPort string `env:"OTHELLO_SERVER_PORT"    env-default:"8080"`
	Prefork    bool   `env:"OTHELLO_SERVER_PREFORK" env-default:"false"`

	// Token guards the API when set.
	Token string `env:"OTHELLO_SERVER_TOKEN"`
}

// Address returns the address the server listens on.
func (cfg *ServerConfig) Address() string {
	return cfg.ServerHost + ":" + cfg.ServerPort
}

func readEnv[T any]() (*T, error) {
	cfg := new(T)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}
	return cfg, nil
}

// loadMust either returns the loaded config or logs a fatal error.
func loadMust[T any]() *T {
	cfg, err := readEnv[T]()
	if err != nil {
		slog.Error("Cannot load configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

// LoadGameConfig loads the console game configuration from environment variables.
func LoadGameConfig() *GameConfig {
	return loadMust[GameConfig]()
}

// LoadServerConfig loads the server configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return loadMust[ServerConfig]()
}
