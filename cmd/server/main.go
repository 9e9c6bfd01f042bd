package main

import (
	"log/slog"
	"os"

	"github.com/lk16/othello/internal"
	"github.com/lk16/othello/internal/config"
)

func main() {
	config.SetLogLevel()

	cfg := config.LoadServerConfig()

	// Setup app
	app := internal.SetupApp(cfg)

	// Start server
	if err := app.Listen(cfg.Address()); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
