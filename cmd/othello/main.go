package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/console"
	"github.com/lk16/othello/internal/othello"
	"github.com/muesli/termenv"
)

func main() {
	config.SetLogLevel()

	cfg := config.LoadGameConfig()

	blackName := flag.String("black", cfg.BlackName, "name of the black player")
	whiteName := flag.String("white", cfg.WhiteName, "name of the white player")
	flag.Parse()

	profile := termenv.Ascii
	if cfg.Color {
		profile = termenv.EnvColorProfile()
	}

	c := console.New(os.Stdin, os.Stdout, profile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	players, err := setupPlayers(ctx, c, *blackName, *whiteName)
	if err != nil {
		abandon(err)
		return
	}

	game, err := othello.NewGame(players)
	if err != nil {
		slog.Error("Failed to start game", "error", err)
		os.Exit(1)
	}

	if _, err = game.Play(ctx, c); err != nil {
		abandon(err)
	}
}

// setupPlayers registers the players given on the command line, prompts for
// the missing ones and lets them correct names and colors.
func setupPlayers(ctx context.Context, c *console.Console, blackName, whiteName string) (*othello.Players, error) {
	players := othello.NewPlayers()

	if blackName != "" {
		if err := players.Create(blackName, othello.Black.String()); err != nil {
			return nil, err
		}
	}

	if whiteName != "" {
		if err := players.Create(whiteName, othello.White.String()); err != nil {
			return nil, err
		}
	}

	if err := c.RegisterPlayers(ctx, players); err != nil {
		return nil, err
	}

	return players, nil
}

// abandon logs why the session ended before the game was over.
// The process still exits with code 0.
func abandon(err error) {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		slog.Info("Game abandoned", "reason", err)
		return
	}
	slog.Error("Game abandoned", "error", err)
}
