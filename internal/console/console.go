package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/lk16/othello/internal/othello"
	"github.com/muesli/termenv"
)

// ErrMalformedInput is returned when a prompt answer is not an integer.
var ErrMalformedInput = errors.New("malformed input")

var _ othello.Collaborator = (*Console)(nil)

// line is a line of input or the error that ended the input.
type line struct {
	text string
	err  error
}

// Console plays an Othello game on a text terminal.
type Console struct {
	scanner *bufio.Scanner
	out     *termenv.Output

	once  sync.Once
	lines chan line
}

// New creates a console reading answers from in and writing to out.
// Use termenv.Ascii as profile to disable colors.
func New(in io.Reader, out io.Writer, profile termenv.Profile) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     termenv.NewOutput(out, termenv.WithProfile(profile)),
	}
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// scan feeds input lines to c.lines until the input ends.
func (c *Console) scan() {
	for c.scanner.Scan() {
		c.lines <- line{text: c.scanner.Text()}
	}

	err := io.EOF
	if scanErr := c.scanner.Err(); scanErr != nil {
		err = fmt.Errorf("failed to read input: %w", scanErr)
	}

	c.lines <- line{err: err}
	close(c.lines)
}

// readLine prompts and returns the next line of input. It returns early when
// ctx is done, the pending line is then delivered to the next call.
func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	c.once.Do(func() {
		c.lines = make(chan line, 1)
		go c.scan()
	})

	c.printf("%s", prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

func (c *Console) readInt(ctx context.Context, prompt string) (int, error) {
	answer, err := c.readLine(ctx, prompt)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, answer)
	}

	return value, nil
}

func (c *Console) readSquare(ctx context.Context) (othello.Square, error) {
	row, err := c.readInt(ctx, "Enter the row (1-8): ")
	if err != nil {
		return othello.Square{}, err
	}

	col, err := c.readInt(ctx, "Enter the column (1-8): ")
	if err != nil {
		return othello.Square{}, err
	}

	return othello.Square{Row: row, Col: col}, nil
}

// RegisterPlayers prompts for names and colors until both sides are taken.
// Rejected registrations are reported and asked again. Afterwards the players
// may rename themselves or swap colors before the game starts.
func (c *Console) RegisterPlayers(ctx context.Context, players *othello.Players) error {
	for players.Len() < 2 {
		name, err := c.readLine(ctx, "Player name: ")
		if err != nil {
			return err
		}

		color, err := c.readLine(ctx, "Color (black/white): ")
		if err != nil {
			return err
		}

		if err = players.Create(name, color); err != nil {
			c.reportError(err)
		}
	}

	return c.editPlayers(ctx, players)
}

// editPlayers offers renames and color swaps until the players choose to start.
func (c *Console) editPlayers(ctx context.Context, players *othello.Players) error {
	for {
		black, _ := players.BySide(othello.Black)
		white, _ := players.BySide(othello.White)
		c.printf("Black: %s, White: %s\n", black.Name, white.Name)

		choice, err := c.readLine(ctx, "Rename a player, swap colors or start? (rename/swap/start): ")
		if err != nil {
			return err
		}

		switch strings.ToLower(choice) {
		case "", "start":
			return nil
		case "swap":
			if err = players.SwapSides(); err != nil {
				return err
			}
		case "rename":
			if err = c.renamePlayer(ctx, players); err != nil {
				return err
			}
		default:
			c.println("Invalid choice.")
		}
	}
}

func (c *Console) renamePlayer(ctx context.Context, players *othello.Players) error {
	color, err := c.readLine(ctx, "Color of the player to rename (black/white): ")
	if err != nil {
		return err
	}

	side, err := othello.ParseSide(color)
	if err != nil {
		c.reportError(err)
		return nil
	}

	name, err := c.readLine(ctx, "New name: ")
	if err != nil {
		return err
	}

	if err = players.Rename(side, name); err != nil {
		c.reportError(err)
	}

	return nil
}

// reportError prints a rejected answer and lets the prompt continue.
func (c *Console) reportError(err error) {
	c.println(capitalize(err.Error()) + ".")
}

// ShowBoard prints the board labeled 1-8 on both axes.
func (c *Console) ShowBoard(board othello.Board) {
	for _, line := range c.boardLines(board) {
		c.println(line)
	}
}

// ChooseMove asks for a row and column until one of the available squares is entered.
func (c *Console) ChooseMove(
	ctx context.Context,
	player othello.Player,
	available []othello.Square,
) (othello.Square, error) {
	c.printf("Player: %s (%s)\n", player.Name, player.Side)
	c.printf("Available moves: %s\n", formatSquares(available))

	for {
		if err := ctx.Err(); err != nil {
			return othello.Square{}, err
		}

		sq, err := c.readSquare(ctx)
		if errors.Is(err, ErrMalformedInput) {
			c.println("Invalid input. Please enter integers for row and column.")
			continue
		}
		if err != nil {
			return othello.Square{}, err
		}

		if !slices.Contains(available, sq) {
			c.println("Invalid move. Please choose one from the list of available moves.")
			continue
		}

		return sq, nil
	}
}

// Skipped announces a pass.
func (c *Console) Skipped(player othello.Player) {
	c.printf("No available moves for %s. Skipping turn.\n", player.Name)
}

// Finished prints the winner or draw message.
func (c *Console) Finished(outcome othello.Outcome) {
	c.println(outcome.String())
}

func formatSquares(squares []othello.Square) string {
	parts := make([]string, len(squares))
	for i, sq := range squares {
		parts[i] = sq.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
