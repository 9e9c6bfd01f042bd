package othello

import "fmt"

// Result is the final verdict of a game.
type Result int

const (
	Draw Result = iota
	BlackWins
	WhiteWins
)

func (r Result) String() string {
	switch r {
	case BlackWins:
		return "black_wins"
	case WhiteWins:
		return "white_wins"
	default:
		return "draw"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Result) UnmarshalText(text []byte) error {
	for _, result := range []Result{Draw, BlackWins, WhiteWins} {
		if result.String() == string(text) {
			*r = result
			return nil
		}
	}
	return fmt.Errorf("unknown result: %q", text)
}

// Outcome is the result of a finished game together with the final counts.
type Outcome struct {
	Result Result `json:"result"`
	Winner string `json:"winner,omitempty"`
	White  int    `json:"white"`
	Black  int    `json:"black"`
}

func (o Outcome) String() string {
	switch o.Result {
	case WhiteWins:
		return fmt.Sprintf("Winner is white player: %s", o.Winner)
	case BlackWins:
		return fmt.Sprintf("Winner is black player: %s", o.Winner)
	default:
		return "The game is a draw"
	}
}
