package othello

import (
	"fmt"
	"strings"
)

// Player is a named participant playing one side.
type Player struct {
	Name string `json:"name"`
	Side Side   `json:"side"`
}

// Players maps each side to the player occupying it.
type Players struct {
	bySide map[Side]Player

	// locked is set once a game uses this registry.
	locked bool
}

// NewPlayers creates an empty registry.
func NewPlayers() *Players {
	return &Players{
		bySide: make(map[Side]Player, 2),
	}
}

// NewPlayersMust registers a black and a white player and panics on failure.
func NewPlayersMust(blackName, whiteName string) *Players {
	players := NewPlayers()
	if err := players.Create(blackName, Black.String()); err != nil {
		panic(err)
	}
	if err := players.Create(whiteName, White.String()); err != nil {
		panic(err)
	}
	return players
}

// Create registers a player for the side named by color.
// The registry is left unchanged when an error is returned.
func (p *Players) Create(name, color string) error {
	if p.locked {
		return ErrPlayersLocked
	}

	side, err := ParseSide(color)
	if err != nil {
		return err
	}

	if len(p.bySide) >= 2 {
		return ErrTooManyPlayers
	}

	if existing, ok := p.bySide[side]; ok {
		return fmt.Errorf("%w: %s plays %s", ErrSideTaken, existing.Name, side)
	}

	p.bySide[side] = Player{Name: strings.TrimSpace(name), Side: side}
	return nil
}

// BySide returns the player occupying side.
func (p *Players) BySide(side Side) (Player, bool) {
	player, ok := p.bySide[side]
	return player, ok
}

// Len returns the number of registered players.
func (p *Players) Len() int {
	return len(p.bySide)
}

// Rename changes the name of the player occupying side.
func (p *Players) Rename(side Side, name string) error {
	if p.locked {
		return ErrPlayersLocked
	}

	player, ok := p.bySide[side]
	if !ok {
		return fmt.Errorf("%w: no %s player", ErrMissingPlayer, side)
	}

	player.Name = strings.TrimSpace(name)
	p.bySide[side] = player
	return nil
}

// SwapSides lets the players trade colors.
func (p *Players) SwapSides() error {
	if p.locked {
		return ErrPlayersLocked
	}

	swapped := make(map[Side]Player, len(p.bySide))
	for side, player := range p.bySide {
		player.Side = side.Opponent()
		swapped[player.Side] = player
	}

	p.bySide = swapped
	return nil
}

// Ready checks that both sides are occupied.
func (p *Players) Ready() error {
	for _, side := range []Side{Black, White} {
		if _, ok := p.bySide[side]; !ok {
			return fmt.Errorf("%w: no %s player", ErrMissingPlayer, side)
		}
	}
	return nil
}

func (p *Players) lock() {
	p.locked = true
}

func (p *Players) nameOf(side Side) string {
	if p == nil {
		return side.String()
	}

	if player, ok := p.bySide[side]; ok && player.Name != "" {
		return player.Name
	}
	return side.String()
}
