package othello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		input   string
		want    Side
		wantErr bool
	}{
		{"black", Black, false},
		{"WHITE", White, false},
		{" Black ", Black, false},
		{"wHiTe", White, false},
		{"green", Black, true},
		{"", Black, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			side, err := ParseSide(test.input)
			if test.wantErr {
				require.ErrorIs(t, err, ErrInvalidSide)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, side)
		})
	}
}

func TestSide_Opponent(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Equal(t, CellBlack, Black.Cell())
	require.Equal(t, CellWhite, White.Cell())
}

func TestPlayers_Create(t *testing.T) {
	tests := []struct {
		name      string
		setup     [][2]string
		player    [2]string
		wantErr   error
		wantCount int
	}{
		{
			name:      "first player",
			setup:     nil,
			player:    [2]string{"Alice", "black"},
			wantErr:   nil,
			wantCount: 1,
		},
		{
			name:      "case insensitive color",
			setup:     [][2]string{{"Alice", "black"}},
			player:    [2]string{"Bob", "WHITE"},
			wantErr:   nil,
			wantCount: 2,
		},
		{
			name:      "unknown color",
			setup:     [][2]string{{"Alice", "black"}},
			player:    [2]string{"Bob", "red"},
			wantErr:   ErrInvalidSide,
			wantCount: 1,
		},
		{
			name:      "third player",
			setup:     [][2]string{{"Alice", "black"}, {"Bob", "white"}},
			player:    [2]string{"Carol", "white"},
			wantErr:   ErrTooManyPlayers,
			wantCount: 2,
		},
		{
			name:      "color taken",
			setup:     [][2]string{{"Alice", "black"}},
			player:    [2]string{"Bob", "Black"},
			wantErr:   ErrSideTaken,
			wantCount: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			players := NewPlayers()
			for _, p := range test.setup {
				require.NoError(t, players.Create(p[0], p[1]))
			}

			before := make(map[Side]Player)
			for _, side := range []Side{Black, White} {
				if p, ok := players.BySide(side); ok {
					before[side] = p
				}
			}

			err := players.Create(test.player[0], test.player[1])
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)

				for side, p := range before {
					got, ok := players.BySide(side)
					require.True(t, ok)
					require.Equal(t, p, got)
				}
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, test.wantCount, players.Len())
		})
	}
}

func TestPlayers_BySide(t *testing.T) {
	players := NewPlayers()
	require.NoError(t, players.Create("Bob", "white"))
	require.NoError(t, players.Create("Alice", "black"))

	black, ok := players.BySide(Black)
	require.True(t, ok)
	require.Equal(t, Player{Name: "Alice", Side: Black}, black)

	white, ok := players.BySide(White)
	require.True(t, ok)
	require.Equal(t, Player{Name: "Bob", Side: White}, white)
}

func TestPlayers_Edits(t *testing.T) {
	players := NewPlayersMust("Alice", "Bob")

	require.NoError(t, players.Rename(Black, " Alicia "))
	require.NoError(t, players.SwapSides())

	white, _ := players.BySide(White)
	require.Equal(t, Player{Name: "Alicia", Side: White}, white)

	black, _ := players.BySide(Black)
	require.Equal(t, Player{Name: "Bob", Side: Black}, black)

	require.ErrorIs(t, NewPlayers().Rename(White, "Nobody"), ErrMissingPlayer)
}

func TestPlayers_Ready(t *testing.T) {
	players := NewPlayers()
	require.ErrorIs(t, players.Ready(), ErrMissingPlayer)

	require.NoError(t, players.Create("Alice", "white"))
	require.ErrorIs(t, players.Ready(), ErrMissingPlayer)

	require.NoError(t, players.Create("Bob", "black"))
	require.NoError(t, players.Ready())
}

func TestPlayers_LockedAfterGameStart(t *testing.T) {
	players := NewPlayersMust("Alice", "Bob")

	_, err := NewGame(players)
	require.NoError(t, err)

	require.ErrorIs(t, players.Create("Carol", "white"), ErrPlayersLocked)
	require.ErrorIs(t, players.Rename(Black, "Carol"), ErrPlayersLocked)
	require.ErrorIs(t, players.SwapSides(), ErrPlayersLocked)
}
