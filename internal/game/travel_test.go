package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveScenario(t *testing.T) {
	g := NewGame("", noPirates())
	g.Player.Fuel = 10

	require.NoError(t, g.Move(4))
	assert.Equal(t, 4, g.Player.Fuel)
	assert.Equal(t, 6, g.Player.ETA)
	assert.Equal(t, 4, g.Player.Sector)
	assert.Equal(t, "Moved to sector 4. It will take 6 turns to arrive.", g.Log.Recent(1)[0].Text)

	before := g.Player
	err := g.Move(9)
	require.ErrorIs(t, err, ErrInsufficientFuel)
	assert.ErrorIs(t, err, ErrInsufficientResource)
	assert.Equal(t, before, g.Player)
	assert.Equal(t, "Not enough fuel to move!", g.Log.Recent(1)[0].Text)
}

func TestMoveRejects(t *testing.T) {
	tests := []struct {
		name string
		dest int
		fuel int
		err  error
		msg  string
	}{
		{"below grid", 0, 100, ErrInvalidInput, "Invalid sector!"},
		{"above grid", 10, 100, ErrInvalidInput, "Invalid sector!"},
		{"negative", -3, 100, ErrInvalidInput, "Invalid sector!"},
		{"same sector", 1, 100, ErrInvalidInput, "You are already in this sector!"},
		{"short one unit", 5, 7, ErrInsufficientFuel, "Not enough fuel to move!"},
		{"empty tank", 2, 0, ErrInsufficientFuel, "Not enough fuel to move!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame("", noPirates())
			g.Player.Fuel = tt.fuel
			before := g.Player

			err := g.Move(tt.dest)
			require.ErrorIs(t, err, tt.err)
			assert.True(t, Recoverable(err))
			assert.Equal(t, before, g.Player)
			assert.Equal(t, tt.msg, g.Log.Recent(1)[0].Text)
		})
	}
}

func TestMoveFuelAccounting(t *testing.T) {
	for from := 1; from <= 9; from++ {
		for to := 1; to <= 9; to++ {
			if from == to {
				continue
			}
			g := NewGame("", noPirates())
			g.Player.Sector = from
			fuel := g.Player.Fuel

			require.NoError(t, g.Move(to))
			cost := 2 * abs(to-from)
			assert.Equal(t, fuel-cost, g.Player.Fuel)
			assert.GreaterOrEqual(t, g.Player.Fuel, 0)
			assert.Equal(t, cost, g.Player.ETA)
		}
	}
}

func TestMoveExactFuel(t *testing.T) {
	g := NewGame("", noPirates())
	g.Player.Fuel = 16

	require.NoError(t, g.Move(9))
	assert.Equal(t, 0, g.Player.Fuel)
}

func TestAdvanceETA(t *testing.T) {
	g := NewGame("", noPirates())
	g.Player.ETA = 2

	g.AdvanceETA()
	assert.Equal(t, 1, g.Player.ETA)
	g.AdvanceETA()
	g.AdvanceETA()
	assert.Equal(t, 0, g.Player.ETA)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
