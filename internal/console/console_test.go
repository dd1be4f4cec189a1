package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spacepatrol/space_patrol/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type heads int

func (h heads) IntN(n int) int { return int(h) % n }

func TestReadInt(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("3\nabc\n  7 \n"), &out, false)

	n, err := c.ReadInt("Enter your choice: ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = c.ReadInt("Enter your choice: ")
	assert.ErrorIs(t, err, game.ErrInvalidInput)

	n, err = c.ReadInt("Enter your choice: ")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = c.ReadInt("Enter your choice: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, 4, strings.Count(out.String(), "Enter your choice: "))
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, false)
	g := game.NewGame("", heads(1))
	g.Player.ETA = 2

	c.Render(g.View())
	text := out.String()

	assert.Contains(t, text, "Space Grid:")
	assert.Contains(t, text, "[1:py] [2:pr] [3:pr]\n")
	assert.Contains(t, text, "[7:pr] [8:pr] [9:pr]\n")
	assert.Contains(t, text, "PLAYER STATUS")
	assert.Contains(t, text, "Health: 100      Max Health: 100")
	assert.Contains(t, text, "Money:  500")
	assert.Contains(t, text, "Weapons: none")
	assert.Contains(t, text, "ETA to destination: 2 turns\n")
	assert.Contains(t, text, "Message: Welcome to Space Patrol! Prepare for your mission.\n")
	assert.NotContains(t, text, "\x1b[")
}

func TestMenuAndNotify(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, false)

	c.Menu("Available Weapons:", []string{"Laser (Damage: 10, Cost: 100)"})
	c.Notify(game.Message{Text: "Not enough money to purchase this weapon!", Priority: game.MsgWarning})

	assert.Equal(t,
		"Available Weapons:\n1. Laser (Damage: 10, Cost: 100)\nNot enough money to purchase this weapon!\n",
		out.String())
}

func TestBanner(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out, false).Banner()
	assert.Contains(t, out.String(), "WELCOME TO SPACE PATROL")
	assert.Contains(t, out.String(), "╔")
}

func TestWholeSessionOverPipes(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("3\n2\n4\n"), &out, false)
	g := game.NewGame("", heads(0))
	g.Player.Fuel = 50

	s := game.NewSession(g, c, c, heads(2), nil)
	state, err := s.Run()
	require.NoError(t, err)

	assert.Equal(t, game.StateQuit, state)
	assert.Contains(t, out.String(), "Refueled the ship for 100 money.")
	assert.Contains(t, out.String(), "Quitting game. Final status: Health = 100, Fuel = 100, Money = 400")
}
