package render

import (
	"strings"
	"testing"

	"github.com/spacepatrol/space_patrol/internal/game"
	"github.com/spacepatrol/space_patrol/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coin int

func (c coin) IntN(n int) int { return int(c) % n }

func screenText(b *CellBuffer) string {
	lines := make([]string, b.Rows)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	return strings.Join(lines, "\n")
}

func TestSectorTagPrecedence(t *testing.T) {
	tests := []struct {
		s      world.Sector
		player int
		want   string
	}{
		{world.Sector{Number: 1, IsStarbase: true}, 1, TagPlayer},
		{world.Sector{Number: 1, IsStarbase: true}, 2, TagStarbase},
		{world.Sector{Number: 4, HasPirates: true}, 4, TagPlayer},
		{world.Sector{Number: 4, HasPirates: true}, 1, TagPirates},
		{world.Sector{Number: 5}, 1, TagEmpty},
	}
	for _, tt := range tests {
		tag, _ := SectorTag(tt.s, tt.player)
		assert.Equal(t, tt.want, tag)
	}
}

func TestRenderSectorGrid(t *testing.T) {
	g := world.NewGalaxy(coin(1))
	b := NewCellBuffer(21, 3)
	RenderSectorGrid(b, g.Sectors(), 5, 0, 0)

	assert.Equal(t, "[1:sb] [2:pr] [3:pr]", b.Line(0))
	assert.Equal(t, "[4:pr] [5:py] [6:pr]", b.Line(1))
	assert.Equal(t, "[7:pr] [8:pr] [9:pr]", b.Line(2))
}

func TestDrawPatrol(t *testing.T) {
	g := game.NewGame("Ripley", coin(0))
	g.Player.ETA = 4
	g.Player.Weapons.Mount(0, world.Catalog()[1])

	b := NewCellBuffer(ScreenCols, ScreenRows)
	DrawPatrol(b, Screen{
		View:    g.View(),
		HasView: true,
		Menu:    []string{"Move to a sector", "Quit game"},
		Comms: []game.Message{
			{Text: "Moved to sector 4. It will take 6 turns to arrive.", Priority: game.MsgInfo},
			{Text: "Invalid sector!", Priority: game.MsgWarning},
		},
		Prompt:  "Enter your choice: ",
		Input:   "1",
		Waiting: true,
	})
	text := screenText(b)

	assert.Contains(t, b.Line(0), "S P A C E   P A T R O L")
	assert.Contains(t, text, "[1:py] [2:  ] [3:  ]")
	assert.Contains(t, text, "Commander: Ripley")
	assert.Contains(t, text, "Health:    100/100")
	assert.Contains(t, text, "Money:     500")
	assert.Contains(t, text, "ETA:       4 turns")
	assert.Contains(t, text, "Plasma Cannon")
	assert.Contains(t, text, "Slots: 1/5")
	assert.Contains(t, text, "Welcome to Space Patrol! Prepare for your mission.")
	assert.Contains(t, text, "Main Menu")
	assert.Contains(t, text, "2. Quit game")
	assert.Contains(t, text, "Invalid sector!")
	assert.Equal(t, "Enter your choice: 1_", strings.TrimSpace(b.Line(promptY)))

	found := false
	for x := range b.Cols {
		for y := range b.Rows {
			if c := b.Get(x, y); c.Glyph == 'I' && b.Get(x+1, y).Glyph == 'n' && y > commsY {
				assert.Equal(t, uint8(ColorYellow), c.FG)
				found = true
			}
		}
	}
	require.True(t, found)
}

func TestDrawPatrolBeforeFirstView(t *testing.T) {
	b := NewCellBuffer(ScreenCols, ScreenRows)
	DrawPatrol(b, Screen{Over: true})

	text := screenText(b)
	assert.NotContains(t, text, "Commander:")
	assert.Contains(t, text, "Session over. Press Esc to close.")
}

func TestCommsShowsNewestLines(t *testing.T) {
	var comms []game.Message
	for i := range CommsLines + 3 {
		comms = append(comms, game.Message{Text: strings.Repeat("x", i+1)})
	}
	b := NewCellBuffer(ScreenCols, ScreenRows)
	DrawPatrol(b, Screen{Comms: comms})

	assert.True(t, strings.HasPrefix(b.Line(commsY+1), " │ xxxx "))
	assert.True(t, strings.HasPrefix(b.Line(commsY+CommsLines), " │ "+strings.Repeat("x", CommsLines+3)))
}
