package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/spacepatrol/space_patrol/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(render.ScreenCols, render.ScreenRows)

	buf := render.NewCellBuffer(4, 2)
	buf.Set(0, 0, 201, render.ColorCyan, render.ColorBlack)
	buf.Set(1, 0, 'A', render.ColorYellow, render.ColorBlue)
	Blit(screen, buf)
	screen.Show()

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, '╔', r)

	r, _, style, _ = screen.GetContent(1, 0)
	assert.Equal(t, 'A', r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 255, 85), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 170), bg)
}

func TestCellStyle(t *testing.T) {
	fg, bg, _ := cellStyle(render.Cell{FG: render.ColorLightRed, BG: render.ColorBlack}).Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 85, 85), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)
}
