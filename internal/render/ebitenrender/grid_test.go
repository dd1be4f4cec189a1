package ebitenrender

import (
	"testing"

	"github.com/spacepatrol/space_patrol/internal/render"
	"github.com/stretchr/testify/assert"
)

func TestGridRendererSize(t *testing.T) {
	r := &GridRenderer{CellW: 16, CellH: 16}
	w, h := r.Size(render.NewCellBuffer(render.ScreenCols, render.ScreenRows))
	assert.Equal(t, 1280, w)
	assert.Equal(t, 544, h)
}

func TestFrameGlyphArms(t *testing.T) {
	assert.Equal(t, [4]uint8{single, single, none, none}, frameChars[196])
	assert.Equal(t, [4]uint8{none, double, none, double}, frameChars[201])
	for code, arms := range frameChars {
		assert.NotEqual(t, [4]uint8{}, arms, "glyph %d", code)
	}
}
