// Package ebitenrender draws render cell buffers with Ebitengine.
package ebitenrender

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spacepatrol/space_patrol/internal/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// FontAtlas holds the CP437 glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas builds the atlas once at startup. Printable ASCII comes from
// basicfont.Face7x13; frame and block glyphs are drawn by hand. Anything
// else is left blank.
func NewFontAtlas() *FontAtlas {
	img := buildAtlasImage()
	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := range 256 {
		a.glyphs[code] = eimg.SubImage(glyphRect(code)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a CP437 character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

func glyphRect(code int) image.Rectangle {
	x := (code % AtlasCols) * GlyphWidth
	y := (code / AtlasCols) * GlyphHeight
	return image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
}

// buildAtlasImage rasterises all 256 glyphs white on transparent, so the
// renderer can tint them with any palette colour.
func buildAtlasImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := range 256 {
		r := glyphRect(code)
		switch ch := render.CP437ToUnicode[code]; {
		case ch >= 32 && ch <= 126:
			drawFontGlyph(img, face, r.Min.X, r.Min.Y, ch)
		case frameChars[byte(code)] != [4]uint8{}:
			drawFrameGlyph(img, r.Min.X, r.Min.Y, frameChars[byte(code)])
		default:
			drawBlockGlyph(img, r.Min.X, r.Min.Y, byte(code))
		}
	}
	return img
}

// drawFontGlyph renders a single ASCII character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// Stroke weights for each arm of a frame glyph.
const (
	none   = 0
	single = 1
	double = 2
)

// frameChars maps CP437 codes to the weight of each arm: {left, right, top, bottom}.
var frameChars = map[byte][4]uint8{
	179: {none, none, single, single},     // │
	180: {single, none, single, single},   // ┤
	191: {single, none, none, single},     // ┐
	192: {none, single, single, none},     // └
	193: {single, single, single, none},   // ┴
	194: {single, single, none, single},   // ┬
	195: {none, single, single, single},   // ├
	196: {single, single, none, none},     // ─
	197: {single, single, single, single}, // ┼
	217: {single, none, single, none},     // ┘
	218: {none, single, none, single},     // ┌
	185: {double, none, double, double},   // ╣
	186: {none, none, double, double},     // ║
	187: {double, none, none, double},     // ╗
	188: {double, none, double, none},     // ╝
	200: {none, double, double, none},     // ╚
	201: {none, double, none, double},     // ╔
	202: {double, double, double, none},   // ╩
	203: {double, double, none, double},   // ╦
	204: {none, double, double, double},   // ╠
	205: {double, double, none, none},     // ═
	206: {double, double, double, double}, // ╬
}

// drawFrameGlyph draws each arm from the cell centre to its edge. Single arms
// are 2 pixels wide; double arms are two 1 pixel lines 4 pixels apart.
func drawFrameGlyph(img *image.NRGBA, cellX, cellY int, arms [4]uint8) {
	w := color.NRGBA{255, 255, 255, 255}
	cx, cy := cellX+7, cellY+7

	hline := func(x0, x1, y int) {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, w)
		}
	}
	vline := func(y0, y1, x int) {
		for y := y0; y < y1; y++ {
			img.SetNRGBA(x, y, w)
		}
	}
	offsets := func(weight uint8) []int {
		if weight == double {
			return []int{-2, 3}
		}
		return []int{0, 1}
	}

	if arms[0] != none {
		for _, d := range offsets(arms[0]) {
			hline(cellX, cx+2, cy+d)
		}
	}
	if arms[1] != none {
		for _, d := range offsets(arms[1]) {
			hline(cx-1, cellX+GlyphWidth, cy+d)
		}
	}
	if arms[2] != none {
		for _, d := range offsets(arms[2]) {
			vline(cellY, cy+2, cx+d)
		}
	}
	if arms[3] != none {
		for _, d := range offsets(arms[3]) {
			vline(cy-1, cellY+GlyphHeight, cx+d)
		}
	}
}

// drawBlockGlyph draws the shading and block glyphs the screens use.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	w := color.NRGBA{255, 255, 255, 255}
	fill := func(x0, y0, x1, y1 int, keep func(x, y int) bool) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if keep == nil || keep(x, y) {
					img.SetNRGBA(cellX+x, cellY+y, w)
				}
			}
		}
	}

	switch code {
	case 176: // ░
		fill(0, 0, GlyphWidth, GlyphHeight, func(x, y int) bool { return (x+y)%4 == 0 })
	case 177: // ▒
		fill(0, 0, GlyphWidth, GlyphHeight, func(x, y int) bool { return (x+y)%2 == 0 })
	case 178: // ▓
		fill(0, 0, GlyphWidth, GlyphHeight, func(x, y int) bool { return (x+y)%4 != 0 })
	case 219: // █
		fill(0, 0, GlyphWidth, GlyphHeight, nil)
	case 220: // ▄
		fill(0, GlyphHeight/2, GlyphWidth, GlyphHeight, nil)
	case 223: // ▀
		fill(0, 0, GlyphWidth, GlyphHeight/2, nil)
	case 254: // ■
		fill(4, 4, 12, 12, nil)
	case 250: // ·
		fill(7, 7, 9, 9, nil)
	case 16: // ►
		fill(4, 3, 12, 13, func(x, y int) bool {
			d := y - 8
			if d < 0 {
				d = -d
			}
			return x-4 <= 7-d
		})
	}
}
