// Package window shows the game in a desktop window drawn with Ebitengine.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spacepatrol/space_patrol/internal/frontend"
	"github.com/spacepatrol/space_patrol/internal/render"
	"github.com/spacepatrol/space_patrol/internal/render/ebitenrender"
)

const (
	title      = "Space Patrol"
	cellWidth  = 16
	cellHeight = 16
)

// Window is the Ebitengine game. It owns rendering and keyboard input;
// all gameplay runs on the session goroutine behind the mailbox and keypad.
type Window struct {
	renderer *ebitenrender.GridRenderer
	buffer   *render.CellBuffer
	mailbox  *frontend.Mailbox
	keypad   *frontend.Keypad
	chars    []rune
}

// New creates a window over the shared mailbox and keypad.
func New(m *frontend.Mailbox, k *frontend.Keypad) *Window {
	atlas := ebitenrender.NewFontAtlas()
	return &Window{
		renderer: ebitenrender.NewGridRenderer(atlas, cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(render.ScreenCols, render.ScreenRows),
		mailbox:  m,
		keypad:   k,
	}
}

// Run opens the window and blocks until it is closed. Closing the window
// closes the keypad, which ends the session.
func (w *Window) Run() error {
	width, height := w.renderer.Size(w.buffer)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	defer w.keypad.Close()
	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	w.chars = ebiten.AppendInputChars(w.chars[:0])
	for _, r := range w.chars {
		w.keypad.Type(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		w.keypad.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		w.keypad.Enter()
	}

	render.DrawPatrol(w.buffer, frontend.Compose(w.mailbox, w.keypad))
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.renderer.Draw(screen, w.buffer)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.renderer.Size(w.buffer)
}
