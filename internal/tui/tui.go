// Package tui shows the game full screen in a terminal using tcell.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spacepatrol/space_patrol/internal/frontend"
	"github.com/spacepatrol/space_patrol/internal/render"
)

// Terminal draws the shared cell buffer to a tcell screen and feeds key
// presses to the keypad.
type Terminal struct {
	screen  tcell.Screen
	buffer  *render.CellBuffer
	mailbox *frontend.Mailbox
	keypad  *frontend.Keypad
}

// New initialises the terminal. The caller must call Run, which restores
// the terminal when it returns.
func New(m *frontend.Mailbox, k *frontend.Keypad) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, m, k)
}

// NewWithScreen is New over a given screen, such as a simulation screen.
func NewWithScreen(screen tcell.Screen, m *frontend.Mailbox, k *frontend.Keypad) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	t := &Terminal{
		screen:  screen,
		buffer:  render.NewCellBuffer(render.ScreenCols, render.ScreenRows),
		mailbox: m,
		keypad:  k,
	}
	wake := func() { _ = screen.PostEvent(tcell.NewEventInterrupt(nil)) }
	m.OnChange(wake)
	k.OnChange(wake)
	return t, nil
}

// Run handles events until Escape or Ctrl-C. Leaving closes the keypad.
func (t *Terminal) Run() {
	defer t.screen.Fini()
	defer t.keypad.Close()

	t.draw()
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if !t.handleKey(ev) {
				return
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
		t.draw()
	}
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		t.keypad.Enter()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.keypad.Backspace()
	case tcell.KeyRune:
		t.keypad.Type(ev.Rune())
	}
	return true
}

func (t *Terminal) draw() {
	render.DrawPatrol(t.buffer, frontend.Compose(t.mailbox, t.keypad))
	Blit(t.screen, t.buffer)
	t.screen.Show()
}

// Blit copies buf to the top-left of screen.
func Blit(screen tcell.Screen, buf *render.CellBuffer) {
	screen.Clear()
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			c := buf.Cells[y*buf.Cols+x]
			r := render.CP437ToUnicode[c.Glyph]
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, cellStyle(c))
		}
	}
}

func cellStyle(c render.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(render.RGB(c.FG))).
		Background(tcell.NewRGBColor(render.RGB(c.BG)))
}
