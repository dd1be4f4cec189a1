// Package frontend holds the pieces the frame-driven front ends share: a
// presenter that keeps the latest output for the next frame and a keypad
// that turns key presses into game input.
package frontend

import (
	"slices"
	"sync"

	"github.com/spacepatrol/space_patrol/internal/game"
	"github.com/spacepatrol/space_patrol/internal/render"
)

// Mailbox is a game.Presenter that stores what it is given. The session
// goroutine writes; the render loop reads a copy with Screen.
type Mailbox struct {
	mu        sync.Mutex
	view      game.View
	hasView   bool
	menuTitle string
	menu      []string
	comms     *game.MessageLog
	over      bool
	onChange  func()
}

// NewMailbox keeps up to history comms lines.
func NewMailbox(history int) *Mailbox {
	return &Mailbox{comms: game.NewMessageLog(history)}
}

// OnChange registers fn to run after every update, outside the lock.
// tcell uses it to wake its event loop.
func (m *Mailbox) OnChange(fn func()) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

func (m *Mailbox) Render(v game.View) {
	m.update(func() {
		m.view = v
		m.hasView = true
	})
}

func (m *Mailbox) Menu(title string, options []string) {
	m.update(func() {
		m.menuTitle = title
		m.menu = slices.Clone(options)
	})
}

func (m *Mailbox) Notify(msg game.Message) {
	m.update(func() { m.comms.Append(msg) })
}

// Finish marks the session as over.
func (m *Mailbox) Finish() {
	m.update(func() { m.over = true })
}

func (m *Mailbox) update(fn func()) {
	m.mu.Lock()
	fn()
	cb := m.onChange
	m.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// Screen returns a copy of the stored output, ready for render.DrawPatrol.
// The prompt fields are left for the keypad to fill.
func (m *Mailbox) Screen() render.Screen {
	m.mu.Lock()
	defer m.mu.Unlock()
	return render.Screen{
		View:      m.view,
		HasView:   m.hasView,
		MenuTitle: m.menuTitle,
		Menu:      slices.Clone(m.menu),
		Comms:     slices.Clone(m.comms.Recent(render.CommsLines)),
		Over:      m.over,
	}
}

// Compose builds one frame from the mailbox and the keypad.
func Compose(m *Mailbox, k *Keypad) render.Screen {
	s := m.Screen()
	s.Prompt, s.Input, s.Waiting = k.Line()
	if s.Over {
		s.Waiting = false
	}
	return s
}
