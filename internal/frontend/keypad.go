package frontend

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/spacepatrol/space_patrol/internal/game"
)

// maxEntry caps how many characters a single entry may hold.
const maxEntry = 8

// Keypad is a game.Input fed by key presses from a UI goroutine.
type Keypad struct {
	mu       sync.Mutex
	prompt   string
	line     []rune
	waiting  bool
	lines    chan string
	done     chan struct{}
	closed   bool
	onChange func()
}

func NewKeypad() *Keypad {
	return &Keypad{
		lines: make(chan string, 1),
		done:  make(chan struct{}),
	}
}

// OnChange registers fn to run after the visible line changes.
func (k *Keypad) OnChange(fn func()) {
	k.mu.Lock()
	k.onChange = fn
	k.mu.Unlock()
}

// ReadInt shows prompt and blocks until Enter or Close.
func (k *Keypad) ReadInt(prompt string) (int, error) {
	k.update(func() bool {
		k.prompt = prompt
		k.line = k.line[:0]
		k.waiting = !k.closed
		return true
	})

	select {
	case s := <-k.lines:
		return ParseInt(s)
	case <-k.done:
		return 0, io.EOF
	}
}

// Type appends r to the entry. Only digits and a leading minus are taken,
// and only while a prompt is open.
func (k *Keypad) Type(r rune) {
	k.update(func() bool {
		if !k.waiting || len(k.line) >= maxEntry {
			return false
		}
		if (r < '0' || r > '9') && !(r == '-' && len(k.line) == 0) {
			return false
		}
		k.line = append(k.line, r)
		return true
	})
}

// Backspace deletes the last typed character.
func (k *Keypad) Backspace() {
	k.update(func() bool {
		if !k.waiting || len(k.line) == 0 {
			return false
		}
		k.line = k.line[:len(k.line)-1]
		return true
	})
}

// Enter submits the entry to the waiting ReadInt.
func (k *Keypad) Enter() {
	k.update(func() bool {
		if !k.waiting {
			return false
		}
		k.waiting = false
		k.lines <- string(k.line)
		k.line = k.line[:0]
		return true
	})
}

// Close makes the current and every later ReadInt return io.EOF.
func (k *Keypad) Close() {
	k.update(func() bool {
		if k.closed {
			return false
		}
		k.closed = true
		k.waiting = false
		close(k.done)
		return true
	})
}

// Line returns the open prompt and what has been typed so far.
func (k *Keypad) Line() (prompt, input string, waiting bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.prompt, string(k.line), k.waiting
}

func (k *Keypad) update(fn func() bool) {
	k.mu.Lock()
	changed := fn()
	cb := k.onChange
	k.mu.Unlock()
	if changed && cb != nil {
		cb()
	}
}

// ParseInt reads one typed number. Anything that is not an integer wraps
// game.ErrInvalidInput.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", s, game.ErrInvalidInput)
	}
	return n, nil
}
