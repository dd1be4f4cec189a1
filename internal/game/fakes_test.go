package game

import (
	"fmt"
	"io"
)

// entry is one scripted keyboard entry.
type entry struct {
	n   int
	err error
}

func ints(ns ...int) []entry {
	out := make([]entry, len(ns))
	for i, n := range ns {
		out[i] = entry{n: n}
	}
	return out
}

func garbage(text string) entry {
	return entry{err: fmt.Errorf("%q: %w", text, ErrInvalidInput)}
}

// scriptInput replays entries and then reports io.EOF.
type scriptInput struct {
	entries []entry
	prompts []string
}

func newScript(entries ...[]entry) *scriptInput {
	s := &scriptInput{}
	for _, e := range entries {
		s.entries = append(s.entries, e...)
	}
	return s
}

func (s *scriptInput) ReadInt(prompt string) (int, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.entries) == 0 {
		return 0, io.EOF
	}
	e := s.entries[0]
	s.entries = s.entries[1:]
	return e.n, e.err
}

// fixedDice replays draws in order and repeats the last one when it runs out.
type fixedDice struct {
	seq   []int
	pos   int
	bound []int // n passed to each call
}

func dice(seq ...int) *fixedDice { return &fixedDice{seq: seq} }

func (d *fixedDice) IntN(n int) int {
	d.bound = append(d.bound, n)
	if len(d.seq) == 0 {
		return 0
	}
	i := min(d.pos, len(d.seq)-1)
	d.pos++
	return d.seq[i] % n
}

// recorder keeps everything a presenter was given.
type recorder struct {
	views   []View
	menus   [][]string
	titles  []string
	notices []Message
}

func (r *recorder) Render(v View) { r.views = append(r.views, v) }

func (r *recorder) Menu(title string, options []string) {
	r.titles = append(r.titles, title)
	r.menus = append(r.menus, options)
}

func (r *recorder) Notify(m Message) { r.notices = append(r.notices, m) }

func (r *recorder) texts() []string {
	out := make([]string, len(r.notices))
	for i, m := range r.notices {
		out[i] = m.Text
	}
	return out
}

// noPirates lays out a galaxy with every nest empty.
func noPirates() *fixedDice { return dice(0) }

// allPirates puts a nest in every sector but the starbase.
func allPirates() *fixedDice { return dice(1) }

func logTexts(l *MessageLog) []string {
	out := make([]string, len(l.Messages))
	for i, m := range l.Messages {
		out[i] = m.Text
	}
	return out
}
