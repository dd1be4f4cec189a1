package frontend

import (
	"io"
	"testing"
	"time"

	"github.com/spacepatrol/space_patrol/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	n   int
	err error
}

// read starts a ReadInt and waits until the prompt is open.
func read(t *testing.T, k *Keypad, prompt string) <-chan result {
	t.Helper()
	ch := make(chan result, 1)
	go func() {
		n, err := k.ReadInt(prompt)
		ch <- result{n, err}
	}()
	require.Eventually(t, func() bool {
		_, _, waiting := k.Line()
		return waiting
	}, time.Second, time.Millisecond)
	return ch
}

func wait(t *testing.T, ch <-chan result) result {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(time.Second):
		t.Fatal("ReadInt did not return")
		return result{}
	}
}

func TestKeypadEnter(t *testing.T) {
	k := NewKeypad()
	ch := read(t, k, "Enter your choice: ")

	k.Type('1')
	k.Type('x')
	k.Type('2')
	k.Backspace()
	k.Type('4')

	prompt, input, waiting := k.Line()
	assert.Equal(t, "Enter your choice: ", prompt)
	assert.Equal(t, "14", input)
	assert.True(t, waiting)

	k.Enter()
	r := wait(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, 14, r.n)

	_, input, waiting = k.Line()
	assert.Empty(t, input)
	assert.False(t, waiting)
}

func TestKeypadEmptyEntryIsInvalid(t *testing.T) {
	k := NewKeypad()
	ch := read(t, k, "> ")
	k.Enter()

	r := wait(t, ch)
	assert.ErrorIs(t, r.err, game.ErrInvalidInput)
}

func TestKeypadNegative(t *testing.T) {
	k := NewKeypad()
	ch := read(t, k, "> ")
	k.Type('-')
	k.Type('3')
	k.Type('-')
	k.Enter()

	r := wait(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, -3, r.n)
}

func TestKeypadIgnoresKeysWithoutPrompt(t *testing.T) {
	k := NewKeypad()
	k.Type('5')
	k.Enter()

	_, input, waiting := k.Line()
	assert.Empty(t, input)
	assert.False(t, waiting)
}

func TestKeypadClose(t *testing.T) {
	k := NewKeypad()
	changes := 0
	k.OnChange(func() { changes++ })
	ch := read(t, k, "> ")

	k.Close()
	k.Close()
	r := wait(t, ch)
	assert.ErrorIs(t, r.err, io.EOF)

	_, err := k.ReadInt("again")
	assert.ErrorIs(t, err, io.EOF)
	assert.Positive(t, changes)
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt(" 42\n")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = ParseInt("four")
	assert.ErrorIs(t, err, game.ErrInvalidInput)
}
