package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageLogEvictsOldest(t *testing.T) {
	l := NewMessageLog(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		l.Add(s, MsgInfo)
	}
	assert.Equal(t, []string{"b", "c", "d"}, logTexts(l))
	assert.Len(t, l.Recent(10), 3)
	assert.Equal(t, "d", l.Recent(1)[0].Text)
}

func TestMessageLogSince(t *testing.T) {
	l := NewMessageLog(2)
	mark := l.Mark()

	l.Add("one", MsgInfo)
	msgs, mark := l.Since(mark)
	require.Len(t, msgs, 1)
	assert.Equal(t, "one", msgs[0].Text)

	msgs, mark = l.Since(mark)
	assert.Empty(t, msgs)

	l.Add("two", MsgInfo)
	l.Add("three", MsgInfo)
	l.Add("four", MsgInfo)
	msgs, _ = l.Since(mark)
	require.Len(t, msgs, 2, "evicted lines are gone")
	assert.Equal(t, "three", msgs[0].Text)
	assert.Equal(t, "four", msgs[1].Text)
}

func TestPostWrapsAndCuesFirstLine(t *testing.T) {
	l := NewMessageLog(10)
	long := strings.Repeat("pirate ", 20)

	l.Post(long, MsgCritical, CueAlert)
	require.Greater(t, len(l.Messages), 1)
	assert.Equal(t, CueAlert, l.Messages[0].Cue)
	for _, m := range l.Messages[1:] {
		assert.Equal(t, CueNone, m.Cue)
		assert.Equal(t, MsgCritical, m.Priority)
	}
	for _, m := range l.Messages {
		assert.LessOrEqual(t, len(m.Text), messageWidth)
	}
}

func TestWrapTextNewlines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, wrapText("a\n\nb", 10))
	assert.Equal(t, []string{"one two", "three"}, wrapText("one two three", 8))
}

func TestZeroSizeLogCountsOnly(t *testing.T) {
	l := NewMessageLog(0)
	l.Add("x", MsgInfo)
	assert.Empty(t, l.Messages)
	assert.Equal(t, uint64(1), l.Mark())
}
