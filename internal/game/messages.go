package game

import "strings"

// MsgPriority controls how a message is coloured by the front ends.
type MsgPriority uint8

const (
	MsgInfo      MsgPriority = iota // cyan
	MsgWarning                      // yellow
	MsgCritical                     // red
	MsgDiscovery                    // green
	MsgSocial                       // white
)

// Cue is a sound hint attached to a message. Silent front ends ignore it.
type Cue uint8

const (
	CueNone Cue = iota
	CueRoundWon
	CueRoundLost
	CueDraw
	CueVictory
	CueDefeat
	CuePurchase
	CueRefuel
	CueWarp
	CueAlert
	CueError
	CueCount // sentinel
)

// Message is a single entry in the comms log.
type Message struct {
	Text     string
	Priority MsgPriority
	Cue      Cue
}

// messageWidth is the wrap width; it fits the comms panel of an 80 column screen.
const messageWidth = 72

// MessageLog is a bounded FIFO of messages.
type MessageLog struct {
	Messages []Message
	maxSize  int
	added    uint64 // lines ever added, including evicted ones
}

// NewMessageLog creates a log that keeps the most recent maxSize messages.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add appends a silent message.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	l.Post(text, priority, CueNone)
}

// Post appends a message, evicting the oldest if full. Long text is wrapped
// and only the first line carries the cue.
func (l *MessageLog) Post(text string, priority MsgPriority, cue Cue) {
	for i, line := range wrapText(text, messageWidth) {
		msg := Message{Text: line, Priority: priority}
		if i == 0 {
			msg.Cue = cue
		}
		l.push(msg)
	}
}

// Append stores an already formed message without re-wrapping it.
func (l *MessageLog) Append(msg Message) {
	l.push(msg)
}

func (l *MessageLog) push(msg Message) {
	l.added++
	if l.maxSize <= 0 {
		return
	}
	if len(l.Messages) >= l.maxSize {
		copy(l.Messages, l.Messages[1:])
		l.Messages[len(l.Messages)-1] = msg
	} else {
		l.Messages = append(l.Messages, msg)
	}
}

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// Mark returns a position that Since can later read from.
func (l *MessageLog) Mark() uint64 { return l.added }

// Since returns the messages added after mark that are still held, and the new mark.
func (l *MessageLog) Since(mark uint64) ([]Message, uint64) {
	n := int(l.added - mark)
	out := make([]Message, 0, min(n, len(l.Messages)))
	out = append(out, l.Recent(n)...)
	return out, l.added
}

// wrapText splits text into lines no longer than maxWidth.
// Explicit newlines always start a new line.
func wrapText(s string, maxWidth int) []string {
	var result []string
	for _, para := range strings.Split(s, "\n") {
		if len(para) <= maxWidth {
			result = append(result, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			result = append(result, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > maxWidth {
				result = append(result, line)
				line = w
			} else {
				line += " " + w
			}
		}
		result = append(result, line)
	}
	return result
}
