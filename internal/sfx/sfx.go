// Package sfx turns message cues into short synthesised tones.
package sfx

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/spacepatrol/space_patrol/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.25
)

// note is one tone in a cue. Freq 0 is a rest.
type note struct {
	Freq   float64
	Length time.Duration
}

var cueNotes = [game.CueCount][]note{
	game.CueRoundWon:  {{660, 60 * time.Millisecond}, {880, 80 * time.Millisecond}},
	game.CueRoundLost: {{330, 80 * time.Millisecond}, {220, 120 * time.Millisecond}},
	game.CueDraw:      {{440, 70 * time.Millisecond}},
	game.CueVictory: {
		{523, 90 * time.Millisecond},
		{659, 90 * time.Millisecond},
		{784, 90 * time.Millisecond},
		{1047, 200 * time.Millisecond},
	},
	game.CueDefeat: {
		{392, 150 * time.Millisecond},
		{330, 150 * time.Millisecond},
		{262, 400 * time.Millisecond},
	},
	game.CuePurchase: {{988, 50 * time.Millisecond}, {1319, 90 * time.Millisecond}},
	game.CueRefuel:   {{294, 60 * time.Millisecond}, {0, 30 * time.Millisecond}, {294, 60 * time.Millisecond}},
	game.CueWarp:     {{220, 60 * time.Millisecond}, {440, 60 * time.Millisecond}, {880, 60 * time.Millisecond}},
	game.CueAlert:    {{880, 100 * time.Millisecond}, {0, 50 * time.Millisecond}, {880, 100 * time.Millisecond}},
	game.CueError:    {{120, 150 * time.Millisecond}},
}

// Stream builds the sound for c. It reports false for cues with no sound.
func Stream(c game.Cue) (beep.Streamer, bool) {
	if c >= game.CueCount || len(cueNotes[c]) == 0 {
		return nil, false
	}
	parts := make([]beep.Streamer, 0, len(cueNotes[c]))
	for _, n := range cueNotes[c] {
		samples := sampleRate.N(n.Length)
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		sine, err := generators.SineTone(sampleRate, n.Freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(samples, &gain{s: sine, g: volume}))
	}
	return beep.Seq(parts...), true
}

// gain scales another streamer.
type gain struct {
	s beep.Streamer
	g float64
}

func (g *gain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.s.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= g.g
		samples[i][1] *= g.g
	}
	return n, ok
}

func (g *gain) Err() error { return g.s.Err() }

// Speaker plays cues on the default audio device through one mixer.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSpeaker() *Speaker {
	return &Speaker{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. A failure leaves the speaker silent;
// the game runs without sound.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play starts the sound for c without waiting for it.
func (s *Speaker) Play(c game.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st, ok := Stream(c)
	if !ok {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all sound and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Player is anything that can sound a cue.
type Player interface {
	Play(c game.Cue)
}

// presenter sounds each message's cue before passing it on.
type presenter struct {
	game.Presenter
	player Player
}

// Wrap returns a presenter that plays cues through pl and forwards
// everything to p.
func Wrap(p game.Presenter, pl Player) game.Presenter {
	return &presenter{Presenter: p, player: pl}
}

func (p *presenter) Notify(msg game.Message) {
	if msg.Cue != game.CueNone {
		p.player.Play(msg.Cue)
	}
	p.Presenter.Notify(msg)
}
