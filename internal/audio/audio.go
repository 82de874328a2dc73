// Package audio plays short synthesized sound effects for game events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone of an effect.
type note struct {
	freq float64
	dur  time.Duration
}

// effectNotes maps events to the tones played for them. Events that are
// missing stay silent.
var effectNotes = map[core.EventKind][]note{
	core.EventWallBounce:     {{440, 25 * time.Millisecond}},
	core.EventPaddleBounce:   {{330, 40 * time.Millisecond}},
	core.EventBrickHit:       {{587, 30 * time.Millisecond}},
	core.EventBrickDestroyed: {{880, 45 * time.Millisecond}},
	core.EventLifeLost:       {{220, 120 * time.Millisecond}, {165, 180 * time.Millisecond}},
	core.EventLevelCleared:   {{523, 80 * time.Millisecond}, {659, 80 * time.Millisecond}, {784, 120 * time.Millisecond}},
	core.EventGameOver:       {{196, 150 * time.Millisecond}, {147, 150 * time.Millisecond}, {110, 300 * time.Millisecond}},
	core.EventVictory: {
		{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond},
		{784, 100 * time.Millisecond}, {1047, 300 * time.Millisecond},
	},
}

// Effect builds the finite streamer for an event, or nil for silent events.
func Effect(kind core.EventKind, volume float64) (beep.Streamer, error) {
	notes, ok := effectNotes[kind]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: %s tone: %w", kind, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}

	return newVolume(beep.Seq(parts...), volume), nil
}

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Player mixes effects into the speaker. The zero value is a silent player,
// so a failed Init leaves a usable no-op.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player with a linear volume in (0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the effect for an event. It never blocks on the device.
func (p *Player) Play(kind core.EventKind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s, err := Effect(kind, p.volume)
	if err != nil || s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
