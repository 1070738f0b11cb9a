// Package audio plays synthesized sound effects for game events.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/beamfight/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager mixes effect sounds into a single speaker stream.
// The speaker pulls samples from its own goroutine, so the mixer is guarded.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	logger      *log.Logger
	initialized bool
}

// NewSoundManager creates a sound manager. Volume is linear in [0, 1].
func NewSoundManager(volume float64, logger *log.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Initialize sets up the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all sounds and closes the audio device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// Play starts a sound. Calls before Initialize are ignored.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := CreateSound(s, sampleRate, sm.volume)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// HandleEvents plays the sound for each event of a tick. Several beams fired
// in one tick play a single shot.
func (sm *SoundManager) HandleEvents(events []core.Event) {
	var played [3]bool
	for _, e := range events {
		s, ok := SoundFor(e.Kind)
		if !ok || played[s] {
			continue
		}
		played[s] = true
		if sm.logger != nil {
			sm.logger.Debug("sound", "effect", s, "event", e.Kind)
		}
		sm.Play(s)
	}
}

// SoundFor maps an event to its sound.
func SoundFor(kind core.EventKind) (Sound, bool) {
	switch kind {
	case core.EventBeamFired:
		return SoundShot, true
	case core.EventBombDestroyed:
		return SoundBlast, true
	case core.EventPlayerHit:
		return SoundDeath, true
	default:
		return 0, false
	}
}
