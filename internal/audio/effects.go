package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a raw wave whose frequency slides linearly from
// freq to endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq.
func NewSweep(freq, endFreq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential decay to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	decay    float64 // Per-sample multiplier after the attack
}

// NewEnvelope shapes s with the given attack time and decay half-life.
func NewEnvelope(s beep.Streamer, attack, halfLife time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		decay:    math.Pow(0.5, 1/float64(rate.N(halfLife))),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		var vol float64
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else {
			vol = math.Pow(e.decay, float64(e.position-e.attack))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound identifies one effect.
type Sound int

const (
	SoundShot  Sound = iota // Beam fired
	SoundBlast              // Bomb destroyed
	SoundDeath              // Player hit
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundBlast:
		return "blast"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}

const (
	shotDuration  = 90 * time.Millisecond
	blastDuration = 350 * time.Millisecond
	deathNote     = 180 * time.Millisecond
)

// CreateShotSound generates a short descending zap.
func CreateShotSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(1400, 500, shotDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, 5*time.Millisecond, 30*time.Millisecond, rate)
	return newVolume(shaped, 0.25*volume)
}

// CreateBlastSound generates a noise burst over a low rumble.
func CreateBlastSound(rate beep.SampleRate, volume float64) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, blastDuration, WaveNoise, rate), 2*time.Millisecond, 60*time.Millisecond, rate)
	rumble := NewEnvelope(NewSweep(110, 40, blastDuration, WaveSine, rate), 2*time.Millisecond, 100*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(rumble, 0.4),
	)
	return newVolume(mixed, volume)
}

// CreateDeathSound generates three falling notes.
func CreateDeathSound(rate beep.SampleRate, volume float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, 3)
	for _, freq := range []float64{523.25, 392.00, 261.63} { // C5, G4, C4
		osc := NewOscillator(freq, deathNote, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, 5*time.Millisecond, 80*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(notes...), 0.3*volume)
}

// CreateSound returns the streamer for a sound, or nil for unknown sounds.
func CreateSound(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	switch s {
	case SoundShot:
		return CreateShotSound(rate, volume)
	case SoundBlast:
		return CreateBlastSound(rate, volume)
	case SoundDeath:
		return CreateDeathSound(rate, volume)
	default:
		return nil
	}
}
