package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/beamfight/internal/core"
)

// drain streams s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()

	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []Wave{WaveSine, WaveSquare, WaveNoise} {
		samples := drain(t, NewOscillator(440, 50*time.Millisecond, wave, rate))
		if len(samples) != rate.N(50*time.Millisecond) {
			t.Errorf("wave %d: %d samples, want %d", wave, len(samples), rate.N(50*time.Millisecond))
		}
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []Wave{WaveSine, WaveSquare, WaveNoise} {
		for i, s := range drain(t, NewSweep(1400, 200, 30*time.Millisecond, wave, rate)) {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d = %v, want mono within [-1, 1]", wave, i, s)
			}
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	samples := drain(t, NewOscillator(220, 20*time.Millisecond, WaveSquare, beep.SampleRate(44100)))

	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d = %f, want -1 or 1", i, s[0])
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, time.Second, WaveSquare, rate) // Constant 1.0 at zero frequency

	samples := drain(t, NewEnvelope(src, 10*time.Millisecond, 100*time.Millisecond, rate))

	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", samples[0][0])
	}
	if got := samples[10][0]; math.Abs(got-1) > 1e-9 {
		t.Errorf("sample after attack = %f, want 1", got)
	}
	if got := samples[110][0]; math.Abs(got-0.5) > 1e-6 {
		t.Errorf("sample one half-life later = %f, want 0.5", got)
	}
	for i := 11; i < len(samples); i++ {
		if samples[i][0] > samples[i-1][0] {
			t.Fatalf("envelope rose during decay at %d", i)
		}
	}
}

func TestCreateSound(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, s := range []Sound{SoundShot, SoundBlast, SoundDeath} {
		t.Run(s.String(), func(t *testing.T) {
			streamer := CreateSound(s, rate, 0.5)
			if streamer == nil {
				t.Fatal("CreateSound returned nil")
			}

			samples := make([][2]float64, 256)
			n, ok := streamer.Stream(samples)
			if !ok || n == 0 {
				t.Errorf("Stream() = %d, %v; want samples", n, ok)
			}
			if streamer.Err() != nil {
				t.Errorf("Err() = %v", streamer.Err())
			}
		})
	}

	if CreateSound(Sound(99), rate, 0.5) != nil {
		t.Error("unknown sound should be nil")
	}
}

func TestShotSoundEnds(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, CreateShotSound(rate, 1))

	if want := rate.N(shotDuration); len(samples) != want {
		t.Errorf("%d samples, want %d", len(samples), want)
	}
}

func TestDeathSoundPlaysThreeNotes(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, CreateDeathSound(rate, 1))

	if want := 3 * rate.N(deathNote); len(samples) != want {
		t.Errorf("%d samples, want %d", len(samples), want)
	}
}

func TestMutedSoundIsSilent(t *testing.T) {
	samples := make([][2]float64, 512)
	n, _ := CreateBlastSound(beep.SampleRate(44100), 0).Stream(samples)

	for i, s := range samples[:n] {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		kind core.EventKind
		want Sound
	}{
		{core.EventBeamFired, SoundShot},
		{core.EventBombDestroyed, SoundBlast},
		{core.EventPlayerHit, SoundDeath},
	}

	for _, tt := range tests {
		got, ok := SoundFor(tt.kind)
		if !ok || got != tt.want {
			t.Errorf("SoundFor(%v) = %v, %v; want %v", tt.kind, got, ok, tt.want)
		}
	}

	if _, ok := SoundFor(core.EventKind(99)); ok {
		t.Error("unknown event should have no sound")
	}
}

func TestHandleEventsBeforeInitialize(t *testing.T) {
	sm := NewSoundManager(0.5, nil)

	// Must not touch the speaker
	sm.HandleEvents([]core.Event{{Kind: core.EventBeamFired}, {Kind: core.EventPlayerHit}})
	sm.Cleanup()
}
