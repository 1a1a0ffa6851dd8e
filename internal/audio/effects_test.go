package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	dur := 100 * time.Millisecond
	osc := NewOscillator(440, dur, WaveSine, testRate)
	samples := drain(t, osc)

	want := testRate.N(dur)
	if len(samples) != want {
		t.Errorf("expected %d samples, got %d", want, len(samples))
	}
}

func TestOscillatorRange(t *testing.T) {
	waves := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, w := range waves {
		t.Run(w.name, func(t *testing.T) {
			osc := NewOscillator(440, 50*time.Millisecond, w.wave, testRate)
			for _, s := range drain(t, osc) {
				if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
					t.Fatalf("sample out of range: %v", s)
				}
			}
		})
	}
}

func TestOscillatorSquareIsBinary(t *testing.T) {
	osc := NewOscillator(440, 20*time.Millisecond, WaveSquare, testRate)
	for _, s := range drain(t, osc) {
		if s[0] != 1.0 && s[0] != -1.0 {
			t.Fatalf("square wave produced %v, want ±1", s[0])
		}
	}
}

func TestEnvelopeAttackRamp(t *testing.T) {
	dur := 100 * time.Millisecond
	attack := 20 * time.Millisecond
	osc := NewOscillator(440, dur, WaveSquare, testRate)
	env := NewEnvelope(osc, dur, attack, 10*time.Millisecond, testRate)

	samples := drain(t, env)
	attackSamples := testRate.N(attack)

	if len(samples) < attackSamples {
		t.Fatalf("stream shorter than attack: %d < %d", len(samples), attackSamples)
	}

	// The square source is ±1 everywhere, so attack samples must be
	// strictly quieter than full scale.
	early := abs(samples[attackSamples/4][0])
	if early >= 1.0 {
		t.Errorf("attack not ramping: sample %v at quarter attack", early)
	}

	sustain := abs(samples[attackSamples+10][0])
	if sustain != 1.0 {
		t.Errorf("sustain level %v, want 1.0", sustain)
	}
}

func TestEnvelopeReleaseFades(t *testing.T) {
	dur := 100 * time.Millisecond
	release := 40 * time.Millisecond
	osc := NewOscillator(440, dur, WaveSquare, testRate)
	env := NewEnvelope(osc, dur, 0, release, testRate)

	samples := drain(t, env)
	if len(samples) == 0 {
		t.Fatal("empty stream")
	}

	last := abs(samples[len(samples)-1][0])
	if last > 0.1 {
		t.Errorf("release did not fade out, final sample %v", last)
	}
}

func TestCreateSoundsStream(t *testing.T) {
	sounds := []struct {
		name string
		s    beep.Streamer
	}{
		{"flap", CreateFlapSound(testRate, 0.5)},
		{"score", CreateScoreSound(testRate, 0.5)},
		{"crash", CreateCrashSound(testRate, 0.5)},
	}

	for _, snd := range sounds {
		t.Run(snd.name, func(t *testing.T) {
			samples := drain(t, snd.s)
			if len(samples) == 0 {
				t.Fatal("sound produced no samples")
			}
			for _, s := range samples {
				if s[0] < -1 || s[0] > 1 {
					t.Fatalf("sample out of range: %v", s[0])
				}
			}
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	s := CreateFlapSound(testRate, 0)
	for _, smp := range drain(t, s) {
		if smp[0] != 0 || smp[1] != 0 {
			t.Fatalf("zero volume produced sample %v", smp)
		}
	}
}

func TestManagerSilentBeforeInit(t *testing.T) {
	sm := NewSoundManager()
	// Must not panic or open the speaker.
	sm.PlayFlap()
	sm.PlayScore()
	sm.PlayCrash()
	sm.Cleanup()
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
