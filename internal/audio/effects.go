// Package audio synthesizes the game's sound effects from raw
// oscillators. Nothing is loaded from disk; every effect is generated at
// play time and mixed into a single speaker stream.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Effect timing
const (
	flapDuration  = 60 * time.Millisecond
	flapAttack    = 2 * time.Millisecond
	flapRelease   = 30 * time.Millisecond
	scoreNoteLen  = 80 * time.Millisecond
	scoreAttack   = 2 * time.Millisecond
	scoreRelease  = 40 * time.Millisecond
	crashDuration = 250 * time.Millisecond
	crashAttack   = 5 * time.Millisecond
	crashRelease  = 150 * time.Millisecond
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, keeping it in [0, 1)
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes a streamer with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer in a volume effect. math.Log2(0) is -Inf,
// so zero volume becomes a silent stream instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateFlapSound generates a short blip for the surge impulse.
func CreateFlapSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(660.0, flapDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, flapDuration, flapAttack, flapRelease, rate)
	return newVolume(shaped, vol)
}

// CreateScoreSound generates a two-note chime for a passed pair.
func CreateScoreSound(rate beep.SampleRate, vol float64) beep.Streamer {
	// B5 then E6
	n1 := NewOscillator(987.77, scoreNoteLen, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, scoreNoteLen, scoreAttack, scoreRelease, rate)

	n2 := NewOscillator(1318.51, scoreNoteLen, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, scoreNoteLen, scoreAttack, scoreRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol)
}

// CreateCrashSound generates a low buzz for the end of a run.
func CreateCrashSound(rate beep.SampleRate, vol float64) beep.Streamer {
	buzz := NewOscillator(100.0, crashDuration, WaveSaw, rate)
	buzzShaped := NewEnvelope(buzz, crashDuration, crashAttack, crashRelease, rate)

	rumble := NewOscillator(0, crashDuration, WaveNoise, rate)
	rumbleShaped := NewEnvelope(rumble, crashDuration, crashAttack, crashRelease, rate)

	mixed := beep.Mix(
		newVolume(buzzShaped, 0.8),
		newVolume(rumbleShaped, 0.2),
	)
	return newVolume(mixed, vol)
}
