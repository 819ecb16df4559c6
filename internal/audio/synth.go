// Package audio plays sound events queued by the simulation.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/tomz197/pong/internal/sfx"
)

// SampleRate is the rate every synthesized effect is generated at.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of the given wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= releaseStart && e.release > 0 {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
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
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a single enveloped note. Sine notes come from beep's generator.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	var src beep.Streamer
	if wave == WaveSine {
		if sine, err := generators.SineTone(rate, freq); err == nil {
			src = beep.Take(rate.N(d), sine)
		}
	}
	if src == nil {
		src = NewOscillator(freq, d, wave, rate)
	}
	return NewEnvelope(src, d, 5*time.Millisecond, d/2, rate)
}

// Synthesize returns a fresh streamer for the effect, or nil for unknown effects.
func Synthesize(e sfx.Effect, rate beep.SampleRate) beep.Streamer {
	switch e {
	case sfx.Bounce:
		return tone(440, 60*time.Millisecond, WaveSquare, rate)
	case sfx.PlayerScored:
		return beep.Seq(
			tone(660, 90*time.Millisecond, WaveSine, rate),
			tone(880, 160*time.Millisecond, WaveSine, rate),
		)
	case sfx.OpponentScored:
		return beep.Seq(
			tone(330, 90*time.Millisecond, WaveSquare, rate),
			tone(220, 200*time.Millisecond, WaveSquare, rate),
		)
	default:
		return nil
	}
}

// EventStreamer synthesizes ev with its pitch and volume applied.
// master scales the event volume. Returns nil for unknown effects.
func EventStreamer(ev sfx.Event, master float64, rate beep.SampleRate) beep.Streamer {
	s := Synthesize(ev.Effect, rate)
	if s == nil {
		return nil
	}
	if ev.Pitch > 0 && ev.Pitch != 1 {
		s = beep.ResampleRatio(4, ev.Pitch, s)
	}
	return newVolume(s, ev.Volume*master)
}
