package audio

import (
	"fmt"
	"math"

	"pong/internal/rng"
)

// Waveform selects the base oscillator of a tone.
type Waveform uint8

const (
	Square Waveform = iota
	Sine
	Triangle
	Noise
)

func (w Waveform) String() string {
	switch w {
	case Square:
		return "square"
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	case Noise:
		return "noise"
	}
	return fmt.Sprintf("Waveform(%d)", uint8(w))
}

// Envelope selects the amplitude shape applied across a tone.
type Envelope uint8

const (
	EnvelopeNone Envelope = iota
	EnvelopeSharp
	EnvelopePluck
)

func squareWave(phase float64) float64 {
	s := math.Sin(phase)
	switch {
	case s > 0:
		return 0.5
	case s < 0:
		return -0.5
	}
	return 0
}

func sineWave(phase float64) float64 { return math.Sin(phase) }

func triWave(phase float64) float64 {
	return (2.0 / math.Pi) * math.Asin(math.Sin(phase))
}

func noiseWave(r *rng.Rand) float64 { return r.RangeF(-1, 1) }

// Generator renders tones and sweeps. It owns its noise source.
type Generator struct {
	rng *rng.Rand
}

func NewGenerator(r *rng.Rand) *Generator {
	return &Generator{rng: r}
}

func (g *Generator) oscillate(w Waveform, phase float64) float64 {
	switch w {
	case Square:
		return squareWave(phase)
	case Sine:
		return sineWave(phase)
	case Triangle:
		return triWave(phase)
	case Noise:
		return noiseWave(g.rng)
	}
	panic(fmt.Sprintf("audio: unknown waveform %d", w))
}

// envelopeGain returns the amplitude multiplier for frame i of n.
func envelopeGain(env Envelope, i, n int) float64 {
	fi, fn := float64(i), float64(n)
	switch env {
	case EnvelopeSharp:
		if fi < fn*0.1 {
			return fi / (fn * 0.1)
		}
		if fi > fn*0.7 {
			return (fn - fi) / (fn * 0.3)
		}
		return 1
	case EnvelopePluck:
		return math.Exp(-3 * fi / fn)
	case EnvelopeNone:
		return 1
	}
	panic(fmt.Sprintf("audio: unknown envelope %d", env))
}

// Generate renders a fixed-frequency tone. Non-noise waveforms get a quiet
// octave and sub-octave layered on top. A non-positive duration yields an
// empty buffer.
func (g *Generator) Generate(w Waveform, freq, duration float64, env Envelope) SampleBuffer {
	n := frameCount(duration)
	if n == 0 {
		return SampleBuffer{}
	}
	mono := make([]float64, n)
	omega := 2 * math.Pi * freq
	for i := range mono {
		t := float64(i) / SampleRate
		s := g.oscillate(w, omega*t) * envelopeGain(env, i, n)
		if w != Noise {
			s += math.Sin(omega*2*t) * 0.1
			s += math.Sin(omega*0.5*t) * 0.05
		}
		mono[i] = s
	}
	return normalized(mono)
}

// SweepFrequency is the instantaneous frequency of a sweep at time t:
// start*(end/start)^(t/duration).
func SweepFrequency(start, end, duration, t float64) float64 {
	return start * math.Pow(end/start, t/duration)
}

// Sweep renders a log-frequency glide from start to end Hz with an exponential
// decay and a little noise for texture.
func (g *Generator) Sweep(start, end, duration float64, w Waveform) SampleBuffer {
	n := frameCount(duration)
	if n == 0 || start <= 0 || end <= 0 {
		return SampleBuffer{}
	}
	mono := make([]float64, n)
	phase := 0.0
	for i := range mono {
		t := float64(i) / SampleRate
		s := g.oscillate(w, phase) * math.Exp(-2*t/duration)
		s += (g.rng.Float64() - 0.5) * 0.05
		mono[i] = s
		phase += 2 * math.Pi * SweepFrequency(start, end, duration, t) / SampleRate
	}
	return normalized(mono)
}
