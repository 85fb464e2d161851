package audio

import (
	"math"

	"pong/internal/rng"
)

// NoteEvent is one step of a note sequence. Frequency 0 is a rest.
type NoteEvent struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
	Volume    float64 // 0..1
}

// Harmonic is one partial of a voice: a frequency ratio and its weight.
type Harmonic struct {
	Ratio  float64
	Weight float64
}

// Voice describes how a note is synthesized. Fractions are of the note
// length in frames.
type Voice struct {
	Harmonics    []Harmonic
	Attack       float64 // linear rise
	ReleaseStart float64 // exponential decay begins here
	ReleaseRate  float64 // exp(-rate * (i - start) / n)
	NoiseWindow  float64 // transient noise for the first fraction
	NoiseAmp     float64 // peak noise amplitude
	Gain         float64 // multiplied with note volume
}

// MelodyVoice is the orchestral "hit": a four-partial stack with a sharp
// attack and a noisy transient.
var MelodyVoice = Voice{
	Harmonics: []Harmonic{
		{Ratio: 1, Weight: 0.4},
		{Ratio: 2, Weight: 0.3},
		{Ratio: 3, Weight: 0.2},
		{Ratio: 4, Weight: 0.1},
	},
	Attack:       0.02,
	ReleaseStart: 0.1,
	ReleaseRate:  3,
	NoiseWindow:  0.05,
	NoiseAmp:     0.1,
	Gain:         MasterVolume * 1.5,
}

// BassVoice is a deep impact: fundamental plus sub-octave, no noise.
var BassVoice = Voice{
	Harmonics: []Harmonic{
		{Ratio: 1, Weight: 0.8},
		{Ratio: 0.5, Weight: 0.4},
	},
	Attack:       0.01,
	ReleaseStart: 0.05,
	ReleaseRate:  5,
	Gain:         MasterVolume * 1.2,
}

// Sequencer renders note sequences into continuous clips.
type Sequencer struct {
	rng *rng.Rand
}

func NewSequencer(r *rng.Rand) *Sequencer {
	return &Sequencer{rng: r}
}

// Render synthesizes notes back to back with v. An empty sequence gives an
// empty clip.
func (s *Sequencer) Render(v Voice, notes []NoteEvent) SampleBuffer {
	total := 0
	for _, n := range notes {
		total += frameCount(n.Duration)
	}
	mono := make([]float64, 0, total)
	for _, n := range notes {
		mono = s.renderNote(mono, v, n)
	}
	return newStereo(mono, 32767)
}

func (s *Sequencer) renderNote(dst []float64, v Voice, note NoteEvent) []float64 {
	n := frameCount(note.Duration)
	if note.Frequency <= 0 {
		return append(dst, make([]float64, n)...)
	}
	fn := float64(n)
	attackEnd := fn * v.Attack
	releaseStart := fn * v.ReleaseStart
	noiseEnd := fn * v.NoiseWindow
	gain := note.Volume * v.Gain

	for i := 0; i < n; i++ {
		fi := float64(i)
		t := fi / SampleRate
		x := 0.0
		for _, h := range v.Harmonics {
			x += math.Sin(2*math.Pi*note.Frequency*h.Ratio*t) * h.Weight
		}

		if fi < attackEnd {
			x *= fi / attackEnd
		} else if fi > releaseStart {
			x *= math.Exp(-v.ReleaseRate * (fi - releaseStart) / fn)
		}
		if fi < noiseEnd {
			x += (s.rng.Float64() - 0.5) * 2 * v.NoiseAmp
		}
		dst = append(dst, x*gain)
	}
	return dst
}
