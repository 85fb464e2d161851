package audio

import "math"

const (
	SampleRate      = 22050
	ChannelCount    = 2
	BitDepthInBytes = 2 // signed 16-bit little endian

	// MasterVolume scales every generated effect peak.
	MasterVolume = 0.05

	bytesPerFrame = ChannelCount * BitDepthInBytes
)

// Frame is one stereo sample pair (left, right).
type Frame [ChannelCount]int16

// SampleBuffer is an immutable clip of stereo frames at SampleRate.
// The zero value is an empty clip.
type SampleBuffer struct {
	frames []Frame
}

// Len returns the number of stereo frames.
func (b SampleBuffer) Len() int { return len(b.frames) }

func (b SampleBuffer) At(i int) Frame { return b.frames[i] }

// Peak returns the largest absolute sample value across both channels.
func (b SampleBuffer) Peak() int {
	peak := 0
	for _, f := range b.frames {
		for _, s := range f {
			v := int(s)
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
	}
	return peak
}

// frameCount converts a duration to whole frames; non-positive durations give 0.
func frameCount(duration float64) int {
	if duration <= 0 || math.IsNaN(duration) {
		return 0
	}
	return int(math.Round(duration * SampleRate))
}

// newStereo truncates scaled mono samples toward zero and duplicates them to
// both channels.
func newStereo(mono []float64, scale float64) SampleBuffer {
	frames := make([]Frame, len(mono))
	for i, s := range mono {
		v := toS16(s * scale)
		frames[i] = Frame{v, v}
	}
	return SampleBuffer{frames: frames}
}

// normalized rescales mono so its peak maps to 32767*MasterVolume.
func normalized(mono []float64) SampleBuffer {
	peak := 0.0
	for _, s := range mono {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return newStereo(mono, 32767*MasterVolume/(peak+1e-10))
}

func concat(parts []SampleBuffer) SampleBuffer {
	n := 0
	for i := range parts {
		n += parts[i].Len()
	}
	frames := make([]Frame, 0, n)
	for i := range parts {
		frames = append(frames, parts[i].frames...)
	}
	return SampleBuffer{frames: frames}
}

func toS16(v float64) int16 {
	switch {
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}

// putStereoS16 writes a left/right pair as little-endian int16 at frame i.
func putStereoS16(buf []byte, i int, left, right int16) {
	buf[i*4] = byte(left)
	buf[i*4+1] = byte(uint16(left) >> 8)
	buf[i*4+2] = byte(right)
	buf[i*4+3] = byte(uint16(right) >> 8)
}
