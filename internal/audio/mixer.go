package audio

import (
	"math"
	"sync"
)

// ChannelID names a playback slot in the mixer.
type ChannelID int

const (
	NumChannels    = 16
	EffectChannels = 14 // channels [0, EffectChannels) serve one-shots

	// FallbackChannel is preempted when every effect channel is busy.
	FallbackChannel ChannelID = 0
	BassChannel     ChannelID = 14
	MelodyChannel   ChannelID = 15
)

// ChannelState is the playback state of one channel.
type ChannelState uint8

const (
	ChannelIdle ChannelState = iota
	ChannelPlaying
	ChannelFadingOut
)

func (s ChannelState) String() string {
	switch s {
	case ChannelIdle:
		return "idle"
	case ChannelPlaying:
		return "playing"
	case ChannelFadingOut:
		return "fading"
	}
	return "unknown"
}

type channel struct {
	buf       *SampleBuffer
	pos       int
	loop      bool
	state     ChannelState
	fadeTotal int
	fadeLeft  int
}

func (c *channel) release() {
	*c = channel{}
}

// Mixer sums a fixed pool of channels into one interleaved int16 stereo
// stream. It implements io.Reader so an output device can pull from it, and
// is safe to trigger from the game loop while the device reads.
type Mixer struct {
	mu  sync.Mutex
	ch  [NumChannels]channel
	acc []int32
}

func NewMixer() *Mixer {
	return &Mixer{}
}

func validChannel(id ChannelID) bool {
	return id >= 0 && id < NumChannels
}

// PlayOneShot plays buf once on the first idle effect channel, preempting
// FallbackChannel when none is free. Empty clips are ignored.
func (m *Mixer) PlayOneShot(buf *SampleBuffer) (ChannelID, bool) {
	if buf == nil || buf.Len() == 0 {
		return 0, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id := FallbackChannel
	for i := ChannelID(0); i < EffectChannels; i++ {
		if m.ch[i].state == ChannelIdle {
			id = i
			break
		}
	}
	m.ch[id] = channel{buf: buf, state: ChannelPlaying}
	return id, true
}

// PlayLooped starts buf looping forever on id. It does nothing and returns
// false if the channel is already busy, fading included.
func (m *Mixer) PlayLooped(buf *SampleBuffer, id ChannelID) bool {
	if buf == nil || buf.Len() == 0 || !validChannel(id) {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ch[id].state != ChannelIdle {
		return false
	}
	m.ch[id] = channel{buf: buf, loop: true, state: ChannelPlaying}
	return true
}

// StopLooped fades id to silence over fadeMs and then releases it.
// A non-positive fade stops immediately.
func (m *Mixer) StopLooped(id ChannelID, fadeMs int) {
	if !validChannel(id) {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c := &m.ch[id]
	if c.state == ChannelIdle {
		return
	}
	frames := int(math.Round(float64(fadeMs) * SampleRate / 1000))
	if frames <= 0 {
		c.release()
		return
	}
	if c.state == ChannelFadingOut && c.fadeLeft <= frames {
		return
	}
	c.state = ChannelFadingOut
	c.fadeTotal = frames
	c.fadeLeft = frames
}

// Stop releases id at once.
func (m *Mixer) Stop(id ChannelID) {
	if !validChannel(id) {
		return
	}
	m.mu.Lock()
	m.ch[id].release()
	m.mu.Unlock()
}

func (m *Mixer) State(id ChannelID) ChannelState {
	if !validChannel(id) {
		return ChannelIdle
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ch[id].state
}

func (m *Mixer) Busy(id ChannelID) bool {
	return m.State(id) != ChannelIdle
}

// Read fills p with mixed frames. It never returns io.EOF: idle channels
// contribute silence.
func (m *Mixer) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if cap(m.acc) < frames*ChannelCount {
		m.acc = make([]int32, frames*ChannelCount)
	}
	acc := m.acc[:frames*ChannelCount]
	clear(acc)

	for i := range m.ch {
		m.mixChannel(&m.ch[i], acc)
	}

	for i := 0; i < frames; i++ {
		putStereoS16(p, i, sat16(acc[i*2]), sat16(acc[i*2+1]))
	}
	return frames * bytesPerFrame, nil
}

func (m *Mixer) mixChannel(c *channel, acc []int32) {
	frames := len(acc) / ChannelCount
	for i := 0; i < frames && c.state != ChannelIdle; i++ {
		f := c.buf.frames[c.pos]
		if c.state == ChannelFadingOut {
			gain := float64(c.fadeLeft) / float64(c.fadeTotal)
			acc[i*2] += int32(float64(f[0]) * gain)
			acc[i*2+1] += int32(float64(f[1]) * gain)
			c.fadeLeft--
		} else {
			acc[i*2] += int32(f[0])
			acc[i*2+1] += int32(f[1])
		}

		c.pos++
		if c.pos >= len(c.buf.frames) {
			if !c.loop {
				c.release()
				continue
			}
			c.pos = 0
		}
		if c.state == ChannelFadingOut && c.fadeLeft <= 0 {
			c.release()
		}
	}
}

func sat16(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
