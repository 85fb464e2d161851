package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constClip(v int16, frames int) *SampleBuffer {
	fs := make([]Frame, frames)
	for i := range fs {
		fs[i] = Frame{v, v}
	}
	return &SampleBuffer{frames: fs}
}

// pull reads n frames from m and decodes them.
func pull(t *testing.T, m *Mixer, n int) []Frame {
	t.Helper()
	p := make([]byte, n*bytesPerFrame)
	got, err := m.Read(p)
	require.NoError(t, err)
	require.Equal(t, len(p), got)

	out := make([]Frame, n)
	for i := range out {
		out[i][0] = int16(binary.LittleEndian.Uint16(p[i*4:]))
		out[i][1] = int16(binary.LittleEndian.Uint16(p[i*4+2:]))
	}
	return out
}

func TestOneShotTakesFirstIdleChannel(t *testing.T) {
	m := NewMixer()
	clip := constClip(100, 10)
	for want := ChannelID(0); want < EffectChannels; want++ {
		id, ok := m.PlayOneShot(clip)
		require.True(t, ok)
		assert.Equal(t, want, id)
	}
	assert.Equal(t, ChannelIdle, m.State(BassChannel))
	assert.Equal(t, ChannelIdle, m.State(MelodyChannel))
}

func TestOneShotPreemptsFallbackWhenFull(t *testing.T) {
	m := NewMixer()
	long := constClip(1, 1000)
	for range EffectChannels {
		m.PlayOneShot(long)
	}
	short := constClip(7, 3)
	id, ok := m.PlayOneShot(short)
	require.True(t, ok)
	assert.Equal(t, FallbackChannel, id)

	// Channel 0 now plays the short clip and frees up after three frames,
	// while the other thirteen keep going.
	out := pull(t, m, 3)
	assert.Equal(t, Frame{7 + 13, 7 + 13}, out[0])
	assert.Equal(t, ChannelIdle, m.State(FallbackChannel))
	assert.Equal(t, ChannelPlaying, m.State(1))

	id, _ = m.PlayOneShot(short)
	assert.Equal(t, FallbackChannel, id)
}

func TestOneShotIgnoresEmptyClip(t *testing.T) {
	m := NewMixer()
	_, ok := m.PlayOneShot(&SampleBuffer{})
	assert.False(t, ok)
	_, ok = m.PlayOneShot(nil)
	assert.False(t, ok)
	assert.False(t, m.Busy(0))
}

func TestOneShotFinishesThenSilence(t *testing.T) {
	m := NewMixer()
	m.PlayOneShot(constClip(500, 4))
	out := pull(t, m, 6)
	for i := 0; i < 4; i++ {
		assert.Equal(t, Frame{500, 500}, out[i])
	}
	assert.Equal(t, Frame{}, out[4])
	assert.Equal(t, Frame{}, out[5])
	assert.False(t, m.Busy(0))
}

func TestLoopedStartIsIdempotent(t *testing.T) {
	m := NewMixer()
	a := constClip(10, 5)
	b := constClip(20, 5)
	assert.True(t, m.PlayLooped(a, MelodyChannel))
	assert.False(t, m.PlayLooped(b, MelodyChannel))

	out := pull(t, m, 17)
	for _, f := range out {
		assert.Equal(t, Frame{10, 10}, f)
	}
	assert.Equal(t, ChannelPlaying, m.State(MelodyChannel))
}

func TestLoopedRejectsBadInput(t *testing.T) {
	m := NewMixer()
	assert.False(t, m.PlayLooped(&SampleBuffer{}, BassChannel))
	assert.False(t, m.PlayLooped(constClip(1, 1), ChannelID(NumChannels)))
	assert.False(t, m.PlayLooped(constClip(1, 1), -1))
}

func TestStopLoopedFades(t *testing.T) {
	m := NewMixer()
	m.PlayLooped(constClip(1000, 7), BassChannel)
	m.StopLooped(BassChannel, 100)
	assert.Equal(t, ChannelFadingOut, m.State(BassChannel))

	fade := frameCount(0.1)
	out := pull(t, m, fade-1)
	assert.Equal(t, Frame{1000, 1000}, out[0])
	assert.Less(t, out[len(out)-1][0], int16(10))
	for i := 1; i < len(out); i++ {
		require.LessOrEqual(t, out[i][0], out[i-1][0])
	}
	assert.Equal(t, ChannelFadingOut, m.State(BassChannel))

	pull(t, m, 1)
	assert.Equal(t, ChannelIdle, m.State(BassChannel))
	assert.Equal(t, Frame{}, pull(t, m, 1)[0])

	// A released loop can start again.
	assert.True(t, m.PlayLooped(constClip(1, 1), BassChannel))
}

func TestStopLoopedImmediate(t *testing.T) {
	m := NewMixer()
	m.PlayLooped(constClip(1, 10), MelodyChannel)
	m.StopLooped(MelodyChannel, 0)
	assert.Equal(t, ChannelIdle, m.State(MelodyChannel))

	// Stopping an idle channel is harmless.
	m.StopLooped(MelodyChannel, 500)
	assert.Equal(t, ChannelIdle, m.State(MelodyChannel))
}

func TestStopLoopedDoesNotExtendFade(t *testing.T) {
	m := NewMixer()
	m.PlayLooped(constClip(1, 10), MelodyChannel)
	m.StopLooped(MelodyChannel, 10)
	m.StopLooped(MelodyChannel, 500)
	pull(t, m, 230)
	assert.Equal(t, ChannelIdle, m.State(MelodyChannel))
}

func TestStopReleases(t *testing.T) {
	m := NewMixer()
	m.PlayLooped(constClip(1, 10), MelodyChannel)
	m.Stop(MelodyChannel)
	assert.False(t, m.Busy(MelodyChannel))
	m.Stop(99)
}

func TestReadSaturates(t *testing.T) {
	m := NewMixer()
	m.PlayOneShot(constClip(30000, 2))
	m.PlayOneShot(constClip(30000, 2))
	m.PlayLooped(constClip(-30000, 2), BassChannel)
	m.PlayLooped(constClip(-30000, 2), MelodyChannel)
	m.PlayLooped(constClip(-30000, 2), 13)

	out := pull(t, m, 1)
	assert.Equal(t, Frame{-30000, -30000}, out[0])

	m.Stop(13)
	m.Stop(BassChannel)
	m.Stop(MelodyChannel)
	m.PlayOneShot(constClip(30000, 1))
	out = pull(t, m, 1)
	assert.Equal(t, Frame{32767, 32767}, out[0])
}

func TestReadShortBuffer(t *testing.T) {
	m := NewMixer()
	n, err := m.Read(make([]byte, 3))
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestChannelStateString(t *testing.T) {
	assert.Equal(t, "fading", ChannelFadingOut.String())
	assert.Equal(t, "unknown", ChannelState(42).String())
}
