package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pong/internal/rng"
)

type recordingPlayer struct {
	played []*SampleBuffer
}

func (p *recordingPlayer) PlayOneShot(buf *SampleBuffer) (ChannelID, bool) {
	p.played = append(p.played, buf)
	return 0, true
}

func newTestLibrary(out OneShotPlayer) *ToneLibrary {
	r := rng.New(21)
	return NewToneLibrary(NewGenerator(r.Split(1)), DefaultToneConfig(), out, r.Split(2))
}

func TestCatalogIsComplete(t *testing.T) {
	lib := newTestLibrary(&recordingPlayer{})
	durations := map[SoundKind]float64{
		SoundPaddleHit1:   0.1,
		SoundPaddleHit2:   0.1,
		SoundPaddleHit3:   0.1,
		SoundWallBounce:   0.05,
		SoundPlayerScore:  0.3,
		SoundAIScore:      0.3,
		SoundGameStart:    0.4,
		SoundGameOverWin:  0.5,
		SoundGameOverLose: 0.5,
		SoundMenuBeep:     0.05,
	}
	require.Len(t, durations, int(numSounds))
	for kind, d := range durations {
		buf := lib.Sound(kind)
		require.NotNil(t, buf, kind.String())
		assert.InDelta(t, d*SampleRate, float64(buf.Len()), 0.5, kind.String())
		assert.LessOrEqual(t, float64(buf.Peak()), peakLimit, kind.String())
	}
	assert.Nil(t, lib.Sound(numSounds))
	assert.Nil(t, lib.Sound(-1))
}

func TestPaddleHitPitchesDiffer(t *testing.T) {
	lib := newTestLibrary(&recordingPlayer{})
	a, b := lib.Sound(SoundPaddleHit1), lib.Sound(SoundPaddleHit3)
	same := true
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			same = false
			break
		}
	}
	assert.False(t, same)
}

func TestPlayRoutesToPlayer(t *testing.T) {
	out := &recordingPlayer{}
	lib := newTestLibrary(out)

	lib.Play(SoundWallBounce)
	lib.PlayNamed("player_score")
	lib.PlayNamed("no_such_sound")
	lib.Play(SoundKind(99))

	require.Len(t, out.played, 2)
	assert.Same(t, lib.Sound(SoundWallBounce), out.played[0])
	assert.Same(t, lib.Sound(SoundPlayerScore), out.played[1])
}

func TestRandomPaddleHitCoversVariants(t *testing.T) {
	out := &recordingPlayer{}
	lib := newTestLibrary(out)

	seen := map[SoundKind]int{}
	for range 300 {
		kind := lib.PlayRandomPaddleHit()
		require.GreaterOrEqual(t, kind, SoundPaddleHit1)
		require.LessOrEqual(t, kind, SoundPaddleHit3)
		seen[kind]++
	}
	assert.Len(t, seen, 3)
	for kind, n := range seen {
		assert.Greater(t, n, 50, kind.String())
	}
	assert.Len(t, out.played, 300)
}

func TestSoundNames(t *testing.T) {
	for k := SoundKind(0); k < numSounds; k++ {
		got, ok := SoundByName(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := SoundByName("")
	assert.False(t, ok)
	assert.Equal(t, "SoundKind(42)", SoundKind(42).String())
}
