package audio

import (
	"fmt"

	"pong/internal/rng"
)

// SoundKind identifies one precomputed sound effect.
type SoundKind int

const (
	SoundPaddleHit1 SoundKind = iota
	SoundPaddleHit2
	SoundPaddleHit3
	SoundWallBounce
	SoundPlayerScore
	SoundAIScore
	SoundGameStart
	SoundGameOverWin
	SoundGameOverLose
	SoundMenuBeep

	numSounds
)

var soundNames = [numSounds]string{
	SoundPaddleHit1:   "paddle_hit_1",
	SoundPaddleHit2:   "paddle_hit_2",
	SoundPaddleHit3:   "paddle_hit_3",
	SoundWallBounce:   "wall_bounce",
	SoundPlayerScore:  "player_score",
	SoundAIScore:      "ai_score",
	SoundGameStart:    "game_start",
	SoundGameOverWin:  "game_over_win",
	SoundGameOverLose: "game_over_lose",
	SoundMenuBeep:     "menu_beep",
}

func (k SoundKind) String() string {
	if k >= 0 && k < numSounds {
		return soundNames[k]
	}
	return fmt.Sprintf("SoundKind(%d)", int(k))
}

// SoundByName resolves a catalog name such as "wall_bounce".
func SoundByName(name string) (SoundKind, bool) {
	for k, n := range soundNames {
		if n == name {
			return SoundKind(k), true
		}
	}
	return 0, false
}

// ToneConfig holds the tunable pitches of the effect catalog.
type ToneConfig struct {
	PaddleHitPitches [3]float64 // Hz
	WallBouncePitch  float64
	MenuBeepPitch    float64
}

func DefaultToneConfig() ToneConfig {
	return ToneConfig{
		PaddleHitPitches: [3]float64{A3, C4, E4},
		WallBouncePitch:  A4,
		MenuBeepPitch:    C5,
	}
}

// OneShotPlayer accepts fire-and-forget clips.
type OneShotPlayer interface {
	PlayOneShot(buf *SampleBuffer) (ChannelID, bool)
}

// ToneLibrary is the precomputed effect catalog.
type ToneLibrary struct {
	sounds [numSounds]SampleBuffer
	out    OneShotPlayer
	rng    *rng.Rand
}

// NewToneLibrary renders every effect up front. r picks paddle-hit variants.
func NewToneLibrary(gen *Generator, cfg ToneConfig, out OneShotPlayer, r *rng.Rand) *ToneLibrary {
	lib := &ToneLibrary{out: out, rng: r}
	s := &lib.sounds

	for i, pitch := range cfg.PaddleHitPitches {
		s[SoundPaddleHit1+SoundKind(i)] = gen.Generate(Square, pitch, 0.1, EnvelopeSharp)
	}
	s[SoundWallBounce] = gen.Generate(Triangle, cfg.WallBouncePitch, 0.05, EnvelopeSharp)

	s[SoundPlayerScore] = gen.Sweep(800, 1200, 0.3, Sine)
	s[SoundAIScore] = gen.Sweep(400, 200, 0.3, Square)

	s[SoundGameStart] = gen.Sweep(200, 600, 0.4, Square)
	s[SoundGameOverWin] = gen.Sweep(400, 1000, 0.5, Sine)
	s[SoundGameOverLose] = gen.Sweep(600, 100, 0.5, Square)

	s[SoundMenuBeep] = gen.Generate(Sine, cfg.MenuBeepPitch, 0.05, EnvelopePluck)
	return lib
}

// Sound returns the clip for kind, or nil for an unknown kind.
func (l *ToneLibrary) Sound(kind SoundKind) *SampleBuffer {
	if kind < 0 || kind >= numSounds {
		return nil
	}
	return &l.sounds[kind]
}

func (l *ToneLibrary) Play(kind SoundKind) {
	if buf := l.Sound(kind); buf != nil {
		l.out.PlayOneShot(buf)
	}
}

// PlayNamed plays a clip by catalog name; unknown names are ignored.
func (l *ToneLibrary) PlayNamed(name string) {
	if kind, ok := SoundByName(name); ok {
		l.Play(kind)
	}
}

// PlayRandomPaddleHit picks one of the three paddle-hit variants uniformly.
func (l *ToneLibrary) PlayRandomPaddleHit() SoundKind {
	kind := SoundPaddleHit1 + SoundKind(l.rng.Intn(3))
	l.Play(kind)
	return kind
}
