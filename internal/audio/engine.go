package audio

import "pong/internal/rng"

// MenuFadeMs is how long the menu theme takes to fade out.
const MenuFadeMs = 500

// Engine bundles the effect catalog, the rendered menu theme and the mixer.
// It is built once at startup and handed to the game explicitly.
type Engine struct {
	mixer  *Mixer
	tones  *ToneLibrary
	melody SampleBuffer
	bass   SampleBuffer

	out       Output
	outFailed bool
}

// Output is a device streaming the mixer. *device.Device satisfies it.
type Output interface {
	Err() error
	Close() error
}

// NewEngine renders all effects and both theme voices. Nothing here touches an
// output device; attach one to Mixer() to hear it.
func NewEngine(cfg ToneConfig, r *rng.Rand) *Engine {
	mixer := NewMixer()
	gen := NewGenerator(r.Split(0x70E5))
	seq := NewSequencer(r.Split(0x5E0))
	return &Engine{
		mixer:  mixer,
		tones:  NewToneLibrary(gen, cfg, mixer, r.Split(0xA11)),
		melody: seq.Render(MelodyVoice, MelodyTheme()),
		bass:   seq.Render(BassVoice, BassTheme()),
	}
}

// Mixer is the stream an output device should read.
func (e *Engine) Mixer() *Mixer { return e.mixer }

func (e *Engine) Tones() *ToneLibrary { return e.tones }

func (e *Engine) Melody() *SampleBuffer { return &e.melody }
func (e *Engine) Bass() *SampleBuffer   { return &e.bass }

func (e *Engine) Play(kind SoundKind) { e.tones.Play(kind) }

func (e *Engine) PlayNamed(name string) { e.tones.PlayNamed(name) }

func (e *Engine) PlayRandomPaddleHit() { e.tones.PlayRandomPaddleHit() }

// StartMenuMusic loops both theme voices; channels already playing are left
// alone.
func (e *Engine) StartMenuMusic() {
	e.mixer.PlayLooped(&e.melody, MelodyChannel)
	e.mixer.PlayLooped(&e.bass, BassChannel)
}

// StopMenuMusic fades both theme voices out over MenuFadeMs.
func (e *Engine) StopMenuMusic() {
	e.mixer.StopLooped(MelodyChannel, MenuFadeMs)
	e.mixer.StopLooped(BassChannel, MenuFadeMs)
}

// Attach hands the engine the device reading its mixer.
func (e *Engine) Attach(o Output) {
	e.out = o
	e.outFailed = false
}

// OutputErr reports an asynchronous output failure the first time it is seen
// and nil afterwards.
func (e *Engine) OutputErr() error {
	if e.out == nil || e.outFailed {
		return nil
	}
	if err := e.out.Err(); err != nil {
		e.outFailed = true
		return err
	}
	return nil
}

// Close releases the attached output, if any.
func (e *Engine) Close() error {
	if e.out == nil {
		return nil
	}
	err := e.out.Close()
	e.out = nil
	return err
}
