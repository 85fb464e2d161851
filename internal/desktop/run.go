// Package desktop hosts the game in a glfw window with an OpenGL renderer
// and oto audio output.
package desktop

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"pong/internal/audio"
	"pong/internal/audio/device"
	"pong/internal/game"
	"pong/internal/rng"
)

const frameTime = time.Second / game.FPS

// seedFromEnv reads PONG_SEED, falling back to the clock.
func seedFromEnv() uint64 {
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("PONG_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		} else {
			log.Printf("ignoring PONG_SEED %q: %v", s, err)
		}
	}
	return seed
}

// openAudio renders the sound bank and attaches it to the output device.
// A nil engine means the game runs silently.
func openAudio(r *rng.Rand) *audio.Engine {
	engine := audio.NewEngine(audio.DefaultToneConfig(), r)
	dev, err := device.Open(engine.Mixer())
	if err != nil {
		log.Printf("audio init failed (continuing without sound): %v", err)
		return nil
	}
	engine.Attach(dev)
	return engine
}

// RunDesktop opens the window and runs the game until the player quits or
// ctx is cancelled.
func RunDesktop(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	bgR, bgG, bgB := game.Palette.DarkBG.Float()
	gl.ClearColor(bgR, bgG, bgB, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	r := rng.New(seedFromEnv())
	var sfx game.Audio
	engine := openAudio(r.Split(0xA0D10))
	if engine != nil {
		sfx = engine
		defer func() {
			if err := engine.Close(); err != nil {
				log.Printf("audio close: %v", err)
			}
		}()
	}

	sim := game.NewSimulation(game.DefaultTuning(), r.Split(0x51A), sfx)
	kb := newKeyboard()
	drawer := &sceneDrawer{rend: rend}
	var scene game.Scene
	title := windowTitle

	last := glfw.GetTime()
	for sim.Running() && ctx.Err() == nil {
		frameStart := time.Now()

		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > game.MaxFrameDt {
			dt = game.MaxFrameDt
		}

		if engine != nil {
			if err := engine.OutputErr(); err != nil {
				log.Printf("audio playback failed: %v", err)
			}
		}

		glfw.PollEvents()
		sim.Step(kb.poll(window), dt)
		if !sim.Running() {
			break
		}

		sim.SnapshotInto(&scene)
		if c := scene.Caption(); c != title {
			title = c
			window.SetTitle(c)
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW > 0 && fbH > 0 {
			rend.BeginFrame(fbW, fbH)
			drawer.draw(&scene)
			window.SwapBuffers()
		}

		// Vsync usually paces us; this covers drivers that ignore it.
		if rest := frameTime - time.Since(frameStart); rest > 0 {
			time.Sleep(rest)
		}
	}
	return nil
}
