package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"pong/internal/game"
)

// keyboard turns polled key state into per-frame game input.
type keyboard struct {
	prevKeys map[glfw.Key]bool
}

func newKeyboard() *keyboard {
	return &keyboard{prevKeys: make(map[glfw.Key]bool)}
}

func (kb *keyboard) justPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !kb.prevKeys[key]
	kb.prevKeys[key] = down
	return jp
}

func held(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// poll must run once per frame after glfw.PollEvents.
func (kb *keyboard) poll(window *glfw.Window) game.Input {
	return game.Input{
		Quit:       kb.justPressed(window, glfw.KeyEscape) || window.ShouldClose(),
		Confirm:    kb.justPressed(window, glfw.KeySpace),
		RestartYes: kb.justPressed(window, glfw.KeyY),
		RestartNo:  kb.justPressed(window, glfw.KeyN),
		Up:         held(window, glfw.KeyUp, glfw.KeyW),
		Down:       held(window, glfw.KeyDown, glfw.KeyS),
	}
}
