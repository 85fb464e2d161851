package game

import (
	"fmt"
	"math"
	"strings"

	"pong/internal/audio"
)

type TextSize int

const (
	TextSmall TextSize = iota
	TextMedium
	TextLarge
)

// TextLine is one line of overlay text. Layout is left to the renderer.
type TextLine struct {
	Text  string
	Col   RGB
	Alpha float64 // 0..1
	Size  TextSize
}

type PaddleView struct {
	Rect  Rect
	PrevY float64
	Col   RGB
}

// Scene is a read-only copy of everything the renderer draws in one frame.
type Scene struct {
	State  GameState
	Scores [2]int

	ShowField bool // paddles and ball are hidden on the title screen
	AI        PaddleView
	Player    PaddleView
	Ball      Rect
	Trail     []Vec

	// Particles in sprite layout: [x, y, size, r, g, b, a, rotation] * N.
	Particles []float32

	Flash float64
	Clock float64
	Text  []TextLine
}

// Snapshot returns a freshly allocated Scene.
func (s *Simulation) Snapshot() Scene {
	var sc Scene
	s.SnapshotInto(&sc)
	return sc
}

// SnapshotInto fills sc, reusing its slices.
func (s *Simulation) SnapshotInto(sc *Scene) {
	sc.State = s.State
	sc.Scores = s.Scores
	sc.ShowField = s.State != StateStart
	sc.AI = PaddleView{Rect: s.AI.Rect, PrevY: s.AI.PrevY, Col: s.AI.Col}
	sc.Player = PaddleView{Rect: s.Player.Rect, PrevY: s.Player.PrevY, Col: s.Player.Col}
	sc.Ball = s.Ball.Rect
	sc.Trail = s.Ball.Trail(sc.Trail)
	sc.Particles = s.Particles.RenderData(sc.Particles)
	sc.Flash = clampF(s.Flash, 0, 255)
	sc.Clock = s.Clock
	sc.Text = s.appendText(sc.Text[:0])
}

func (s *Simulation) appendText(lines []TextLine) []TextLine {
	switch s.State {
	case StateStart:
		lines = append(lines,
			TextLine{Text: "PONG", Col: Palette.White, Alpha: 1, Size: TextLarge},
			TextLine{Text: "JUNGLE VIBES EDITION", Col: Palette.SoftWhite, Alpha: 1, Size: TextMedium},
			TextLine{Text: fmt.Sprintf("Volume: %d%%", int(audio.MasterVolume*100)), Col: Palette.Dim, Alpha: 1, Size: TextSmall},
			TextLine{Text: "Press SPACE to start", Col: Palette.SoftWhite, Alpha: math.Abs(math.Sin(s.Clock * 0.5)), Size: TextSmall},
		)
	case StateGameOver:
		winner, col := "AI", Palette.NeonBlue
		if s.Winner() == SidePlayer {
			winner, col = "PLAYER", Palette.NeonPink
		}
		blink := math.Abs(math.Sin(s.Clock * 2))
		lines = append(lines,
			TextLine{Text: "GAME OVER!", Col: Palette.White, Alpha: 1, Size: TextLarge},
			TextLine{Text: winner + " WINS!", Col: col, Alpha: 1, Size: TextMedium},
			TextLine{Text: "Restart?", Col: Palette.SoftWhite, Alpha: 1, Size: TextMedium},
			TextLine{Text: "Y = restart", Col: Palette.JungleGreen, Alpha: blink, Size: TextSmall},
			TextLine{Text: "N = quit", Col: Palette.NeonPink, Alpha: blink, Size: TextSmall},
		)
	}
	return lines
}

// Caption flattens the scene's text into a single line for a window title.
func (sc *Scene) Caption() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PONG  %d : %d", sc.Scores[SideAI], sc.Scores[SidePlayer])
	for _, l := range sc.Text {
		b.WriteString("  |  ")
		b.WriteString(l.Text)
	}
	return b.String()
}
