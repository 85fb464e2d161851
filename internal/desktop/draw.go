package desktop

import (
	"math"

	"pong/internal/game"
)

const (
	gridStep    = 40
	dashStep    = 30
	dashLen     = 20
	digitW      = 40
	digitH      = 70
	digitStroke = 8
)

// sceneDrawer keeps per-frame buffers alive between frames.
type sceneDrawer struct {
	rend    *Renderer
	sprites []float32
	rects   []game.Rect
}

func (d *sceneDrawer) draw(sc *game.Scene) {
	r := d.rend

	for x := 0; x < game.ScreenWidth; x += gridStep {
		r.FillRect(game.Rect{X: float64(x), W: 1, H: game.ScreenHeight}, game.Palette.Grid, 1)
	}
	for y := 0; y < game.ScreenHeight; y += gridStep {
		r.FillRect(game.Rect{Y: float64(y), W: game.ScreenWidth, H: 1}, game.Palette.Grid, 1)
	}

	if sc.Flash > 0 {
		full := game.Rect{W: game.ScreenWidth, H: game.ScreenHeight}
		r.FillRect(full, game.Palette.White, float32(sc.Flash/255))
	}

	for y := 0; y < game.ScreenHeight; y += dashStep {
		r.FillRect(game.Rect{X: game.ScreenWidth/2 - 2, Y: float64(y), W: 4, H: dashLen}, game.Palette.CenterLine, 1)
	}

	if sc.ShowField {
		d.drawPaddle(sc.AI)
		d.drawPaddle(sc.Player)
		d.drawBall(sc)
	}

	r.DrawGlowSprites(sc.Particles)
	r.DrawDiscs(sc.Particles)

	off := math.Sin(sc.Clock) * 5
	d.drawScore(sc.Scores[game.SideAI], game.ScreenWidth/2-120, 50+off, game.Palette.NeonBlue)
	d.drawScore(sc.Scores[game.SidePlayer], game.ScreenWidth/2+60, 50+off, game.Palette.NeonPink)
}

func (d *sceneDrawer) drawPaddle(p game.PaddleView) {
	r := d.rend
	for i := range 3 {
		fi := float64(i)
		glow := game.Rect{
			X: p.Rect.X - 10 + fi*3,
			Y: p.Rect.Y - 10 + fi*3,
			W: p.Rect.W + 20 - fi*6,
			H: p.Rect.H + 20 - fi*6,
		}
		r.FillRect(glow, p.Col, float32(40-i*10)/255)
	}
	r.FillRect(p.Rect, p.Col, 1)

	if math.Abs(p.Rect.Y-p.PrevY) > 2 {
		blur := p.Rect
		blur.Y = p.PrevY
		r.FillRect(blur, p.Col, 50.0/255)
	}
}

func (d *sceneDrawer) drawBall(sc *game.Scene) {
	buf := d.sprites[:0]
	n := float32(len(sc.Trail))
	for i, pos := range sc.Trail {
		f := float32(i) / n
		size := game.BallSize * f
		if size < 1 {
			continue
		}
		buf = append(buf, float32(pos.X), float32(pos.Y), size, 1, 1, 1, f*0.3, 0)
	}
	d.rend.DrawDiscs(buf)

	cx, cy := float32(sc.Ball.CenterX()), float32(sc.Ball.CenterY())
	buf = append(buf[:0], cx, cy, game.BallSize+12, 1, 1, 1, 0.6, 0)
	d.rend.DrawGlowSprites(buf)
	buf = append(buf[:0], cx, cy, game.BallSize, 1, 1, 1, 1, 0)
	d.rend.DrawDiscs(buf)
	d.sprites = buf
}

func (d *sceneDrawer) drawScore(n int, x, y float64, col game.RGB) {
	d.rects = game.DigitRects(d.rects[:0], n, x, y, digitW, digitH, digitStroke)
	for _, rc := range d.rects {
		d.rend.FillRect(rc, col, 1)
	}
}
