package game

import "math"

type Paddle struct {
	Rect  Rect
	PrevY float64 // Y before the last Move, for spin and motion blur
	Col   RGB
}

// NewPaddle places a paddle at x, vertically centred.
func NewPaddle(x float64, col RGB) *Paddle {
	y := float64((ScreenHeight - PaddleHeight) / 2)
	return &Paddle{
		Rect:  Rect{X: x, Y: y, W: PaddleWidth, H: PaddleHeight},
		PrevY: y,
		Col:   col,
	}
}

// Move shifts the paddle by dy, clamped to the playfield.
func (p *Paddle) Move(dy float64) {
	p.PrevY = p.Rect.Y
	p.Rect.Y = clampF(p.Rect.Y+dy, 0, ScreenHeight-PaddleHeight)
}

// AIMove steers the paddle centre toward target at most speed*dt per call.
// Offsets under deadband are ignored.
func (p *Paddle) AIMove(target, dt, speed, deadband float64) {
	center := p.Rect.CenterY()
	if math.Abs(target-center) < deadband {
		p.Move(0)
		return
	}
	p.Move(approach(center, target, speed*dt) - center)
}

// VelocityY is the last frame's vertical speed in px/s.
func (p *Paddle) VelocityY(dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return (p.Rect.Y - p.PrevY) / dt
}
