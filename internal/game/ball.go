package game

import (
	"math"

	"pong/internal/rng"
)

type Ball struct {
	Rect Rect
	Vel  Vec

	trail     [TrailLength]Vec // ring of recent centres
	trailHead int
	trailLen  int
}

func centeredBallRect() Rect {
	return Rect{
		X: float64(ScreenWidth-BallSize) / 2,
		Y: float64(ScreenHeight-BallSize) / 2,
		W: BallSize,
		H: BallSize,
	}
}

// NewBall returns the pre-serve ball heading right at up to ±45°.
func NewBall(speed float64, r *rng.Rand) *Ball {
	b := &Ball{Rect: centeredBallRect()}
	b.Vel.X, b.Vel.Y = rotate(speed, 0, r.RangeF(-KickoffAngle, KickoffAngle))
	return b
}

// Reset re-serves from the centre toward dir (+1 right, -1 left) at a random
// angle within ±30°.
func (b *Ball) Reset(dir int, speed float64, r *rng.Rand) {
	b.Rect = centeredBallRect()
	b.Vel.X, b.Vel.Y = rotate(speed*float64(dir), 0, r.RangeF(-ServeAngle, ServeAngle))
	b.trailHead, b.trailLen = 0, 0
}

func (b *Ball) Speed() float64 { return math.Hypot(b.Vel.X, b.Vel.Y) }

func (b *Ball) Center() Vec { return Vec{X: b.Rect.CenterX(), Y: b.Rect.CenterY()} }

// Trail returns recent centres, oldest first.
func (b *Ball) Trail(dst []Vec) []Vec {
	dst = dst[:0]
	start := (b.trailHead - b.trailLen + TrailLength) % TrailLength
	for i := range b.trailLen {
		dst = append(dst, b.trail[(start+i)%TrailLength])
	}
	return dst
}

func (b *Ball) pushTrail() {
	b.trail[b.trailHead] = b.Center()
	b.trailHead = (b.trailHead + 1) % TrailLength
	if b.trailLen < TrailLength {
		b.trailLen++
	}
}

// Update advances the ball by dt, bouncing off the top and bottom walls and
// the paddles. Contacts are reported through emit.
func (b *Ball) Update(dt float64, paddles []*Paddle, t Tuning, emit func(Event)) {
	b.pushTrail()

	b.Rect.X += b.Vel.X * dt
	b.Rect.Y += b.Vel.Y * dt

	if b.Rect.Top() <= 0 || b.Rect.Bottom() >= ScreenHeight {
		top := b.Rect.Top() <= 0
		b.Rect.Y = clampF(b.Rect.Y, 0, ScreenHeight-BallSize)
		// Always point back into the field so a slow ball can't stick.
		if top {
			b.Vel.Y = math.Abs(b.Vel.Y)
		} else {
			b.Vel.Y = -math.Abs(b.Vel.Y)
		}
		emit(Event{Type: EventWallBounce, X: b.Rect.CenterX(), Y: b.Rect.CenterY(), Col: Palette.White})
	}

	for _, pad := range paddles {
		if !b.Rect.Overlaps(pad.Rect) {
			continue
		}
		if b.Vel.X < 0 {
			b.Rect.X = pad.Rect.Right()
		} else {
			b.Rect.X = pad.Rect.Left() - b.Rect.W
		}
		// Spin only turns the ball; the new speed comes from the speed
		// before contact.
		pre := b.Speed()
		b.Vel.X = -b.Vel.X
		b.Vel.Y += pad.VelocityY(dt) * t.SpinFactor

		if cur := b.Speed(); pre > 0 && cur > 0 {
			next := math.Min(pre*t.BallSpeedUp, t.BallSpeedMax)
			b.Vel.X *= next / cur
			b.Vel.Y *= next / cur
		}
		emit(Event{Type: EventPaddleHit, X: b.Rect.CenterX(), Y: b.Rect.CenterY(), Col: pad.Col})
	}
}
