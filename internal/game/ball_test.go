package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pong/internal/rng"
)

type eventLog []Event

func (l *eventLog) emit(e Event) { *l = append(*l, e) }

func (l eventLog) count(typ EventType) int {
	n := 0
	for _, e := range l {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// ballAt places a ball with its top-left corner at (x, y).
func ballAt(x, y, vx, vy float64) *Ball {
	b := &Ball{Rect: Rect{X: x, Y: y, W: BallSize, H: BallSize}}
	b.Vel = Vec{X: vx, Y: vy}
	return b
}

func TestLeftPaddleHitReflectsAndSpeedsUp(t *testing.T) {
	pad := NewPaddle(PaddleMargin, Palette.NeonBlue)
	b := ballAt(pad.Rect.Right()-5, pad.Rect.CenterY()-BallSize/2, -500, 0)
	var log eventLog

	b.Update(0.001, []*Paddle{pad}, DefaultTuning(), log.emit)

	require.Equal(t, 1, log.count(EventPaddleHit))
	assert.Equal(t, Palette.NeonBlue, log[0].Col)
	assert.Greater(t, b.Vel.X, 0.0)
	assert.Equal(t, pad.Rect.Right(), b.Rect.Left())
	assert.InDelta(t, 525.0, b.Speed(), 1e-9)
}

func TestRightPaddleHitCorrectsToLeftEdge(t *testing.T) {
	pad := NewPaddle(ScreenWidth-PaddleMargin-PaddleWidth, Palette.NeonPink)
	b := ballAt(pad.Rect.Left()-BallSize+3, pad.Rect.CenterY(), 500, 0)
	var log eventLog

	b.Update(0.001, []*Paddle{pad}, DefaultTuning(), log.emit)

	require.Equal(t, 1, log.count(EventPaddleHit))
	assert.Less(t, b.Vel.X, 0.0)
	assert.Equal(t, pad.Rect.Left(), b.Rect.Right())
}

func TestPaddleHitSpeedIsCapped(t *testing.T) {
	pad := NewPaddle(PaddleMargin, Palette.NeonBlue)
	b := ballAt(pad.Rect.Right()-2, pad.Rect.CenterY(), -790, 0)

	b.Update(0.001, []*Paddle{pad}, DefaultTuning(), func(Event) {})
	assert.InDelta(t, BallSpeedMax, b.Speed(), 1e-9)
}

func TestPaddleHitAddsSpin(t *testing.T) {
	pad := NewPaddle(PaddleMargin, Palette.NeonBlue)
	pad.Move(5) // 500 px/s at dt 0.01
	b := ballAt(pad.Rect.Right()-5, pad.Rect.CenterY(), -500, 0)

	b.Update(0.01, []*Paddle{pad}, DefaultTuning(), func(Event) {})

	// vy gains 0.3*500, then the vector is scaled to 1.05x the incoming speed.
	scale := 500 * BallSpeedUp / math.Hypot(500, 150)
	assert.InDelta(t, 150*scale, b.Vel.Y, 1e-9)
	assert.InDelta(t, 500*scale, b.Vel.X, 1e-9)
	assert.InDelta(t, 525.0, b.Speed(), 1e-9)
}

func TestPaddleMovingAgainstBallKeepsSpeedUp(t *testing.T) {
	for _, tc := range []struct {
		name   string
		shift  float64 // paddle movement over the frame, px
		vx, vy float64
	}{
		{"paddle down, ball up", 16, -400, -300},
		{"paddle up, ball down", -16, -400, 300},
		{"paddle with ball", 16, -400, 300},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pad := NewPaddle(PaddleMargin, Palette.NeonBlue)
			pad.PrevY = pad.Rect.Y - tc.shift
			b := ballAt(pad.Rect.Right()-5, pad.Rect.CenterY(), tc.vx, tc.vy)
			before := b.Speed()

			var log eventLog
			b.Update(1.0/60, []*Paddle{pad}, DefaultTuning(), log.emit)

			require.Equal(t, 1, log.count(EventPaddleHit))
			assert.Greater(t, b.Vel.X, 0.0)
			assert.InDelta(t, math.Min(before*BallSpeedUp, BallSpeedMax), b.Speed(), 1e-9)
		})
	}
}

func TestWallBounceTop(t *testing.T) {
	b := ballAt(ScreenWidth/2, 1, 0, -300)
	var log eventLog

	b.Update(0.01, nil, DefaultTuning(), log.emit)

	require.Equal(t, 1, log.count(EventWallBounce))
	assert.Equal(t, 0.0, b.Rect.Y)
	assert.Equal(t, 300.0, b.Vel.Y)
	assert.InDelta(t, b.Rect.CenterY(), log[0].Y, 1e-9)
}

func TestWallBounceBottom(t *testing.T) {
	b := ballAt(ScreenWidth/2, ScreenHeight-BallSize-1, 0, 300)
	var log eventLog

	b.Update(0.01, nil, DefaultTuning(), log.emit)

	require.Equal(t, 1, log.count(EventWallBounce))
	assert.Equal(t, float64(ScreenHeight-BallSize), b.Rect.Y)
	assert.Equal(t, -300.0, b.Vel.Y)
}

func TestResetServesFromCentre(t *testing.T) {
	r := rng.New(11)
	b := NewBall(BallSpeedInit, r)
	b.Update(0.01, nil, DefaultTuning(), func(Event) {})

	for _, dir := range []int{1, -1, 1, -1} {
		b.Reset(dir, BallSpeedInit, r)
		assert.Equal(t, float64(ScreenWidth)/2, b.Rect.CenterX())
		assert.Equal(t, float64(ScreenHeight)/2, b.Rect.CenterY())
		assert.InDelta(t, BallSpeedInit, b.Speed(), 1e-9)
		assert.Equal(t, dir > 0, b.Vel.X > 0)
		assert.LessOrEqual(t, math.Abs(b.Vel.Y), BallSpeedInit*math.Sin(ServeAngle*math.Pi/180)+1e-9)
		assert.Empty(t, b.Trail(nil))
	}
}

func TestKickoffAngle(t *testing.T) {
	r := rng.New(2)
	for range 100 {
		b := NewBall(BallSpeedInit, r)
		assert.InDelta(t, BallSpeedInit, b.Speed(), 1e-9)
		assert.Greater(t, b.Vel.X, 0.0)
		assert.LessOrEqual(t, math.Abs(b.Vel.Y), BallSpeedInit*math.Sin(KickoffAngle*math.Pi/180)+1e-9)
	}
}

func TestTrailKeepsLatestCentres(t *testing.T) {
	b := ballAt(100, 300, 100, 0)
	for range 15 {
		b.Update(0.1, nil, DefaultTuning(), func(Event) {})
	}
	trail := b.Trail(nil)
	require.Len(t, trail, TrailLength)
	for i := 1; i < len(trail); i++ {
		assert.Greater(t, trail[i].X, trail[i-1].X)
	}
	// Newest entry is the centre before the last step.
	assert.InDelta(t, b.Rect.CenterX()-10, trail[len(trail)-1].X, 1e-9)
}
