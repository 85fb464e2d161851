package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddleMoveClamps(t *testing.T) {
	p := NewPaddle(PaddleMargin, Palette.NeonBlue)
	start := p.Rect.Y

	p.Move(-10000)
	assert.Equal(t, 0.0, p.Rect.Y)
	assert.Equal(t, start, p.PrevY)

	p.Move(10000)
	assert.Equal(t, float64(ScreenHeight-PaddleHeight), p.Rect.Y)
	assert.Equal(t, 0.0, p.PrevY)

	for _, dy := range []float64{-3, 7.5, 1e9, -1e9, 0} {
		p.Move(dy)
		assert.GreaterOrEqual(t, p.Rect.Y, 0.0)
		assert.LessOrEqual(t, p.Rect.Y, float64(ScreenHeight-PaddleHeight))
	}
}

func TestAIMoveDeadband(t *testing.T) {
	p := NewPaddle(PaddleMargin, Palette.NeonBlue)
	y := p.Rect.Y
	p.AIMove(p.Rect.CenterY()+4, frameDt, AISpeed, AIDeadband)
	assert.Equal(t, y, p.Rect.Y)
	assert.Equal(t, 0.0, p.VelocityY(frameDt))
}

func TestAIMoveIsRateLimited(t *testing.T) {
	p := NewPaddle(PaddleMargin, Palette.NeonBlue)
	y := p.Rect.Y
	p.AIMove(600, 0.01, AISpeed, AIDeadband)
	assert.InDelta(t, y+4.8, p.Rect.Y, 1e-9)

	p.AIMove(0, 0.01, AISpeed, AIDeadband)
	assert.InDelta(t, y, p.Rect.Y, 1e-9)
}

func TestAIMoveDoesNotOvershoot(t *testing.T) {
	p := NewPaddle(PaddleMargin, Palette.NeonBlue)
	target := p.Rect.CenterY() + 10
	p.AIMove(target, 1, AISpeed, AIDeadband)
	assert.InDelta(t, target, p.Rect.CenterY(), 1e-9)
}

func TestPaddleVelocity(t *testing.T) {
	p := NewPaddle(PaddleMargin, Palette.NeonBlue)
	p.Move(5)
	assert.InDelta(t, 500.0, p.VelocityY(0.01), 1e-9)
	assert.Equal(t, 0.0, p.VelocityY(0))
}
