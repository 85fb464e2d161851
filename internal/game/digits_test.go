package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitSegmentCounts(t *testing.T) {
	want := [10]int{6, 2, 5, 5, 4, 5, 6, 3, 7, 6}
	for d, n := range want {
		assert.Len(t, DigitRects(nil, d, 0, 0, 20, 40, 4), n, "digit %d", d)
	}
}

func TestDigitRectsStayInsideGlyph(t *testing.T) {
	rs := DigitRects(nil, 8, 10, 20, 30, 60, 6)
	for _, r := range rs {
		assert.GreaterOrEqual(t, r.Left(), 10.0)
		assert.LessOrEqual(t, r.Right(), 40.0)
		assert.GreaterOrEqual(t, r.Top(), 20.0)
		assert.LessOrEqual(t, r.Bottom(), 80.0)
	}
}

func TestMultiDigitAdvances(t *testing.T) {
	rs := DigitRects(nil, 11, 0, 0, 20, 40, 4)
	require.Len(t, rs, 4)
	assert.Equal(t, rs[0].X+30, rs[2].X)

	assert.Len(t, DigitRects(nil, -3, 0, 0, 20, 40, 4), 6)
}
