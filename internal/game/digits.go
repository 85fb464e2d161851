package game

import "strconv"

// Seven-segment bits: a top, b upper right, c lower right, d bottom,
// e lower left, f upper left, g middle.
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

var digitSegments = [10]uint8{
	segA | segB | segC | segD | segE | segF,
	segB | segC,
	segA | segB | segD | segE | segG,
	segA | segB | segC | segD | segG,
	segB | segC | segF | segG,
	segA | segC | segD | segF | segG,
	segA | segC | segD | segE | segF | segG,
	segA | segB | segC,
	segA | segB | segC | segD | segE | segF | segG,
	segA | segB | segC | segD | segF | segG,
}

// DigitRects lays out n as seven-segment glyphs of size w x h with stroke t,
// the first glyph's top-left at (x, y). Glyphs are spaced by w/2.
func DigitRects(dst []Rect, n int, x, y, w, h, t float64) []Rect {
	if n < 0 {
		n = 0
	}
	for _, ch := range strconv.Itoa(n) {
		dst = appendDigit(dst, digitSegments[ch-'0'], x, y, w, h, t)
		x += w * 1.5
	}
	return dst
}

func appendDigit(dst []Rect, segs uint8, x, y, w, h, t float64) []Rect {
	half := h / 2
	parts := [7]Rect{
		{X: x, Y: y, W: w, H: t},
		{X: x + w - t, Y: y, W: t, H: half + t/2},
		{X: x + w - t, Y: y + half - t/2, W: t, H: half + t/2},
		{X: x, Y: y + h - t, W: w, H: t},
		{X: x, Y: y + half - t/2, W: t, H: half + t/2},
		{X: x, Y: y, W: t, H: half + t/2},
		{X: x, Y: y + half - t/2, W: w, H: t},
	}
	for i, r := range parts {
		if segs&(1<<i) != 0 {
			dst = append(dst, r)
		}
	}
	return dst
}
