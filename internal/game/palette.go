package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Float returns the colour as 0..1 components.
func (c RGB) Float() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	NeonPink     RGB
	NeonBlue     RGB
	DarkBG       RGB
	White        RGB
	SoftWhite    RGB
	Grid         RGB
	CenterLine   RGB
	JungleGreen  RGB
	BananaYellow RGB
	Dim          RGB
}{
	NeonPink:     RGB{R: 255, G: 0, B: 128},
	NeonBlue:     RGB{R: 0, G: 191, B: 255},
	DarkBG:       RGB{R: 10, G: 10, B: 15},
	White:        RGB{R: 255, G: 255, B: 255},
	SoftWhite:    RGB{R: 200, G: 200, B: 200},
	Grid:         RGB{R: 30, G: 30, B: 40},
	CenterLine:   RGB{R: 80, G: 80, B: 80},
	JungleGreen:  RGB{R: 34, G: 139, B: 34},
	BananaYellow: RGB{R: 255, G: 225, B: 53},
	Dim:          RGB{R: 100, G: 100, B: 100},
}
