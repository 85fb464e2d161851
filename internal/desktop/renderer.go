package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"pong/internal/game"
)

// maxSprites caps one sprite upload.
const maxSprites = game.MaxParticles + 64

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Rect program.
	rectProg uint32
	rectVAO  uint32
	rectVBO  uint32

	rectURect       int32
	rectUColor      int32
	rectUResolution int32

	// Sprite programs share one streaming VAO.
	spriteVAO uint32
	spriteVBO uint32

	discProg        uint32
	discUResolution int32
	discUScale      int32

	glowProg        uint32
	glowUResolution int32
	glowUScale      int32

	scale float32 // framebuffer pixels per playfield pixel
}

func NewRenderer() (*Renderer, error) {
	rectProg, err := linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	discProg, err := linkProgram(spriteVertSrc, discFragSrc)
	if err != nil {
		gl.DeleteProgram(rectProg)
		return nil, fmt.Errorf("disc program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(rectProg)
		gl.DeleteProgram(discProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		rectProg: rectProg,
		discProg: discProg,
		glowProg: glowProg,
		scale:    1,
	}

	// Rect VAO/VBO: a unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &r.rectVAO)
	gl.GenBuffers(1, &r.rectVBO)
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	r.rectURect = uniform(rectProg, "uRect")
	r.rectUColor = uniform(rectProg, "uColor")
	r.rectUResolution = uniform(rectProg, "uResolution")

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSprites*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))

	r.discUResolution = uniform(discProg, "uResolution")
	r.discUScale = uniform(discProg, "uScale")
	r.glowUResolution = uniform(glowProg, "uResolution")
	r.glowUScale = uniform(glowProg, "uScale")

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.rectVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.rectVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.rectProg, r.discProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// BeginFrame clears the framebuffer and sets the playfield projection on every
// program.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.scale = float32(fbW) / game.ScreenWidth
	const w, h = float32(game.ScreenWidth), float32(game.ScreenHeight)

	gl.UseProgram(r.rectProg)
	gl.Uniform2f(r.rectUResolution, w, h)
	gl.UseProgram(r.discProg)
	gl.Uniform2f(r.discUResolution, w, h)
	gl.Uniform1f(r.discUScale, r.scale)
	gl.UseProgram(r.glowProg)
	gl.Uniform2f(r.glowUResolution, w, h)
	gl.Uniform1f(r.glowUScale, r.scale)
}

// FillRect draws a solid box in playfield pixels. alpha is 0..1.
func (r *Renderer) FillRect(rc game.Rect, col game.RGB, alpha float32) {
	if rc.W <= 0 || rc.H <= 0 || alpha <= 0 {
		return
	}
	cr, cg, cb := col.Float()

	gl.UseProgram(r.rectProg)
	gl.BindVertexArray(r.rectVAO)
	gl.Uniform4f(r.rectURect, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H))
	gl.Uniform4f(r.rectUColor, cr, cg, cb, alpha)

	if alpha < 1 {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.Disable(gl.BLEND)
}

func (r *Renderer) uploadSprites(buf []float32) int32 {
	count := len(buf) / 8
	if count > maxSprites {
		count = maxSprites
	}
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	return int32(count)
}

// DrawDiscs renders round point sprites with alpha blending.
// buf format: [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
func (r *Renderer) DrawDiscs(buf []float32) {
	if len(buf) == 0 {
		return
	}
	gl.UseProgram(r.discProg)
	count := r.uploadSprites(buf)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.POINTS, 0, count)
	gl.Disable(gl.BLEND)
}

// DrawGlowSprites renders light sprites with additive blending and radial
// falloff. Same buffer format as DrawDiscs.
func (r *Renderer) DrawGlowSprites(buf []float32) {
	if len(buf) == 0 {
		return
	}
	gl.UseProgram(r.glowProg)
	count := r.uploadSprites(buf)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DrawArrays(gl.POINTS, 0, count)
	gl.Disable(gl.BLEND)
}
