package game

import (
	"math"

	"pong/internal/rng"
)

// lifeEpsilon absorbs float drift so a particle decaying by 0.02 from 1.0
// dies on exactly the 50th tick.
const lifeEpsilon = 1e-9

type Particle struct {
	X, Y   float64
	VX, VY float64

	Size  float64
	Life  float64 // 1 at spawn, removed at 0
	Decay float64 // life lost per tick, fixed at spawn

	Col RGB
}

// ParticleSystem owns every live particle. Dead particles are swap-removed,
// so order is not stable but the backing array is reused.
type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *rng.Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, r *rng.Rand) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: r,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Len() int { return len(ps.P) }

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

func (ps *ParticleSystem) spawn(x, y, vx, vy, size float64, col RGB) {
	ps.Add(Particle{
		X: x, Y: y,
		VX: vx, VY: vy,
		Size:  size,
		Life:  1,
		Decay: ps.rng.RangeF(ParticleDecayMin, ParticleDecayMax),
		Col:   col,
	})
}

// AddBurst scatters count particles from (x, y) in random directions.
func (ps *ParticleSystem) AddBurst(x, y float64, col RGB, count int) {
	for range count {
		ang := ps.rng.RangeF(0, math.Pi*2)
		spd := ps.rng.RangeF(ParticleSpeedMin, ParticleSpeedMax)
		size := ps.rng.RangeF(ParticleSizeMin, ParticleSizeMax)
		ps.spawn(x, y, math.Cos(ang)*spd, math.Sin(ang)*spd, size, col)
	}
}

// AddTrail drops one particle drifting slowly against (vx, vy).
func (ps *ParticleSystem) AddTrail(x, y, vx, vy float64, col RGB) {
	ps.spawn(x, y, -vx*TrailParticleDamping, -vy*TrailParticleDamping, TrailParticleSize, col)
}

// Update moves particles by dt under gravity. Life drains by each particle's
// own decay once per call regardless of dt.
func (ps *ParticleSystem) Update(dt float64) {
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= p.Decay
		p.VY += ParticleGravity * dt

		if p.Life <= lifeEpsilon {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		i++
	}
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// RenderData appends one glow sprite per particle to buf.
// Format: [x, y, size, r, g, b, a, rotation] * N. Size and alpha shrink with life.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for _, p := range ps.P {
		life := clampF(p.Life, 0, 1)
		size := p.Size * life
		if size < 1 {
			continue
		}
		r, g, b := p.Col.Float()
		buf = append(buf, float32(p.X), float32(p.Y), float32(size), r, g, b, float32(life), 0)
	}
	return buf
}
