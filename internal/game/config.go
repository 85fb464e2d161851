package game

// Playfield dimensions (in pixels).
const (
	ScreenWidth  = 1200
	ScreenHeight = 675
)

// Loop timing.
const (
	FPS        = 60
	MaxFrameDt = 0.1 // seconds; longer stalls are clamped
)

// Paddles.
const (
	PaddleWidth  = 15
	PaddleHeight = 100
	PaddleMargin = 50 // distance from the side wall
	PaddleSpeed  = 550.0
	AISpeed      = 480.0
	AIDeadband   = 5.0
)

// Ball.
const (
	BallSize      = 16
	BallSpeedInit = 500.0
	BallSpeedMax  = 800.0
	BallSpeedUp   = 1.05
	SpinFactor    = 0.3
	KickoffAngle  = 45.0 // degrees, first ball before any serve
	ServeAngle    = 30.0 // degrees
	TrailLength   = 10
	TrailMinSpeed = 100.0 // |vx| above which the ball sheds trail particles
)

// Match.
const WinScore = 5

// Particles.
const (
	MaxParticles         = 4096
	ParticleGravity      = 200.0
	ParticleSpeedMin     = 50.0
	ParticleSpeedMax     = 200.0
	ParticleSizeMin      = 2.0
	ParticleSizeMax      = 5.0
	ParticleDecayMin     = 0.01
	ParticleDecayMax     = 0.03
	TrailParticleSize    = 4.0
	TrailParticleDamping = 0.1
)

// Burst sizes.
const (
	WallBurst   = 5
	PaddleBurst = 8
	ScoreBurst  = 20
	WinBurst    = 50
	DemoBurst   = 3
	DemoMargin  = 100
)

// Screen flash.
const (
	StartFlash = 255.0
	ScoreFlash = 200.0
	FlashDecay = 500.0 // alpha per second
)

// Tuning holds the gameplay numbers that are worth tweaking without touching
// the physics code.
type Tuning struct {
	PaddleSpeed     float64 // px/s, player paddle
	AISpeed         float64 // px/s, AI paddle cap
	AIDeadband      float64 // px, AI ignores smaller offsets
	BallSpeedInit   float64
	BallSpeedMax    float64
	BallSpeedUp     float64 // multiplier per paddle hit
	SpinFactor      float64 // share of paddle velocity added to the ball
	WinScore        int
	DemoBurstChance float64 // per frame, menu screen only
}

// DefaultTuning returns the stock game feel.
func DefaultTuning() Tuning {
	return Tuning{
		PaddleSpeed:     PaddleSpeed,
		AISpeed:         AISpeed,
		AIDeadband:      AIDeadband,
		BallSpeedInit:   BallSpeedInit,
		BallSpeedMax:    BallSpeedMax,
		BallSpeedUp:     BallSpeedUp,
		SpinFactor:      SpinFactor,
		WinScore:        WinScore,
		DemoBurstChance: 0.05,
	}
}
