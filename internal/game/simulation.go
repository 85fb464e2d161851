package game

import (
	"math"

	"pong/internal/audio"
	"pong/internal/rng"
)

// Audio is the sound surface the simulation drives. *audio.Engine satisfies it.
type Audio interface {
	Play(kind audio.SoundKind)
	PlayRandomPaddleHit()
	StartMenuMusic()
	StopMenuMusic()
}

type silentAudio struct{}

func (silentAudio) Play(audio.SoundKind) {}
func (silentAudio) PlayRandomPaddleHit() {}
func (silentAudio) StartMenuMusic()      {}
func (silentAudio) StopMenuMusic()       {}

// Simulation owns all mutable game state and advances it one frame per Step.
// It is not safe for concurrent use.
type Simulation struct {
	tuning Tuning
	rng    *rng.Rand
	audio  Audio
	bus    *EventBus

	State  GameState
	Scores [2]int // indexed by Side

	AI     *Paddle // left
	Player *Paddle // right
	Ball   *Ball

	Particles *ParticleSystem

	Flash float64 // white overlay alpha, 0..255
	Clock float64 // bounce clock, advances 3 per second

	running      bool
	musicPlaying bool
	paddles      []*Paddle
}

func NewSimulation(t Tuning, r *rng.Rand, a Audio) *Simulation {
	if a == nil {
		a = silentAudio{}
	}
	s := &Simulation{
		tuning:    t,
		rng:       r,
		audio:     a,
		bus:       NewEventBus(),
		State:     StateStart,
		AI:        NewPaddle(PaddleMargin, Palette.NeonBlue),
		Player:    NewPaddle(ScreenWidth-PaddleMargin-PaddleWidth, Palette.NeonPink),
		Ball:      NewBall(t.BallSpeedInit, r),
		Particles: NewParticleSystem(MaxParticles, r),
		running:   true,
	}
	s.paddles = []*Paddle{s.AI, s.Player}
	s.subscribe()
	return s
}

func (s *Simulation) Running() bool { return s.running }

func (s *Simulation) subscribe() {
	s.bus.Subscribe(EventWallBounce, func(e Event) {
		s.Particles.AddBurst(e.X, e.Y, e.Col, WallBurst)
		s.audio.Play(audio.SoundWallBounce)
	})
	s.bus.Subscribe(EventPaddleHit, func(e Event) {
		s.Particles.AddBurst(e.X, e.Y, e.Col, PaddleBurst)
		s.audio.PlayRandomPaddleHit()
	})
	s.bus.Subscribe(EventScore, func(e Event) {
		s.Particles.AddBurst(e.X, e.Y, e.Col, ScoreBurst)
		s.Flash = ScoreFlash
		if e.Side == SidePlayer {
			s.audio.Play(audio.SoundPlayerScore)
		} else {
			s.audio.Play(audio.SoundAIScore)
		}
	})
	s.bus.Subscribe(EventGameOver, func(e Event) {
		s.Particles.AddBurst(e.X, e.Y, e.Col, WinBurst)
		if e.Side == SidePlayer {
			s.audio.Play(audio.SoundGameOverWin)
		} else {
			s.audio.Play(audio.SoundGameOverLose)
		}
	})
	s.bus.Subscribe(EventMatchStart, func(Event) {
		s.Flash = StartFlash
		s.audio.Play(audio.SoundGameStart)
	})
}

// Step advances the game by dt seconds with this frame's input.
func (s *Simulation) Step(in Input, dt float64) {
	if !s.running {
		return
	}
	s.Clock += dt * 3
	s.syncMusic()

	s.handleInput(in)
	if !s.running {
		return
	}

	if s.State == StatePlaying {
		s.updatePlaying(in, dt)
	}

	if s.State != StateStart && math.Abs(s.Ball.Vel.X) > TrailMinSpeed {
		c := s.Ball.Center()
		s.Particles.AddTrail(c.X, c.Y, s.Ball.Vel.X, s.Ball.Vel.Y, Palette.White)
	}
	s.Particles.Update(dt)

	if s.Flash > 0 {
		s.Flash = math.Max(0, s.Flash-FlashDecay*dt)
	}

	if s.State == StateStart && s.rng.Float64() < s.tuning.DemoBurstChance {
		x := s.rng.Range(DemoMargin, ScreenWidth-DemoMargin)
		y := s.rng.Range(DemoMargin, ScreenHeight-DemoMargin)
		s.Particles.AddBurst(float64(x), float64(y), Palette.BananaYellow, DemoBurst)
	}
}

// syncMusic keeps the menu loop playing exactly while on the title screen.
func (s *Simulation) syncMusic() {
	switch {
	case s.State == StateStart && !s.musicPlaying:
		s.audio.StartMenuMusic()
		s.musicPlaying = true
	case s.State != StateStart && s.musicPlaying:
		s.audio.StopMenuMusic()
		s.musicPlaying = false
	}
}

func (s *Simulation) handleInput(in Input) {
	if in.Quit {
		s.running = false
		return
	}
	switch s.State {
	case StateStart:
		if in.Confirm {
			s.startMatch()
		}
	case StateGameOver:
		switch {
		case in.RestartYes:
			s.startMatch()
		case in.RestartNo:
			s.audio.Play(audio.SoundMenuBeep)
			s.running = false
		}
	}
}

func (s *Simulation) startMatch() {
	s.State = StatePlaying
	s.Scores = [2]int{}
	s.Ball.Reset(1, s.tuning.BallSpeedInit, s.rng)
	s.bus.Emit(Event{Type: EventMatchStart})
}

func (s *Simulation) updatePlaying(in Input, dt float64) {
	dy := 0.0
	if in.Up {
		dy -= s.tuning.PaddleSpeed * dt
	}
	if in.Down {
		dy += s.tuning.PaddleSpeed * dt
	}
	s.Player.Move(dy)
	s.AI.AIMove(s.Ball.Rect.CenterY(), dt, s.tuning.AISpeed, s.tuning.AIDeadband)

	s.Ball.Update(dt, s.paddles, s.tuning, s.bus.Emit)

	const cx, cy = ScreenWidth / 2, ScreenHeight / 2
	switch {
	case s.Ball.Rect.Right() < 0:
		s.Scores[SidePlayer]++
		s.Ball.Reset(-1, s.tuning.BallSpeedInit, s.rng)
		s.bus.Emit(Event{Type: EventScore, X: cx, Y: cy, Col: Palette.NeonPink, Side: SidePlayer})
	case s.Ball.Rect.Left() > ScreenWidth:
		s.Scores[SideAI]++
		s.Ball.Reset(1, s.tuning.BallSpeedInit, s.rng)
		s.bus.Emit(Event{Type: EventScore, X: cx, Y: cy, Col: Palette.NeonBlue, Side: SideAI})
	}

	if max(s.Scores[SideAI], s.Scores[SidePlayer]) >= s.tuning.WinScore {
		s.State = StateGameOver
		s.bus.Emit(Event{Type: EventGameOver, X: cx, Y: cy, Col: Palette.White, Side: s.Winner()})
	}
}

// Winner is the side ahead on points. Ties go to the AI.
func (s *Simulation) Winner() Side {
	if s.Scores[SidePlayer] > s.Scores[SideAI] {
		return SidePlayer
	}
	return SideAI
}
