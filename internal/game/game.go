// Package game implements the round and collision engine: ball and player
// physics, scoring, the countdown gate and viewport-relative layout.
package game

import (
	"math/rand"
	"time"

	"github.com/tomz197/pong/internal/ai"
	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/physics"
)

// stickThreshold is how far the analog stick must be pushed to move the paddle.
const stickThreshold = 0.5

// Options configures a new game.
type Options struct {
	BallSpeed     float64
	BallRadius    float64
	PlayerSpeed   float64
	PaddleSize    physics.Vector2
	OpponentSpeed float64
	Countdown     float64 // Seconds the ball stays frozen after a score
	Rand          *rand.Rand
}

// DefaultOptions returns the standard tuning with a time-seeded random source.
func DefaultOptions() Options {
	return Options{
		BallSpeed:     config.BallSpeed,
		BallRadius:    config.BallRadius,
		PlayerSpeed:   config.PlayerSpeed,
		PaddleSize:    physics.Vec(config.PaddleWidth, config.PaddleHeight),
		OpponentSpeed: config.OpponentSpeed,
		Countdown:     config.CountdownSeconds,
	}
}

// OptionsFromSettings maps loaded settings onto game options.
func OptionsFromSettings(s config.Settings) Options {
	return Options{
		BallSpeed:     s.BallSpeed,
		BallRadius:    s.BallRadius,
		PlayerSpeed:   s.PlayerSpeed,
		PaddleSize:    physics.Vec(s.PaddleWidth, s.PaddleHeight),
		OpponentSpeed: s.OpponentSpeed,
		Countdown:     s.CountdownSeconds,
	}
}

// Game owns the ball, the player paddle and the score, and drives the opponent.
type Game struct {
	ball      Ball
	player    Paddle
	opponent  *ai.Opponent
	score     Score
	lastScore float64 // Time of the last score event; the countdown runs from here
	countdown float64
	width     float64
	height    float64
	trail     *Trail
	rng       *rand.Rand
}

// New creates a game for a width x height viewport. The countdown starts at time 0.
func New(width, height float64, opts Options) *Game {
	width, height = clampViewport(width, height)

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		ball: Ball{
			Position: physics.Vec(width/2, height/2),
			Velocity: physics.Up.Add(physics.Left.Scale(0.5)),
			Speed:    opts.BallSpeed,
			Radius:   opts.BallRadius,
		},
		player: Paddle{
			Position: physics.Vec(config.PlayerMargin, height/2-opts.PaddleSize.Y/2),
			Size:     opts.PaddleSize,
			Speed:    opts.PlayerSpeed,
		},
		opponent: ai.New(width, height, ai.Options{
			Size:   opts.PaddleSize,
			Speed:  opts.OpponentSpeed,
			Margin: config.OpponentMargin,
		}),
		countdown: opts.Countdown,
		width:     width,
		height:    height,
		trail:     NewTrail(config.TrailLength),
		rng:       rng,
	}
	g.trail.Reset(g.ball.Position)
	return g
}

func clampViewport(width, height float64) (float64, float64) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// SetViewport applies a new viewport size. On change, paddles are re-anchored
// to their edges and the ball is re-centered; velocity, score and the
// countdown are kept.
func (g *Game) SetViewport(width, height float64) {
	width, height = clampViewport(width, height)
	if width == g.width && height == g.height {
		return
	}
	g.width = width
	g.height = height
	g.repositionEntities()
}

func (g *Game) repositionEntities() {
	g.player.Position = physics.Vec(config.PlayerMargin, g.height/2-g.player.Size.Y/2)
	g.opponent.UpdateViewport(g.width, g.height)
	g.ball.Position = physics.Vec(g.width/2, g.height/2)
}

// StartRound re-arms the countdown at now without touching the score.
func (g *Game) StartRound(now float64) {
	g.lastScore = now
}

// Paused reports whether the countdown is still running at now.
func (g *Game) Paused(now float64) bool {
	return now-g.lastScore < g.countdown
}

// Countdown returns the seconds left before the ball is released.
// ok is false once the round is active.
func (g *Game) Countdown(now float64) (remaining float64, ok bool) {
	remaining = g.countdown - (now - g.lastScore)
	if remaining <= 0 {
		return 0, false
	}
	return remaining, true
}

// Update advances the simulation by one frame.
// Player input is applied even during the countdown; the ball and the
// opponent stay frozen until it ends.
func (g *Game) Update(fc FrameContext, out Output) {
	paused := g.Paused(fc.Now)

	g.trail.Push(g.ball.Position)
	g.movePlayer(fc.Input, fc.Delta)

	if paused {
		return
	}

	aspect := g.width / g.height
	g.ball.Position = g.ball.Position.Add(g.ball.Velocity.Scale(g.ball.Speed / aspect * fc.Delta))

	g.opponent.ObserveBall(g.snapshot())
	g.opponent.Tick(fc.Delta)

	g.checkCollisions(fc.Now, out)
}

func (g *Game) snapshot() ai.BallSnapshot {
	return ai.BallSnapshot{
		Position: g.ball.Position,
		Velocity: g.ball.Velocity,
		Speed:    g.ball.Speed,
		Radius:   g.ball.Radius,
	}
}

// movePlayer applies every input source independently. Within a source,
// up wins over down.
func (g *Game) movePlayer(in Input, dt float64) {
	g.stepPlayer(in.Up, in.Down, dt)
	g.stepPlayer(in.AltUp, in.AltDown, dt)

	if in.Gamepad.Connected {
		g.stepPlayer(in.Gamepad.StickY < -stickThreshold, in.Gamepad.StickY > stickThreshold, dt)
		g.stepPlayer(in.Gamepad.DPadUp, in.Gamepad.DPadDown, dt)
	}
}

func (g *Game) stepPlayer(up, down bool, dt float64) {
	step := g.player.Speed * dt
	switch {
	case up:
		g.player.Position.Y -= step
	case down:
		g.player.Position.Y += step
	default:
		return
	}
	g.player.Position.Y = physics.Clamp(g.player.Position.Y, 0, g.height-g.player.Size.Y)
}

// Ball returns the current ball state.
func (g *Game) Ball() Ball {
	return g.ball
}

// Player returns the player paddle.
func (g *Game) Player() Paddle {
	return g.player
}

// Opponent returns the opponent paddle.
func (g *Game) Opponent() Paddle {
	return Paddle{
		Position: g.opponent.Position(),
		Size:     g.opponent.Size(),
	}
}

// Score returns the current score.
func (g *Game) Score() Score {
	return g.score
}

// Viewport returns the current viewport size.
func (g *Game) Viewport() (width, height float64) {
	return g.width, g.height
}

// Trail returns the recent ball positions.
func (g *Game) Trail() *Trail {
	return g.trail
}
