package game

import (
	"math"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/debug"
	"github.com/tomz197/pong/internal/physics"
	"github.com/tomz197/pong/internal/sfx"
)

// serveCone is the maximum angle between a fresh serve and the horizontal axis.
const serveCone = 45.0

// paddleSide tells which way the ball must travel for a paddle hit to count.
type paddleSide int

const (
	sidePlayer   paddleSide = iota // Left paddle, ball moving left
	sideOpponent                   // Right paddle, ball moving right
)

// checkCollisions resolves collisions in fixed order: scoring walls,
// bouncing walls, player paddle, opponent paddle.
func (g *Game) checkCollisions(now float64, out Output) {
	g.checkWallCollision(now, out)
	g.checkPaddleCollision(g.player, sidePlayer, now, out)
	g.checkPaddleCollision(g.Opponent(), sideOpponent, now, out)
}

func (g *Game) checkWallCollision(now float64, out Output) {
	b := &g.ball

	if b.Position.X < -b.Radius/2 {
		g.score.Opponent++
		g.serve(now)
		out.Sounds.Play(sfx.OpponentScored, config.EffectVolume, config.EffectPitch)
	} else if b.Position.X > g.width+b.Radius/2 {
		g.score.Player++
		g.serve(now)
		out.Sounds.Play(sfx.PlayerScored, config.EffectVolume, config.EffectPitch)
	}

	if b.Position.Y < b.Radius {
		b.Position.Y = b.Radius
		b.Velocity.Y = -b.Velocity.Y
		out.Sounds.Play(sfx.Bounce, config.EffectVolume, config.EffectPitch)
	} else if b.Position.Y > g.height-b.Radius {
		b.Position.Y = g.height - b.Radius
		b.Velocity.Y = -b.Velocity.Y
		out.Sounds.Play(sfx.Bounce, config.EffectVolume, config.EffectPitch)
	}
}

// serve re-centers the ball with a fresh random direction and re-arms the countdown.
func (g *Game) serve(now float64) {
	g.ball.Position = physics.Vec(g.width/2, g.height/2)
	g.ball.Velocity = g.randomDirection()
	g.lastScore = now
}

// randomDirection picks a unit vector within serveCone of the horizontal
// axis, with each axis sign flipped independently at 50%.
// cos stays above cos(45°) so the result is never zero.
func (g *Game) randomDirection() physics.Vector2 {
	angle := g.rng.Float64() * serveCone * math.Pi / 180
	dir := physics.Vec(math.Cos(angle), math.Sin(angle))
	if g.rng.Intn(2) == 0 {
		dir.X = -dir.X
	}
	if g.rng.Intn(2) == 0 {
		dir.Y = -dir.Y
	}
	return dir
}

func (g *Game) checkPaddleCollision(p Paddle, side paddleSide, now float64, out Output) {
	if !g.ballHits(p, side) {
		return
	}

	b := &g.ball
	switch side {
	case sidePlayer:
		b.Position.X = p.Position.X + p.Size.X + b.Radius
	case sideOpponent:
		b.Position.X = p.Position.X - b.Radius
	}
	b.Velocity = reflectOffPaddle(b.Velocity, b.Position, p.Center())

	out.Sounds.Play(sfx.Bounce, config.EffectVolume, config.EffectPitch)
	out.Debug.Add(debug.Rect{Position: p.Position, Size: p.Size}, now, config.DebugShapeSeconds)
	out.Debug.Add(debug.Line{
		From: b.Position,
		To:   b.Position.Add(b.Velocity.Normalized().Scale(b.Radius * 6)),
	}, now, config.DebugShapeSeconds)
}

// ballHits tests the ball's bounding square against the paddle, counting
// only when the ball travels toward that paddle.
func (g *Game) ballHits(p Paddle, side paddleSide) bool {
	b := g.ball
	switch side {
	case sidePlayer:
		if b.Velocity.X >= 0 {
			return false
		}
	case sideOpponent:
		if b.Velocity.X <= 0 {
			return false
		}
	}
	pos, size := physics.CircleBounds(b.Position, b.Radius)
	return physics.BoxesOverlap(pos, size, p.Position, p.Size)
}

// reflectOffPaddle sends the ball back horizontally and steers its vertical
// direction by where it struck relative to the paddle center.
func reflectOffPaddle(v, ballPos, paddleCenter physics.Vector2) physics.Vector2 {
	offset := ballPos.Sub(paddleCenter).Normalized()
	return physics.Vec(-v.X, -offset.Y)
}
