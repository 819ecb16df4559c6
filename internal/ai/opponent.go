// Package ai implements the scripted opponent paddle.
package ai

import (
	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/physics"
)

// BallSnapshot is a read-only copy of the ball state.
type BallSnapshot struct {
	Position physics.Vector2
	Velocity physics.Vector2
	Speed    float64
	Radius   float64
}

// Options configures the opponent paddle.
type Options struct {
	Size   physics.Vector2 // Paddle width and height
	Speed  float64         // Vertical units per second
	Margin float64         // Anchor distance from the right edge
}

// DefaultOptions returns the standard opponent tuning.
func DefaultOptions() Options {
	return Options{
		Size:   physics.Vec(config.PaddleWidth, config.PaddleHeight),
		Speed:  config.OpponentSpeed,
		Margin: config.OpponentMargin,
	}
}

// Opponent tracks the ball vertically at a fixed speed.
// It has no dead zone, so it overshoots by up to one step per tick.
type Opponent struct {
	position physics.Vector2 // Top-left corner
	size     physics.Vector2
	speed    float64
	margin   float64
	width    float64 // Viewport
	height   float64
	ball     BallSnapshot
}

// New creates an opponent anchored to the right edge of a width x height viewport.
func New(width, height float64, opts Options) *Opponent {
	o := &Opponent{
		size:   opts.Size,
		speed:  opts.Speed,
		margin: opts.Margin,
	}
	o.UpdateViewport(width, height)
	return o
}

// UpdateViewport re-anchors the paddle to the right edge and centers it vertically.
func (o *Opponent) UpdateViewport(width, height float64) {
	o.width = width
	o.height = height
	o.position.X = width - o.margin
	o.position.Y = height/2 - o.size.Y/2
}

// ObserveBall stores the ball state used by the next Tick.
func (o *Opponent) ObserveBall(b BallSnapshot) {
	o.ball = b
}

// Tick moves the paddle toward the last observed ball height by speed*dt,
// then clamps it to the viewport.
func (o *Opponent) Tick(dt float64) {
	center := o.position.Y + o.size.Y/2
	step := o.speed * dt

	if center < o.ball.Position.Y {
		o.position.Y += step
	} else if center > o.ball.Position.Y {
		o.position.Y -= step
	}

	o.clampToViewport()
}

func (o *Opponent) clampToViewport() {
	o.position.Y = physics.Clamp(o.position.Y, 0, o.height-o.size.Y)
	o.position.X = o.width - o.margin
}

// Position returns the paddle's top-left corner.
func (o *Opponent) Position() physics.Vector2 {
	return o.position
}

// Size returns the paddle's width and height.
func (o *Opponent) Size() physics.Vector2 {
	return o.size
}

// Center returns the midpoint of the paddle.
func (o *Opponent) Center() physics.Vector2 {
	return o.position.Add(o.size.Scale(0.5))
}

// Ball returns the last observed ball snapshot.
func (o *Opponent) Ball() BallSnapshot {
	return o.ball
}
