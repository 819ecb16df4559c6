package game

import (
	"github.com/tomz197/pong/internal/debug"
	"github.com/tomz197/pong/internal/physics"
	"github.com/tomz197/pong/internal/sfx"
)

// Ball is the simulated ball. Velocity is a direction whose magnitude also
// scales the effective speed together with Speed.
type Ball struct {
	Position physics.Vector2
	Velocity physics.Vector2
	Speed    float64
	Radius   float64
}

// Paddle is a rectangle anchored at its top-left corner.
type Paddle struct {
	Position physics.Vector2
	Size     physics.Vector2
	Speed    float64
}

// Center returns the midpoint of the paddle.
func (p Paddle) Center() physics.Vector2 {
	return p.Position.Add(p.Size.Scale(0.5))
}

// Score holds points for both sides.
type Score struct {
	Player   int
	Opponent int
}

// Gamepad is the optional analog/digital controller state.
type Gamepad struct {
	Connected bool
	StickY    float64 // Left stick vertical axis, -1 (up) .. 1 (down)
	DPadUp    bool
	DPadDown  bool
}

// Input is the per-frame state of the player's controls.
// Up/Down and AltUp/AltDown are two independent key pairs.
type Input struct {
	Up      bool
	Down    bool
	AltUp   bool
	AltDown bool
	Gamepad Gamepad
}

// FrameContext carries everything a tick needs from the outside world.
type FrameContext struct {
	Now   float64 // Seconds since start
	Delta float64 // Seconds since previous frame
	Input Input
}

// Output collects what a tick emits. Both sinks are owned by the caller and
// must be drained once per frame. Nil sinks discard.
type Output struct {
	Sounds *sfx.Queue
	Debug  *debug.Overlay
}
