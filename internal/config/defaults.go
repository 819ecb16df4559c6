package config

import "time"

// Field layout. Units are logical viewport units (a terminal column is
// CellWidth units wide, a half-row CellHeight units tall).
const (
	BallSpeed      = 3000.0
	BallRadius     = 10.0
	PlayerSpeed    = 2000.0
	PaddleWidth    = 10.0
	PaddleHeight   = 100.0
	PlayerMargin   = 10.0 // Player paddle distance from the left edge
	OpponentMargin = 20.0 // Opponent paddle anchor distance from the right edge
	OpponentSpeed  = 360.0
)

// Round timing
const (
	CountdownSeconds = 3.0
	CreditsSeconds   = 6.0
)

// Sound effects
const (
	EffectVolume = 0.5
	EffectPitch  = 1.0
)

// Debug overlay
const (
	DebugShapeSeconds = 0.5
	TrailLength       = 10
)

// Terminal mapping from character cells to logical units.
const (
	CellWidth  = 8.0
	CellHeight = 8.0 // Per half-block sub-pixel, so 16 units per row
)

// Client rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Inactivity (SSH sessions)
const (
	InactivityDisconnectUser = 120 // Seconds
)
