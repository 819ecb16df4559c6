package loop

import (
	"time"

	"github.com/tomz197/pong/internal/input"
)

// Screen is the current phase of a client.
type Screen int

const (
	ScreenCredits Screen = iota // Title and credits
	ScreenPlaying               // Match in progress
)

func (s Screen) String() string {
	switch s {
	case ScreenCredits:
		return "credits"
	case ScreenPlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// ClientState holds per-connection presentation state.
type ClientState struct {
	Input     input.Input
	Screen    Screen
	Running   bool
	ShowDebug bool
	delta     time.Duration
}

// NewClientState creates a new initialized client state.
func NewClientState(showDebug bool) *ClientState {
	return &ClientState{
		Screen:    ScreenCredits,
		Running:   true,
		ShowDebug: showDebug,
	}
}

// fpsCounter reports frames rendered over the last full second.
type fpsCounter struct {
	windowStart time.Time
	frames      int
	value       int
}

func (f *fpsCounter) tick(now time.Time) int {
	if f.windowStart.IsZero() {
		f.windowStart = now
	}
	f.frames++
	if elapsed := now.Sub(f.windowStart); elapsed >= time.Second {
		f.value = int(float64(f.frames) / elapsed.Seconds())
		f.frames = 0
		f.windowStart = now
	}
	return f.value
}
