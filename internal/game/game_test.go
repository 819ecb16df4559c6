package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/pong/internal/debug"
	"github.com/tomz197/pong/internal/physics"
	"github.com/tomz197/pong/internal/sfx"
)

const (
	dt         = 1.0 / 60
	activeTime = 10.0 // Well past the initial countdown
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(42))
	return New(800, 450, opts)
}

func newOutput() (Output, *sfx.Queue, *debug.Overlay) {
	q := &sfx.Queue{}
	o := &debug.Overlay{}
	return Output{Sounds: q, Debug: o}, q, o
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewLayout(t *testing.T) {
	g := newTestGame(t)

	if got := g.Ball().Position; got != physics.Vec(400, 225) {
		t.Errorf("ball = %v, want (400, 225)", got)
	}
	if got := g.Ball().Velocity; got != physics.Vec(-0.5, -1) {
		t.Errorf("ball velocity = %v, want (-0.5, -1)", got)
	}
	if got := g.Player().Position; got != physics.Vec(10, 175) {
		t.Errorf("player = %v, want (10, 175)", got)
	}
	if got := g.Opponent().Position; got != physics.Vec(780, 175) {
		t.Errorf("opponent = %v, want (780, 175)", got)
	}
	if g.Score() != (Score{}) {
		t.Errorf("score = %+v, want zero", g.Score())
	}
}

func TestActiveTickMovesBallWithoutCollision(t *testing.T) {
	g := newTestGame(t)
	g.ball = Ball{Position: physics.Vec(400, 225), Velocity: physics.Vec(-1, -0.5), Speed: 3000, Radius: 10}
	out, sounds, overlay := newOutput()

	g.Update(FrameContext{Now: activeTime, Delta: dt}, out)

	// 3000 / (800/450) / 60 = 28.125 units along velocity
	b := g.Ball()
	if !near(b.Position.X, 400-28.125) {
		t.Errorf("ball.x = %f, want %f", b.Position.X, 400-28.125)
	}
	if !near(b.Position.Y, 225-14.0625) {
		t.Errorf("ball.y = %f, want %f", b.Position.Y, 225-14.0625)
	}
	if b.Velocity != physics.Vec(-1, -0.5) {
		t.Errorf("velocity changed to %v", b.Velocity)
	}
	if sounds.Len() != 0 || overlay.Len() != 0 {
		t.Errorf("unexpected events: sounds=%d debug=%d", sounds.Len(), overlay.Len())
	}
	if g.Score() != (Score{}) {
		t.Errorf("score = %+v, want zero", g.Score())
	}
}

func TestPausedTickFreezesBallAndOpponent(t *testing.T) {
	g := newTestGame(t)
	g.ball.Position = physics.Vec(300, 20) // Far from the opponent's center
	before := g.Ball()
	oppBefore := g.Opponent().Position
	out, sounds, _ := newOutput()

	for i := 0; i < 60; i++ {
		now := float64(i) * dt // Within the 3s countdown
		g.Update(FrameContext{Now: now, Delta: dt}, out)
	}

	if g.Ball() != before {
		t.Errorf("ball changed while paused: %+v -> %+v", before, g.Ball())
	}
	if g.Opponent().Position != oppBefore {
		t.Errorf("opponent moved while paused: %v -> %v", oppBefore, g.Opponent().Position)
	}
	if sounds.Len() != 0 {
		t.Errorf("sounds emitted while paused: %d", sounds.Len())
	}
}

func TestPlayerMovesWhilePaused(t *testing.T) {
	g := newTestGame(t)
	start := g.Player().Position.Y

	g.Update(FrameContext{Now: 0.5, Delta: dt, Input: Input{Down: true}}, Output{})

	if got, want := g.Player().Position.Y, start+2000*dt; !near(got, want) {
		t.Errorf("player.y = %f, want %f", got, want)
	}
	if !g.Paused(0.5) {
		t.Error("expected countdown to still be running")
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	inputs := []Input{
		{Up: true},
		{Down: true},
		{AltUp: true, Up: true},
		{AltDown: true, Down: true},
		{Gamepad: Gamepad{Connected: true, StickY: -1, DPadUp: true}},
		{Gamepad: Gamepad{Connected: true, StickY: 1, DPadDown: true}},
	}
	for _, in := range inputs {
		g := newTestGame(t)
		for i := 0; i < 120; i++ {
			g.Update(FrameContext{Now: float64(i) * dt, Delta: dt, Input: in}, Output{})
			y := g.Player().Position.Y
			if y < 0 || y > 450-100 {
				t.Fatalf("input %+v frame %d: player.y = %f out of [0, 350]", in, i, y)
			}
		}
	}
}

func TestInputSourcesAreIndependent(t *testing.T) {
	g := newTestGame(t)
	g.player.Speed = 60 // One unit per frame at 60 fps
	start := g.Player().Position.Y

	in := Input{
		Up:      true,
		AltUp:   true,
		Gamepad: Gamepad{Connected: true, StickY: -0.9, DPadUp: true},
	}
	g.Update(FrameContext{Now: 0, Delta: dt, Input: in}, Output{})

	if got := start - g.Player().Position.Y; !near(got, 4) {
		t.Errorf("moved %f units, want 4 (one per source)", got)
	}
}

func TestUpWinsWithinKeyPair(t *testing.T) {
	g := newTestGame(t)
	start := g.Player().Position.Y
	g.Update(FrameContext{Now: 0, Delta: dt, Input: Input{Up: true, Down: true}}, Output{})
	if g.Player().Position.Y >= start {
		t.Errorf("player.y = %f, want below %f", g.Player().Position.Y, start)
	}
}

func TestGamepadIgnoredWhenDisconnected(t *testing.T) {
	g := newTestGame(t)
	start := g.Player().Position
	in := Input{Gamepad: Gamepad{StickY: 1, DPadDown: true}}
	g.Update(FrameContext{Now: 0, Delta: dt, Input: in}, Output{})
	if g.Player().Position != start {
		t.Errorf("disconnected gamepad moved player to %v", g.Player().Position)
	}
}

func TestGamepadStickDeadZone(t *testing.T) {
	g := newTestGame(t)
	start := g.Player().Position
	in := Input{Gamepad: Gamepad{Connected: true, StickY: 0.4}}
	g.Update(FrameContext{Now: 0, Delta: dt, Input: in}, Output{})
	if g.Player().Position != start {
		t.Errorf("stick within threshold moved player to %v", g.Player().Position)
	}
}

func TestCountdown(t *testing.T) {
	g := newTestGame(t)

	if rem, ok := g.Countdown(0); !ok || rem != 3 {
		t.Errorf("Countdown(0) = %f, %v; want 3, true", rem, ok)
	}
	if rem, ok := g.Countdown(2.25); !ok || rem != 0.75 {
		t.Errorf("Countdown(2.25) = %f, %v; want 0.75, true", rem, ok)
	}
	if _, ok := g.Countdown(3.5); ok {
		t.Error("Countdown(3.5) still running")
	}
	if g.Paused(3.0) {
		t.Error("Paused at exactly the threshold")
	}

	g.StartRound(20)
	if !g.Paused(21) {
		t.Error("StartRound did not re-arm the countdown")
	}
	if g.Score() != (Score{}) {
		t.Errorf("StartRound changed the score: %+v", g.Score())
	}
}

func TestTrailRecordsEveryTick(t *testing.T) {
	g := newTestGame(t)
	g.ball.Position = physics.Vec(123, 45)
	g.Update(FrameContext{Now: 0, Delta: dt}, Output{})
	if got := g.Trail().At(0); got != physics.Vec(123, 45) {
		t.Errorf("trail head = %v, want (123, 45)", got)
	}
}

func TestUpdateWithNilSinks(t *testing.T) {
	g := newTestGame(t)
	g.ball.Position = physics.Vec(-100, 225)
	g.Update(FrameContext{Now: activeTime, Delta: dt}, Output{})
	if g.Score().Opponent != 1 {
		t.Errorf("opponent score = %d, want 1", g.Score().Opponent)
	}
}

func TestSetViewportRoundTrip(t *testing.T) {
	g := newTestGame(t)
	ref := newTestGame(t)

	// Disturb the layout first
	g.Update(FrameContext{Now: activeTime, Delta: dt, Input: Input{Down: true}}, Output{})
	g.score = Score{Player: 2, Opponent: 3}
	velocity := g.Ball().Velocity

	sizes := [][2]float64{{1280, 720}, {640, 480}, {1920, 300}, {800, 450}}
	for _, s := range sizes {
		g.SetViewport(s[0], s[1])
	}

	if g.Player().Position != ref.Player().Position {
		t.Errorf("player = %v, want %v", g.Player().Position, ref.Player().Position)
	}
	if g.Opponent().Position != ref.Opponent().Position {
		t.Errorf("opponent = %v, want %v", g.Opponent().Position, ref.Opponent().Position)
	}
	if g.Ball().Position != ref.Ball().Position {
		t.Errorf("ball = %v, want %v", g.Ball().Position, ref.Ball().Position)
	}
	if g.Ball().Velocity != velocity {
		t.Errorf("resize changed velocity: %v -> %v", velocity, g.Ball().Velocity)
	}
	if g.Score() != (Score{Player: 2, Opponent: 3}) {
		t.Errorf("resize changed score: %+v", g.Score())
	}
}

func TestSetViewportSameSizeIsNoop(t *testing.T) {
	g := newTestGame(t)
	g.ball.Position = physics.Vec(50, 60)
	g.SetViewport(800, 450)
	if g.Ball().Position != physics.Vec(50, 60) {
		t.Errorf("ball re-centered on unchanged viewport: %v", g.Ball().Position)
	}
}

func TestSetViewportClampsToMinimum(t *testing.T) {
	g := newTestGame(t)
	g.SetViewport(-10, 0)
	w, h := g.Viewport()
	if w != 1 || h != 1 {
		t.Errorf("viewport = %fx%f, want 1x1", w, h)
	}

	g.Update(FrameContext{Now: activeTime, Delta: dt, Input: Input{Down: true}}, Output{})
	b := g.Ball()
	if math.IsNaN(b.Position.X) || math.IsNaN(b.Position.Y) || math.IsNaN(b.Velocity.Y) {
		t.Errorf("NaN after degenerate viewport: %+v", b)
	}
}

func TestSetViewportKeepsCountdown(t *testing.T) {
	g := newTestGame(t)
	g.StartRound(5)
	g.SetViewport(1024, 768)
	if !g.Paused(6) {
		t.Error("resize cleared the countdown")
	}
}
