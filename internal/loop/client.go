// Package loop runs a single game session: input, update, sound and draw
// once per frame against one terminal.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pong/internal/audio"
	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/debug"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/sfx"
)

// maxDelta caps a frame's simulated time after stalls so the ball cannot
// skip through a paddle.
const maxDelta = 100 * time.Millisecond

// Options configures the client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Settings     config.Settings
	Logger       *log.Logger
	Audio        audio.Player
}

// Client runs one game against one terminal.
type Client struct {
	game         *game.Game
	state        *ClientState
	settings     config.Settings
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	player       audio.Player
	sounds       sfx.Queue
	overlay      debug.Overlay
	fps          fpsCounter
	frameTime    time.Duration
	now          func() time.Time
	start        time.Time
	lastInput    time.Time
	lastScore    game.Score
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts Options) *Client {
	c := newClient(w, opts)
	c.inputStream = input.StartStream(r)
	return c
}

func newClient(w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}
	settings := opts.Settings
	if settings.TargetFPS <= 0 {
		settings = config.Default()
	}

	termWidth, termHeight, _ := termSizeFunc()
	lw, lh := ViewportFor(termWidth, termHeight)

	return &Client{
		game:         game.New(lw, lh, game.OptionsFromSettings(settings)),
		state:        NewClientState(settings.Debug),
		settings:     settings,
		canvas:       draw.NewCanvas(termWidth, termHeight, lw, lh),
		chunkWriter:  draw.NewChunkWriter(w),
		writer:       w,
		termSizeFunc: termSizeFunc,
		logger:       logger,
		player:       player,
		frameTime:    time.Second / time.Duration(settings.TargetFPS),
		now:          time.Now,
	}
}

// ViewportFor maps a terminal size to logical game units.
func ViewportFor(termWidth, termHeight int) (width, height float64) {
	return float64(max(termWidth, 1)) * config.CellWidth,
		float64(max(termHeight, 1)) * 2 * config.CellHeight
}

// Run starts the client loop. Blocks until the player quits, input ends,
// the session is idle too long or ctx is done.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	c.start = c.now()
	c.lastInput = c.start
	lastTime := c.start

	for c.state.Running {
		select {
		case <-ctx.Done():
			c.state.Running = false
			continue
		default:
		}

		frameStart := c.now()
		c.state.delta = min(frameStart.Sub(lastTime), maxDelta)
		lastTime = frameStart

		if err := c.frame(frameStart); err != nil {
			return err
		}

		elapsed := c.now().Sub(frameStart)
		if elapsed < c.frameTime {
			time.Sleep(c.frameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// frame runs one input -> update -> sound -> draw cycle.
func (c *Client) frame(now time.Time) error {
	c.processInput(now)
	c.updateScreen()

	elapsed := now.Sub(c.start).Seconds()
	switch c.state.Screen {
	case ScreenCredits:
		c.updateCredits(elapsed)
	case ScreenPlaying:
		c.updatePlaying(elapsed)
	}

	audio.Drain(&c.sounds, c.player)

	return c.drawFrame(now, elapsed)
}

// processInput reads pending keys and handles quit, idle and debug toggling.
func (c *Client) processInput(now time.Time) {
	c.state.Input = input.ReadInput(c.inputStream)

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = now
	} else if now.Sub(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting idle session")
		c.state.Running = false
	}

	if c.state.Input.Quit {
		c.state.Running = false
	}

	if c.state.Input.Debug {
		c.state.ShowDebug = !c.state.ShowDebug
		c.logger.Debug("debug overlay", "enabled", c.state.ShowDebug)
	}
}

// updateScreen follows terminal resizes, rescaling the canvas and the court.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	if termWidth == c.canvas.TerminalWidth() && termHeight == c.canvas.TerminalHeight() {
		return
	}

	lw, lh := ViewportFor(termWidth, termHeight)
	c.canvas.Resize(termWidth, termHeight, lw, lh)
	c.game.SetViewport(lw, lh)
	c.logger.Debug("terminal resized", "cols", termWidth, "rows", termHeight)
}

// updateCredits leaves the title screen after CreditsSeconds or on Space/Enter.
func (c *Client) updateCredits(now float64) {
	if now >= c.settings.CreditsSeconds || c.state.Input.Space || c.state.Input.Enter {
		input.ResetKeyInput(c.inputStream)
		c.game.StartRound(now)
		c.state.Screen = ScreenPlaying
		c.logger.Debug("screen", "from", ScreenCredits, "to", ScreenPlaying)
	}
}

// updatePlaying advances the match by one frame.
func (c *Client) updatePlaying(now float64) {
	out := game.Output{Sounds: &c.sounds}
	if c.state.ShowDebug {
		out.Debug = &c.overlay
	}

	c.game.Update(game.FrameContext{
		Now:   now,
		Delta: c.state.delta.Seconds(),
		Input: mapInput(c.state.Input),
	}, out)

	if score := c.game.Score(); score != c.lastScore {
		c.logger.Debug("score", "player", score.Player, "opponent", score.Opponent)
		c.lastScore = score
	}
}

// mapInput translates terminal keys into paddle intents. W/S and the
// arrow keys are independent sources. Terminals have no gamepad.
func mapInput(in input.Input) game.Input {
	return game.Input{
		Up:      in.Up,
		Down:    in.Down,
		AltUp:   in.ArrowUp,
		AltDown: in.ArrowDown,
	}
}
