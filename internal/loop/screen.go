package loop

import (
	"fmt"
	"math"
	"time"

	"github.com/tomz197/pong/internal/debug"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/physics"
)

var creditLines = []string{
	"P O N G",
	"",
	"Version 0.1.0",
	"Two paddles, one ball, first to lose interest loses.",
	"",
	"Sound: github.com/gopxl/beep",
	"SSH: github.com/charmbracelet/wish",
	"",
	"License: MIT",
	"",
	"Press SPACE to start",
}

const controlsHint = "W/S or Up/Down to move, G debug, Q quit"

// drawFrame clears the screen and draws the current screen.
func (c *Client) drawFrame(now time.Time, elapsed float64) error {
	// The canvas only paints lit cells, so every frame starts from a clear terminal.
	c.chunkWriter.WriteString("\033[H\033[2J")

	c.canvas.Clear()

	switch c.state.Screen {
	case ScreenCredits:
		c.drawCredits()
	case ScreenPlaying:
		c.drawCourt(elapsed)
		if err := c.canvas.Render(c.chunkWriter); err != nil {
			return err
		}
		c.drawHUD()
	}

	fps := c.fps.tick(now)
	c.chunkWriter.WriteAt(2, 1, fmt.Sprintf("FPS: %d", fps))

	return c.chunkWriter.Flush()
}

// drawCredits writes the title screen centered on the terminal.
func (c *Client) drawCredits() {
	centerX := c.canvas.TerminalWidth() / 2
	top := c.canvas.TerminalHeight()/2 - len(creditLines)/2

	for i, line := range creditLines {
		if line == "" {
			continue
		}
		c.chunkWriter.WriteCentered(centerX, top+i, line)
	}
}

// drawCourt paints the center line, paddles, trail, ball, countdown and
// debug shapes onto the canvas.
func (c *Client) drawCourt(now float64) {
	w, h := c.game.Viewport()

	dash := h / 30
	for y := dash / 2; y < h; y += dash * 2 {
		c.canvas.FillRect(w/2-1, y, 2, dash)
	}

	for _, p := range []struct{ pos, size physics.Vector2 }{
		{c.game.Player().Position, c.game.Player().Size},
		{c.game.Opponent().Position, c.game.Opponent().Size},
	} {
		c.canvas.FillRect(p.pos.X, p.pos.Y, p.size.X, p.size.Y)
	}

	trail := c.game.Trail()
	for i := 1; i < trail.Len(); i++ {
		p := trail.At(i)
		c.canvas.SetFloat(p.X, p.Y)
	}

	ball := c.game.Ball()
	c.canvas.FillCircle(ball.Position.X, ball.Position.Y, ball.Radius)

	if remaining, ok := c.game.Countdown(now); ok {
		c.canvas.FillDigit(int(math.Ceil(remaining)), w/2, h/2, h/20)
	}

	if c.state.ShowDebug {
		c.drawDebug(now)
	}
}

// drawDebug draws the live debug shapes.
func (c *Client) drawDebug(now float64) {
	for _, shape := range c.overlay.Live(now) {
		switch s := shape.(type) {
		case debug.Line:
			c.canvas.DrawLine(draw.Point{X: s.From.X, Y: s.From.Y}, draw.Point{X: s.To.X, Y: s.To.Y})
		case debug.Circle:
			c.canvas.DrawCircle(s.Center.X, s.Center.Y, s.Radius)
		case debug.Rect:
			c.canvas.DrawRect(s.Position.X, s.Position.Y, s.Size.X, s.Size.Y)
		}
	}
}

// drawHUD writes the scores either side of the center line and the controls.
func (c *Client) drawHUD() {
	centerX := c.canvas.TerminalWidth() / 2
	score := c.game.Score()

	player := fmt.Sprintf("%d", score.Player)
	c.chunkWriter.WriteAt(centerX-3-len(player), 2, player)
	c.chunkWriter.WriteAt(centerX+4, 2, fmt.Sprintf("%d", score.Opponent))

	if c.state.ShowDebug {
		b := c.game.Ball()
		c.chunkWriter.WriteAt(2, 2, fmt.Sprintf("ball %.0f,%.0f v %.2f,%.2f", b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y))
	}

	c.chunkWriter.WriteCentered(centerX, c.canvas.TerminalHeight(), controlsHint)
}
