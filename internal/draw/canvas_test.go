package draw

import (
	"bytes"
	"strings"
	"testing"
)

func litPixels(c *Canvas) int {
	n := 0
	for _, p := range c.pixels {
		if p {
			n++
		}
	}
	return n
}

func TestCanvasScaling(t *testing.T) {
	// 10 columns x 5 rows = 10 x 10 pixels for a 100 x 100 logical space
	c := NewCanvas(10, 5, 100, 100)

	c.SetFloat(55, 95)
	if !c.Pixel(5, 9) {
		t.Error("expected pixel (5, 9) set for logical (55, 95)")
	}
	c.SetFloat(-1, 50)
	c.SetFloat(100, 50)
	if litPixels(c) != 1 {
		t.Errorf("out-of-range points were drawn: %d lit", litPixels(c))
	}
}

func TestCanvasResizeKeepsBufferWhenTerminalUnchanged(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	c.SetFloat(0, 0)
	c.Resize(10, 5, 200, 200)
	if !c.Pixel(0, 0) {
		t.Error("logical-only resize dropped pixels")
	}
	c.Resize(20, 5, 200, 200)
	if c.Pixel(0, 0) {
		t.Error("terminal resize should reallocate the pixel buffer")
	}
	if c.TerminalWidth() != 20 || c.TerminalHeight() != 5 {
		t.Errorf("size = %dx%d, want 20x5", c.TerminalWidth(), c.TerminalHeight())
	}
}

func TestCanvasResizeClampsToOne(t *testing.T) {
	c := NewCanvas(0, -3, 0, 0)
	if c.TerminalWidth() != 1 || c.TerminalHeight() != 1 {
		t.Errorf("size = %dx%d, want 1x1", c.TerminalWidth(), c.TerminalHeight())
	}
	c.FillRect(0, 0, 10, 10)
	if !c.Pixel(0, 0) || !c.Pixel(0, 1) {
		t.Error("fill on a minimal canvas did not set both sub-pixels")
	}
}

func TestFillRectCoversThinRects(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	// Narrower than one pixel (10 logical units)
	c.FillRect(12, 0, 2, 30)
	for y := 0; y < 3; y++ {
		if !c.Pixel(1, y) {
			t.Errorf("pixel (1, %d) not set", y)
		}
	}
	if litPixels(c) != 3 {
		t.Errorf("lit = %d, want 3", litPixels(c))
	}
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20)
	c.FillCircle(10, 10, 4)
	if !c.Pixel(10, 10) {
		t.Error("center not filled")
	}
	if c.Pixel(0, 0) || c.Pixel(19, 19) {
		t.Error("corners should stay empty")
	}

	c.Clear()
	c.FillCircle(3.5, 3.5, 0)
	if !c.Pixel(3, 3) || litPixels(c) != 1 {
		t.Errorf("zero-radius circle lit %d pixels", litPixels(c))
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(10, 5, 10, 10)
	c.DrawLine(Point{X: 0, Y: 0}, Point{X: 9, Y: 9})
	for i := 0; i < 10; i++ {
		if !c.Pixel(i, i) {
			t.Errorf("diagonal pixel (%d, %d) not set", i, i)
		}
	}
}

func TestFillDigit(t *testing.T) {
	c := NewCanvas(30, 15, 30, 30)
	c.FillDigit(1, 15, 15, 2)
	// "1" has 8 lit cells of 2x2 pixels
	if got := litPixels(c); got != 32 {
		t.Errorf("lit = %d, want 32", got)
	}

	c.Clear()
	c.FillDigit(10, 15, 15, 2)
	c.FillDigit(-1, 15, 15, 2)
	if litPixels(c) != 0 {
		t.Error("out-of-range digits were drawn")
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewCanvas(2, 1, 2, 2)
	c.SetFloat(0, 0) // top of column 1
	c.SetFloat(1, 0) // column 2 full
	c.SetFloat(1, 1)

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	want := "\033[1;1H▀\033[1;2H█"
	if buf.String() != want {
		t.Errorf("render = %q, want %q", buf.String(), want)
	}
}

func TestChunkWriterFlush(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)
	cw.WriteAt(3, 2, "hi")
	cw.WriteCentered(10, 1, "abcd")
	cw.WriteString(strings.Repeat("x", maxChunkSize*2+7))
	if buf.Len() != 0 {
		t.Fatal("wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\033[2;3Hhi\033[1;8Habcd") {
		t.Errorf("unexpected prefix %q", out[:24])
	}
	if cw.Len() != 0 {
		t.Error("buffer not reset after Flush")
	}
}
