package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func testStream(t *testing.T) (*Stream, *time.Time) {
	t.Helper()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newStream()
	s.now = func() time.Time { return clock }
	return s, &clock
}

func feed(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestReadInputKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		check func(Input) bool
	}{
		{"w is up", "w", func(in Input) bool { return in.Up && !in.Down }},
		{"S is down", "S", func(in Input) bool { return in.Down && !in.Up }},
		{"arrow up", "\x1b[A", func(in Input) bool { return in.ArrowUp && !in.Up }},
		{"arrow down", "\x1b[B", func(in Input) bool { return in.ArrowDown }},
		{"left arrow ignored", "\x1b[D", func(in Input) bool { return !in.ArrowUp && !in.ArrowDown && !in.Up }},
		{"space", " ", func(in Input) bool { return in.Space }},
		{"enter", "\r", func(in Input) bool { return in.Enter }},
		{"quit", "q", func(in Input) bool { return in.Quit }},
		{"ctrl-c quits", "\x03", func(in Input) bool { return in.Quit }},
		{"debug toggle", "g", func(in Input) bool { return in.Debug }},
		{"both pairs", "w\x1b[B", func(in Input) bool { return in.Up && in.ArrowDown }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := testStream(t)
			feed(s, tt.bytes)
			in := ReadInput(s)
			if !tt.check(in) {
				t.Errorf("unexpected input for %q: %+v", tt.bytes, in)
			}
			if string(in.Pressed) != tt.bytes {
				t.Errorf("Pressed = %q, want %q", in.Pressed, tt.bytes)
			}
		})
	}
}

func TestKeyHeldWithinHoldDuration(t *testing.T) {
	s, clock := testStream(t)
	feed(s, "w")
	ReadInput(s)

	*clock = clock.Add(keyHoldDuration / 2)
	if in := ReadInput(s); !in.Up {
		t.Error("key released before hold duration elapsed")
	}

	*clock = clock.Add(keyHoldDuration)
	if in := ReadInput(s); in.Up {
		t.Error("key still held after hold duration")
	}
}

func TestDebugToggleIsOneShot(t *testing.T) {
	s, _ := testStream(t)
	feed(s, "g")
	if !ReadInput(s).Debug {
		t.Fatal("expected debug toggle")
	}
	if ReadInput(s).Debug {
		t.Error("debug toggle repeated without a new press")
	}
}

func TestResetKeyInput(t *testing.T) {
	s, _ := testStream(t)
	feed(s, " ")
	ReadInput(s)
	ResetKeyInput(s)
	if ReadInput(s).Space {
		t.Error("space still held after reset")
	}
}

func TestStartStreamClosedReaderQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))

	deadline := time.After(time.Second)
	for {
		in := ReadInput(s)
		if in.Quit && s.Closed() {
			return
		}
		select {
		case <-deadline:
			t.Fatal("closed reader did not produce quit")
		case <-time.After(5 * time.Millisecond):
		}
	}
}
