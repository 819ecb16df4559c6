package game

import "github.com/tomz197/pong/internal/physics"

// Trail is a fixed-capacity ring buffer of recent ball positions.
// Pushing into a full trail overwrites the oldest entry.
type Trail struct {
	buf   []physics.Vector2
	head  int // Index of the newest entry
	count int
}

// NewTrail creates a trail holding up to capacity positions.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buf: make([]physics.Vector2, capacity), head: -1}
}

// Push records a position as the newest entry.
func (t *Trail) Push(p physics.Vector2) {
	t.head = (t.head + 1) % len(t.buf)
	t.buf[t.head] = p
	if t.count < len(t.buf) {
		t.count++
	}
}

// Len returns the number of stored positions.
func (t *Trail) Len() int {
	return t.count
}

// Cap returns the trail capacity.
func (t *Trail) Cap() int {
	return len(t.buf)
}

// At returns the i-th newest position (0 is the most recent).
func (t *Trail) At(i int) physics.Vector2 {
	if i < 0 || i >= t.count {
		return physics.Zero
	}
	idx := (t.head - i + len(t.buf)) % len(t.buf)
	return t.buf[idx]
}

// Reset fills the trail with a single position repeated to capacity.
func (t *Trail) Reset(p physics.Vector2) {
	for i := range t.buf {
		t.buf[i] = p
	}
	t.head = len(t.buf) - 1
	t.count = len(t.buf)
}
