// Package sfx defines sound-effect events and the per-frame queue the
// simulation fills and the audio adapter drains.
package sfx

// Effect identifies a sound effect.
type Effect int

const (
	Bounce         Effect = iota // Ball hit a wall or paddle
	PlayerScored                 // Ball left the field on the right
	OpponentScored               // Ball left the field on the left
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case Bounce:
		return "bounce"
	case PlayerScored:
		return "player_scored"
	case OpponentScored:
		return "opponent_scored"
	default:
		return "unknown"
	}
}

// Event is a request to play an effect.
type Event struct {
	Effect Effect
	Volume float64
	Pitch  float64
}

// Queue is an ordered list of pending events.
// It has a single writer and a single reader on the same goroutine;
// the reader must Drain it once per frame.
type Queue struct {
	events []Event
}

// Push appends an event. A nil queue discards it.
func (q *Queue) Push(e Event) {
	if q == nil {
		return
	}
	q.events = append(q.events, e)
}

// Play is shorthand for pushing an event.
func (q *Queue) Play(effect Effect, volume, pitch float64) {
	q.Push(Event{Effect: effect, Volume: volume, Pitch: pitch})
}

// Drain returns all pending events in push order and empties the queue.
// The returned slice is owned by the caller.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0] // reuse backing array
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.events)
}
