package audio

import (
	"io"

	"github.com/tomz197/pong/internal/sfx"
)

// Player plays one sound event. Implementations must not block the frame loop.
type Player interface {
	Play(ev sfx.Event)
}

// Drain empties q in push order into p. A nil player discards the events.
func Drain(q *sfx.Queue, p Player) {
	events := q.Drain()
	if p == nil {
		return
	}
	for _, ev := range events {
		p.Play(ev)
	}
}

// Nop discards every event.
type Nop struct{}

func (Nop) Play(sfx.Event) {}

// Bell rings the terminal bell for scoring events. Used where no audio
// device is available, e.g. SSH sessions. Bounces stay silent.
type Bell struct {
	w io.Writer
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Play(ev sfx.Event) {
	switch ev.Effect {
	case sfx.PlayerScored, sfx.OpponentScored:
		if ev.Volume > 0 {
			_, _ = io.WriteString(b.w, "\a")
		}
	}
}
