// Package debug keeps short-lived shapes for a diagnostic overlay.
package debug

import "github.com/tomz197/pong/internal/physics"

// Shape is one of Line, Circle or Rect.
type Shape interface {
	shape()
}

// Line is a segment between two points.
type Line struct {
	From, To physics.Vector2
}

// Circle is a filled circle.
type Circle struct {
	Center physics.Vector2
	Radius float64
}

// Rect is an outlined rectangle anchored at its top-left corner.
type Rect struct {
	Position physics.Vector2
	Size     physics.Vector2
}

func (Line) shape()   {}
func (Circle) shape() {}
func (Rect) shape()   {}

type entry struct {
	shape   Shape
	expires float64
}

// Overlay holds shapes until their display time runs out.
type Overlay struct {
	entries []entry
}

// Add shows a shape from now for duration seconds. A nil overlay discards it.
func (o *Overlay) Add(s Shape, now, duration float64) {
	if o == nil || s == nil {
		return
	}
	o.entries = append(o.entries, entry{shape: s, expires: now + duration})
}

// Live prunes expired shapes and returns the rest in insertion order.
func (o *Overlay) Live(now float64) []Shape {
	if o == nil {
		return nil
	}
	kept := o.entries[:0]
	var shapes []Shape
	for _, e := range o.entries {
		if e.expires > now {
			kept = append(kept, e)
			shapes = append(shapes, e.shape)
		}
	}
	clear(o.entries[len(kept):])
	o.entries = kept
	return shapes
}

// Len returns the number of stored shapes, expired or not.
func (o *Overlay) Len() int {
	if o == nil {
		return 0
	}
	return len(o.entries)
}
