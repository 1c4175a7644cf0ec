package signature

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
)

// Sample is one normalized pointer position, in display-surface
// coordinates relative to the surface origin. The input adapter merges
// mouse and touch sources before samples reach the pad, so the pad
// never branches on the input device.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EventKind discriminates pointer transitions.
type EventKind string

const (
	PointerDown  EventKind = "down"
	PointerMove  EventKind = "move"
	PointerUp    EventKind = "up"
	PointerLeave EventKind = "leave"
)

// PointerEvent is a single input event against the capture surface.
type PointerEvent struct {
	Kind   EventKind `json:"kind"`
	Sample Sample    `json:"sample"`
}

// State of the pad's stroke machine.
type State string

const (
	Idle     State = "idle"
	Stroking State = "stroking"
)

const (
	strokeWidth = 3.0

	// DefaultWidth and DefaultHeight are the backing bitmap dimensions.
	DefaultWidth  = 800
	DefaultHeight = 250
)

// Pad captures freehand strokes into a raster bitmap. Strokes
// accumulate until Clear; there is no per-stroke undo. The pad is not
// safe for concurrent use; the owning service serializes access.
type Pad struct {
	width, height int
	displayW      float64
	displayH      float64

	dc    *gg.Context
	state State
	last  Sample
	drawn bool
}

// NewPad creates an empty pad with the given bitmap dimensions. The
// display size starts equal to the bitmap size (identity transform).
func NewPad(width, height int) *Pad {
	p := &Pad{
		width:    width,
		height:   height,
		displayW: float64(width),
		displayH: float64(height),
		state:    Idle,
	}
	p.reset()
	return p
}

func (p *Pad) reset() {
	dc := gg.NewContext(p.width, p.height)
	dc.SetLineWidth(strokeWidth)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	dc.SetColor(color.Black)
	p.dc = dc
	p.drawn = false
	p.state = Idle
}

// SetDisplaySize records the on-screen size of the capture surface so
// raw client coordinates can be mapped into bitmap space. Each axis
// scales independently, keeping capture resolution-independent under
// responsive scaling.
func (p *Pad) SetDisplaySize(w, h float64) {
	if w > 0 {
		p.displayW = w
	}
	if h > 0 {
		p.displayH = h
	}
}

// transform maps a display-space sample into bitmap coordinates.
func (p *Pad) transform(s Sample) Sample {
	return Sample{
		X: s.X * float64(p.width) / p.displayW,
		Y: s.Y * float64(p.height) / p.displayH,
	}
}

// State returns the current stroke state.
func (p *Pad) State() State {
	return p.state
}

// Empty reports whether anything has been drawn since the last Clear.
func (p *Pad) Empty() bool {
	return !p.drawn
}

// Handle feeds one pointer event through the stroke machine. It returns
// true when the event finished a stroke, meaning the accumulated bitmap
// should be serialized into the provider profile.
func (p *Pad) Handle(ev PointerEvent) bool {
	switch p.state {
	case Idle:
		if ev.Kind == PointerDown {
			p.last = p.transform(ev.Sample)
			p.state = Stroking
		}
	case Stroking:
		switch ev.Kind {
		case PointerMove:
			// Rendered immediately, no buffering.
			next := p.transform(ev.Sample)
			p.dc.DrawLine(p.last.X, p.last.Y, next.X, next.Y)
			p.dc.Stroke()
			p.last = next
			p.drawn = true
		case PointerUp, PointerLeave:
			p.state = Idle
			return true
		}
	}
	return false
}

// Clear wipes the backing bitmap. Allowed in any state.
func (p *Pad) Clear() {
	p.reset()
}

// EncodePNG serializes the entire accumulated bitmap, not just the
// latest stroke.
func (p *Pad) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Image exposes the backing bitmap for rendering.
func (p *Pad) Image() image.Image {
	return p.dc.Image()
}
