package signature

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stroke(p *Pad, points ...Sample) {
	p.Handle(PointerEvent{Kind: PointerDown, Sample: points[0]})
	for _, s := range points[1:] {
		p.Handle(PointerEvent{Kind: PointerMove, Sample: s})
	}
	p.Handle(PointerEvent{Kind: PointerUp})
}

func TestPadStateMachine(t *testing.T) {
	p := NewPad(DefaultWidth, DefaultHeight)
	assert.Equal(t, Idle, p.State())
	assert.True(t, p.Empty())

	// Moves while idle are ignored.
	assert.False(t, p.Handle(PointerEvent{Kind: PointerMove, Sample: Sample{X: 10, Y: 10}}))
	assert.Equal(t, Idle, p.State())

	assert.False(t, p.Handle(PointerEvent{Kind: PointerDown, Sample: Sample{X: 10, Y: 10}}))
	assert.Equal(t, Stroking, p.State())

	assert.False(t, p.Handle(PointerEvent{Kind: PointerMove, Sample: Sample{X: 60, Y: 40}}))
	assert.False(t, p.Empty())

	// Pointer-up finalizes the stroke and asks for serialization.
	assert.True(t, p.Handle(PointerEvent{Kind: PointerUp}))
	assert.Equal(t, Idle, p.State())
}

func TestPadLeaveEndsStroke(t *testing.T) {
	p := NewPad(DefaultWidth, DefaultHeight)
	p.Handle(PointerEvent{Kind: PointerDown, Sample: Sample{X: 5, Y: 5}})
	p.Handle(PointerEvent{Kind: PointerMove, Sample: Sample{X: 50, Y: 50}})

	assert.True(t, p.Handle(PointerEvent{Kind: PointerLeave}))
	assert.Equal(t, Idle, p.State())
}

func TestPadClearWipesBitmap(t *testing.T) {
	p := NewPad(DefaultWidth, DefaultHeight)
	stroke(p, Sample{X: 10, Y: 10}, Sample{X: 100, Y: 100})
	require.False(t, p.Empty())

	p.Clear()
	assert.True(t, p.Empty())
	assert.Equal(t, Idle, p.State())

	blank, err := NewPad(DefaultWidth, DefaultHeight).EncodePNG()
	require.NoError(t, err)
	cleared, err := p.EncodePNG()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(blank, cleared))
}

func TestPadDrawClearRedrawKeepsOnlySecondStroke(t *testing.T) {
	p := NewPad(DefaultWidth, DefaultHeight)
	stroke(p, Sample{X: 10, Y: 10}, Sample{X: 200, Y: 10})
	p.Clear()
	stroke(p, Sample{X: 10, Y: 100}, Sample{X: 200, Y: 100})

	onlySecond := NewPad(DefaultWidth, DefaultHeight)
	stroke(onlySecond, Sample{X: 10, Y: 100}, Sample{X: 200, Y: 100})

	got, err := p.EncodePNG()
	require.NoError(t, err)
	want, err := onlySecond.EncodePNG()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(want, got))
}

func TestPadStrokesAccumulate(t *testing.T) {
	p := NewPad(DefaultWidth, DefaultHeight)
	stroke(p, Sample{X: 10, Y: 10}, Sample{X: 100, Y: 10})
	stroke(p, Sample{X: 10, Y: 50}, Sample{X: 100, Y: 50})

	img := p.Image()
	assert.False(t, isBlank(img, 10, 10, 100, 10))
	assert.False(t, isBlank(img, 10, 50, 100, 50))
}

func TestPadCoordinateTransform(t *testing.T) {
	// Bitmap 800x250 displayed at 400x125: client coords scale by 2 on
	// each axis.
	p := NewPad(800, 250)
	p.SetDisplaySize(400, 125)

	stroke(p, Sample{X: 100, Y: 50}, Sample{X: 150, Y: 50})

	img := p.Image()
	// The stroke lands at bitmap y=100, not display y=50.
	assert.False(t, isBlank(img, 200, 100, 300, 100))
	assert.True(t, isBlank(img, 200, 40, 300, 40))
}

// isBlank reports whether every pixel on the segment midline is fully
// transparent.
func isBlank(img image.Image, x0, y0, x1, y1 int) bool {
	steps := 20
	for i := 0; i <= steps; i++ {
		x := x0 + (x1-x0)*i/steps
		y := y0 + (y1-y0)*i/steps
		_, _, _, a := img.At(x, y).RGBA()
		if a != 0 {
			return false
		}
	}
	return true
}
