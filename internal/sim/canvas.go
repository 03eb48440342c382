package sim

import "github.com/joesingo/blobs/internal/colour"

// Canvas is the abstract draw contract the engine renders through. Concrete
// backends draw to a window, a frame buffer for streaming, or nothing at all.
type Canvas interface {
	// Clear fills the whole surface with c.
	Clear(c colour.RGB)
	// FillCircle draws a filled disc centred at (x, y).
	FillCircle(x, y, radius float64, c colour.RGB)
	// StrokeRect outlines the axis-aligned rectangle at (x, y).
	StrokeRect(x, y, w, h float64, c colour.RGB)
}

// Disc is one recorded FillCircle call.
type Disc struct {
	X float64    `json:"x"`
	Y float64    `json:"y"`
	R float64    `json:"r"`
	C colour.RGB `json:"c"`
}

// Frame is the draw list for one rendered frame.
type Frame struct {
	Cleared    bool       `json:"cleared"`
	Background colour.RGB `json:"background"`
	Discs      []Disc     `json:"discs"`
	Borders    int        `json:"borders"`
}

// FrameCanvas records draw calls into a Frame, for headless preview streaming
// and for tests. Reset it before each frame.
type FrameCanvas struct {
	Frame Frame
}

func (f *FrameCanvas) Reset() {
	f.Frame = Frame{Discs: f.Frame.Discs[:0]}
}

func (f *FrameCanvas) Clear(c colour.RGB) {
	f.Frame.Cleared = true
	f.Frame.Background = c
}

func (f *FrameCanvas) FillCircle(x, y, radius float64, c colour.RGB) {
	f.Frame.Discs = append(f.Frame.Discs, Disc{X: x, Y: y, R: radius, C: c})
}

func (f *FrameCanvas) StrokeRect(x, y, w, h float64, c colour.RGB) {
	f.Frame.Borders++
}
