// Package blob holds the particle model and the stateless operations that
// retarget or reposition the whole flock.
package blob

import (
	"math"
	"math/rand"

	"github.com/joesingo/blobs/internal/colour"
)

// Blob is a single particle. Bearing is radians, 0 pointing toward the top
// of the surface and increasing clockwise. BearingShift is a transient
// additive offset owned by whoever drives it (it is reset externally, not
// here). Position is never clamped to the surface; wrapping is a rendering
// concern.
type Blob struct {
	X, Y         float64
	Bearing      float64
	BearingShift float64

	// SpeedBias is sampled once at creation and only applied while the
	// randomise-speed condition is held.
	SpeedBias float64

	// BaseHue offsets the shared hue channel so the flock is not one colour.
	BaseHue float64

	Colour *colour.Colour
}

// Move advances the position by one explicit Euler step at the given speed.
// Forward motion at bearing 0 is straight up the surface.
func (b *Blob) Move(dt, speed float64) {
	eff := b.Bearing + b.BearingShift
	b.X += math.Sin(eff) * speed * dt
	b.Y += -math.Cos(eff) * speed * dt
}

// NewFlock creates count blobs scattered across a w-by-h surface with random
// bearings, hues and speed biases. The whole collection lives and dies
// together; blobs are never added or removed mid-run.
func NewFlock(rng *rand.Rand, count int, w, h, extraSpeed, saturation, value float64) []*Blob {
	flock := make([]*Blob, count)
	for i := range flock {
		hue := rng.Float64() * 360
		flock[i] = &Blob{
			X:         rng.Float64() * w,
			Y:         rng.Float64() * h,
			Bearing:   rng.Float64() * 2 * math.Pi,
			SpeedBias: rng.Float64() * extraSpeed,
			BaseHue:   hue,
			Colour:    colour.New(hue, saturation, value),
		}
	}
	return flock
}

// AttractToward points every blob so that forward motion moves it toward
// (x, y).
func AttractToward(flock []*Blob, x, y float64) {
	for _, b := range flock {
		b.Bearing = math.Atan2(x-b.X, -(y - b.Y))
	}
}

// TeleportTo moves every blob directly to (x, y), bearings unchanged.
func TeleportTo(flock []*Blob, x, y float64) {
	for _, b := range flock {
		b.X = x
		b.Y = y
	}
}

// DispatchClick is the single place the two flock operations are chosen
// between: a click teleports while paused and attracts otherwise.
func DispatchClick(flock []*Blob, x, y float64, paused bool) {
	if paused {
		TeleportTo(flock, x, y)
	} else {
		AttractToward(flock, x, y)
	}
}

// RandomiseBearings re-rolls every blob's heading.
func RandomiseBearings(rng *rand.Rand, flock []*Blob) {
	for _, b := range flock {
		b.Bearing = rng.Float64() * 2 * math.Pi
	}
}

// ReverseBearings turns every blob half a revolution.
func ReverseBearings(flock []*Blob) {
	for _, b := range flock {
		b.Bearing += math.Pi
	}
}
