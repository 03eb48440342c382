package blob

import (
	"math"
	"math/rand"
	"testing"

	"github.com/joesingo/blobs/internal/colour"
)

func single(x, y, bearing float64) []*Blob {
	return []*Blob{{X: x, Y: y, Bearing: bearing, Colour: colour.New(0, 100, 100)}}
}

func TestMoveConvention(t *testing.T) {
	// Bearing 0 moves straight up (negative y), pi/2 moves right.
	b := single(0, 0, 0)[0]
	b.Move(1, 10)
	if math.Abs(b.X) > 1e-9 || math.Abs(b.Y+10) > 1e-9 {
		t.Fatalf("bearing 0 should move up, got (%v,%v)", b.X, b.Y)
	}

	b = single(0, 0, math.Pi/2)[0]
	b.Move(1, 10)
	if math.Abs(b.X-10) > 1e-9 || math.Abs(b.Y) > 1e-6 {
		t.Fatalf("bearing pi/2 should move right, got (%v,%v)", b.X, b.Y)
	}
}

func TestMoveAppliesBearingShift(t *testing.T) {
	b := single(0, 0, 0)[0]
	b.BearingShift = math.Pi / 2
	b.Move(1, 10)
	if math.Abs(b.X-10) > 1e-9 {
		t.Fatalf("shift should rotate motion, got (%v,%v)", b.X, b.Y)
	}
}

func TestAttractTowardStraightUp(t *testing.T) {
	flock := single(0, 0, 1.23)
	AttractToward(flock, 0, -10)
	bearing := flock[0].Bearing
	if math.Abs(math.Sin(bearing)) > 1e-9 || math.Abs(math.Cos(bearing)-1) > 1e-9 {
		t.Fatalf("expected bearing 0 toward (0,-10), got %v", bearing)
	}
}

func TestAttractThenMoveConverges(t *testing.T) {
	flock := single(30, 40, 0)
	AttractToward(flock, 50, 90)
	before := math.Hypot(50-flock[0].X, 90-flock[0].Y)
	flock[0].Move(0.1, 5)
	after := math.Hypot(50-flock[0].X, 90-flock[0].Y)
	if after >= before {
		t.Fatalf("blob should close on target: %v -> %v", before, after)
	}
}

func TestDispatchClickPausedIsTeleport(t *testing.T) {
	flock := single(1, 2, 0.5)
	DispatchClick(flock, 7, 8, true)
	if flock[0].X != 7 || flock[0].Y != 8 {
		t.Fatalf("paused click should teleport, got (%v,%v)", flock[0].X, flock[0].Y)
	}
	if flock[0].Bearing != 0.5 {
		t.Fatalf("teleport must not touch bearing, got %v", flock[0].Bearing)
	}

	// Teleport is idempotent: dispatching twice ends where one teleport does.
	DispatchClick(flock, 7, 8, true)
	if flock[0].X != 7 || flock[0].Y != 8 {
		t.Fatalf("second paused click changed position to (%v,%v)", flock[0].X, flock[0].Y)
	}
}

func TestDispatchClickUnpausedRetargets(t *testing.T) {
	flock := single(1, 2, 0)
	DispatchClick(flock, 1, -8, false)
	if flock[0].X != 1 || flock[0].Y != 2 {
		t.Fatal("unpaused click must not move the blob")
	}
	if math.Abs(flock[0].Bearing) > 1e-9 {
		t.Fatalf("expected bearing 0 toward point above, got %v", flock[0].Bearing)
	}
}

func TestNewFlock(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	flock := NewFlock(rng, 20, 200, 100, 3, 80, 90)
	if len(flock) != 20 {
		t.Fatalf("expected 20 blobs, got %d", len(flock))
	}
	for _, b := range flock {
		if b.X < 0 || b.X > 200 || b.Y < 0 || b.Y > 100 {
			t.Fatalf("blob spawned off-surface at (%v,%v)", b.X, b.Y)
		}
		if b.SpeedBias < 0 || b.SpeedBias >= 3 {
			t.Fatalf("speed bias %v outside [0,3)", b.SpeedBias)
		}
		if b.Colour == nil {
			t.Fatal("blob must own a colour")
		}
		if b.Colour.Saturation() != 80 || b.Colour.Value() != 90 {
			t.Fatalf("unexpected colour %v/%v", b.Colour.Saturation(), b.Colour.Value())
		}
	}
}

func TestReverseBearings(t *testing.T) {
	flock := single(0, 0, 0)
	ReverseBearings(flock)
	flock[0].Move(1, 10)
	if math.Abs(flock[0].Y-10) > 1e-9 {
		t.Fatalf("reversed blob should move down, got y=%v", flock[0].Y)
	}
}
