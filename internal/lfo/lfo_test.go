package lfo

import (
	"math"
	"testing"
)

func TestBounceReflectsAtMax(t *testing.T) {
	l := New(0, 10, 1, false, nil)
	l.Value = 9
	l.Update(3) // naive value 12, overshoot 2
	if l.Value != 8 {
		t.Fatalf("expected reflect to 8, got %v", l.Value)
	}
	if l.Dir != -1 {
		t.Fatalf("expected direction flip, got %v", l.Dir)
	}
}

func TestBounceReflectsAtMin(t *testing.T) {
	l := New(0, 10, 1, false, nil)
	l.Value = 1
	l.Dir = -1
	l.Update(3) // naive value -2, overshoot 2
	if l.Value != 2 {
		t.Fatalf("expected reflect to 2, got %v", l.Value)
	}
	if l.Dir != 1 {
		t.Fatalf("expected direction flip, got %v", l.Dir)
	}
}

func TestWrapFoldsToMin(t *testing.T) {
	l := New(0, 360, 90, true, nil)
	l.Value = 350
	l.Update(1) // naive value 440, overshoot 80
	if l.Value != 80 {
		t.Fatalf("expected wrap to 80, got %v", l.Value)
	}
	if l.Dir != 1 {
		t.Fatalf("wrap must not flip direction, got %v", l.Dir)
	}
}

func TestValueStaysInBounds(t *testing.T) {
	for _, wrap := range []bool{false, true} {
		l := New(-5, 5, 3.7, wrap, nil)
		for i := 0; i < 1000; i++ {
			dt := 0.016 + float64(i%7)*0.3
			l.Update(dt)
			if l.Value < l.Min || l.Value > l.Max {
				t.Fatalf("wrap=%v: value %v escaped [%v,%v] at step %d", wrap, l.Value, l.Min, l.Max, i)
			}
		}
	}
}

func TestMidpointStart(t *testing.T) {
	l := New(10, 20, 1, false, nil)
	if l.Value != 15 {
		t.Fatalf("expected midpoint start 15, got %v", l.Value)
	}
}

func TestApplySeesEveryUpdate(t *testing.T) {
	var got []float64
	l := New(0, 1, 1, false, func(v float64) { got = append(got, v) })
	l.Update(0.25)
	l.Update(0.25)
	if len(got) != 2 {
		t.Fatalf("expected 2 callbacks, got %d", len(got))
	}
	if math.Abs(got[0]-0.75) > 1e-9 || math.Abs(got[1]-1.0) > 1e-9 {
		t.Fatalf("unexpected callback values %v", got)
	}
}
