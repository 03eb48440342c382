// Package lfo provides the bounded periodic value generators that modulate
// blob and global state over time.
package lfo

// LFO sweeps a value between Min and Max at Rate units per second and pushes
// each new value through Apply. In bounce mode the sweep reflects off both
// bounds; in wrap mode crossing Max folds the value back to Min with the
// direction left alone (wrap generators only ever approach the upper bound).
type LFO struct {
	Min, Max float64
	Rate     float64
	Value    float64
	Dir      float64
	Wrap     bool
	Apply    func(v float64)
}

// New starts the value at the bound midpoint, sweeping upward.
func New(min, max, rate float64, wrap bool, apply func(float64)) *LFO {
	return &LFO{
		Min:   min,
		Max:   max,
		Rate:  rate,
		Value: (min + max) / 2,
		Dir:   1,
		Wrap:  wrap,
		Apply: apply,
	}
}

// Update advances the value by dt seconds and invokes Apply with the result.
// Overshoot past a bound is folded back, not clamped, so the value stays in
// [Min, Max]. A single update folds at most once per bound; a dt large enough
// to cross the full range more than once is out of contract.
func (l *LFO) Update(dt float64) {
	l.Value += l.Rate * dt * l.Dir
	if l.Value > l.Max {
		over := l.Value - l.Max
		if l.Wrap {
			l.Value = l.Min + over
		} else {
			l.Dir = -l.Dir
			l.Value = l.Max - over
		}
	}
	if l.Value < l.Min {
		over := l.Min - l.Value
		l.Dir = -l.Dir
		l.Value = l.Min + over
	}
	if l.Apply != nil {
		l.Apply(l.Value)
	}
}
