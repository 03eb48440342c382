package macro

import "time"

// Recorder captures live input into an append-only event sequence. The
// recording clock starts lazily at the first append, which is therefore
// always recorded at time 0; later events carry wall-clock seconds elapsed
// since then. A recorder lives for one simulation run and its sequence is
// the exportable macro source. Callers supply now explicitly, the idiom used
// for all timing in this package, so tests stay deterministic.
type Recorder struct {
	surfaceW float64
	surfaceH float64

	events  []Event
	started bool
	start   time.Time
}

// NewRecorder creates an empty recording for a surface of the given pixel
// dimensions. Click positions are normalised against these.
func NewRecorder(surfaceW, surfaceH float64) *Recorder {
	return &Recorder{surfaceW: surfaceW, surfaceH: surfaceH}
}

// KeyDown appends a keydown event.
func (r *Recorder) KeyDown(key string, now time.Time) {
	r.append(Event{Kind: KeyDown, Key: key}, now)
}

// KeyUp appends a keyup event.
func (r *Recorder) KeyUp(key string, now time.Time) {
	r.append(Event{Kind: KeyUp, Key: key}, now)
}

// Click appends a click event, converting surface pixels to percentages.
func (r *Recorder) Click(x, y float64, now time.Time) {
	ev := Event{Kind: Click}
	if r.surfaceW > 0 {
		ev.X = x / r.surfaceW * 100
	}
	if r.surfaceH > 0 {
		ev.Y = y / r.surfaceH * 100
	}
	r.append(ev, now)
}

// Events returns the recorded sequence so far.
func (r *Recorder) Events() []Event {
	return r.events
}

func (r *Recorder) append(ev Event, now time.Time) {
	if !r.started {
		r.started = true
		r.start = now
	}
	ev.Time = now.Sub(r.start).Seconds()
	r.events = append(r.events, ev)
}
