// Package sim ties the oscillators, macro playback, blob updates and the
// render pass together into a single frame-driven engine.
package sim

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/joesingo/blobs/internal/blob"
	"github.com/joesingo/blobs/internal/colour"
	"github.com/joesingo/blobs/internal/config"
	"github.com/joesingo/blobs/internal/lfo"
	"github.com/joesingo/blobs/internal/macro"
)

var borderColour = colour.RGB{R: 255, G: 255, B: 255}

// UIHooks are optional callbacks into whatever presents dialogs. Unset hooks
// make the corresponding actions no-ops; the engine has no other coupling to
// presentation.
type UIHooks struct {
	Help     func()
	Settings func()
	Escape   func()
}

// channel pairs a named oscillator with its activation condition. Channels
// advance in slice order every tick, so modulation is deterministic.
type channel struct {
	name   string
	gen    *lfo.LFO
	active func() bool
}

// Engine is the per-run simulation context. It exclusively owns the flock,
// the oscillator channels, the pressed-action set, the current macro player
// and the current recorder; everything is replaced wholesale by Reset.
// All mutation happens from within a tick or between ticks on the same
// goroutine — the engine does no locking of its own.
type Engine struct {
	Cfg   *config.Settings
	Flock []*blob.Blob
	Out   Canvas
	Hooks UIHooks

	// Suspended makes Tick a no-op, e.g. while a modal dialog is shown.
	Suspended bool

	channels []channel
	held     map[string]bool
	actions  map[string]string // key code -> action name

	catalog  macro.Catalog
	player   *macro.Player
	recorder *macro.Recorder

	rng *rand.Rand
	now func() time.Time
}

// New builds an engine from settings. The seed fixes blob placement and the
// randomise actions, which keeps headless replays reproducible.
func New(cfg *config.Settings, seed int64) *Engine {
	e := &Engine{
		Cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
	e.setup()
	return e
}

// setup creates the run-scoped state: flock, oscillator channels, pressed-key
// set and a fresh recorder. Reset calls it again to replace everything.
func (e *Engine) setup() {
	cfg := e.Cfg
	e.Flock = blob.NewFlock(e.rng, cfg.BlobCount, cfg.Width, cfg.Height,
		cfg.ExtraSpeed, cfg.BlobSaturation, cfg.BlobValue)
	e.held = map[string]bool{}
	e.actions = invert(cfg.Keymap)
	e.recorder = macro.NewRecorder(cfg.Width, cfg.Height)
	e.player = nil

	// Fixed channel order: hue first, then the bearing wobble.
	e.channels = []channel{
		{
			name:   "hue",
			gen:    lfo.New(0, 360, cfg.HuePerSecond, true, e.applyHue),
			active: func() bool { return true },
		},
		{
			name:   "wavy",
			gen:    lfo.New(-cfg.WavyRange, cfg.WavyRange, cfg.WavyRate, false, e.applyBearingShift),
			active: func() bool { return e.held["wavy"] },
		},
	}
}

// Reset discards and recreates the whole run state, e.g. after a settings
// reload. The catalog and draw target survive; everything owned per-run does
// not.
func (e *Engine) Reset(cfg *config.Settings) {
	e.Cfg = cfg
	e.setup()
}

// Tick advances the simulation by dt seconds: active oscillators in channel
// order, then macro playback, then blob motion, then the render pass. It runs
// to completion; nothing yields mid-tick.
func (e *Engine) Tick(dt float64) {
	if e.Suspended || dt <= 0 {
		return
	}
	for _, ch := range e.channels {
		if ch.active() {
			ch.gen.Update(dt)
		}
	}
	if e.player != nil {
		e.player.Tick(dt)
	}
	e.moveBlobs(dt)
	if e.Out != nil {
		e.render()
	}
}

func (e *Engine) moveBlobs(dt float64) {
	if e.held["pause"] {
		return
	}
	if e.held["center"] {
		blob.AttractToward(e.Flock, e.Cfg.Width/2, e.Cfg.Height/2)
	}
	base := e.Cfg.Speed
	if e.held["slow"] {
		base = e.Cfg.SlowSpeed
	}
	bias := e.held["randomise-speed"]
	for _, b := range e.Flock {
		speed := base
		if bias {
			speed += b.SpeedBias
		}
		b.Move(dt, speed)
	}
}

func (e *Engine) render() {
	cfg := e.Cfg
	if cfg.ClearCanvas {
		r, g, b := colour.ToRGB(cfg.Background.H, cfg.Background.S, cfg.Background.V)
		e.Out.Clear(colour.RGB{R: r, G: g, B: b})
	}
	for _, b := range e.Flock {
		c := b.Colour.RGB()
		e.Out.FillCircle(b.X, b.Y, cfg.BlobRadius, c)
		if cfg.Symmetry {
			e.Out.FillCircle(cfg.Width-b.X, b.Y, cfg.BlobRadius, c)
			e.Out.FillCircle(b.X, cfg.Height-b.Y, cfg.BlobRadius, c)
			e.Out.FillCircle(cfg.Width-b.X, cfg.Height-b.Y, cfg.BlobRadius, c)
		}
	}
	e.Out.StrokeRect(0, 0, cfg.Width, cfg.Height, borderColour)
}

func (e *Engine) applyHue(v float64) {
	for _, b := range e.Flock {
		b.Colour.SetHue(math.Mod(b.BaseHue+v, 360))
	}
}

func (e *Engine) applyBearingShift(v float64) {
	for _, b := range e.Flock {
		b.BearingShift = v
	}
}

// --- Input entry points ---
//
// Live input and macro playback share the same dispatch; the live entry
// points additionally feed the recorder, so playback never re-records its own
// synthetic events.

// KeyDown handles a live key press.
func (e *Engine) KeyDown(code string) {
	e.recorder.KeyDown(code, e.now())
	e.keyDown(code)
}

// KeyUp handles a live key release.
func (e *Engine) KeyUp(code string) {
	e.recorder.KeyUp(code, e.now())
	e.keyUp(code)
}

// Click handles a live pointer click in surface coordinates.
func (e *Engine) Click(x, y float64) {
	e.recorder.Click(x, y, e.now())
	e.click(x, y)
}

func (e *Engine) keyDown(code string) {
	action, ok := e.actions[code]
	if !ok {
		return // unknown codes are not an error
	}
	if e.held[action] {
		return // auto-repeat: a held action fires once per press
	}
	e.held[action] = true

	switch action {
	case "randomise":
		blob.RandomiseBearings(e.rng, e.Flock)
	case "reverse":
		blob.ReverseBearings(e.Flock)
	case "toggle-clear":
		e.Cfg.ClearCanvas = !e.Cfg.ClearCanvas
	case "toggle-symmetry":
		e.Cfg.Symmetry = !e.Cfg.Symmetry
	case "start-macro":
		e.startDefaultMacro()
	case "help":
		if e.Hooks.Help != nil {
			e.Hooks.Help()
		}
	case "settings":
		if e.Hooks.Settings != nil {
			e.Hooks.Settings()
		}
	case "escape":
		if e.Hooks.Escape != nil {
			e.Hooks.Escape()
		}
	}
}

func (e *Engine) keyUp(code string) {
	action, ok := e.actions[code]
	if !ok {
		return
	}
	delete(e.held, action)
	if action == "wavy" {
		// The wobble offset is transient; releasing the key resets it.
		for _, b := range e.Flock {
			b.BearingShift = 0
		}
	}
}

func (e *Engine) click(x, y float64) {
	blob.DispatchClick(e.Flock, x, y, e.held["pause"])
}

// Held reports whether the named input condition is currently asserted.
func (e *Engine) Held(action string) bool { return e.held[action] }

// --- Macro management ---

// SetCatalog replaces the macro catalog. The previous catalog is kept intact
// by callers until their replacement parses, so a bad file never clobbers a
// good catalog.
func (e *Engine) SetCatalog(c macro.Catalog) { e.catalog = c }

// StartMacro starts named playback, replacing any in-flight player outright.
func (e *Engine) StartMacro(name string) error {
	events, ok := e.catalog[name]
	if !ok {
		return fmt.Errorf("unknown macro %q", name)
	}
	e.player = macro.NewPlayer(name, events, macro.Hooks{
		KeyDown: e.keyDown,
		KeyUp:   e.keyUp,
		Click: func(xPct, yPct float64) {
			e.click(xPct/100*e.Cfg.Width, yPct/100*e.Cfg.Height)
		},
	})
	e.player.Start()
	return nil
}

func (e *Engine) startDefaultMacro() {
	names := e.catalog.Names()
	if len(names) == 0 {
		return
	}
	_ = e.StartMacro(names[0])
}

// MacroRunning reports whether playback is in flight.
func (e *Engine) MacroRunning() bool {
	return e.player != nil && e.player.Running
}

// Recording returns the events captured from live input so far this run.
func (e *Engine) Recording() []macro.Event {
	return e.recorder.Events()
}

func invert(keymap map[string]string) map[string]string {
	m := make(map[string]string, len(keymap))
	for action, code := range keymap {
		m[code] = action
	}
	return m
}
