package macro

// Hooks are the injected input entry points playback fires into. They are the
// same entry points live input uses, so a replayed macro is indistinguishable
// from a user at the keyboard. Click receives percentage coordinates.
type Hooks struct {
	KeyDown func(key string)
	KeyUp   func(key string)
	Click   func(xPct, yPct float64)
}

// Player replays one event sequence against its hooks. It is either idle or
// running; exhausting the sequence is the expected terminal case, not a
// failure.
type Player struct {
	Name    string
	Events  []Event
	Running bool

	cursor  int
	elapsed float64
	hooks   Hooks
}

// NewPlayer constructs a Player over a named sequence with provided hooks.
func NewPlayer(name string, events []Event, h Hooks) *Player {
	return &Player{Name: name, Events: events, hooks: h}
}

// Start begins playback from the top. Starting while already running
// unconditionally discards the in-flight cursor and elapsed time.
func (p *Player) Start() {
	p.cursor = 0
	p.elapsed = 0
	p.Running = len(p.Events) > 0
}

// Stop halts playback without firing anything further.
func (p *Player) Stop() { p.Running = false }

// Cursor reports the next unconsumed event index.
func (p *Player) Cursor() int { return p.cursor }

// Tick advances playback by dt seconds and fires, in sequence order, every
// event whose scheduled time has strictly passed. If dt covers several events
// they all fire in this one tick; there is no missed-event recovery because
// nothing is ever missed. The player stops itself once the cursor passes the
// last event.
func (p *Player) Tick(dt float64) {
	if !p.Running || dt <= 0 {
		return
	}
	p.elapsed += dt
	for p.cursor < len(p.Events) && p.Events[p.cursor].Time < p.elapsed {
		p.fire(p.Events[p.cursor])
		p.cursor++
	}
	if p.cursor >= len(p.Events) {
		p.Running = false
	}
}

func (p *Player) fire(ev Event) {
	switch ev.Kind {
	case KeyDown:
		if p.hooks.KeyDown != nil {
			p.hooks.KeyDown(ev.Key)
		}
	case KeyUp:
		if p.hooks.KeyUp != nil {
			p.hooks.KeyUp(ev.Key)
		}
	case Click:
		if p.hooks.Click != nil {
			p.hooks.Click(ev.X, ev.Y)
		}
	}
}
