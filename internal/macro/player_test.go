package macro

import "testing"

func collector() (Hooks, *[]string) {
	log := []string{}
	h := Hooks{
		KeyDown: func(k string) { log = append(log, "down:"+k) },
		KeyUp:   func(k string) { log = append(log, "up:"+k) },
		Click:   func(x, y float64) { log = append(log, "click") },
	}
	return h, &log
}

func TestPlayerFiresOnSchedule(t *testing.T) {
	h, log := collector()
	p := NewPlayer("demo", []Event{
		{Kind: KeyDown, Time: 0, Key: "p"},
		{Kind: KeyUp, Time: 1, Key: "p"},
		{Kind: Click, Time: 2, X: 50, Y: 50},
	}, h)

	p.Start()
	if !p.Running {
		t.Fatal("start should set running")
	}

	fired := []int{}
	for tick := 1; tick <= 5; tick++ {
		before := len(*log)
		p.Tick(0.5)
		if len(*log) > before {
			fired = append(fired, tick)
		}
	}

	// Events at t=0,1,2 become due at elapsed 0.5, 1.5 and 2.5.
	want := []int{1, 3, 5}
	if len(fired) != len(want) {
		t.Fatalf("fired on ticks %v, want %v (log %v)", fired, want, *log)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired on ticks %v, want %v", fired, want)
		}
	}
	if p.Running {
		t.Fatal("player should stop after firing the last event")
	}
	if (*log)[0] != "down:p" || (*log)[1] != "up:p" || (*log)[2] != "click" {
		t.Fatalf("unexpected event order: %v", *log)
	}
}

func TestPlayerStopsOnlyAfterLastEvent(t *testing.T) {
	h, _ := collector()
	p := NewPlayer("demo", []Event{{Kind: KeyDown, Time: 0, Key: "a"}, {Kind: KeyUp, Time: 2, Key: "a"}}, h)
	p.Start()
	p.Tick(0.5)
	if !p.Running {
		t.Fatal("player stopped with an event still pending")
	}
	p.Tick(2)
	if p.Running {
		t.Fatal("player should have stopped")
	}
	if p.Cursor() != 2 {
		t.Fatalf("cursor %d, want 2", p.Cursor())
	}
}

func TestPlayerFiresAllDueEventsInOneTick(t *testing.T) {
	h, log := collector()
	p := NewPlayer("burst", []Event{
		{Kind: KeyDown, Time: 0, Key: "a"},
		{Kind: KeyUp, Time: 0.1, Key: "a"},
		{Kind: KeyDown, Time: 0.2, Key: "b"},
	}, h)
	p.Start()
	p.Tick(10)
	if len(*log) != 3 {
		t.Fatalf("expected all 3 events in one tick, got %v", *log)
	}
	if p.Running {
		t.Fatal("player should be idle after the burst")
	}
}

func TestPlayerRestartResetsState(t *testing.T) {
	h, log := collector()
	p := NewPlayer("loop", []Event{{Kind: KeyDown, Time: 1, Key: "a"}}, h)
	p.Start()
	p.Tick(0.5)
	p.Start() // restart mid-run
	if p.Cursor() != 0 {
		t.Fatalf("restart should reset cursor, got %d", p.Cursor())
	}
	p.Tick(1.5)
	if len(*log) != 1 {
		t.Fatalf("expected exactly one firing after restart, got %v", *log)
	}
}

func TestPlayerEmptySequenceStaysIdle(t *testing.T) {
	h, _ := collector()
	p := NewPlayer("empty", nil, h)
	p.Start()
	if p.Running {
		t.Fatal("empty macro must not run")
	}
	p.Tick(1)
}
