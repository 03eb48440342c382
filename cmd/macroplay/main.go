// macroplay replays a macro from a catalog file headless, printing every
// fired event. Useful for checking a hand-authored or exported macro before
// feeding it to the interactive frontend.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joesingo/blobs/internal/macro"
)

func main() {
	var (
		path = flag.String("macros", "macros.json", "path to macro catalog JSON")
		name = flag.String("name", "demo", "macro name to replay")
		fps  = flag.Int("fps", 60, "simulated frames per second")
	)
	flag.Parse()

	catalog, err := macro.LoadCatalog(*path)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	events, ok := catalog[*name]
	if !ok {
		log.Fatalf("no macro %q in %s (have %v)", *name, *path, catalog.Names())
	}

	tick := 0
	h := macro.Hooks{
		KeyDown: func(key string) {
			fmt.Printf("[%5d] keydown %s\n", tick, key)
		},
		KeyUp: func(key string) {
			fmt.Printf("[%5d] keyup   %s\n", tick, key)
		},
		Click: func(x, y float64) {
			fmt.Printf("[%5d] click   %.1f%%, %.1f%%\n", tick, x, y)
		},
	}
	player := macro.NewPlayer(*name, events, h)
	player.Start()

	dt := 1.0 / float64(*fps)
	for player.Running {
		tick++
		player.Tick(dt)
	}
	fmt.Printf("done: %d events over %d ticks (%.2fs)\n",
		len(events), tick, float64(tick)*dt)
}
