package macro

// Demo returns the built-in catalog used when no user catalog is stored. The
// sequence pauses the flock, gathers it at the centre with a click, releases
// and lets it wobble outward for a few seconds.
func Demo() Catalog {
	return Catalog{
		"demo": {
			{Kind: KeyDown, Time: 0, Key: "space"},
			{Kind: Click, Time: 0.5, X: 50, Y: 50},
			{Kind: KeyUp, Time: 1, Key: "space"},
			{Kind: KeyDown, Time: 1.5, Key: "w"},
			{Kind: KeyUp, Time: 5, Key: "w"},
			{Kind: KeyDown, Time: 5.5, Key: "v"},
			{Kind: KeyUp, Time: 5.6, Key: "v"},
		},
	}
}
