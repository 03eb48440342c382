package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/joesingo/blobs/internal/config"
	"github.com/joesingo/blobs/internal/macro"
	"github.com/joesingo/blobs/internal/sim"
)

type binding struct {
	key  ebiten.Key
	code string
}

// Game drives the engine from ebiten's fixed-cadence update callback and
// blits the persistent offscreen surface each draw. The surface persists so
// the clear-canvas=off trail effect survives ebiten clearing the screen.
type Game struct {
	eng       *sim.Engine
	offscreen *ebiten.Image
	bindings  []binding

	overlay     string // "", "help" or "settings"
	configPath  string
	catalogPath string
}

func (g *Game) Update() error {
	for _, b := range g.bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.eng.KeyDown(b.code)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			g.eng.KeyUp(b.code)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.eng.Click(float64(x), float64(y))
	}

	// ebiten calls Update at a fixed tick rate; that is the frame driver.
	g.eng.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.offscreen, nil)

	switch g.overlay {
	case "help":
		g.drawHelp(screen)
	case "settings":
		g.drawSettings(screen)
	default:
		status := fmt.Sprintf("blobs: %d | recorded events: %d", len(g.eng.Flock), len(g.eng.Recording()))
		if g.eng.MacroRunning() {
			status += " | macro playing"
		}
		if g.eng.Held("pause") {
			status += " | paused"
		}
		ebitenutil.DebugPrintAt(screen, status, 8, 8)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.eng.Cfg.Width), int(g.eng.Cfg.Height)
}

func (g *Game) drawHelp(screen *ebiten.Image) {
	lines := "controls (hold unless noted)\n\n"
	for _, action := range []string{
		"pause", "slow", "wavy", "center", "randomise-speed",
		"randomise", "reverse", "toggle-clear", "toggle-symmetry",
		"start-macro", "help", "settings", "escape",
	} {
		lines += fmt.Sprintf("  %-16s %s\n", action, g.eng.Cfg.Keymap[action])
	}
	lines += "\nclick: attract flock (teleport while paused)\nescape: close this overlay"
	ebitenutil.DebugPrintAt(screen, lines, 24, 24)
}

func (g *Game) drawSettings(screen *ebiten.Image) {
	cfg := g.eng.Cfg
	text := fmt.Sprintf(
		"settings (%s)\n\n  surface: %.0fx%.0f\n  blobs: %d r=%.0f\n  speed: %.0f (slow %.0f, extra %.0f)\n  hue/s: %.0f  wavy: %.1f@%.1f\n  clear: %v  symmetry: %v\n\nedit the file and restart to apply\nescape: close this overlay",
		g.configPath, cfg.Width, cfg.Height, cfg.BlobCount, cfg.BlobRadius,
		cfg.Speed, cfg.SlowSpeed, cfg.ExtraSpeed, cfg.HuePerSecond,
		cfg.WavyRange, cfg.WavyRate, cfg.ClearCanvas, cfg.Symmetry)
	ebitenutil.DebugPrintAt(screen, text, 24, 24)
}

// showOverlay suspends the simulation while a modal overlay is up.
func (g *Game) showOverlay(name string) {
	g.overlay = name
	g.eng.Suspended = true
}

func (g *Game) closeOverlay() {
	g.overlay = ""
	g.eng.Suspended = false
}

func main() {
	var (
		configPath  = flag.String("config", "settings.yaml", "path to settings.yaml")
		catalogPath = flag.String("macros", "macros.json", "path to macro catalog JSON")
		seed        = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("settings load failed; using defaults")
		cfg = config.Default()
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	eng := sim.New(cfg, *seed)
	catalog, err := macro.LoadCatalog(*catalogPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *catalogPath).Msg("macro catalog load failed; using built-ins")
		catalog = macro.Demo()
	}
	eng.SetCatalog(catalog)

	offscreen := ebiten.NewImage(int(cfg.Width), int(cfg.Height))
	eng.Out = &canvas{img: offscreen}

	g := &Game{
		eng:         eng,
		offscreen:   offscreen,
		bindings:    buildBindings(cfg.Keymap),
		configPath:  *configPath,
		catalogPath: *catalogPath,
	}
	eng.Hooks = sim.UIHooks{
		Help:     func() { g.showOverlay("help") },
		Settings: func() { g.showOverlay("settings") },
		Escape:   g.closeOverlay,
	}

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("blobs")
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game crashed")
	}

	// Best-effort export of this run's recording so it can be replayed.
	rec := eng.Recording()
	if len(rec) > 0 {
		catalog["last-recording"] = rec
		if err := macro.SaveCatalog(*catalogPath, catalog); err != nil {
			log.Warn().Err(err).Str("path", *catalogPath).Msg("save recording")
		}
	}
}
