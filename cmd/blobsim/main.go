package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/joesingo/blobs/internal/config"
	"github.com/joesingo/blobs/internal/macro"
	"github.com/joesingo/blobs/internal/sim"
	"github.com/joesingo/blobs/internal/ws"
)

func main() {
	// ---- Flags (remain usable; settings.yaml can override most) ----
	var (
		addr        = flag.String("addr", ":8080", "HTTP listen address")
		configPath  = flag.String("config", "settings.yaml", "path to settings.yaml")
		catalogPath = flag.String("macros", "macros.json", "path to macro catalog JSON")
		fps         = flag.Int("fps", 0, "simulation frames per second (0 = from settings)")
		count       = flag.Int("blobs", 0, "blob count override (0 = from settings)")
		seed        = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Settings: stored file wins, defaults on any fault ----
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("settings load failed; using defaults")
		cfg = config.Default()
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	if *count > 0 {
		cfg.BlobCount = *count
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// ---- Engine + macro catalog ----
	engine := sim.New(cfg, *seed)
	catalog, err := macro.LoadCatalog(*catalogPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *catalogPath).Msg("macro catalog load failed; using built-ins")
		catalog = macro.Demo()
	}
	engine.SetCatalog(catalog)

	// ---- Preview state ----
	state := ws.NewState(engine, cfg.FPS)
	state.ConfigPath = *configPath
	state.CatalogPath = *catalogPath

	// ---- HTTP routes ----
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", state.HandleFramesWS)
	mux.HandleFunc("/diag", state.HandleDiagWS)
	mux.HandleFunc("/control", state.HandleControlWS)
	mux.HandleFunc("/health", state.HandleHealth)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      withCORS(mux),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ---- Run sim loop & server ----
	go state.RunSimLoop()
	go func() {
		log.Info().Str("addr", *addr).Int("blobs", cfg.BlobCount).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server crashed")
		}
	}()

	// ---- Graceful shutdown ----
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s := <-ch
	log.Info().Str("signal", s.String()).Msg("shutting down")

	_ = srv.Close()
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(200)
			return
		}
		h.ServeHTTP(w, r)
	})
}
