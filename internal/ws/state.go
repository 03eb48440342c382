// Package ws exposes a headless preview of the simulation: rendered frames
// stream out over websockets and control messages feed the same input entry
// points live input uses.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/joesingo/blobs/internal/config"
	"github.com/joesingo/blobs/internal/diag"
	"github.com/joesingo/blobs/internal/macro"
	"github.com/joesingo/blobs/internal/sim"
)

// State owns the engine and funnels every mutation — control messages
// included — through its mutex, so the single-goroutine tick guarantee of the
// engine holds even with concurrent websocket readers.
type State struct {
	mu     sync.RWMutex
	Engine *sim.Engine
	FPS    int

	ConfigPath  string
	CatalogPath string

	canvas      *sim.FrameCanvas
	frameID     uint64
	startTime   time.Time
	clients     map[*websocket.Conn]bool
	diagClients map[*websocket.Conn]bool
}

func NewState(e *sim.Engine, fps int) *State {
	canvas := &sim.FrameCanvas{}
	e.Out = canvas
	return &State{
		Engine:      e,
		FPS:         fps,
		canvas:      canvas,
		startTime:   time.Now(),
		clients:     map[*websocket.Conn]bool{},
		diagClients: map[*websocket.Conn]bool{},
	}
}

// RunSimLoop ticks the engine at the configured cadence and broadcasts each
// rendered frame. It never returns.
func (s *State) RunSimLoop() {
	ticker := time.NewTicker(time.Second / time.Duration(max(1, s.FPS)))
	defer ticker.Stop()
	last := time.Now()
	for now := range ticker.C {
		dt := now.Sub(last).Seconds()
		last = now

		s.mu.Lock()
		s.canvas.Reset()
		s.Engine.Tick(dt)
		s.frameID++
		frame := s.canvas.Frame
		// The disc slice is reused next tick; copy before unlocking.
		frame.Discs = append([]sim.Disc{}, frame.Discs...)
		s.mu.Unlock()

		s.broadcastFrame(frame)
	}
}

func (s *State) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	s.sendSettings(conn)

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *State) HandleDiagWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.diagClients[conn] = true
	s.mu.Unlock()
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.diagClients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *State) HandleControlWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg map[string]any
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		s.applyControl(msg)
		s.sendSettings(conn)
	}
}

func (s *State) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resp := map[string]any{
		"frame_id":      s.frameID,
		"uptime_s":      time.Since(s.startTime).Seconds(),
		"blobs":         len(s.Engine.Flock),
		"fps":           s.FPS,
		"macro_running": s.Engine.MacroRunning(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *State) applyControl(msg map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.Engine

	if v, ok := msg["key_down"].(string); ok {
		e.KeyDown(v)
	}
	if v, ok := msg["key_up"].(string); ok {
		e.KeyUp(v)
	}
	if v, ok := msg["click"].(map[string]any); ok {
		x, _ := v["x"].(float64)
		y, _ := v["y"].(float64)
		e.Click(x, y)
	}
	if v, ok := msg["suspended"].(bool); ok {
		e.Suspended = v
	}
	if v, ok := msg["start_macro"].(string); ok {
		if err := e.StartMacro(v); err != nil {
			s.pushDiag(diag.Diagnostic{
				Severity: diag.Warn, Code: "MACRO.UNKNOWN", Summary: "Unknown macro name",
				Evidence: map[string]any{"name": v},
			})
		}
	}
	if v, ok := msg["save_recording"].(string); ok {
		s.saveRecording(v)
	}

	if v, ok := msg["symmetry"].(bool); ok {
		e.Cfg.Symmetry = v
	}
	if v, ok := msg["clear_canvas"].(bool); ok {
		e.Cfg.ClearCanvas = v
	}
	if v, ok := msg["speed"].(float64); ok {
		e.Cfg.Speed = v
	}
	if v, ok := msg["hue_per_second"].(float64); ok {
		e.Cfg.HuePerSecond = v
		e.Reset(e.Cfg)
	}
	if v, ok := msg["blob_count"].(float64); ok {
		e.Cfg.BlobCount = int(v)
		e.Reset(e.Cfg)
	}

	// Persist settings after any change
	s.saveConfig()
}

// saveRecording folds the live recording into the catalog file as a named
// macro and points the engine at the updated catalog.
func (s *State) saveRecording(name string) {
	rec := s.Engine.Recording()
	if len(rec) == 0 || s.CatalogPath == "" {
		return
	}
	catalog, err := macro.LoadCatalog(s.CatalogPath)
	if err != nil {
		catalog = macro.Catalog{}
	}
	catalog[name] = append([]macro.Event{}, rec...)
	if err := macro.SaveCatalog(s.CatalogPath, catalog); err != nil {
		log.Warn().Err(err).Str("path", s.CatalogPath).Msg("save recording")
		return
	}
	s.Engine.SetCatalog(catalog)
}

func (s *State) saveConfig() {
	if s.ConfigPath == "" {
		return
	}
	if err := config.Save(s.ConfigPath, s.Engine.Cfg); err != nil {
		log.Warn().Err(err).Str("path", s.ConfigPath).Msg("save settings")
	}
}

func (s *State) sendSettings(conn *websocket.Conn) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, _ := json.Marshal(map[string]any{"settings": s.Engine.Cfg})
	_ = conn.WriteMessage(websocket.TextMessage, b)
}

func (s *State) broadcastFrame(frame sim.Frame) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	type wire struct {
		T       int64     `json:"t"`
		FrameID uint64    `json:"frame_id"`
		Frame   sim.Frame `json:"frame"`
	}
	b, _ := json.Marshal(wire{T: time.Now().UnixNano(), FrameID: s.frameID, Frame: frame})
	for c := range s.clients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Debug().Err(err).Msg("write frame")
		}
	}
}

func (s *State) pushDiag(d diag.Diagnostic) {
	b, _ := json.Marshal(d)
	for c := range s.diagClients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		_ = c.WriteMessage(websocket.TextMessage, b)
	}
}
