// Package macro implements deterministic record and replay of input event
// sequences.
package macro

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// EventKind tags what an Event carries.
type EventKind string

const (
	KeyDown EventKind = "keydown"
	KeyUp   EventKind = "keyup"
	Click   EventKind = "click"
)

// Event is one timestamped input event. Time is seconds from macro start and
// is non-decreasing within a sequence. Key is set for keydown/keyup; X and Y
// are click coordinates as percentages of the surface so recordings are
// resolution independent.
type Event struct {
	Kind EventKind `json:"kind"`
	Time float64   `json:"time"`
	Key  string    `json:"key,omitempty"`
	X    float64   `json:"x,omitempty"`
	Y    float64   `json:"y,omitempty"`
}

// Catalog maps macro names to their event sequences. This is the interchange
// format shared by the player, the recorder and on-disk storage.
type Catalog map[string][]Event

// Validate rejects malformed sequences before they can reach the player:
// unknown kinds, decreasing times, keyless key events and off-surface click
// percentages are all structural errors.
func Validate(name string, events []Event) error {
	last := 0.0
	for i, ev := range events {
		switch ev.Kind {
		case KeyDown, KeyUp:
			if ev.Key == "" {
				return fmt.Errorf("macro %q: event %d has no key", name, i)
			}
		case Click:
			if ev.X < 0 || ev.X > 100 || ev.Y < 0 || ev.Y > 100 {
				return fmt.Errorf("macro %q: event %d click (%v,%v) outside 0..100", name, i, ev.X, ev.Y)
			}
		default:
			return fmt.Errorf("macro %q: event %d has unknown kind %q", name, i, ev.Kind)
		}
		if ev.Time < last {
			return fmt.Errorf("macro %q: event %d time %v precedes %v", name, i, ev.Time, last)
		}
		last = ev.Time
	}
	return nil
}

// ParseCatalog decodes and validates a JSON catalog. On any failure the
// returned catalog is nil so the caller's previous catalog stays in use.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("macro catalog: %w", err)
	}
	for name, events := range c {
		if err := Validate(name, events); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadCatalog reads a catalog file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// SaveCatalog writes the catalog as indented JSON.
func SaveCatalog(path string, c Catalog) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Names lists the catalog's macros in stable order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
