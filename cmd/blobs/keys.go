package main

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// ebitenKey resolves a settings key code to an ebiten key. Codes are the
// lower-case key names the macro format uses: single letters, digits and a
// few named keys.
func ebitenKey(code string) (ebiten.Key, bool) {
	switch code {
	case "space":
		return ebiten.KeySpace, true
	case "escape":
		return ebiten.KeyEscape, true
	case "enter":
		return ebiten.KeyEnter, true
	case "tab":
		return ebiten.KeyTab, true
	}
	if len(code) == 1 {
		ch := code[0]
		switch {
		case ch >= 'a' && ch <= 'z':
			return ebiten.KeyA + ebiten.Key(ch-'a'), true
		case ch >= '0' && ch <= '9':
			return ebiten.KeyDigit0 + ebiten.Key(ch-'0'), true
		}
	}
	return 0, false
}

// buildBindings resolves every bound key code once, in stable order. Codes
// with no ebiten equivalent are skipped with a warning; the engine would
// ignore them anyway.
func buildBindings(keymap map[string]string) []binding {
	actions := make([]string, 0, len(keymap))
	for action := range keymap {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	var out []binding
	for _, action := range actions {
		code := keymap[action]
		k, ok := ebitenKey(code)
		if !ok {
			log.Warn().Str("action", action).Str("key", code).Msg("unmappable key code")
			continue
		}
		out = append(out, binding{key: k, code: code})
	}
	return out
}
