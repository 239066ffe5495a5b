package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vape/core"
)

// KeyTable maps terminal keys to logical inputs
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	Keys map[tcell.Key]core.InputCode

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]core.InputCode
}

// DefaultKeyTable returns the default bindings: WASD or arrows, space to fire, V for vamp
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]core.InputCode{
			tcell.KeyUp:     core.InputUp,
			tcell.KeyDown:   core.InputDown,
			tcell.KeyLeft:   core.InputLeft,
			tcell.KeyRight:  core.InputRight,
			tcell.KeyEnter:  core.InputConfirm,
			tcell.KeyEscape: core.InputPause,
			tcell.KeyCtrlC:  core.InputQuit,
			tcell.KeyCtrlQ:  core.InputQuit,
		},
		Runes: map[rune]core.InputCode{
			'w': core.InputUp,
			's': core.InputDown,
			'a': core.InputLeft,
			'd': core.InputRight,
			' ': core.InputFire,
			'v': core.InputVamp,
			'p': core.InputPause,
			'r': core.InputReset,
			'>': core.InputSpeedUp,
			'.': core.InputSpeedUp,
			'<': core.InputSpeedDown,
			',': core.InputSpeedDown,
			'f': core.InputDebugHealth,
			'g': core.InputDebugCharge,
			'i': core.InputDebugInvincible,
			'q': core.InputQuit,
		},
	}
}

// Lookup resolves a key event to an input code
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (core.InputCode, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if code, ok := kt.Runes[r]; ok {
			return code, true
		}
		if code, ok := kt.Runes[toLower(r)]; ok {
			return code, true
		}
		return 0, false
	}
	code, ok := kt.Keys[ev.Key()]
	return code, ok
}

// Merge applies sparse overrides on top of kt
// A binding to core.InputCodeCount removes the key
func (kt *KeyTable) Merge(over *KeyTable) {
	for k, code := range over.Keys {
		if code == core.InputCodeCount {
			delete(kt.Keys, k)
			continue
		}
		kt.Keys[k] = code
	}
	for r, code := range over.Runes {
		if code == core.InputCodeCount {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = code
	}
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
