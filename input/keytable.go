package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'r': IntentReset,
			'p': IntentTogglePause,
			'm': IntentToggleMute,
		},
	}
}

// Lookup returns the intent bound to a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
