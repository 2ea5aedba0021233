package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into Intents
type Machine struct {
	keyTable *KeyTable
	pointer  *TcellTranslator
}

// NewMachine creates an input machine using pointer for mouse translation
func NewMachine(pointer *TcellTranslator) *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		pointer:  pointer,
	}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no binding
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		m.pointer.SetScreenSize(w, h)
		return &Intent{Type: IntentResize, Width: w, Height: h}

	case *tcell.EventKey:
		if it := m.keyTable.Lookup(ev); it != IntentNone {
			return &Intent{Type: it}
		}
		return nil

	case *tcell.EventMouse:
		if pe, ok := m.pointer.Translate(ev); ok {
			return &Intent{Type: IntentPointer, Pointer: pe}
		}
		return nil

	case *tcell.EventFocus:
		// Losing focus mid-drag would otherwise leave the ball held
		if !ev.Focused {
			if pe, ok := m.pointer.Cancel(); ok {
				return &Intent{Type: IntentPointer, Pointer: pe}
			}
		}
		return nil
	}
	return nil
}
