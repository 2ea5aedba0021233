package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMachineKeys(t *testing.T) {
	m := NewMachine(newTranslator())

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"esc quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"r resets", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentReset},
		{"p pauses", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentTogglePause},
		{"m mutes", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Process(tt.ev)
			if got == nil || got.Type != tt.want {
				t.Errorf("Process = %+v, want type %d", got, tt.want)
			}
		})
	}

	if got := m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); got != nil {
		t.Errorf("unbound key produced %+v", got)
	}
}

func TestMachineResizeUpdatesTranslator(t *testing.T) {
	tr := NewTcellTranslator(8, 16)
	m := NewMachine(tr)

	got := m.Process(tcell.NewEventResize(100, 30))
	if got == nil || got.Type != IntentResize || got.Width != 100 || got.Height != 30 {
		t.Fatalf("Process(resize) = %+v", got)
	}
	// Bottom row maps to half a cell above the origin
	if y := tr.ToPixels(0, 29).Y(); y != 8 {
		t.Errorf("bottom row y = %f, want 8", y)
	}
}

func TestMachinePointerAndFocusLoss(t *testing.T) {
	m := NewMachine(newTranslator())

	got := m.Process(tcell.NewEventMouse(4, 4, tcell.Button1, 0))
	if got == nil || got.Type != IntentPointer || got.Pointer.Phase != PhaseBegan {
		t.Fatalf("press = %+v", got)
	}

	got = m.Process(tcell.NewEventFocus(false))
	if got == nil || got.Pointer.Phase != PhaseCanceled {
		t.Fatalf("focus loss while held = %+v, want Canceled", got)
	}

	if got := m.Process(tcell.NewEventFocus(false)); got != nil {
		t.Errorf("focus loss while idle = %+v, want nil", got)
	}
}
