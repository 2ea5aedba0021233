package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// TcellTranslator turns tcell mouse reports into pointer phases
// Terminal cells are converted to pixels at cell centers and y is flipped to point up
type TcellTranslator struct {
	cellWidth  float64
	cellHeight float64
	rows       int

	down bool
	last mgl64.Vec2
}

// NewTcellTranslator creates a translator for the given cell size in pixels
func NewTcellTranslator(cellWidth, cellHeight float64) *TcellTranslator {
	return &TcellTranslator{
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// SetScreenSize updates the row count used for the y flip
func (t *TcellTranslator) SetScreenSize(cols, rows int) {
	t.rows = rows
}

// ToPixels converts a cell coordinate to a pixel position
func (t *TcellTranslator) ToPixels(col, row int) mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(col) + 0.5) * t.cellWidth,
		(float64(t.rows-row) - 0.5) * t.cellHeight,
	}
}

// Holding reports whether the primary button is down
func (t *TcellTranslator) Holding() bool {
	return t.down
}

// Translate maps a mouse event to a pointer event
// Returns false for hover motion and buttons other than the primary one
func (t *TcellTranslator) Translate(ev *tcell.EventMouse) (PointerEvent, bool) {
	col, row := ev.Position()
	pos := t.ToPixels(col, row)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !t.down:
		t.down = true
		t.last = pos
		return PointerEvent{Phase: PhaseBegan, Pos: pos}, true

	case pressed:
		phase := PhaseStationary
		if pos != t.last {
			phase = PhaseMoved
		}
		t.last = pos
		return PointerEvent{Phase: phase, Pos: pos}, true

	case t.down:
		t.down = false
		t.last = pos
		return PointerEvent{Phase: PhaseEnded, Pos: pos}, true
	}
	return PointerEvent{}, false
}

// Cancel aborts a held contact at its last position
// Returns false when nothing was held
func (t *TcellTranslator) Cancel() (PointerEvent, bool) {
	if !t.down {
		return PointerEvent{}, false
	}
	t.down = false
	return PointerEvent{Phase: PhaseCanceled, Pos: t.last}, true
}
