package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cornhole/engine"
	"github.com/lixenwraith/cornhole/input"
	"github.com/lixenwraith/cornhole/parameter"
	"github.com/lixenwraith/cornhole/scene"
	"github.com/lixenwraith/cornhole/systems"
)

// Glyphs
const (
	glyphBall   = 'O'
	glyphShadow = '.'
	glyphHole   = ' '
	glyphTrail  = '*'
	glyphBoard  = ' '
	glyphGround = ' '
)

// Frame is the per-frame snapshot drawn by the renderer
type Frame struct {
	World   *engine.World
	Lane    *scene.Lane
	Throw   systems.ThrowState
	Variant input.Variant
	Paused  bool
	Muted   bool
}

// TerminalRenderer draws the lane through the game camera onto a tcell screen
// Cell (col, row) samples the camera at the same pixel the input translator reports for it
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// UpdateDimensions updates the renderer dimensions
func (r *TerminalRenderer) UpdateDimensions(width, height int) {
	r.width = width
	r.height = height
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(f Frame) {
	if r.width <= 0 || r.height <= 0 || f.World == nil || f.Lane == nil {
		return
	}
	defaultStyle := tcell.StyleDefault.Background(RgbSky)

	r.drawLane(f, defaultStyle)
	r.drawBall(f, defaultStyle)
	if f.Throw.Holding {
		r.drawSwipeTrail(f, defaultStyle)
	}
	r.drawHUD(f, defaultStyle)
	r.drawStatusBar(f, defaultStyle)
}

// cellPixel returns the screen pixel at the center of a cell, origin bottom-left
func (r *TerminalRenderer) cellPixel(col, row int) mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(col) + 0.5) * parameter.CellPixelWidth,
		(float64(r.height-row) - 0.5) * parameter.CellPixelHeight,
	}
}

// pixelCell returns the cell containing a screen pixel
func (r *TerminalRenderer) pixelCell(p mgl64.Vec2) (int, int) {
	col := int(math.Floor(p.X() / parameter.CellPixelWidth))
	row := r.height - 1 - int(math.Floor(p.Y()/parameter.CellPixelHeight))
	return col, row
}

func (r *TerminalRenderer) inBounds(col, row int) bool {
	return col >= 0 && col < r.width && row >= 0 && row < r.height
}

// drawLane ray-casts every cell against the board top, board front and ground
func (r *TerminalRenderer) drawLane(f Frame, defaultStyle tcell.Style) {
	cam := f.World.Camera
	board := f.Lane.Board

	for row := 0; row < r.height; row++ {
		for col := 0; col < r.width; col++ {
			dir := cam.Ray(r.cellPixel(col, row))
			style := defaultStyle
			ch := ' '

			if p, ok := hitPlaneY(cam.Position, dir, board.Max.Y()); ok && onBoardTop(p, board) {
				if inCutout(p, board.Cutout) {
					ch, style = glyphHole, defaultStyle.Background(RgbHole)
				} else {
					ch, style = glyphBoard, defaultStyle.Background(RgbBoardTop)
				}
			} else if p, ok := hitPlaneZ(cam.Position, dir, board.Min.Z()); ok && onBoardFront(p, board) {
				ch, style = glyphBoard, defaultStyle.Background(RgbBoardFront)
			} else if p, ok := hitPlaneY(cam.Position, dir, 0); ok && p.Z() < parameter.GroundFarZ {
				bg := RgbGroundNear
				if int(math.Floor(p.Z()/parameter.GroundStripe))%2 != 0 {
					bg = RgbGroundFar
				}
				ch, style = glyphGround, defaultStyle.Background(bg)
			}

			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// drawBall draws the ball shadow on the ground then the ball itself
func (r *TerminalRenderer) drawBall(f Frame, defaultStyle tcell.Style) {
	cam := f.World.Camera
	ball := f.Lane.Ball

	shadowY := 0.0
	if onBoardTop(ball.Position, f.Lane.Board) && ball.Position.Y() >= f.Lane.Board.Max.Y() {
		shadowY = f.Lane.Board.Max.Y()
	}
	shadow := mgl64.Vec3{ball.Position.X(), shadowY, ball.Position.Z()}
	if px, _, ok := cam.WorldToScreen(shadow); ok {
		col, row := r.pixelCell(px)
		if r.inBounds(col, row) {
			_, _, st, _ := r.screen.GetContent(col, row)
			_, bg, _ := st.Decompose()
			r.screen.SetContent(col, row, glyphShadow, nil, defaultStyle.Foreground(RgbBallShadow).Background(bg))
		}
	}

	px, _, ok := cam.WorldToScreen(ball.Position)
	if !ok {
		return
	}
	col, row := r.pixelCell(px)
	if !r.inBounds(col, row) {
		return
	}
	_, _, st, _ := r.screen.GetContent(col, row)
	_, bg, _ := st.Decompose()
	r.screen.SetContent(col, row, glyphBall, nil, defaultStyle.Foreground(RgbBall).Background(bg).Bold(true))
}

// drawSwipeTrail marks the cells between the swipe start and the held pointer
func (r *TerminalRenderer) drawSwipeTrail(f Frame, defaultStyle tcell.Style) {
	c0, r0 := r.pixelCell(f.Throw.SwipeStart)
	c1, r1 := r.pixelCell(f.Throw.HeldPosition)

	steps := max(abs(c1-c0), abs(r1-r0))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		col := c0 + int(math.Round(t*float64(c1-c0)))
		row := r0 + int(math.Round(t*float64(r1-r0)))
		if !r.inBounds(col, row) {
			continue
		}
		mainc, _, st, _ := r.screen.GetContent(col, row)
		if mainc == glyphBall {
			continue
		}
		_, bg, _ := st.Decompose()
		r.screen.SetContent(col, row, glyphTrail, nil, defaultStyle.Foreground(RgbSwipeTrail).Background(bg))
	}
}

// drawHUD draws score and coins on the top row and the outcome message under them
func (r *TerminalRenderer) drawHUD(f Frame, defaultStyle tcell.Style) {
	hud := f.World.HUD
	scoreStyle := defaultStyle.Foreground(tcell.ColorBlack).Background(RgbScoreBg)
	coinsStyle := defaultStyle.Foreground(tcell.ColorBlack).Background(RgbCoinsBg)

	score := " " + hud.Score.Text + " "
	coins := " " + hud.Coins.Text + " "
	r.drawText(0, 0, score, scoreStyle)
	r.drawText(r.width-len(coins), 0, coins, coinsStyle)

	if hud.Outcome.Text == "" || r.height < 3 {
		return
	}
	outcomeStyle := defaultStyle.Foreground(RgbOutcomeGood).Bold(true)
	if strings.Contains(hud.Outcome.Text, " -") {
		outcomeStyle = defaultStyle.Foreground(RgbOutcomeBad).Bold(true)
	}
	r.drawText((r.width-len(hud.Outcome.Text))/2, 1, hud.Outcome.Text, outcomeStyle)
}

// drawStatusBar draws key help on the bottom row with pause, mute and last throw speed on the right
func (r *TerminalRenderer) drawStatusBar(f Frame, defaultStyle tcell.Style) {
	statusY := r.height - 1
	if statusY < 1 {
		return
	}
	barStyle := defaultStyle.Foreground(RgbStatusBar).Background(RgbStatusBg)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, statusY, ' ', nil, barStyle)
	}

	verb := "drag"
	if f.Variant == input.VariantTouch {
		verb = "swipe"
	}
	help := fmt.Sprintf(" %s up to throw  r reset  p pause  m mute  q quit", verb)
	r.drawText(0, statusY, help, barStyle)

	var flags []string
	if f.Throw.Thrown {
		flags = append(flags, fmt.Sprintf("speed %.1f", f.Throw.BallSpeed))
	}
	if f.Muted {
		flags = append(flags, "MUTED")
	}
	if f.Paused {
		flags = append(flags, "PAUSED")
	}
	if len(flags) == 0 {
		return
	}
	right := " " + strings.Join(flags, "  ") + " "
	flagStyle := barStyle
	if f.Paused {
		flagStyle = barStyle.Background(RgbPausedBg)
	}
	r.drawText(r.width-len(right), statusY, right, flagStyle)
}

// drawText writes s from (x, y), clipped to the screen
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		if x+i >= 0 && x+i < r.width {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
