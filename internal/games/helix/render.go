package helix

import (
	"fmt"
	"math"

	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/games/helix/sim"
)

// Visual characters for rendering
const (
	BallChar        = '●'
	ChunkChar       = '█'
	DoubleComboChar = '◆'
	DestroyChar     = '▓'
	BaseChar        = '▀'
	GuideChar       = '┊'
)

// fadeGlyphs are drawn for breaking chunks, from opaque to faint.
var fadeGlyphs = []rune{'▓', '▒', '░'}

const (
	hudRows     = 2
	rowsPerTier = 4
)

// CellColor maps a palette color to a terminal color.
func CellColor(c sim.ColorID) core.Color {
	switch c {
	case sim.ColorRed:
		return core.ColorRed
	case sim.ColorBlue:
		return core.ColorBlue
	case sim.ColorAmber:
		return core.ColorAmber
	case sim.ColorPurple:
		return core.ColorPurple
	case sim.ColorDestroyTint:
		return core.ColorBlack
	default:
		return core.ColorWhite
	}
}

// view maps world coordinates of the unrolled shaft onto the screen.
// The ball column is the middle of the field; a full turn spans its width.
type view struct {
	field     core.Rect
	ballRow   int
	ballCol   int
	ballY     float64
	unitsPerY float64
}

func (g *Game) newView(dst *core.Screen) view {
	field := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	gap := g.session.TierGap
	if gap <= 0 {
		gap = 1
	}
	return view{
		field:     field,
		ballRow:   field.Y + 1 + (field.H-2)/3,
		ballCol:   field.X + field.W/2,
		ballY:     g.session.Ball.Position.Y,
		unitsPerY: gap / rowsPerTier,
	}
}

func (v view) row(y float64) int {
	return v.ballRow + int(math.Round((v.ballY-y)/v.unitsPerY))
}

func (v view) col(angle float64) int {
	inner := v.field.W - 2
	return v.ballCol + int(math.Round(core.WrapAngle(angle)/(2*math.Pi)*float64(inner)))
}

func (v view) inside(x, y int) bool {
	return x > v.field.X && x < v.field.Right()-1 && y > v.field.Y && y < v.field.Bottom()-1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.session == nil {
		dst.DrawTextCentered(dst.Height()/2, "Level layout could not be built")
		return
	}

	v := g.newView(dst)
	g.renderHUD(dst)
	dst.DrawBox(v.field)
	dst.DrawVLine(v.ballCol, v.field.Y+1, v.field.H-2, GuideChar, core.ColorDarkGray)

	g.renderBase(dst, v)
	g.renderChunks(dst, v)
	g.renderBall(dst, v)
	g.renderOverlay(dst)
}

// renderHUD draws score, level and combo on the top rows.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.Score()))
	dst.DrawTextCentered(0, fmt.Sprintf("Level %d", g.level))

	combo := fmt.Sprintf("Combo: %d", s.Combo.Combo())
	if m := s.Combo.Modifier(); m > 1 {
		combo += fmt.Sprintf(" x%d", m)
	}
	dst.DrawText(dst.Width()-len(combo)-1, 0, combo)

	if g.deltaLeft > 0 {
		dst.DrawTextColored(1, 1, fmt.Sprintf("+%d", g.lastDelta), core.ColorGreen)
	}
	ball := "Ball: " + s.Ball.Color.String()
	dst.DrawTextColored(dst.Width()-len(ball)-1, 1, ball, CellColor(s.Ball.Color))
}

// renderBase draws the landing floor when it is in view.
func (g *Game) renderBase(dst *core.Screen, v view) {
	y := v.row(g.session.Base.Max.Y)
	for ; y < v.field.Bottom()-1; y++ {
		for x := v.field.X + 1; x < v.field.Right()-1; x++ {
			if v.inside(x, y) {
				dst.SetColored(x, y, BaseChar, core.ColorGray)
			}
		}
	}
}

// renderChunks draws active and breaking chunks around the unrolled shaft.
func (g *Game) renderChunks(dst *core.Screen, v view) {
	s := g.session
	half := max((v.field.W-2)/slotCount/2-1, 0)

	for _, c := range s.Chunks.ActiveChunks() {
		glyph, color := ChunkChar, CellColor(c.Kind.Color())
		switch c.Kind.Tag() {
		case sim.KindDestroy:
			glyph, color = DestroyChar, core.ColorDarkGray
		case sim.KindDoubleCombo:
			glyph, color = DoubleComboChar, core.ColorBrightWhite
		}
		drawSpan(dst, v, v.col(c.Angle+s.Rotation), v.row(c.Height()), half, glyph, color)
	}

	for _, c := range s.Chunks.BreakingChunks() {
		i := int((1 - c.Opacity) * float64(len(fadeGlyphs)))
		glyph := fadeGlyphs[core.Clamp(i, 0, len(fadeGlyphs)-1)]
		color := CellColor(c.Kind.Color())
		if c.Kind.Tag() != sim.KindRegular {
			color = core.ColorGray
		}
		drawSpan(dst, v, v.col(c.Angle+s.Rotation), v.row(c.Height()+c.Drift.Y), half, glyph, color)
	}
}

// drawSpan draws a horizontal run centered on x, wrapping around the field.
func drawSpan(dst *core.Screen, v view, x, y, half int, glyph rune, color core.Color) {
	inner := v.field.W - 2
	for dx := -half; dx <= half; dx++ {
		cx := x + dx
		if inner > 0 {
			cx = v.field.X + 1 + ((cx-v.field.X-1)%inner+inner)%inner
		}
		if v.inside(cx, y) {
			dst.SetColored(cx, y, glyph, color)
		}
	}
}

func (g *Game) renderBall(dst *core.Screen, v view) {
	dst.SetColored(v.ballCol, v.ballRow, BallChar, CellColor(g.session.Ball.Color))
}

// renderOverlay draws pause, game over and level clear boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	var lines []string
	switch g.state {
	case StatePaused:
		lines = []string{"PAUSED", "", "P to resume"}
	case StateLost:
		lines = []string{"GAME OVER", "", fmt.Sprintf("Score: %d", g.Score()), "", "R to restart"}
	case StateWon:
		lines = []string{fmt.Sprintf("LEVEL %d CLEAR", g.level), "", fmt.Sprintf("Score: %d", g.Score()), "", "Enter: next level", "R: replay"}
	case StateAdvance:
		lines = []string{fmt.Sprintf("LEVEL %d CLEAR", g.level)}
	default:
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := core.NewRect((dst.Width()-w-4)/2, (dst.Height()-len(lines)-2)/2, w+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}
