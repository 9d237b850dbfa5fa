package jumper

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Visual characters for rendering
const (
	ActorBody    = '█'
	ActorFace    = '◉'
	ActorRising  = '▲'
	ActorFalling = '▼'
	ActorLegs    = '╨'
	SkyChar      = ' '
)

// platformStyle is the look of one platform type tag.
type platformStyle struct {
	top, body           rune
	topColor, bodyColor core.Color
}

// platformStyles is indexed by type tag: basic, grassy, stone.
var platformStyles = []platformStyle{
	{top: '▀', body: '█', topColor: core.ColorWhite, bodyColor: core.ColorGray},
	{top: '▀', body: '▓', topColor: core.ColorBrightGreen, bodyColor: core.ColorBrown},
	{top: '▄', body: '▒', topColor: core.ColorGray, bodyColor: core.ColorGray},
}

func styleFor(typ int) platformStyle {
	if typ < 0 || typ >= len(platformStyles) {
		return platformStyles[0]
	}
	return platformStyles[typ]
}

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// cellSize returns how many logical pixels one cell covers.
func (g *Game) cellSize(dst *core.Screen) (float64, float64) {
	_, vh := g.world.Viewport()
	rows := max(1, dst.Height()-hudRows)
	return g.cfg.Viewport.CellWidth, vh / float64(rows)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	cw, ch := g.cellSize(dst)

	for _, p := range g.world.Platforms() {
		g.drawPlatform(dst, p, cw, ch)
	}
	g.drawActor(dst, cw, ch)
	g.drawHUD(dst)

	switch {
	case g.phase == core.PhaseMenu:
		g.drawCenteredMessage(dst, "SKY JUMPER", "Space to start", "hold longer to jump higher")
	case g.phase == core.PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("%d m  |  best %d m", g.world.Metres(), g.best),
			"R to restart, Q to quit")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawPlatform(dst *core.Screen, p Platform, cw, ch float64) {
	r := p.Rect.ToCells(cw, ch)
	r.Y += hudRows
	st := styleFor(p.Type)
	dst.DrawHLine(r.X, r.Y, r.W, st.top, st.topColor)
	if r.H > 1 {
		dst.FillRect(core.NewRect(r.X, r.Y+1, r.W, r.H-1), st.body, st.bodyColor)
	}
}

func (g *Game) drawActor(dst *core.Screen, cw, ch float64) {
	m := g.world.Actor()
	r := m.Rect().ToCells(cw, ch)
	r.Y += hudRows

	dst.FillRect(r, ActorBody, core.ColorBrightYellow)

	face := ActorFace
	switch {
	case m.State == Grounded:
		if r.H > 1 && g.frame%10 < 5 {
			dst.DrawHLine(r.X, r.Bottom()-1, r.W, ActorLegs, core.ColorYellow)
		}
	case m.Speed < 0:
		face = ActorRising
	default:
		face = ActorFalling
	}
	dst.SetColor(r.X+r.W/2, r.Y, face, core.ColorOrange)
}

func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" %d m ", g.world.Metres())
	if g.best > 0 {
		left += fmt.Sprintf(" best %d m ", g.best)
	}
	dst.DrawTextColor(1, 0, left, core.ColorBrightCyan)

	right := fmt.Sprintf(" Lv %.2f ", g.world.Difficulty())
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(right)-1, 0, right, core.ColorCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := 3 + len(lines)
	if len(lines) > 0 {
		boxH++
	}
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, SkyChar, core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorDefault)
	}
}
