package jumper

import "github.com/vovakirdan/tui-jumper/internal/core"

// Platform is a moving rectangle the actor can stand on. Type is a cosmetic
// tag used only for rendering.
type Platform struct {
	Rect  core.RectF // top-left origin
	Speed float64    // px per tick, always positive, moving left
	Type  int
}

// Advance moves the platform one tick to the left.
func (p *Platform) Advance() {
	p.Rect.X -= p.Speed
}

// OffScreen reports whether the platform's right edge has passed the left
// edge of the viewport.
func (p Platform) OffScreen() bool {
	return p.Rect.Right() < 0
}
