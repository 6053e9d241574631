package render

import (
	"fmt"

	"ecsim/internal/component"
	"ecsim/internal/ecs"
	"ecsim/internal/input"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawHUD renders a separator and a status line with the tick count and the
// player's state.
func (r *Renderer) drawHUD(w *ecs.World, tick uint64) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, r.theme.Separator)
	r.drawText(0, hudY+1, statusLine(w, tick), tcell.StyleDefault.Foreground(r.theme.HUD))
}

func statusLine(w *ecs.World, tick uint64) string {
	line := fmt.Sprintf("tick %d", tick)
	id, ok := w.PlayerID()
	if !ok {
		return line
	}
	if p, ok := w.Positions().Get(id); ok && p.Type() == component.CPosition {
		line += fmt.Sprintf("  pos (%.1f, %.1f)", p.X, p.Y)
	}
	if v, ok := w.Velocities().Get(id); ok && v.Type() == component.CVelocity {
		line += fmt.Sprintf("  vel (%.1f, %.1f)", v.X, v.Y)
	}
	if k, ok := w.Keys().Get(id); ok && k.Type() == component.CKeysPressed {
		if held := input.Describe(k.Flags); held != "" {
			line += "  keys " + held
		}
	}
	return line + "  [wasd steer, esc quit]"
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
