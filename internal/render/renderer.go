package render

import (
	"ecsim/internal/component"
	"ecsim/internal/ecs"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved at the bottom of the screen.
const hudRows = 2

// Renderer draws the world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-hudRows),
		theme:  theme,
	}
}

// Draw renders every positioned entity and the HUD, following the player.
func (r *Renderer) Draw(w *ecs.World, tick uint64) {
	sw, sh := r.screen.Size()
	r.camera.Resize(sw, sh-hudRows)
	r.screen.Clear()

	player, hasPlayer := w.PlayerID()
	if hasPlayer {
		if p, ok := w.Positions().Get(player); ok && p.Type() == component.CPosition {
			r.camera.Center(p.X, p.Y)
		}
	}
	r.drawEntities(w, player, hasPlayer)
	r.drawHUD(w, tick)
	r.screen.Show()
}

// drawEntities draws every non-empty position. The player is drawn last so
// it stays on top.
func (r *Renderer) drawEntities(w *ecs.World, player ecs.EntityID, hasPlayer bool) {
	style := tcell.StyleDefault.Background(r.theme.Background)
	for id, pos := range w.Positions().All() {
		if pos.IsEmpty() || (hasPlayer && id == player) {
			continue
		}
		glyph := r.theme.Marker
		if v, ok := w.Velocities().Get(id); ok && !v.IsEmpty() {
			glyph = r.theme.Drifter
		}
		r.drawAt(pos.X, pos.Y, glyph, style)
	}
	if !hasPlayer {
		return
	}
	if pos, ok := w.Positions().Get(player); ok && !pos.IsEmpty() {
		r.drawAt(pos.X, pos.Y, r.theme.Player, style)
	}
}

func (r *Renderer) drawAt(x, y float64, glyph string, style tcell.Style) {
	sx, sy, onScreen := r.camera.WorldToScreen(x, y)
	if !onScreen {
		return
	}
	r.putGlyph(sx, sy, glyph, style)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
