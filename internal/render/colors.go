package render

import "github.com/gdamore/tcell/v2"

// Theme holds the glyphs and colors used to draw entities and the HUD.
type Theme struct {
	Player  string // the player entity
	Drifter string // entities with a velocity
	Marker  string // entities with only a position

	Background tcell.Color
	HUD        tcell.Color
	Separator  tcell.Color
}

// DefaultTheme uses emoji glyphs, which the terminal colors on its own.
var DefaultTheme = Theme{
	Player:     "🛸",
	Drifter:    "🪨",
	Marker:     "📍",
	Background: tcell.ColorBlack,
	HUD:        tcell.ColorWhite,
	Separator:  tcell.ColorGray,
}
