package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvegen/internal/entity"
	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/world"
)

// Renderer handles drawing the game to the screen. Glyphs and colors
// come from the gamedata display catalogs rather than being hardcoded.
type Renderer struct {
	screen *Screen
	theme  *gamedata.TileTheme
	traps  *gamedata.TrapTable
}

// NewRenderer creates a new renderer for the given screen and catalogs.
func NewRenderer(screen *Screen, theme *gamedata.TileTheme, traps *gamedata.TrapTable) *Renderer {
	return &Renderer{screen: screen, theme: theme, traps: traps}
}

// Render draws the level, the delver, and a status line.
func (r *Renderer) Render(level *world.Level, delver *entity.Delver, message string) {
	r.screen.Clear()

	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width; x++ {
			glyph, style := r.tileAppearance(level.GetTile(x, y))
			r.screen.SetContent(x, y, glyph, style)
		}
	}

	// Draw the delver on top
	delverStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(delver.X, delver.Y, delver.Symbol, delverStyle)

	status := fmt.Sprintf("Depth %d", level.Depth)
	if message != "" {
		status += "  " + message
	}
	r.RenderMessage(status, level.Height)

	r.screen.Show()
}

// tileAppearance returns the glyph and style for one tile. Revealed
// traps draw over the floor they sit on; hidden and disarmed traps do
// not show.
func (r *Renderer) tileAppearance(tile world.Tile) (rune, tcell.Style) {
	if tile.Type == world.TileFloor && tile.Trap != nil && tile.Trap.Revealed && !tile.Trap.Disarmed {
		if def := r.traps.GetByID(tile.Trap.Kind.String()); def != nil {
			return def.GlyphRune(), tcell.StyleDefault.Foreground(def.TCellColor())
		}
	}

	def, ok := r.theme.Get(themeIDFor(tile))
	if !ok {
		return '?', tcell.StyleDefault
	}
	return def.GlyphRune(), tcell.StyleDefault.Foreground(def.TCellColor())
}

// themeIDFor maps a tile to its display catalog entry. Secret doors
// look like plain wall until they have been opened.
func themeIDFor(tile world.Tile) string {
	switch tile.Type {
	case world.TileFloor:
		return "floor"
	case world.TileDoor:
		if tile.Door.Kind == world.DoorSecret && tile.Door.State != world.DoorOpen {
			return "wall"
		}
		switch tile.Door.State {
		case world.DoorOpen:
			return "door_open"
		case world.DoorLocked:
			return "door_locked"
		default:
			return "door_closed"
		}
	case world.TileStairsUp:
		return "stairs_up"
	case world.TileStairsDown:
		return "stairs_down"
	default:
		return "wall"
	}
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
