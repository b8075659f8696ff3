package gamedata

import "github.com/gdamore/tcell/v2"

// TileDef defines how one kind of map tile is displayed.
type TileDef struct {
	ID    string `json:"id"`    // Display key (e.g., "wall", "door_closed")
	Glyph string `json:"glyph"` // Single character for rendering
	Color string `json:"color"` // Hex color code
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TileDef) GlyphRune() rune {
	if t.Glyph == "" {
		return ' '
	}
	return rune(t.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (t *TileDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// TileTheme maps display keys to tile definitions.
type TileTheme struct {
	defs map[string]TileDef
}

// NewTileTheme creates a theme from loaded tile definitions.
func NewTileTheme(defs []TileDef) *TileTheme {
	theme := &TileTheme{defs: make(map[string]TileDef, len(defs))}
	for _, d := range defs {
		theme.defs[d.ID] = d
	}
	return theme
}

// LoadTileTheme loads and creates a theme from the embedded tiles.json.
func LoadTileTheme() (*TileTheme, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return NewTileTheme(file.Tiles), nil
}

// MustLoadTileTheme loads a theme, panicking on error.
func MustLoadTileTheme() *TileTheme {
	theme, err := LoadTileTheme()
	if err != nil {
		panic(err)
	}
	return theme
}

// Get returns the definition for a display key. The second return is
// false when the theme has no entry for it.
func (t *TileTheme) Get(id string) (TileDef, bool) {
	def, ok := t.defs[id]
	return def, ok
}

// Count returns the number of tile definitions in the theme.
func (t *TileTheme) Count() int {
	return len(t.defs)
}
