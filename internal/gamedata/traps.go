package gamedata

import (
	"errors"
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// TrapDef defines a trap type loaded from JSON.
type TrapDef struct {
	ID         string `json:"id"`         // Unique identifier (e.g., "dart")
	Name       string `json:"name"`       // Display name (e.g., "Dart Trap")
	Glyph      string `json:"glyph"`      // Single character for rendering
	Color      string `json:"color"`      // Hex color code (e.g., "#C0C0C0")
	Weight     int    `json:"weight"`     // Relative placement frequency (higher = more common)
	Difficulty int    `json:"difficulty"` // Detection/disarm difficulty, consumed by gameplay
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TrapDef) GlyphRune() rune {
	if t.Glyph == "" {
		return '^'
	}
	return rune(t.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (t *TrapDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// TrapsFile represents the structure of traps.json.
type TrapsFile struct {
	Traps []TrapDef `json:"traps"`
}

// LoadTraps loads trap definitions from the embedded traps.json file.
func LoadTraps() ([]TrapDef, error) {
	file, err := Load[TrapsFile]("traps.json")
	if err != nil {
		return nil, err
	}
	return file.Traps, nil
}

// TrapTable holds loaded trap definitions and provides weighted
// selection for the level generator.
type TrapTable struct {
	traps       []TrapDef
	totalWeight int
}

// NewTrapTable creates a table from loaded trap definitions.
func NewTrapTable(traps []TrapDef) *TrapTable {
	totalWeight := 0
	for _, t := range traps {
		totalWeight += t.Weight
	}
	return &TrapTable{
		traps:       traps,
		totalWeight: totalWeight,
	}
}

// LoadTrapTable loads and creates a table from the embedded traps.json.
func LoadTrapTable() (*TrapTable, error) {
	traps, err := LoadTraps()
	if err != nil {
		return nil, err
	}
	if len(traps) == 0 {
		return nil, errors.New("no traps loaded from traps.json")
	}
	return NewTrapTable(traps), nil
}

// MustLoadTrapTable loads a table, panicking on error.
func MustLoadTrapTable() *TrapTable {
	table, err := LoadTrapTable()
	if err != nil {
		panic(err)
	}
	return table
}

// Roll selects a random trap definition using weighted probability.
// Traps with higher weight are more likely to be selected.
func (r *TrapTable) Roll(rng *rand.Rand) *TrapDef {
	if r.totalWeight <= 0 || len(r.traps) == 0 {
		return nil
	}

	// Pick a random value in the total weight range
	roll := rng.Intn(r.totalWeight)

	// Find which trap this roll corresponds to
	cumulative := 0
	for i := range r.traps {
		cumulative += r.traps[i].Weight
		if roll < cumulative {
			return &r.traps[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.traps[0]
}

// GetByID returns the trap definition with the given ID, or nil if not
// found.
func (r *TrapTable) GetByID(id string) *TrapDef {
	for i := range r.traps {
		if r.traps[i].ID == id {
			return &r.traps[i]
		}
	}
	return nil
}

// All returns all trap definitions.
func (r *TrapTable) All() []TrapDef {
	return r.traps
}

// Count returns the number of trap types in the table.
func (r *TrapTable) Count() int {
	return len(r.traps)
}

// TotalWeight returns the sum of all placement weights.
func (r *TrapTable) TotalWeight() int {
	return r.totalWeight
}
