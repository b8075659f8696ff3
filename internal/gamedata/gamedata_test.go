package gamedata

import (
	"math/rand"
	"testing"
)

func TestLoadTraps(t *testing.T) {
	traps, err := LoadTraps()
	if err != nil {
		t.Fatalf("Failed to load traps: %v", err)
	}

	if len(traps) != 6 {
		t.Errorf("Expected 6 traps, got %d", len(traps))
	}

	// Verify expected traps exist
	expectedIDs := map[string]bool{
		"dart": false, "snare": false, "gas_poison": false,
		"gas_confuse": false, "pit": false, "alarm": false,
	}
	for _, tr := range traps {
		if _, ok := expectedIDs[tr.ID]; ok {
			expectedIDs[tr.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected trap %q not found", id)
		}
	}
}

func TestTrapWeights(t *testing.T) {
	table, err := LoadTrapTable()
	if err != nil {
		t.Fatalf("Failed to load table: %v", err)
	}

	// The placement distribution is part of the level design: dart 30,
	// snare 25, gas 20 (split 60/40 poison/confuse), pit 15, alarm 10.
	expected := map[string]int{
		"dart":        30,
		"snare":       25,
		"gas_poison":  12,
		"gas_confuse": 8,
		"pit":         15,
		"alarm":       10,
	}
	for id, weight := range expected {
		def := table.GetByID(id)
		if def == nil {
			t.Fatalf("Trap %q not found", id)
		}
		if def.Weight != weight {
			t.Errorf("Trap %q weight = %d, want %d", id, def.Weight, weight)
		}
	}

	if table.TotalWeight() != 100 {
		t.Errorf("Total weight = %d, want 100", table.TotalWeight())
	}

	for _, def := range table.All() {
		if def.Difficulty < 25 || def.Difficulty > 45 {
			t.Errorf("Trap %q difficulty = %d, want 25..45", def.ID, def.Difficulty)
		}
	}
}

func TestTrapTableRoll(t *testing.T) {
	table, err := LoadTrapTable()
	if err != nil {
		t.Fatalf("Failed to load table: %v", err)
	}

	if table.Count() != 6 {
		t.Errorf("Expected 6 trap types, got %d", table.Count())
	}

	dart := table.GetByID("dart")
	if dart == nil {
		t.Error("Dart not found by ID")
	} else if dart.Name != "Dart Trap" {
		t.Errorf("Expected name 'Dart Trap', got %q", dart.Name)
	}

	// Weighted rolls are deterministic with the same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	rolls1 := make([]string, 10)
	rolls2 := make([]string, 10)

	for i := 0; i < 10; i++ {
		rolls1[i] = table.Roll(rng1).ID
		rolls2[i] = table.Roll(rng2).ID
	}

	for i := 0; i < 10; i++ {
		if rolls1[i] != rolls2[i] {
			t.Errorf("Roll %d mismatch: %s != %s", i, rolls1[i], rolls2[i])
		}
	}
}

func TestTrapRollDistribution(t *testing.T) {
	table, err := LoadTrapTable()
	if err != nil {
		t.Fatalf("Failed to load table: %v", err)
	}

	rng := rand.New(rand.NewSource(99))
	counts := make(map[string]int)
	const draws = 10000
	for i := 0; i < draws; i++ {
		counts[table.Roll(rng).ID]++
	}

	// Each observed share should be near its weight; a wide tolerance
	// keeps the test stable while still catching a broken roll.
	for _, def := range table.All() {
		want := draws * def.Weight / 100
		got := counts[def.ID]
		slack := draws / 20
		if got < want-slack || got > want+slack {
			t.Errorf("Trap %q drawn %d times, want %d within %d", def.ID, got, want, slack)
		}
	}
}

func TestLoadTileTheme(t *testing.T) {
	theme, err := LoadTileTheme()
	if err != nil {
		t.Fatalf("Failed to load tile theme: %v", err)
	}

	if theme.Count() != 7 {
		t.Errorf("Expected 7 tile defs, got %d", theme.Count())
	}

	for _, id := range []string{
		"wall", "floor", "door_closed", "door_open", "door_locked",
		"stairs_up", "stairs_down",
	} {
		if _, ok := theme.Get(id); !ok {
			t.Errorf("Tile def %q not found", id)
		}
	}

	if _, ok := theme.Get("lava"); ok {
		t.Error("Unknown tile def should not resolve")
	}

	wall, _ := theme.Get("wall")
	if wall.GlyphRune() != '#' {
		t.Errorf("Wall glyph = %c, want #", wall.GlyphRune())
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestTrapDefMethods(t *testing.T) {
	def := TrapDef{
		ID:         "test",
		Name:       "Test Trap",
		Glyph:      "^",
		Color:      "#FF0000",
		Weight:     50,
		Difficulty: 30,
	}

	if def.GlyphRune() != '^' {
		t.Errorf("Expected glyph '^', got %c", def.GlyphRune())
	}

	color := def.TCellColor()
	if color == 0 {
		t.Error("TCellColor returned zero color")
	}
}
