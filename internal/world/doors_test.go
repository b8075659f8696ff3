package world

import (
	"math/rand"
	"testing"
)

// buildTestLevel constructs a level from glyph rows, using the same
// glyphs as the snapshot form.
func buildTestLevel(t *testing.T, rows []string) *Level {
	t.Helper()
	l := newBareLevel(len([]rune(rows[0])), len(rows), 1)
	for y, rowStr := range rows {
		for x, glyph := range []rune(rowStr) {
			tileType, err := typeForGlyph(glyph)
			if err != nil {
				t.Fatalf("Bad fixture glyph at (%d,%d): %v", x, y, err)
			}
			l.SetTileType(x, y, tileType)
		}
	}
	return l
}

// seamFixture is a room with one clean corridor seam on its west side
// at the room's top row: corridor floor left of (4,3), room right of it,
// wall above and below.
var seamFixture = []string{
	"############",
	"############",
	"############",
	"#.......####",
	"#####...####",
	"#####...####",
	"############",
	"############",
	"############",
}

var seamFixtureRoom = Room{X: 5, Y: 3, Width: 3, Height: 3, Kind: RoomNormal}

func TestDoorCandidatesValidSeam(t *testing.T) {
	l := buildTestLevel(t, seamFixture)
	l.Rooms = append(l.Rooms, seamFixtureRoom)
	g := &generator{level: l, rng: rand.New(rand.NewSource(1))}

	got := g.doorCandidates(seamFixtureRoom)
	if len(got) != 1 {
		t.Fatalf("Candidates = %v, want exactly the seam (4,3)", got)
	}
	if got[0].x != 4 || got[0].y != 3 {
		t.Errorf("Candidate = (%d,%d), want (4,3)", got[0].x, got[0].y)
	}
}

func TestDoorRejectsWideOpening(t *testing.T) {
	// Two stacked seam tiles form a wide opening, not a doorway
	rows := []string{
		"############",
		"############",
		"############",
		"#.......####",
		"#.......####",
		"#####...####",
		"############",
		"############",
		"############",
	}
	l := buildTestLevel(t, rows)
	room := Room{X: 5, Y: 3, Width: 3, Height: 3, Kind: RoomNormal}
	l.Rooms = append(l.Rooms, room)
	g := &generator{level: l, rng: rand.New(rand.NewSource(1))}

	if got := g.doorCandidates(room); len(got) != 0 {
		t.Errorf("Candidates = %v, want none for a wide opening", got)
	}
}

func TestDoorRejectsDiagonalBypass(t *testing.T) {
	// The seam itself is clean, but floor at (3,4) pairs with the room
	// floor at (5,4) across the passage axis: a walker could slip
	// diagonally around the door, so the seam must be rejected.
	rows := []string{
		"############",
		"############",
		"############",
		"#.......####",
		"###.#...####",
		"#####...####",
		"############",
		"############",
		"############",
	}
	l := buildTestLevel(t, rows)
	room := Room{X: 5, Y: 3, Width: 3, Height: 3, Kind: RoomNormal}
	l.Rooms = append(l.Rooms, room)
	g := &generator{level: l, rng: rand.New(rand.NewSource(1))}

	if got := g.doorCandidates(room); len(got) != 0 {
		t.Errorf("Candidates = %v, want none with a diagonal bypass", got)
	}
}

func TestDoorRejectsMidWallSeam(t *testing.T) {
	// A corridor punching through the middle of a room side touches two
	// room-floor diagonals, which marks it as a junction rather than a
	// doorway.
	rows := []string{
		"############",
		"######.#####",
		"######.#####",
		"#####...####",
		"#####...####",
		"#####...####",
		"############",
		"############",
		"############",
	}
	l := buildTestLevel(t, rows)
	room := Room{X: 5, Y: 3, Width: 3, Height: 3, Kind: RoomNormal}
	l.Rooms = append(l.Rooms, room)
	g := &generator{level: l, rng: rand.New(rand.NewSource(1))}

	if got := g.doorCandidates(room); len(got) != 0 {
		t.Errorf("Candidates = %v, want none for a mid-wall seam", got)
	}
}

func TestDoorRejectsDeadSeam(t *testing.T) {
	// A seam with no corridor behind it leads nowhere
	rows := []string{
		"############",
		"############",
		"############",
		"####....####",
		"#####...####",
		"#####...####",
		"############",
		"############",
		"############",
	}
	l := buildTestLevel(t, rows)
	room := Room{X: 5, Y: 3, Width: 3, Height: 3, Kind: RoomNormal}
	l.Rooms = append(l.Rooms, room)
	g := &generator{level: l, rng: rand.New(rand.NewSource(1))}

	if got := g.doorCandidates(room); len(got) != 0 {
		t.Errorf("Candidates = %v, want none for a dead seam", got)
	}
}

func TestNearAcceptedDoor(t *testing.T) {
	accepted := []doorCandidate{{x: 5, y: 5}}

	cases := []struct {
		x, y int
		near bool
	}{
		{5, 5, true},  // same tile
		{6, 5, true},  // orthogonal neighbor
		{5, 4, true},  // orthogonal neighbor
		{6, 6, false}, // diagonal is fine
		{7, 5, false}, // two apart is fine
	}
	for _, c := range cases {
		if got := nearAcceptedDoor(accepted, doorCandidate{x: c.x, y: c.y}); got != c.near {
			t.Errorf("nearAcceptedDoor(%d,%d) = %v, want %v", c.x, c.y, got, c.near)
		}
	}
}

func TestPlaceDoorsChance(t *testing.T) {
	// One valid seam, many seeds: placement should land near the 70%
	// acceptance rate, and every placed door starts closed and normal.
	placed := 0
	const runs = 200
	for seed := int64(0); seed < runs; seed++ {
		l := buildTestLevel(t, seamFixture)
		l.Rooms = append(l.Rooms, seamFixtureRoom)
		g := &generator{level: l, rng: rand.New(rand.NewSource(seed))}

		g.placeDoors()
		if !l.HasDoor(4, 3) {
			continue
		}
		placed++
		door, _ := l.DoorAt(4, 3)
		if door.State != DoorClosed || door.Kind != DoorNormal {
			t.Fatalf("seed %d: new door = %v/%v, want closed/normal", seed, door.State, door.Kind)
		}
	}

	if placed < 100 || placed > 180 {
		t.Errorf("Door placed in %d/%d runs, want roughly 70%%", placed, runs)
	}
}

func TestPlaceDoorsSkipsSecretRooms(t *testing.T) {
	l := buildTestLevel(t, seamFixture)
	secret := seamFixtureRoom
	secret.Kind = RoomSecret
	l.Rooms = append(l.Rooms, secret)
	g := &generator{level: l, rng: rand.New(rand.NewSource(1))}

	g.placeDoors()
	if l.CountTiles(TileDoor) != 0 {
		t.Error("Secret room perimeter should never receive doors")
	}
}
