package world

// doorCandidate is a validated seam position on a room perimeter.
type doorCandidate struct {
	x, y int
}

// placeDoors scans every non-secret room perimeter for seams where a
// door can stand, thins out neighboring candidates, then converts most
// survivors into closed doors. Seams that fail validation or lose the
// roll stay plain floor, which is fine; an open seam is just a doorway.
func (g *generator) placeDoors() {
	var accepted []doorCandidate
	for _, room := range g.level.Rooms {
		if room.Kind == RoomSecret {
			continue
		}
		for _, c := range g.doorCandidates(room) {
			if nearAcceptedDoor(accepted, c) {
				continue
			}
			accepted = append(accepted, c)
		}
	}

	for _, c := range accepted {
		if !g.chance(doorChance) {
			continue
		}
		g.level.SetTileType(c.x, c.y, TileDoor)
	}
}

// nearAcceptedDoor returns true if the candidate sits on or orthogonally
// next to an already accepted one. Doors shoulder to shoulder read as a
// broken wall, so neighbors are thinned even when the earlier candidate
// later loses its placement roll.
func nearAcceptedDoor(accepted []doorCandidate, c doorCandidate) bool {
	for _, a := range accepted {
		if abs(a.x-c.x)+abs(a.y-c.y) <= 1 {
			return true
		}
	}
	return false
}

// doorCandidates walks the four perimeter sides of the room, one tile
// outside the rectangle, and keeps the floor tiles that validate as
// door seams. Corners are skipped; they touch the room only diagonally.
func (g *generator) doorCandidates(room Room) []doorCandidate {
	var out []doorCandidate
	check := func(x, y int) {
		if g.level.GetTile(x, y).Type != TileFloor {
			return
		}
		if !g.validDoorPosition(x, y) {
			return
		}
		out = append(out, doorCandidate{x, y})
	}

	for x := room.X; x < room.X+room.Width; x++ {
		check(x, room.Y-1)
		check(x, room.Y+room.Height)
	}
	for y := room.Y; y < room.Y+room.Height; y++ {
		check(room.X-1, y)
		check(room.X+room.Width, y)
	}
	return out
}

// validDoorPosition decides whether the floor tile at (x, y) on the
// room's perimeter is a sound place for a door. The seam must connect
// exactly one room floor to exactly one corridor floor across the
// cardinals, touch at most one of each diagonally, sit between solid
// walls on the perpendicular axis, and leave no diagonal gap that lets
// a walker slip past the doorway on either flank.
func (g *generator) validDoorPosition(x, y int) bool {
	l := g.level

	isFloor := func(px, py int) bool { return l.GetTile(px, py).Type == TileFloor }
	isWall := func(px, py int) bool { return l.GetTile(px, py).Type == TileWall }

	// A corridor tile is floor outside every room, so a floor neighbor
	// inside some other room (a secret room's breach tile can put one
	// there) counts on the room side and fails the 1/1 rule.
	roomFloor, corridorFloor := 0, 0
	for _, d := range cardinals {
		nx, ny := x+d[0], y+d[1]
		if !isFloor(nx, ny) {
			continue
		}
		if l.RoomIndexAt(nx, ny) != -1 {
			roomFloor++
		} else {
			corridorFloor++
		}
	}
	// Zero on either side is a dead seam; two or more is a room corner
	// or a wide opening. Neither can hold a door.
	if roomFloor != 1 || corridorFloor != 1 {
		return false
	}

	diagRoom, diagCorridor := 0, 0
	for _, d := range diagonals {
		nx, ny := x+d[0], y+d[1]
		if !isFloor(nx, ny) {
			continue
		}
		if l.RoomIndexAt(nx, ny) != -1 {
			diagRoom++
		} else {
			diagCorridor++
		}
	}
	// Busy diagonal surroundings mean a junction, not a doorway.
	if diagRoom > 1 || diagCorridor > 1 {
		return false
	}

	switch {
	case isWall(x-1, y) && isWall(x+1, y):
		// Passage runs vertically. Floor above and below on the same
		// flank would let a walker squeeze diagonally around the door.
		if (isFloor(x-1, y-1) && isFloor(x-1, y+1)) ||
			(isFloor(x+1, y-1) && isFloor(x+1, y+1)) {
			return false
		}
	case isWall(x, y-1) && isWall(x, y+1):
		// Passage runs horizontally; same check rotated.
		if (isFloor(x-1, y-1) && isFloor(x+1, y-1)) ||
			(isFloor(x-1, y+1) && isFloor(x+1, y+1)) {
			return false
		}
	default:
		// No wall enclosure on either axis.
		return false
	}

	return true
}
