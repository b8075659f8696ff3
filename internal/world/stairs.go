package world

// placeStairs puts the up stairs in the start room and the down stairs
// in the last ordinary room. A level with a single room gets no way
// down; a level with no rooms gets no stairs at all.
func (g *generator) placeStairs() {
	l := g.level

	var normal []Room
	for _, room := range l.Rooms {
		if room.Kind != RoomSecret {
			normal = append(normal, room)
		}
	}
	if len(normal) == 0 {
		return
	}

	up := normal[0]
	for _, room := range normal {
		if room.Kind == RoomStart {
			up = room
			break
		}
	}
	x, y := g.randomInteriorPoint(up)
	l.SetTileType(x, y, TileStairsUp)

	if len(normal) < 2 {
		return
	}
	down := normal[len(normal)-1]
	x, y = g.randomInteriorPoint(down)
	l.SetTileType(x, y, TileStairsDown)
}

// randomInteriorPoint picks a random point at least one tile inside the
// room's edges. Rooms too narrow for an interior band fall back to any
// point inside the room.
func (g *generator) randomInteriorPoint(room Room) (int, int) {
	x1, x2 := room.X, room.X+room.Width-1
	y1, y2 := room.Y, room.Y+room.Height-1
	if room.Width > 2 {
		x1, x2 = x1+1, x2-1
	}
	if room.Height > 2 {
		y1, y2 = y1+1, y2-1
	}
	return g.randRange(x1, x2), g.randRange(y1, y2)
}
