package world

// carveDeadEnds stubs a few short blind passages off existing
// corridors. Stubs are decorative; they start on floor, burrow into
// wall, and stop the moment they would touch anything already carved or
// the map edge. Carving also refuses tiles next to a door so existing
// seams keep their wall enclosure.
func (g *generator) carveDeadEnds() {
	count := g.randRange(minDeadEnds, maxDeadEnds)
	for i := 0; i < count; i++ {
		x, y, ok := g.randomCorridorTile()
		if !ok {
			return
		}

		dir := cardinals[g.rng.Intn(len(cardinals))]
		length := g.randRange(minDeadEndLen, maxDeadEndLen)
		for step := 0; step < length; step++ {
			x, y = x+dir[0], y+dir[1]
			if !g.canStubInto(x, y) {
				break
			}
			g.level.tiles[y][x] = Tile{Type: TileFloor}
		}
	}
}

// canStubInto returns true if a dead-end stub may carve the tile: an
// interior wall tile with no door on any cardinal side.
func (g *generator) canStubInto(x, y int) bool {
	l := g.level
	if x <= 0 || x >= l.Width-1 || y <= 0 || y >= l.Height-1 {
		return false
	}
	if l.tiles[y][x].Type != TileWall {
		return false
	}
	for _, d := range cardinals {
		if l.GetTile(x+d[0], y+d[1]).Type == TileDoor {
			return false
		}
	}
	return true
}

// randomCorridorTile samples for a floor tile outside every room.
func (g *generator) randomCorridorTile() (int, int, bool) {
	l := g.level
	for attempt := 0; attempt < deadEndAttempts; attempt++ {
		x := g.rng.Intn(l.Width)
		y := g.rng.Intn(l.Height)
		if l.tiles[y][x].Type != TileFloor {
			continue
		}
		if l.RoomIndexAt(x, y) != -1 {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}
