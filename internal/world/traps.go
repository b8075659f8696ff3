package world

// placeTraps scatters hidden traps across the finished layout. Sampling
// is rejection-based with a bounded attempt budget, so sparse or
// crowded layouts simply end up with fewer traps. Placement leans
// toward corridors and junctions, where a trap actually threatens
// passage, and keeps clear of doors and stairs.
func (g *generator) placeTraps() {
	l := g.level

	target := int(float64(l.Width*l.Height) * trapDensity)
	if target < minTraps {
		target = minTraps
	}

	placed := 0
	for attempt := 0; attempt < target*50 && placed < target; attempt++ {
		x := g.rng.Intn(l.Width)
		y := g.rng.Intn(l.Height)
		if !g.canTrap(x, y) {
			continue
		}
		if !g.chance(g.trapChance(x, y)) {
			continue
		}

		g.level.tiles[y][x].Trap = g.rollTrap()
		placed++
	}
}

// canTrap returns true if the tile is plain untrapped floor with no
// door or stairs anywhere in its 8-neighborhood.
func (g *generator) canTrap(x, y int) bool {
	l := g.level
	tile := l.tiles[y][x]
	if tile.Type != TileFloor || tile.Trap != nil {
		return false
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			switch l.GetTile(x+dx, y+dy).Type {
			case TileDoor, TileStairsUp, TileStairsDown:
				return false
			}
		}
	}
	return true
}

// trapChance returns the acceptance probability for a candidate tile.
// Corridor tiles are half again as likely as room tiles, and corridor
// junctions half again as likely as that.
func (g *generator) trapChance(x, y int) float64 {
	p := trapBaseChance
	if g.level.RoomIndexAt(x, y) != -1 {
		return p
	}

	p *= trapCorridorBias
	exits := 0
	for _, d := range cardinals {
		if g.level.IsWalkable(x+d[0], y+d[1]) {
			exits++
		}
	}
	if exits >= 3 {
		p *= trapJunctionBias
	}
	return p
}

// rollTrap draws a trap from the weighted catalog and builds its
// initial hidden record.
func (g *generator) rollTrap() *Trap {
	def := g.traps.Roll(g.rng)
	kind, ok := ParseTrapKind(def.ID)
	if !ok {
		kind = TrapDart
	}
	return &Trap{
		Kind:       kind,
		Difficulty: def.Difficulty,
		Hidden:     true,
	}
}
