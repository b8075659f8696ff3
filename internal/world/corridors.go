package world

// cardinals are the four orthogonal step offsets.
var cardinals = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// diagonals are the four diagonal step offsets.
var diagonals = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// carveCorridors links each room to the next in placement order, which
// chains every room into one connected network, then adds a few extra
// links between random pairs for loops.
func (g *generator) carveCorridors() {
	l := g.level
	for i := 0; i+1 < len(l.Rooms); i++ {
		g.carveCorridor(l.Rooms[i], l.Rooms[i+1])
	}

	if len(l.Rooms) < 2 {
		return
	}
	extra := g.randRange(0, maxExtraCorridors)
	for i := 0; i < extra; i++ {
		a := g.rng.Intn(len(l.Rooms))
		b := g.rng.Intn(len(l.Rooms))
		if a == b {
			continue
		}
		g.carveCorridor(l.Rooms[a], l.Rooms[b])
	}
}

// carveCorridor creates an L-shaped corridor between two room centers.
func (g *generator) carveCorridor(room1, room2 Room) {
	x1, y1 := room1.Center()
	x2, y2 := room2.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if g.rng.Intn(2) == 0 {
		g.carveHorizontalTunnel(x1, x2, y1)
		g.carveVerticalTunnel(y1, y2, x2)
	} else {
		g.carveVerticalTunnel(y1, y2, x1)
		g.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (g *generator) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.carveFloor(x, y)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (g *generator) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.carveFloor(x, y)
	}
}

// carveWindingPassages walks a few meandering passages out of random
// rooms to break up the straight-corridor look.
func (g *generator) carveWindingPassages() {
	l := g.level
	if len(l.Rooms) == 0 {
		return
	}

	count := g.randRange(minWindingPassages, maxWindingPassages)
	for i := 0; i < count; i++ {
		room := l.Rooms[g.rng.Intn(len(l.Rooms))]
		x := g.randRange(room.X, room.X+room.Width-1)
		y := g.randRange(room.Y, room.Y+room.Height-1)

		steps := g.randRange(minWindingSteps, maxWindingSteps)
		for s := 0; s < steps; s++ {
			nx, ny, ok := g.windingStep(x, y)
			if !ok {
				break
			}
			x, y = nx, ny
		}
	}
}

// windingStep tries the four cardinal directions in random order and
// returns the accepted next position. Carving into wall always
// succeeds; walking onto existing floor succeeds only occasionally so
// passages do not dissolve neighboring spaces into one open blob. The
// false return means the walk is boxed in and should stop.
func (g *generator) windingStep(x, y int) (int, int, bool) {
	l := g.level
	dirs := cardinals
	g.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	for _, d := range dirs {
		nx, ny := x+d[0], y+d[1]
		if nx <= 0 || nx >= l.Width-1 || ny <= 0 || ny >= l.Height-1 {
			continue
		}
		switch l.tiles[ny][nx].Type {
		case TileWall:
			l.tiles[ny][nx] = Tile{Type: TileFloor}
			return nx, ny, true
		case TileFloor:
			if g.chance(windingMergeChance) {
				return nx, ny, true
			}
		}
	}
	return 0, 0, false
}
