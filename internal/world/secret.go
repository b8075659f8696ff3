package world

// placeSecretRooms tucks a few small rooms into untouched wall, each
// verified fully sealed before carving, then linked back to the dungeon
// by a single passage. Placement that cannot find sealed wall within
// its attempt budget is skipped.
func (g *generator) placeSecretRooms() {
	l := g.level

	count := g.randRange(minSecretRooms, maxSecretRooms)
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < secretRoomAttempts; attempt++ {
			room := Room{
				Width:  g.randRange(3, 5),
				Height: g.randRange(3, 5),
				Kind:   RoomSecret,
			}
			maxX := l.Width - 1 - room.Width
			maxY := l.Height - 1 - room.Height
			if maxX < 1 || maxY < 1 {
				break
			}
			room.X = g.randRange(1, maxX)
			room.Y = g.randRange(1, maxY)

			// The footprint plus a one-tile buffer must be unbroken wall,
			// otherwise the room would leak into existing passages.
			if !g.isSolidWall(room.Expanded(1)) {
				continue
			}

			l.Rooms = append(l.Rooms, room)
			g.carveRoom(room)
			g.connectSecretRoom(room)
			break
		}
	}
}

// isSolidWall returns true if every tile in the rect is still wall.
// Tiles beyond the grid count as wall, matching GetTile.
func (g *generator) isSolidWall(r Room) bool {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if g.level.GetTile(x, y).Type != TileWall {
				return false
			}
		}
	}
	return true
}

// connectSecretRoom carves an axis-walking passage from the room center
// to the nearest floor tile outside the room, breaching the buffer wall
// once. Without a target (a level with no other floor) the room stays
// sealed.
func (g *generator) connectSecretRoom(room Room) {
	cx, cy := room.Center()

	tx, ty, found := g.nearestFloorOutside(room, cx, cy)
	if !found {
		return
	}

	x, y := cx, cy
	for x != tx {
		if tx > x {
			x++
		} else {
			x--
		}
		g.carveFloor(x, y)
	}
	for y != ty {
		if ty > y {
			y++
		} else {
			y--
		}
		g.carveFloor(x, y)
	}
}

// nearestFloorOutside scans the grid for the floor tile closest to
// (fromX, fromY) by Manhattan distance, ignoring tiles inside the given
// room. The first tile found in row-major order wins ties.
func (g *generator) nearestFloorOutside(room Room, fromX, fromY int) (int, int, bool) {
	l := g.level
	bestX, bestY := 0, 0
	bestDist := -1

	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.tiles[y][x].Type != TileFloor || room.Contains(x, y) {
				continue
			}
			dist := abs(x-fromX) + abs(y-fromY)
			if bestDist == -1 || dist < bestDist {
				bestX, bestY, bestDist = x, y, dist
			}
		}
	}
	return bestX, bestY, bestDist != -1
}
