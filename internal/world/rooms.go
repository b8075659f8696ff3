package world

// placeRooms rejection-samples the main rooms into the solid grid. Each
// room rolls a size class, then retries random positions until one fits
// with clearance or its attempt budget runs out. Rooms that never fit
// are skipped; an under-built level is acceptable, a crash is not.
func (g *generator) placeRooms() {
	l := g.level
	target := g.randRange(minRooms, maxRooms)

	marginX := l.Width * edgeMarginPct / 100
	marginY := l.Height * edgeMarginPct / 100
	if marginX < 1 {
		marginX = 1
	}
	if marginY < 1 {
		marginY = 1
	}

	for i := 0; i < target; i++ {
		for attempt := 0; attempt < roomAttempts; attempt++ {
			room, ok := g.sampleRoom(marginX, marginY)
			if !ok {
				break
			}
			if g.tooCloseToRooms(room) {
				continue
			}

			room.Kind = RoomNormal
			if len(l.Rooms) == 0 {
				room.Kind = RoomStart
			}
			l.Rooms = append(l.Rooms, room)
			g.carveRoom(room)
			break
		}
	}
}

// sampleRoom rolls a size class and a position inside the margin band.
// The second return is false when the grid cannot hold the rolled size
// at all.
func (g *generator) sampleRoom(marginX, marginY int) (Room, bool) {
	var w, h int
	switch roll := g.rng.Float64(); {
	case roll < 0.3: // small
		w, h = g.randRange(3, 5), g.randRange(3, 5)
	case roll < 0.6: // medium
		w, h = g.randRange(5, 8), g.randRange(4, 7)
	default: // large
		w, h = g.randRange(7, 12), g.randRange(5, 9)
	}

	maxX := g.level.Width - marginX - w
	maxY := g.level.Height - marginY - h
	if maxX < marginX || maxY < marginY {
		return Room{}, false
	}

	return Room{
		X:      g.randRange(marginX, maxX),
		Y:      g.randRange(marginY, maxY),
		Width:  w,
		Height: h,
	}, true
}

// tooCloseToRooms applies the room separation rule: the candidate grown
// by the gap must not touch any placed room.
func (g *generator) tooCloseToRooms(room Room) bool {
	grown := room.Expanded(roomGap)
	for _, other := range g.level.Rooms {
		if grown.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom sets all tiles within the room to floor.
func (g *generator) carveRoom(room Room) {
	l := g.level
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if x > 0 && x < l.Width-1 && y > 0 && y < l.Height-1 {
				l.tiles[y][x] = Tile{Type: TileFloor}
			}
		}
	}
}
