package world

import (
	"github.com/google/uuid"
)

const (
	// Default level dimensions
	DefaultWidth  = 80
	DefaultHeight = 50
)

// Level is the map for one dungeon depth: the tile grid plus the
// ordered room list. Generation mutates it exclusively inside NewLevel;
// afterwards gameplay systems hold it by reference and may only change
// door state and trap flags through the methods below, never terrain
// shape or room geometry.
type Level struct {
	ID     string
	Depth  int
	Width  int
	Height int
	Rooms  []Room

	tiles [][]Tile
}

// newBareLevel allocates a level of the given size, all wall.
func newBareLevel(width, height, depth int) *Level {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}

	return &Level{
		ID:     uuid.NewString(),
		Depth:  depth,
		Width:  width,
		Height: height,
		Rooms:  make([]Room, 0),
		tiles:  tiles,
	}
}

// InBounds returns true if the position lies inside the level grid.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// GetTile returns the tile at the given position. Out-of-bounds reads
// return a wall tile so callers can probe neighbors without their own
// bounds checks.
func (l *Level) GetTile(x, y int) Tile {
	if !l.InBounds(x, y) {
		return Tile{Type: TileWall}
	}
	return l.tiles[y][x]
}

// SetTileType sets the terrain at the given position. Turning a tile
// into a door initializes it closed and normal; turning a door into
// anything else clears the door record. Out-of-bounds writes are
// ignored.
func (l *Level) SetTileType(x, y int, t TileType) {
	if !l.InBounds(x, y) {
		return
	}
	tile := &l.tiles[y][x]
	tile.Type = t
	if t == TileDoor {
		tile.Door = Door{State: DoorClosed, Kind: DoorNormal}
	} else {
		tile.Door = Door{}
	}
}

// IsWalkable returns true if the given position can be walked on.
func (l *Level) IsWalkable(x, y int) bool {
	return l.GetTile(x, y).IsWalkable()
}

// HasDoor returns true if the tile holds a door in any state.
func (l *Level) HasDoor(x, y int) bool {
	return l.GetTile(x, y).Type == TileDoor
}

// DoorAt returns the door record at the position. The second return is
// false when the tile holds no door.
func (l *Level) DoorAt(x, y int) (Door, bool) {
	tile := l.GetTile(x, y)
	if tile.Type != TileDoor {
		return Door{}, false
	}
	return tile.Door, true
}

// SetDoorState updates the state of an existing door. No-op when the
// tile holds no door.
func (l *Level) SetDoorState(x, y int, state DoorState) {
	if !l.InBounds(x, y) || l.tiles[y][x].Type != TileDoor {
		return
	}
	l.tiles[y][x].Door.State = state
}

// OpenDoor opens a closed door and reports whether it is now open.
// Locked doors stay shut.
func (l *Level) OpenDoor(x, y int) bool {
	door, ok := l.DoorAt(x, y)
	if !ok || door.State == DoorLocked {
		return false
	}
	l.SetDoorState(x, y, DoorOpen)
	return true
}

// CloseDoor closes an open door and reports whether it is now closed.
func (l *Level) CloseDoor(x, y int) bool {
	door, ok := l.DoorAt(x, y)
	if !ok || door.State != DoorOpen {
		return false
	}
	l.SetDoorState(x, y, DoorClosed)
	return true
}

// UnlockDoor moves a locked door to closed, ready to open. The caller
// is responsible for key checks.
func (l *Level) UnlockDoor(x, y int) bool {
	door, ok := l.DoorAt(x, y)
	if !ok || door.State != DoorLocked {
		return false
	}
	l.SetDoorState(x, y, DoorClosed)
	return true
}

// RemoveDoor reverts a door tile to plain floor. No-op when the tile
// holds no door.
func (l *Level) RemoveDoor(x, y int) {
	if !l.InBounds(x, y) || l.tiles[y][x].Type != TileDoor {
		return
	}
	l.SetTileType(x, y, TileFloor)
}

// TrapAt returns the trap on the tile, or nil when the tile is
// untrapped.
func (l *Level) TrapAt(x, y int) *Trap {
	return l.GetTile(x, y).Trap
}

// StartPosition returns the tile where the party enters the level. It
// prefers the up stairs, then the first room's center, then (1,1).
func (l *Level) StartPosition() (int, int) {
	if x, y, ok := l.FindTileOfType(TileStairsUp); ok {
		return x, y
	}
	if len(l.Rooms) > 0 {
		return l.Rooms[0].Center()
	}
	return 1, 1
}

// FindTileOfType returns the first tile of the given type in row-major
// order. The third return is false when the level has none.
func (l *Level) FindTileOfType(t TileType) (int, int, bool) {
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.tiles[y][x].Type == t {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// RoomIndexAt returns the index of the room containing the position, or
// -1 if not in a room.
func (l *Level) RoomIndexAt(x, y int) int {
	for i, room := range l.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// CountTiles returns how many tiles have the given type.
func (l *Level) CountTiles(t TileType) int {
	count := 0
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.tiles[y][x].Type == t {
				count++
			}
		}
	}
	return count
}

// CountTraps returns how many tiles carry a trap.
func (l *Level) CountTraps() int {
	count := 0
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.tiles[y][x].Trap != nil {
				count++
			}
		}
	}
	return count
}

// abs returns the absolute value of n.
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
