// Package world provides level generation and map management.
package world

// TileType identifies the terrain of a single map tile.
type TileType uint8

const (
	// TileWall is impassable terrain. It is the zero value, so a freshly
	// allocated grid starts solid.
	TileWall TileType = iota
	// TileFloor is open, walkable terrain.
	TileFloor
	// TileDoor is a walkable seam between a room and a corridor. Door
	// tiles carry a Door record; see Tile.
	TileDoor
	// TileStairsUp leads to the previous depth.
	TileStairsUp
	// TileStairsDown leads to the next depth.
	TileStairsDown
)

// String returns a readable name for the tile type.
func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileDoor:
		return "door"
	case TileStairsUp:
		return "stairs_up"
	case TileStairsDown:
		return "stairs_down"
	default:
		return "unknown"
	}
}

// DoorState is the position of a door in its closed/open/locked cycle.
// Valid transitions are closed to open and back (player action), and
// locked to closed (requires a key or force, owned by gameplay systems).
type DoorState uint8

const (
	// DoorClosed blocks movement but can be opened freely.
	DoorClosed DoorState = iota
	// DoorOpen allows movement through the door tile.
	DoorOpen
	// DoorLocked blocks movement until unlocked.
	DoorLocked
)

// String returns a readable name for the door state.
func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorOpen:
		return "open"
	case DoorLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// DoorKind distinguishes ordinary doors from concealed ones.
type DoorKind uint8

const (
	// DoorNormal is a visible door.
	DoorNormal DoorKind = iota
	// DoorSecret is drawn as wall until discovered.
	DoorSecret
)

// String returns a readable name for the door kind.
func (k DoorKind) String() string {
	if k == DoorSecret {
		return "secret"
	}
	return "normal"
}

// Door holds the mutable state of a door tile.
type Door struct {
	State DoorState
	Kind  DoorKind
}

// TrapKind identifies the trap mechanisms the generator can place.
type TrapKind uint8

const (
	// TrapDart fires a projectile when stepped on.
	TrapDart TrapKind = iota
	// TrapSnare entangles whoever triggers it.
	TrapSnare
	// TrapGasPoison releases a poisonous cloud.
	TrapGasPoison
	// TrapGasConfuse releases a disorienting cloud.
	TrapGasConfuse
	// TrapPit drops the victim a short distance.
	TrapPit
	// TrapAlarm alerts nearby inhabitants.
	TrapAlarm
)

// trapKindCount is the number of defined trap kinds.
const trapKindCount = 6

// String returns the catalog identifier for the trap kind.
func (k TrapKind) String() string {
	switch k {
	case TrapDart:
		return "dart"
	case TrapSnare:
		return "snare"
	case TrapGasPoison:
		return "gas_poison"
	case TrapGasConfuse:
		return "gas_confuse"
	case TrapPit:
		return "pit"
	case TrapAlarm:
		return "alarm"
	default:
		return "unknown"
	}
}

// ParseTrapKind maps a catalog identifier back to its kind.
func ParseTrapKind(id string) (TrapKind, bool) {
	for k := TrapKind(0); k < trapKindCount; k++ {
		if k.String() == id {
			return k, true
		}
	}
	return 0, false
}

// Trap describes a hazard occupying a floor tile. The generator creates
// traps hidden; detection and disarm systems flip the flags later.
type Trap struct {
	Kind       TrapKind
	Difficulty int
	Hidden     bool
	Revealed   bool
	Disarmed   bool
}

// Tile is a single map cell. Door is only meaningful when Type is
// TileDoor; Trap is nil unless a trap occupies the tile, and only floor
// tiles ever carry one.
type Tile struct {
	Type TileType
	Door Door
	Trap *Trap
}

// IsWalkable returns true if the tile can be stepped on. Floor and
// stairs are always walkable; a door only when open.
func (t Tile) IsWalkable() bool {
	switch t.Type {
	case TileFloor, TileStairsUp, TileStairsDown:
		return true
	case TileDoor:
		return t.Door.State == DoorOpen
	default:
		return false
	}
}
