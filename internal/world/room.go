package world

// RoomKind classifies rooms by their role in the level.
type RoomKind uint8

const (
	// RoomNormal is an ordinary room.
	RoomNormal RoomKind = iota
	// RoomStart holds the up stairs and the party's entry point. The
	// first room placed is the start room; there is never more than one.
	RoomStart
	// RoomSecret is sealed behind solid wall and reached only through
	// its single carved passage.
	RoomSecret
)

// String returns a readable name for the room kind.
func (k RoomKind) String() string {
	switch k {
	case RoomStart:
		return "start"
	case RoomSecret:
		return "secret"
	default:
		return "normal"
	}
}

// Room represents a rectangular room in the level.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
	Kind          RoomKind
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Expanded returns the room grown by margin tiles on every side. Growing
// one room before an Intersects check enforces a minimum separation.
func (r Room) Expanded(margin int) Room {
	return Room{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
		Kind:   r.Kind,
	}
}
