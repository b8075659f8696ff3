package world

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// snapshotVersion is bumped whenever LevelData changes incompatibly.
const snapshotVersion = 1

var (
	// ErrSnapshotVersion means the snapshot was written by an
	// incompatible format version.
	ErrSnapshotVersion = errors.New("unsupported snapshot version")
	// ErrSnapshotCorrupt means the reconstructed grid does not match
	// the fingerprint recorded at save time.
	ErrSnapshotCorrupt = errors.New("snapshot fingerprint mismatch")
)

// Row glyphs for the persisted grid form. Door, stair and trap state
// that a glyph cannot carry is stored in the side records.
const (
	glyphWall       = '#'
	glyphFloor      = '.'
	glyphDoor       = '+'
	glyphStairsUp   = '<'
	glyphStairsDown = '>'
)

// LevelData is the plain value snapshot of a level: everything needed
// to reconstruct an equivalent Level without re-running generation. The
// grid is stored as one glyph row per line so saved files stay
// readable; doors and traps keep their full state in side records.
type LevelData struct {
	Version     int        `yaml:"version"`
	ID          string     `yaml:"id"`
	Depth       int        `yaml:"depth"`
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	Fingerprint uint64     `yaml:"fingerprint"`
	Tiles       []string   `yaml:"tiles"`
	Rooms       []RoomData `yaml:"rooms"`
	Doors       []DoorData `yaml:"doors,omitempty"`
	Traps       []TrapData `yaml:"traps,omitempty"`
}

// RoomData is the persisted form of one room.
type RoomData struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Kind   string `yaml:"kind"`
}

// DoorData is the persisted state of one door tile.
type DoorData struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	State string `yaml:"state"`
	Kind  string `yaml:"kind"`
}

// TrapData is the persisted state of one trap.
type TrapData struct {
	X          int    `yaml:"x"`
	Y          int    `yaml:"y"`
	Kind       string `yaml:"kind"`
	Difficulty int    `yaml:"difficulty"`
	Hidden     bool   `yaml:"hidden"`
	Revealed   bool   `yaml:"revealed"`
	Disarmed   bool   `yaml:"disarmed"`
}

// Fingerprint returns a stable hash of the level's tile content,
// including door and trap state. Two levels generated from the same
// seed and dimensions share a fingerprint; any terrain or state change
// produces a new one.
func (l *Level) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			tile := l.tiles[y][x]
			buf[0] = byte(tile.Type)
			buf[1] = byte(tile.Door.State)
			buf[2] = byte(tile.Door.Kind)
			if tile.Trap != nil {
				buf[3] = 1
				buf[4] = byte(tile.Trap.Kind)
				buf[5] = byte(tile.Trap.Difficulty)
				buf[6] = trapFlags(tile.Trap)
			} else {
				buf[3], buf[4], buf[5], buf[6] = 0, 0, 0, 0
			}
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}

// trapFlags packs the mutable trap booleans into one byte.
func trapFlags(trap *Trap) byte {
	var flags byte
	if trap.Hidden {
		flags |= 1
	}
	if trap.Revealed {
		flags |= 2
	}
	if trap.Disarmed {
		flags |= 4
	}
	return flags
}

// Snapshot captures the level as a plain value form for saving.
func (l *Level) Snapshot() LevelData {
	data := LevelData{
		Version:     snapshotVersion,
		ID:          l.ID,
		Depth:       l.Depth,
		Width:       l.Width,
		Height:      l.Height,
		Fingerprint: l.Fingerprint(),
		Tiles:       make([]string, l.Height),
		Rooms:       make([]RoomData, 0, len(l.Rooms)),
	}

	var row strings.Builder
	for y := 0; y < l.Height; y++ {
		row.Reset()
		for x := 0; x < l.Width; x++ {
			tile := l.tiles[y][x]
			row.WriteRune(glyphForType(tile.Type))

			if tile.Type == TileDoor {
				data.Doors = append(data.Doors, DoorData{
					X:     x,
					Y:     y,
					State: tile.Door.State.String(),
					Kind:  tile.Door.Kind.String(),
				})
			}
			if tile.Trap != nil {
				data.Traps = append(data.Traps, TrapData{
					X:          x,
					Y:          y,
					Kind:       tile.Trap.Kind.String(),
					Difficulty: tile.Trap.Difficulty,
					Hidden:     tile.Trap.Hidden,
					Revealed:   tile.Trap.Revealed,
					Disarmed:   tile.Trap.Disarmed,
				})
			}
		}
		data.Tiles[y] = row.String()
	}

	for _, room := range l.Rooms {
		data.Rooms = append(data.Rooms, RoomData{
			X:      room.X,
			Y:      room.Y,
			Width:  room.Width,
			Height: room.Height,
			Kind:   room.Kind.String(),
		})
	}

	return data
}

// FromSnapshot reconstructs a level from its persisted form. A zero
// fingerprint in the data skips the integrity check, which keeps hand
// written fixtures usable.
func FromSnapshot(data LevelData) (*Level, error) {
	if data.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSnapshotVersion, data.Version, snapshotVersion)
	}
	if data.Width <= 0 || data.Height <= 0 {
		return nil, fmt.Errorf("invalid snapshot dimensions %dx%d", data.Width, data.Height)
	}
	if len(data.Tiles) != data.Height {
		return nil, fmt.Errorf("snapshot has %d tile rows, want %d", len(data.Tiles), data.Height)
	}

	l := newBareLevel(data.Width, data.Height, data.Depth)
	if data.ID != "" {
		l.ID = data.ID
	} else {
		l.ID = uuid.NewString()
	}

	for y, rowStr := range data.Tiles {
		row := []rune(rowStr)
		if len(row) != data.Width {
			return nil, fmt.Errorf("snapshot row %d has %d tiles, want %d", y, len(row), data.Width)
		}
		for x, glyph := range row {
			tileType, err := typeForGlyph(glyph)
			if err != nil {
				return nil, fmt.Errorf("snapshot row %d col %d: %w", y, x, err)
			}
			l.SetTileType(x, y, tileType)
		}
	}

	for _, d := range data.Doors {
		if !l.InBounds(d.X, d.Y) || l.tiles[d.Y][d.X].Type != TileDoor {
			return nil, fmt.Errorf("door record at (%d,%d) has no door tile", d.X, d.Y)
		}
		state, err := parseDoorState(d.State)
		if err != nil {
			return nil, err
		}
		kind, err := parseDoorKind(d.Kind)
		if err != nil {
			return nil, err
		}
		l.tiles[d.Y][d.X].Door = Door{State: state, Kind: kind}
	}

	for _, tr := range data.Traps {
		if !l.InBounds(tr.X, tr.Y) || l.tiles[tr.Y][tr.X].Type != TileFloor {
			return nil, fmt.Errorf("trap record at (%d,%d) has no floor tile", tr.X, tr.Y)
		}
		kind, ok := ParseTrapKind(tr.Kind)
		if !ok {
			return nil, fmt.Errorf("unknown trap kind %q at (%d,%d)", tr.Kind, tr.X, tr.Y)
		}
		l.tiles[tr.Y][tr.X].Trap = &Trap{
			Kind:       kind,
			Difficulty: tr.Difficulty,
			Hidden:     tr.Hidden,
			Revealed:   tr.Revealed,
			Disarmed:   tr.Disarmed,
		}
	}

	for _, r := range data.Rooms {
		kind, err := parseRoomKind(r.Kind)
		if err != nil {
			return nil, err
		}
		l.Rooms = append(l.Rooms, Room{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height, Kind: kind})
	}

	if data.Fingerprint != 0 && l.Fingerprint() != data.Fingerprint {
		return nil, ErrSnapshotCorrupt
	}

	return l, nil
}

// SaveLevel writes the level snapshot to a YAML file.
func SaveLevel(l *Level, path string) error {
	out, err := yaml.Marshal(l.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to marshal level %s: %w", l.ID, err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write level file: %w", err)
	}
	return nil
}

// LoadLevel reads a level snapshot from a YAML file.
func LoadLevel(path string) (*Level, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	var data LevelData
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}
	return FromSnapshot(data)
}

// glyphForType maps terrain to its persisted row glyph.
func glyphForType(t TileType) rune {
	switch t {
	case TileFloor:
		return glyphFloor
	case TileDoor:
		return glyphDoor
	case TileStairsUp:
		return glyphStairsUp
	case TileStairsDown:
		return glyphStairsDown
	default:
		return glyphWall
	}
}

// typeForGlyph maps a persisted row glyph back to terrain.
func typeForGlyph(glyph rune) (TileType, error) {
	switch glyph {
	case glyphWall:
		return TileWall, nil
	case glyphFloor:
		return TileFloor, nil
	case glyphDoor:
		return TileDoor, nil
	case glyphStairsUp:
		return TileStairsUp, nil
	case glyphStairsDown:
		return TileStairsDown, nil
	default:
		return TileWall, fmt.Errorf("unknown tile glyph %q", glyph)
	}
}

func parseDoorState(s string) (DoorState, error) {
	switch s {
	case "closed", "":
		return DoorClosed, nil
	case "open":
		return DoorOpen, nil
	case "locked":
		return DoorLocked, nil
	default:
		return DoorClosed, fmt.Errorf("unknown door state %q", s)
	}
}

func parseDoorKind(s string) (DoorKind, error) {
	switch s {
	case "normal", "":
		return DoorNormal, nil
	case "secret":
		return DoorSecret, nil
	default:
		return DoorNormal, fmt.Errorf("unknown door kind %q", s)
	}
}

func parseRoomKind(s string) (RoomKind, error) {
	switch s {
	case "normal", "":
		return RoomNormal, nil
	case "start":
		return RoomStart, nil
	case "secret":
		return RoomSecret, nil
	default:
		return RoomNormal, fmt.Errorf("unknown room kind %q", s)
	}
}
