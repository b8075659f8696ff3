// Package game provides the main game loop and session state.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/samdwyer/delvegen/internal/entity"
	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/logger"
	"github.com/samdwyer/delvegen/internal/world"
)

// Session tracks one delver's descent. Levels are generated on first
// visit and cached by depth, so climbing back up returns to the same
// level with door and trap state intact. Each depth derives its rng
// from the base seed, which makes a whole session reproducible.
type Session struct {
	cfg    Config
	seed   int64
	levels map[int]*world.Level
	depth  int
	delver *entity.Delver
	traps  *gamedata.TrapTable

	message string
}

// NewSession starts a session at depth 1.
func NewSession(ctx context.Context, cfg Config) *Session {
	if cfg.Width <= 0 {
		cfg.Width = world.DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = world.DefaultHeight
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		seed:   seed,
		levels: make(map[int]*world.Level),
		depth:  1,
		traps:  gamedata.MustLoadTrapTable(),
	}

	level := s.levelAt(ctx, 1)
	x, y := level.StartPosition()
	s.delver = entity.NewDelver(x, y)
	return s
}

// levelAt returns the level for the given depth, generating and caching
// it on first visit.
func (s *Session) levelAt(ctx context.Context, depth int) *world.Level {
	if level, ok := s.levels[depth]; ok {
		return level
	}

	rng := rand.New(rand.NewSource(s.seed + int64(depth)*1000))
	level := world.NewLevel(ctx, s.cfg.Width, s.cfg.Height, depth, rng)
	s.levels[depth] = level

	logger.Info("Generated level",
		"depth", depth,
		"rooms", len(level.Rooms),
		"traps", level.CountTraps())
	return level
}

// Level returns the level the delver is currently on.
func (s *Session) Level() *world.Level {
	return s.levels[s.depth]
}

// Delver returns the player avatar.
func (s *Session) Delver() *entity.Delver {
	return s.delver
}

// Depth returns the current depth, starting at 1.
func (s *Session) Depth() int {
	return s.depth
}

// Seed returns the base seed the session was started with.
func (s *Session) Seed() int64 {
	return s.seed
}

// Message returns the most recent action message for the status line.
func (s *Session) Message() string {
	return s.message
}

// MovePlayer attempts to move the delver by the given delta. Bumping a
// closed door opens it instead of moving; bumping a hidden door
// reveals it. Stepping onto an unnoticed trap springs it.
func (s *Session) MovePlayer(dx, dy int) {
	level := s.Level()
	newX := s.delver.X + dx
	newY := s.delver.Y + dy

	if door, ok := level.DoorAt(newX, newY); ok && door.State != world.DoorOpen {
		switch {
		case door.State == world.DoorLocked:
			s.message = "The door is locked."
		case door.Kind == world.DoorSecret:
			level.OpenDoor(newX, newY)
			s.message = "You discover a hidden door!"
		default:
			level.OpenDoor(newX, newY)
			s.message = "You open the door."
		}
		return
	}

	if !level.IsWalkable(newX, newY) {
		return
	}

	s.delver.Move(dx, dy)
	s.message = ""
	s.checkTrap(newX, newY)
}

// checkTrap handles the trap on the tile the delver just entered.
func (s *Session) checkTrap(x, y int) {
	trap := s.Level().TrapAt(x, y)
	if trap == nil || trap.Disarmed {
		return
	}

	if trap.Revealed {
		s.message = fmt.Sprintf("You step carefully around the %s.", s.trapName(trap.Kind))
		return
	}

	trap.Hidden = false
	trap.Revealed = true
	s.message = fmt.Sprintf("You spring a %s!", s.trapName(trap.Kind))
	logger.Info("Trap sprung",
		"kind", trap.Kind.String(),
		"difficulty", trap.Difficulty,
		"depth", s.depth)
}

// DisarmTrap disarms the first revealed trap on or next to the delver.
func (s *Session) DisarmTrap() {
	level := s.Level()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			trap := level.TrapAt(s.delver.X+dx, s.delver.Y+dy)
			if trap == nil || !trap.Revealed || trap.Disarmed {
				continue
			}
			trap.Disarmed = true
			s.message = fmt.Sprintf("You disarm the %s.", s.trapName(trap.Kind))
			return
		}
	}
	s.message = "There is nothing here to disarm."
}

// Descend moves the session one depth down. The delver must be
// standing on the down stairs.
func (s *Session) Descend(ctx context.Context) {
	level := s.Level()
	if level.GetTile(s.delver.X, s.delver.Y).Type != world.TileStairsDown {
		s.message = "There are no stairs down here."
		return
	}

	s.depth++
	next := s.levelAt(ctx, s.depth)
	x, y := next.StartPosition()
	s.delver = entity.NewDelver(x, y)
	s.message = fmt.Sprintf("You descend to depth %d.", s.depth)
}

// Ascend moves the session one depth up. The delver must be standing
// on the up stairs, and depth 1 is the top of the dungeon.
func (s *Session) Ascend(ctx context.Context) {
	level := s.Level()
	if level.GetTile(s.delver.X, s.delver.Y).Type != world.TileStairsUp {
		s.message = "There are no stairs up here."
		return
	}
	if s.depth == 1 {
		s.message = "The way to the surface is sealed."
		return
	}

	s.depth--
	prev := s.levelAt(ctx, s.depth)
	x, y, ok := prev.FindTileOfType(world.TileStairsDown)
	if !ok {
		x, y = prev.StartPosition()
	}
	s.delver = entity.NewDelver(x, y)
	s.message = fmt.Sprintf("You climb back to depth %d.", s.depth)
}

// trapName returns the display name for a trap kind.
func (s *Session) trapName(kind world.TrapKind) string {
	if def := s.traps.GetByID(kind.String()); def != nil {
		return def.Name
	}
	return "trap"
}
