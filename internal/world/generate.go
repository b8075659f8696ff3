package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/telemetry"
)

const (
	// Room placement
	minRooms      = 8
	maxRooms      = 12
	roomAttempts  = 150 // Placement attempts per room before skipping it
	roomGap       = 2   // Minimum wall tiles between two rooms
	edgeMarginPct = 8   // Rooms keep this percentage of the map away from the edge

	// Corridors and winding passages
	maxExtraCorridors  = 2
	minWindingPassages = 3
	maxWindingPassages = 6
	minWindingSteps    = 15
	maxWindingSteps    = 24
	windingMergeChance = 0.30 // Chance a winding step walks onto existing floor

	// Secret rooms
	minSecretRooms     = 1
	maxSecretRooms     = 3
	secretRoomAttempts = 50

	// Doors
	doorChance = 0.70 // Chance a validated seam actually gets a door

	// Dead ends
	minDeadEnds     = 2
	maxDeadEnds     = 5
	minDeadEndLen   = 3
	maxDeadEndLen   = 7
	deadEndAttempts = 50 // Attempts to find a corridor tile to stub from

	// Traps
	trapDensity      = 0.005 // Traps per tile of level area
	minTraps         = 5
	trapBaseChance   = 0.35
	trapCorridorBias = 1.5 // Multiplier for floor outside any room
	trapJunctionBias = 1.5 // Multiplier for corridor tiles with 3+ walkable exits
)

// generator carries the working state of one level build. It exists
// only for the duration of NewLevel; the finished Level keeps no
// reference to the random source.
type generator struct {
	level *Level
	rng   *rand.Rand
	traps *gamedata.TrapTable
}

// NewLevel builds a fully generated level for the given depth. The rng
// drives every placement decision, so two calls with identically seeded
// sources produce identical levels. A nil rng gets a time-seeded one.
//
// Generation always returns a usable level. On grids too small for any
// room the result is degenerate (no rooms, no stairs) but never nil.
func NewLevel(ctx context.Context, width, height, depth int, rng *rand.Rand) *Level {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()

	l := newBareLevel(width, height, depth)
	g := &generator{
		level: l,
		rng:   rng,
		traps: gamedata.MustLoadTrapTable(),
	}

	stages := []struct {
		name string
		run  func()
	}{
		{"level.place_rooms", g.placeRooms},
		{"level.carve_corridors", g.carveCorridors},
		{"level.carve_winding_passages", g.carveWindingPassages},
		{"level.place_secret_rooms", g.placeSecretRooms},
		{"level.place_doors", g.placeDoors},
		{"level.carve_dead_ends", g.carveDeadEnds},
		{"level.place_stairs", g.placeStairs},
		{"level.place_traps", g.placeTraps},
	}
	for _, stage := range stages {
		_, stageSpan := tracer.Start(ctx, stage.name)
		stage.run()
		stageSpan.End()
	}

	span.SetAttributes(
		attribute.Int("level.width", width),
		attribute.Int("level.height", height),
		attribute.Int("level.depth", depth),
		attribute.Int("level.room_count", len(l.Rooms)),
		attribute.Int("level.door_count", l.CountTiles(TileDoor)),
		attribute.Int("level.trap_count", l.CountTraps()),
		attribute.Int64("level.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return l
}

// randRange returns a uniform int in [min, max].
func (g *generator) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.rng.Intn(max-min+1)
}

// chance returns true with probability p.
func (g *generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

// carveFloor turns a wall tile inside the outer border into floor.
// Anything already carved is left untouched, so corridors never eat
// rooms, doors, or stairs.
func (g *generator) carveFloor(x, y int) {
	l := g.level
	if x <= 0 || x >= l.Width-1 || y <= 0 || y >= l.Height-1 {
		return
	}
	if l.tiles[y][x].Type != TileWall {
		return
	}
	l.tiles[y][x] = Tile{Type: TileFloor}
}
