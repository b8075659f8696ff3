package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/telemetry"
	"github.com/samdwyer/delvegen/internal/ui"
)

// Game ties the session to the terminal screen.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	renderer := ui.NewRenderer(screen, gamedata.MustLoadTileTheme(), gamedata.MustLoadTrapTable())

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: renderer,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	g.session = NewSession(ctx, g.cfg)

	level := g.session.Level()
	startX, startY := g.session.Delver().Position()
	initSpan.SetAttributes(
		attribute.Int64("session.seed", g.session.Seed()),
		attribute.Int("level.rooms", len(level.Rooms)),
		attribute.Int("delver.start_x", startX),
		attribute.Int("delver.start_y", startY),
	)
	initSpan.End()

	for g.running {
		g.renderer.Render(g.session.Level(), g.session.Delver(), g.session.Message())
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.session.MovePlayer(0, -1)
	case tcell.KeyDown:
		g.session.MovePlayer(0, 1)
	case tcell.KeyLeft:
		g.session.MovePlayer(-1, 0)
	case tcell.KeyRight:
		g.session.MovePlayer(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'h':
			g.session.MovePlayer(-1, 0)
		case 'j':
			g.session.MovePlayer(0, 1)
		case 'k':
			g.session.MovePlayer(0, -1)
		case 'l':
			g.session.MovePlayer(1, 0)
		case '>':
			g.session.Descend(ctx)
		case '<':
			g.session.Ascend(ctx)
		case 'd':
			g.session.DisarmTrap()
		}
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
