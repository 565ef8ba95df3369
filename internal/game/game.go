package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"bananalike/internal/dice"
	"bananalike/internal/gamemap"
	"bananalike/internal/generate"
	"bananalike/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Title names the window or terminal the game runs in.
const Title = "BananaLike"

// FrameInterval is the wall-clock period between ticks in terminal mode.
const FrameInterval = time.Second / 30

// Game runs a State on a tcell screen.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	state    *State
}

// New opens the controlling terminal and generates a map from seed.
// A zero seed picks a time-based one.
func New(ctx context.Context, seed int64) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(ctx, screen, seed), nil
}

// NewWithScreen runs on an already initialized screen, such as one backed
// by an SSH session or a simulation screen in tests.
func NewWithScreen(ctx context.Context, screen tcell.Screen, seed int64) *Game {
	screen.SetTitle(Title)
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))

	cfg := generate.DefaultConfig()
	state := NewState(ctx, cfg, dice.New(seed))
	log.Printf("generated %dx%d map with %d walls", cfg.Width, cfg.Height, state.Map().Count(gamemap.TileWall))

	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, cfg.Width, cfg.Height),
		state:    state,
	}
}

// State returns the session state.
func (g *Game) State() *State { return g.state }

// Run is the main loop. Input is read on its own goroutine and handed over a
// channel; every tick consumes at most one pending action. Returns when the
// player quits, the screen closes, or ctx is cancelled. The screen is
// finalized on return.
func (g *Game) Run(ctx context.Context) {
	defer g.screen.Fini()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	pending := ActionNone
	g.frame(ctx, ActionNone)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.renderer.Resize()
			case *tcell.EventKey:
				a := keyToAction(ev)
				if a == ActionQuit {
					return
				}
				if a != ActionNone {
					pending = a
				}
			}
		case <-ticker.C:
			g.frame(ctx, pending)
			pending = ActionNone
		}
	}
}

// frame runs one tick and flushes it to the terminal.
func (g *Game) frame(ctx context.Context, a Action) {
	g.state.Update(ctx, a)
	pos, ok := g.state.PlayerPosition()
	if ok {
		g.renderer.CenterOn(pos.X, pos.Y)
	}
	g.state.Draw(g.renderer)
	if ok {
		g.renderer.DrawStatus(Title, pos.X, pos.Y)
	}
	g.renderer.Show()
}
