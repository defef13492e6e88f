package game

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cbodonnell/pong/client/fonts"
	"github.com/cbodonnell/pong/client/input"
	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/pkg/config"
	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/scheduler"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// maxCatchUp is how far the loop may fall behind the clock before missed
// ticks are skipped instead of replayed.
const maxCatchUp = 100 * time.Millisecond

// Hints shown under the main message.
var DefaultHints = map[types.GameState]string{
	types.GameStateNotStarted: "Press SPACE to start",
	types.GameStatePaused:     "Press P to resume",
	types.GameStateMatchOver:  "Press SPACE to play again or C to copy the result",
}

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// loop is the game loop driven by this game.
	loop *game.GameLoop
	// scheduler runs the loop's ticks from Update.
	scheduler *scheduler.Scheduler
	// renderer holds the last frame drawn by the loop.
	renderer *render.Renderer
	// arena is the logical screen size.
	arena game.Arena
	// keys collects key transitions each frame.
	keys input.KeyTransitions
	// focused is whether the window had focus on the last update.
	focused bool
	// blurred is whether the loop was paused by losing focus.
	blurred bool
	// copyText writes to the system clipboard.
	copyText func(string) error
}

// Controls are the control inputs for one frame.
type Controls struct {
	Start bool
	Pause bool
	Copy  bool
}

type NewGameOptions struct {
	Debug     bool
	Config    config.Config
	Fonts     *fonts.Cache
	Scheduler *scheduler.Scheduler
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.Fonts == nil {
		return nil, fmt.Errorf("font cache is required")
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = scheduler.New(scheduler.RealClock{})
	}
	sched.SetMaxLag(maxCatchUp)

	renderer := render.NewRenderer(opts.Fonts, opts.Config.Colors.Background)
	loop, err := game.NewGameLoop(game.NewGameLoopOptions{
		Config:    opts.Config,
		Renderer:  renderer,
		Scheduler: sched,
		Hints:     DefaultHints,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game loop: %v", err)
	}

	return &Game{
		debug:     opts.Debug,
		loop:      loop,
		scheduler: sched,
		renderer:  renderer,
		arena:     loop.Arena(),
		focused:   true,
		copyText:  clipboard.WriteAll,
	}, nil
}

func (g *Game) Update() error {
	g.setFocused(ebiten.IsFocused())

	if g.focused {
		g.handleControls(Controls{
			Start: input.IsPositiveJustPressed(),
			Pause: input.IsPauseJustPressed(),
			Copy:  input.IsCopyJustPressed(),
		})

		pressed, released := g.keys.Update()
		g.forwardKeys(pressed, released)
	}

	g.scheduler.RunPending()
	return nil
}

// forwardKeys passes transitions of paddle keys to the loop's input
// controller. Control keys never reach it.
func (g *Game) forwardKeys(pressed, released []ebiten.Key) {
	controller := g.loop.Input()
	for _, k := range pressed {
		if name := input.KeyName(k); controller.IsBound(name) {
			controller.KeyDown(name)
		}
	}
	for _, k := range released {
		if name := input.KeyName(k); controller.IsBound(name) {
			controller.KeyUp(name)
		}
	}
}

// setFocused pauses the loop when the window loses focus and resumes it on
// return, unless it was already paused by the player.
func (g *Game) setFocused(focused bool) {
	if focused == g.focused {
		return
	}
	g.focused = focused

	if !focused {
		// key releases are not seen while unfocused
		g.loop.Input().Reset()
		g.blurred = g.loop.Blur()
		log.Debug("Window lost focus, paused: %t", g.blurred)
		return
	}

	if g.blurred {
		g.loop.Focus()
		g.blurred = false
	}
	log.Debug("Window focused")
}

func (g *Game) handleControls(c Controls) {
	if c.Start {
		switch g.loop.State() {
		case types.GameStateNotStarted:
			g.loop.Start()
		case types.GameStateMatchOver:
			g.loop.Restart()
			g.loop.Start()
		}
	}

	if c.Pause {
		switch g.loop.State() {
		case types.GameStateRunning, types.GameStateRallyReset:
			g.loop.Pause()
		case types.GameStatePaused:
			g.loop.Resume()
		}
		g.blurred = false
	}

	if c.Copy {
		result, ok := g.loop.Result()
		if !ok {
			return
		}
		if err := g.copyText(result.String()); err != nil {
			log.Warn("Failed to copy result to clipboard: %v", err)
			return
		}
		log.Info("Copied result to clipboard: %s", result)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Present(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	s := g.loop.Snapshot()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   State: %s", s.State))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n   Ticks: %d Rally: %d", s.Ticks, s.Rally))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n\n   Ball: (%0.1f, %0.1f) v=(%0.2f, %0.2f)", s.Ball.Position.X, s.Ball.Position.Y, s.Ball.Velocity.X, s.Ball.Velocity.Y))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.arena.Width), int(g.arena.Height)
}
