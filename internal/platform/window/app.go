package window

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/beamfight/internal/core"
	"github.com/vovakirdan/beamfight/internal/registry"
)

// App implements ebiten.Game around a registry.Game.
// Ebiten calls Update at the configured TPS and Draw once per frame.
type App struct {
	game    registry.Game
	runtime core.RuntimeConfig
	events  registry.EventHandler
	logger  *log.Logger
	keys    keyState

	canvas   canvas
	state    core.GameState
	gameOver bool
}

func newApp(g registry.Game, opts registry.Options) *App {
	return &App{
		game:    g,
		runtime: opts.Runtime,
		events:  opts.Events,
		logger:  opts.Logger,
		keys:    ebitenKeys{},
		state:   g.State(),
	}
}

// Update advances the game by one tick.
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.logger.Info("window closed", "score", a.state.Score, "tick", a.state.Tick)
		return ebiten.Termination
	}
	return a.tick()
}

// tick runs one simulation step from the current key state.
func (a *App) tick() error {
	// The final frame was drawn once more after Done
	if a.state.Done {
		return ebiten.Termination
	}

	in, quit := readInput(a.keys)
	if quit {
		a.logger.Info("quit", "score", a.state.Score, "tick", a.state.Tick)
		return ebiten.Termination
	}

	res := a.game.Step(in)
	a.state = res.State

	if len(res.Events) > 0 {
		for _, e := range res.Events {
			a.logger.Debug("event", "kind", e.Kind, "x", e.X, "y", e.Y)
		}
		if a.events != nil {
			a.events.HandleEvents(res.Events)
		}
	}

	if res.State.GameOver && !a.gameOver {
		a.gameOver = true
		a.logger.Info("game over", "score", res.State.Score, "tick", res.State.Tick)
	}

	return nil
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.screen = screen
	a.game.Render(&a.canvas)
}

// Layout keeps the logical screen at the play-area size; ebiten scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.runtime.PlayW, a.runtime.PlayH
}

// State returns the last game state.
func (a *App) State() core.GameState {
	return a.state
}
