// Package window provides the graphical frontend, built on ebiten.
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/beamfight/internal/assets"
	"github.com/vovakirdan/beamfight/internal/core"
	"github.com/vovakirdan/beamfight/internal/registry"
)

// ID is the frontend identifier used with --frontend.
const ID = "window"

func init() {
	registry.Register(ID, func() registry.Frontend { return &Frontend{} })
}

// Frontend opens a desktop window sized to the play area.
type Frontend struct{}

// ID returns the frontend identifier.
func (f *Frontend) ID() string {
	return ID
}

// Description returns a one-line summary for listings.
func (f *Frontend) Description() string {
	return "Desktop window with sprites and sound (ebiten)"
}

// Run loads the game's sprites, opens the window and blocks until the game
// is done or the player quits.
func (f *Frontend) Run(g registry.Game, opts registry.Options) (core.GameState, error) {
	cfg := opts.Config

	a, err := NewAssets(cfg.Assets.Dir, assets.NewCatalog(cfg), cfg.Score.FontSize)
	if err != nil {
		return core.GameState{}, err
	}
	if err := g.Load(a); err != nil {
		return core.GameState{}, err
	}
	g.Reset(opts.Runtime)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.Runtime.TickRate)

	app := newApp(g, opts)
	opts.Logger.Debug("window opened", "width", cfg.Window.Width, "height", cfg.Window.Height, "tps", opts.Runtime.TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return app.State(), fmt.Errorf("window: %w", err)
	}
	return app.State(), nil
}
