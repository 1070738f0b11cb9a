package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/beamfight/internal/assets"
	"github.com/vovakirdan/beamfight/internal/core"
	"github.com/vovakirdan/beamfight/internal/registry"
)

// ID is the frontend identifier used with --frontend.
const ID = "terminal"

// Fallback terminal size when it cannot be queried.
const (
	defaultCols = 120
	defaultRows = 40
)

func init() {
	registry.Register(ID, func() registry.Frontend { return &Frontend{} })
}

// Frontend plays in the terminal, scaling the play area onto the character grid.
type Frontend struct{}

// ID returns the frontend identifier.
func (f *Frontend) ID() string {
	return ID
}

// Description returns a one-line summary for listings.
func (f *Frontend) Description() string {
	return "Terminal UI with glyph sprites (Bubble Tea)"
}

// Run loads the game with glyph assets and blocks until the game is done or
// the player quits.
func (f *Frontend) Run(g registry.Game, opts registry.Options) (core.GameState, error) {
	cfg := opts.Config

	if err := g.Load(NewAssets(assets.NewCatalog(cfg), cfg.Score.FontSize)); err != nil {
		return core.GameState{}, err
	}
	g.Reset(opts.Runtime)

	// Get terminal size
	width, height := defaultCols, defaultRows
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	p := tea.NewProgram(NewModel(g, opts, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return g.State(), fmt.Errorf("terminal: %w", err)
	}

	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return g.State(), nil
}
