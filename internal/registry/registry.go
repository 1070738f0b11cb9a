// Package registry provides a global registry for frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beamfight/internal/config"
	"github.com/vovakirdan/beamfight/internal/core"
)

// Game is the interface frontends drive.
// Games contain pure logic with no external dependencies (no ebiten, no Bubble Tea).
// The frontend handles input mapping, timing, assets and drawing.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Load prepares sprites through the frontend's assets.
	// Called once before the first Reset.
	Load(a core.Assets) error

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides play-area dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame onto the canvas.
	Render(dst core.Canvas)

	// State returns the current game state (score, game over, done).
	State() core.GameState
}

// EventHandler reacts to events emitted by Step, e.g. by playing sounds.
type EventHandler interface {
	HandleEvents(events []core.Event)
}

// Options carries everything a frontend needs besides the game itself.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Events  EventHandler // May be nil
}

// Frontend presents a game and feeds it input until it is done or the player quits.
type Frontend interface {
	// ID returns the identifier used with --frontend.
	ID() string

	// Description returns a one-line summary for listings.
	Description() string

	// Run loads, resets and drives the game. It returns the last game state.
	Run(g Game, opts Options) (core.GameState, error)
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID          string
	Description string
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f

	// Get description by creating a temporary instance
	descriptions[id] = f().Description()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:          id,
			Description: descriptions[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new frontend by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
