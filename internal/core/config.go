package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this for play-area size, pacing and deterministic simulation.
type RuntimeConfig struct {
	PlayW    int   // Play-area width in pixels
	PlayH    int   // Play-area height in pixels
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		PlayW:    1600,
		PlayH:    900,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventBeamFired EventKind = iota
	EventBombDestroyed
	EventPlayerHit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBeamFired:
		return "beam_fired"
	case EventBombDestroyed:
		return "bomb_destroyed"
	case EventPlayerHit:
		return "player_hit"
	default:
		return "unknown"
	}
}

// Event is emitted by Step so frontends can react (sound, logging) without
// inspecting game internals.
type Event struct {
	Kind EventKind
	X, Y int // Where it happened, in play-area pixels
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Tick     uint64 // Simulation ticks advanced while running
	GameOver bool   // Whether the player has been hit
	Done     bool   // Whether the game-over pause elapsed and the loop should exit
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
