// Package config provides YAML-based configuration loading, difficulty presets
// and validation for beamfight.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/vovakirdan/beamfight/internal/core"
)

// Config contains all configuration for a beamfight session.
type Config struct {
	Window        WindowConfig    `yaml:"window"`
	TickRate      int             `yaml:"tick_rate"`
	GameOverPause time.Duration   `yaml:"game_over_pause"`
	Player        PlayerConfig    `yaml:"player"`
	Bombs         BombsConfig     `yaml:"bombs"`
	Beam          BeamConfig      `yaml:"beam"`
	Explosion     ExplosionConfig `yaml:"explosion"`
	Score         ScoreConfig     `yaml:"score"`
	Assets        AssetsConfig    `yaml:"assets"`
	Audio         AudioConfig     `yaml:"audio"`
}

// WindowConfig defines the play area and window caption.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig defines the controlled character.
type PlayerConfig struct {
	StartX     int     `yaml:"start_x"`
	StartY     int     `yaml:"start_y"`
	Step       int     `yaml:"step"`  // Pixels moved per held direction key per tick
	Scale      float64 `yaml:"scale"` // Applied to every player sprite
	Sprite     string  `yaml:"sprite"`
	HitSprite  string  `yaml:"hit_sprite"`
	DeadSprite string  `yaml:"dead_sprite"`
}

// BombsConfig defines the bouncing projectiles.
type BombsConfig struct {
	Count  int `yaml:"count"`
	Radius int `yaml:"radius"`
	Speed  int `yaml:"speed"` // Initial velocity is (+speed, +speed)
	Color  RGB `yaml:"color"`
}

// BeamConfig defines fired beams.
type BeamConfig struct {
	Sprite         string  `yaml:"sprite"`
	Scale          float64 `yaml:"scale"`
	OffsetDivisor  int     `yaml:"offset_divisor"`  // Spawn offset is player origin * direction / divisor
	PruneOffscreen bool    `yaml:"prune_offscreen"` // Drop beams that left the play area
}

// ExplosionConfig defines the transient effect spawned on a hit.
type ExplosionConfig struct {
	Sprite   string `yaml:"sprite"`
	Lifetime int    `yaml:"lifetime"` // In ticks
}

// ScoreConfig defines the score display.
type ScoreConfig struct {
	Label    string `yaml:"label"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	FontSize int    `yaml:"font_size"`
	Color    RGB    `yaml:"color"`
}

// AssetsConfig locates image resources.
// An empty Dir selects the builtin procedural sprites.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Background string `yaml:"background"`
}

// AudioConfig controls sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// RGB is an opaque color written as [r, g, b] in YAML.
type RGB [3]uint8

// RGBA converts to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// Runtime derives the engine's runtime configuration.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		PlayW:    c.Window.Width,
		PlayH:    c.Window.Height,
		TickRate: c.TickRate,
		Seed:     seed,
	}
}

// PauseTicks converts the game-over pause into whole ticks, rounded.
func (c Config) PauseTicks() int {
	return int((c.GameOverPause*time.Duration(c.TickRate) + time.Second/2) / time.Second)
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	case c.GameOverPause < 0:
		return fmt.Errorf("%w: game_over_pause must not be negative", ErrInvalid)
	case c.Player.Step <= 0:
		return fmt.Errorf("%w: player.step must be positive, got %d", ErrInvalid, c.Player.Step)
	case c.Player.Scale <= 0 || c.Beam.Scale <= 0:
		return fmt.Errorf("%w: sprite scales must be positive", ErrInvalid)
	case c.Player.StartX < 0 || c.Player.StartX > c.Window.Width ||
		c.Player.StartY < 0 || c.Player.StartY > c.Window.Height:
		return fmt.Errorf("%w: player start (%d, %d) is outside the play area", ErrInvalid, c.Player.StartX, c.Player.StartY)
	case c.Bombs.Count < 0:
		return fmt.Errorf("%w: bombs.count must not be negative, got %d", ErrInvalid, c.Bombs.Count)
	case c.Bombs.Radius <= 0:
		return fmt.Errorf("%w: bombs.radius must be positive, got %d", ErrInvalid, c.Bombs.Radius)
	case c.Beam.OffsetDivisor == 0:
		return fmt.Errorf("%w: beam.offset_divisor must not be zero", ErrInvalid)
	case c.Explosion.Lifetime <= 0:
		return fmt.Errorf("%w: explosion.lifetime must be positive, got %d", ErrInvalid, c.Explosion.Lifetime)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %g", ErrInvalid, c.Audio.Volume)
	case c.Player.Sprite == "" || c.Player.HitSprite == "" || c.Player.DeadSprite == "" ||
		c.Beam.Sprite == "" || c.Explosion.Sprite == "":
		return fmt.Errorf("%w: sprite names must not be empty", ErrInvalid)
	}
	return nil
}
