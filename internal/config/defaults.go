package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/beamfight.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/beamfight.yaml and is the base every loaded file is decoded onto.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1600,
			Height: 900,
			Title:  "Beam Fight",
		},
		TickRate:      50,
		GameOverPause: time.Second,
		Player: PlayerConfig{
			StartX:     900,
			StartY:     400,
			Step:       5,
			Scale:      2.0,
			Sprite:     "3.png",
			HitSprite:  "6.png",
			DeadSprite: "8.png",
		},
		Bombs: BombsConfig{
			Count:  5,
			Radius: 10,
			Speed:  5,
			Color:  RGB{255, 0, 0},
		},
		Beam: BeamConfig{
			Sprite:         "beam.png",
			Scale:          2.0,
			OffsetDivisor:  50,
			PruneOffscreen: true,
		},
		Explosion: ExplosionConfig{
			Sprite:   "explosion.gif",
			Lifetime: 12,
		},
		Score: ScoreConfig{
			Label:    "Score",
			X:        170,
			Y:        100,
			FontSize: 30,
			Color:    RGB{0, 0, 255},
		},
		Assets: AssetsConfig{
			Dir:        "",
			Background: "pg_bg.jpg",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
