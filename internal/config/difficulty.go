package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Leave the loaded config untouched
)

// ParsePreset converts a flag value to a preset. Empty means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Only bomb count and speed change; everything else keeps its loaded value.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Bombs.Count = 3
		cfg.Bombs.Speed = 4
	case DifficultyNormal:
		cfg.Bombs.Count = 5
		cfg.Bombs.Speed = 5
	case DifficultyHard:
		cfg.Bombs.Count = 8
		cfg.Bombs.Speed = 7
	}
}
