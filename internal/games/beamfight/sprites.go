package beamfight

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/beamfight/internal/config"
	"github.com/vovakirdan/beamfight/internal/core"
)

// ErrAssetLoad is wrapped by every failure to load a visual resource.
// It is fatal: the game cannot start without its sprites.
var ErrAssetLoad = errors.New("asset load failure")

// Sprites holds every visual the game needs, prepared once at load time.
type Sprites struct {
	Background core.Visual // nil when no background is configured

	Player     [numDirections]core.Visual // Indexed by Direction
	PlayerHit  core.Visual
	PlayerDead core.Visual

	Beam      [numDirections]core.Visual // Beam rotated to each facing
	Explosion [4]core.Visual             // flip both, flip h, flip v, no flip
	Bomb      core.Visual
}

// LoadSprites loads and transforms all sprites through the frontend's assets.
func LoadSprites(a core.Assets, cfg config.Config) (*Sprites, error) {
	s := &Sprites{}

	load := func(name string) (core.Visual, error) {
		v, err := a.LoadImage(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAssetLoad, name, err)
		}
		return v, nil
	}

	if cfg.Assets.Background != "" {
		bg, err := load(cfg.Assets.Background)
		if err != nil {
			return nil, err
		}
		s.Background = bg
	}

	// The source image faces left; the right-facing variant is its mirror.
	base, err := load(cfg.Player.Sprite)
	if err != nil {
		return nil, err
	}
	left := a.RotateScale(base, 0, cfg.Player.Scale)
	right := a.Flip(left, true, false)

	s.Player[DirRight] = right
	s.Player[DirUpRight] = a.RotateScale(right, 45, 1.0)
	s.Player[DirUp] = a.RotateScale(right, 90, 1.0)
	s.Player[DirUpLeft] = a.RotateScale(left, -45, 1.0)
	s.Player[DirLeft] = left
	s.Player[DirDownLeft] = a.RotateScale(left, 45, 1.0)
	s.Player[DirDown] = a.RotateScale(right, -90, 1.0)
	s.Player[DirDownRight] = a.RotateScale(right, -45, 1.0)

	hit, err := load(cfg.Player.HitSprite)
	if err != nil {
		return nil, err
	}
	s.PlayerHit = a.RotateScale(hit, 0, cfg.Player.Scale)

	dead, err := load(cfg.Player.DeadSprite)
	if err != nil {
		return nil, err
	}
	s.PlayerDead = a.RotateScale(dead, 0, cfg.Player.Scale)

	beam, err := load(cfg.Beam.Sprite)
	if err != nil {
		return nil, err
	}
	for d := Direction(0); d < numDirections; d++ {
		s.Beam[d] = a.RotateScale(beam, d.Degrees(), cfg.Beam.Scale)
	}

	explosion, err := load(cfg.Explosion.Sprite)
	if err != nil {
		return nil, err
	}
	s.Explosion = [4]core.Visual{
		a.Flip(explosion, true, true),
		a.Flip(explosion, true, false),
		a.Flip(explosion, false, true),
		a.Flip(explosion, false, false),
	}

	s.Bomb = a.Circle(cfg.Bombs.Radius, cfg.Bombs.Color.RGBA())

	return s, nil
}
