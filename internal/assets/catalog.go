// Package assets describes the sprites a beamfight session needs: which
// configured file name plays which role and how large its builtin stand-in is.
//
// Frontends use the catalog to draw procedural sprites when no asset directory
// is configured (window) or to pick glyphs for each sprite (terminal).
package assets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/beamfight/internal/config"
)

// ErrUnknownSprite is returned by Lookup for names that play no role.
var ErrUnknownSprite = errors.New("unknown sprite")

// Role identifies what a sprite depicts.
type Role int

const (
	RoleBird       Role = iota // Player, facing left
	RoleBirdHit                // Player after destroying a bomb
	RoleBirdDead               // Player on game over
	RoleBeam                   // Beam, pointing right
	RoleExplosion              // One explosion frame
	RoleBackground             // Full play-area backdrop
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleBird:
		return "bird"
	case RoleBirdHit:
		return "bird_hit"
	case RoleBirdDead:
		return "bird_dead"
	case RoleBeam:
		return "beam"
	case RoleExplosion:
		return "explosion"
	case RoleBackground:
		return "background"
	default:
		return "unknown"
	}
}

// Sprite is one catalog entry.
type Sprite struct {
	Name string
	Role Role
	W, H int // Builtin size in play-area pixels
}

// builtinSizes are the unscaled sizes of the procedural sprites.
var builtinSizes = map[Role][2]int{
	RoleBird:      {50, 50},
	RoleBirdHit:   {50, 50},
	RoleBirdDead:  {50, 50},
	RoleBeam:      {48, 16},
	RoleExplosion: {80, 80},
}

// Catalog maps configured sprite names to their roles.
type Catalog struct {
	sprites map[string]Sprite
}

// NewCatalog builds the catalog for a configuration. The background takes the
// full window size.
func NewCatalog(cfg config.Config) *Catalog {
	c := &Catalog{sprites: make(map[string]Sprite)}

	c.add(cfg.Player.Sprite, RoleBird)
	c.add(cfg.Player.HitSprite, RoleBirdHit)
	c.add(cfg.Player.DeadSprite, RoleBirdDead)
	c.add(cfg.Beam.Sprite, RoleBeam)
	c.add(cfg.Explosion.Sprite, RoleExplosion)
	if cfg.Assets.Background != "" {
		c.sprites[cfg.Assets.Background] = Sprite{
			Name: cfg.Assets.Background,
			Role: RoleBackground,
			W:    cfg.Window.Width,
			H:    cfg.Window.Height,
		}
	}

	return c
}

// add registers name unless an earlier role already claimed it.
func (c *Catalog) add(name string, role Role) {
	if _, exists := c.sprites[name]; exists {
		return
	}
	size := builtinSizes[role]
	c.sprites[name] = Sprite{Name: name, Role: role, W: size[0], H: size[1]}
}

// Lookup returns the entry for a sprite name.
func (c *Catalog) Lookup(name string) (Sprite, error) {
	s, ok := c.sprites[name]
	if !ok {
		return Sprite{}, fmt.Errorf("%w: %q", ErrUnknownSprite, name)
	}
	return s, nil
}

// List returns all entries sorted by name.
func (c *Catalog) List() []Sprite {
	result := make([]Sprite, 0, len(c.sprites))
	for _, s := range c.sprites {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
