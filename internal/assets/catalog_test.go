package assets

import (
	"errors"
	"testing"

	"github.com/vovakirdan/beamfight/internal/config"
)

func TestCatalogDefaultNames(t *testing.T) {
	c := NewCatalog(config.Default())

	tests := []struct {
		name  string
		role  Role
		wantW int
		wantH int
	}{
		{"3.png", RoleBird, 50, 50},
		{"6.png", RoleBirdHit, 50, 50},
		{"8.png", RoleBirdDead, 50, 50},
		{"beam.png", RoleBeam, 48, 16},
		{"explosion.gif", RoleExplosion, 80, 80},
		{"pg_bg.jpg", RoleBackground, 1600, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := c.Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.name, err)
			}
			if s.Role != tt.role {
				t.Errorf("Role = %v, want %v", s.Role, tt.role)
			}
			if s.W != tt.wantW || s.H != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", s.W, s.H, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCatalogUnknownName(t *testing.T) {
	c := NewCatalog(config.Default())

	_, err := c.Lookup("missing.png")
	if !errors.Is(err, ErrUnknownSprite) {
		t.Errorf("Lookup() error = %v, want ErrUnknownSprite", err)
	}
}

func TestCatalogFollowsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Beam.Sprite = "laser.png"
	cfg.Assets.Background = ""
	cfg.Window.Width = 800

	c := NewCatalog(cfg)

	if s, err := c.Lookup("laser.png"); err != nil || s.Role != RoleBeam {
		t.Errorf("Lookup(laser.png) = %+v, %v; want beam", s, err)
	}
	if _, err := c.Lookup("beam.png"); err == nil {
		t.Error("the default beam name should no longer be known")
	}
	if _, err := c.Lookup("pg_bg.jpg"); err == nil {
		t.Error("no background should be registered")
	}
	if len(c.List()) != 5 {
		t.Errorf("List() has %d entries, want 5", len(c.List()))
	}
}

func TestCatalogSharedNameKeepsFirstRole(t *testing.T) {
	cfg := config.Default()
	cfg.Player.HitSprite = cfg.Player.Sprite

	c := NewCatalog(cfg)

	s, err := c.Lookup(cfg.Player.Sprite)
	if err != nil {
		t.Fatal(err)
	}
	if s.Role != RoleBird {
		t.Errorf("Role = %v, want bird", s.Role)
	}
}

func TestCatalogListSorted(t *testing.T) {
	list := NewCatalog(config.Default()).List()

	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("List() not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
}
