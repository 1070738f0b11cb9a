package beamfight

import (
	"testing"

	"github.com/vovakirdan/beamfight/internal/core"
)

func TestExplosionLifecycle(t *testing.T) {
	var variants [4]core.Visual
	for i := range variants {
		variants[i] = &fakeVisual{name: string(rune('a' + i)), w: 60, h: 60}
	}

	e := newExplosion(300, 200, &variants, 12)

	if e.Rect() != core.NewRect(270, 170, 60, 60) {
		t.Errorf("Rect() = %+v, want centered on (300, 200)", e.Rect())
	}
	if e.visual != variants[0] {
		t.Error("new explosion should show the first variant")
	}

	seen := make(map[core.Visual]bool)
	for tick := 1; tick <= 12; tick++ {
		if e.Expired() {
			t.Fatalf("expired early at tick %d", tick)
		}
		e.Update()
		if e.Life() != 12-tick {
			t.Errorf("tick %d: Life() = %d, want %d", tick, e.Life(), 12-tick)
		}
		if e.Life() > 0 && e.visual != variants[e.Life()%4] {
			t.Errorf("tick %d: wrong variant for life %d", tick, e.Life())
		}
		seen[e.visual] = true
	}

	if !e.Expired() {
		t.Error("explosion should expire after its lifetime")
	}
	if len(seen) != 4 {
		t.Errorf("cycled through %d variants, want 4", len(seen))
	}
	// The last shown frame stays once life reaches zero
	if e.visual != variants[1] {
		t.Error("expired explosion should keep the life=1 variant")
	}
}

func TestExplosionSpritesFlipOrder(t *testing.T) {
	s := testSprites(t)

	want := []string{
		"explosion.gif|flip(true,true)",
		"explosion.gif|flip(true,false)",
		"explosion.gif|flip(false,true)",
		"explosion.gif|flip(false,false)",
	}
	for i, name := range want {
		if got := s.Explosion[i].(*fakeVisual).name; got != name {
			t.Errorf("Explosion[%d] = %q, want %q", i, got, name)
		}
	}
}
