package beamfight

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/vovakirdan/beamfight/internal/config"
	"github.com/vovakirdan/beamfight/internal/core"
)

// fakeVisual records how it was produced so tests can check transforms.
type fakeVisual struct {
	name string
	w, h int
}

func (v *fakeVisual) Size() (int, int) { return v.w, v.h }

// fakeAssets implements core.Assets with sizes only.
type fakeAssets struct {
	sizes   map[string][2]int
	texts   []string // Every RenderText call, in order
	circles int
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{
		sizes: map[string][2]int{
			"3.png":         {50, 50},
			"6.png":         {50, 50},
			"8.png":         {50, 50},
			"beam.png":      {40, 10},
			"explosion.gif": {60, 60},
			"pg_bg.jpg":     {1600, 900},
		},
	}
}

func (a *fakeAssets) LoadImage(name string) (core.Visual, error) {
	size, ok := a.sizes[name]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", name)
	}
	return &fakeVisual{name: name, w: size[0], h: size[1]}, nil
}

func (a *fakeAssets) RotateScale(v core.Visual, degrees, scale float64) core.Visual {
	src := v.(*fakeVisual)
	w, h := core.RotatedBounds(src.w, src.h, degrees, scale)
	return &fakeVisual{name: fmt.Sprintf("%s|rot(%g,%g)", src.name, degrees, scale), w: w, h: h}
}

func (a *fakeAssets) Flip(v core.Visual, horizontal, vertical bool) core.Visual {
	src := v.(*fakeVisual)
	return &fakeVisual{name: fmt.Sprintf("%s|flip(%t,%t)", src.name, horizontal, vertical), w: src.w, h: src.h}
}

func (a *fakeAssets) Circle(radius int, c color.RGBA) core.Visual {
	a.circles++
	return &fakeVisual{name: fmt.Sprintf("circle(%d,%v)", radius, c), w: 2 * radius, h: 2 * radius}
}

func (a *fakeAssets) RenderText(text string, c color.RGBA) core.Visual {
	a.texts = append(a.texts, text)
	return &fakeVisual{name: "text:" + text, w: 10 * len(text), h: 20}
}

// drawCall is one recorded Canvas.DrawImage.
type drawCall struct {
	name string
	x, y int
}

type fakeCanvas struct {
	calls []drawCall
}

func (c *fakeCanvas) DrawImage(v core.Visual, x, y int) {
	c.calls = append(c.calls, drawCall{name: v.(*fakeVisual).name, x: x, y: y})
}

// testRuntime is the default play area with a fixed seed.
func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{PlayW: 1600, PlayH: 900, TickRate: 50, Seed: 12345}
}

// newTestGame builds a loaded and reset game. mutate may adjust the config first.
func newTestGame(t *testing.T, mutate func(*config.Config)) (*Game, *fakeAssets) {
	t.Helper()

	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}

	a := newFakeAssets()
	g := New(cfg)
	if err := g.Load(a); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	g.Reset(cfg.Runtime(testRuntime().Seed))
	return g, a
}

// noBombs is a config mutator for tests that place bombs by hand.
func noBombs(cfg *config.Config) {
	cfg.Bombs.Count = 0
}

// placeBomb adds a bomb with the given rect and velocity.
func placeBomb(g *Game, r core.Rect, vel core.Vec) *Bomb {
	b := &Bomb{rect: r, vel: vel, visual: g.sprites.Bomb}
	g.bombs = append(g.bombs, b)
	return b
}

// placeBeam adds a beam with the given rect and velocity.
func placeBeam(g *Game, r core.Rect, vel core.Vec) *Beam {
	b := &Beam{rect: r, vel: vel, visual: g.sprites.Beam[DirRight]}
	g.beams = append(g.beams, b)
	return b
}

// held builds an input frame with the given actions held.
func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
