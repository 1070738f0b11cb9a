package beamfight

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/beamfight/internal/core"
)

func TestNewBombWithinPlayArea(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v := &fakeVisual{name: "bomb", w: 20, h: 20}

	for i := 0; i < 200; i++ {
		b := newBomb(v, 10, 5, rng, 1600, 900)
		cx, cy := b.Rect().Center()
		if cx < 0 || cx > 1600 || cy < 0 || cy > 900 {
			t.Fatalf("bomb %d center (%d, %d) outside play area", i, cx, cy)
		}
		if b.Rect().W != 20 || b.Rect().H != 20 {
			t.Errorf("bomb size = %dx%d, want 20x20", b.Rect().W, b.Rect().H)
		}
		if b.Velocity() != (core.Vec{X: 5, Y: 5}) {
			t.Errorf("Velocity() = %+v, want {5 5}", b.Velocity())
		}
	}
}

func TestBombUpdate(t *testing.T) {
	tests := []struct {
		name    string
		start   core.Rect
		vel     core.Vec
		wantPos core.Vec
		wantVel core.Vec
	}{
		{"inside", core.NewRect(100, 100, 20, 20), core.Vec{X: 5, Y: 5}, core.Vec{X: 105, Y: 105}, core.Vec{X: 5, Y: 5}},
		{"flush right", core.NewRect(1580, 100, 20, 20), core.Vec{X: 5, Y: 5}, core.Vec{X: 1585, Y: 105}, core.Vec{X: 5, Y: 5}},
		{"past right", core.NewRect(1585, 100, 20, 20), core.Vec{X: 5, Y: 5}, core.Vec{X: 1580, Y: 105}, core.Vec{X: -5, Y: 5}},
		{"past bottom", core.NewRect(100, 885, 20, 20), core.Vec{X: 5, Y: 5}, core.Vec{X: 105, Y: 880}, core.Vec{X: 5, Y: -5}},
		{"past left", core.NewRect(-3, 100, 20, 20), core.Vec{X: -5, Y: 5}, core.Vec{X: 2, Y: 105}, core.Vec{X: 5, Y: 5}},
		{"past top", core.NewRect(100, -1, 20, 20), core.Vec{X: 5, Y: -5}, core.Vec{X: 105, Y: 4}, core.Vec{X: 5, Y: 5}},
		{"corner", core.NewRect(1585, 885, 20, 20), core.Vec{X: 5, Y: 5}, core.Vec{X: 1580, Y: 880}, core.Vec{X: -5, Y: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Bomb{rect: tt.start, vel: tt.vel}
			b.Update(1600, 900)

			if b.Rect().X != tt.wantPos.X || b.Rect().Y != tt.wantPos.Y {
				t.Errorf("position = (%d, %d), want (%d, %d)", b.Rect().X, b.Rect().Y, tt.wantPos.X, tt.wantPos.Y)
			}
			if b.Velocity() != tt.wantVel {
				t.Errorf("Velocity() = %+v, want %+v", b.Velocity(), tt.wantVel)
			}
		})
	}
}

func TestBombStaysNearPlayArea(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	v := &fakeVisual{name: "bomb", w: 20, h: 20}
	b := newBomb(v, 10, 5, rng, 1600, 900)

	for i := 0; i < 5000; i++ {
		b.Update(1600, 900)
		r := b.Rect()
		if r.X < -10-5 || r.Right() > 1600+10+5 || r.Y < -10-5 || r.Bottom() > 900+10+5 {
			t.Fatalf("tick %d: bomb escaped to %+v", i, r)
		}
	}
}
