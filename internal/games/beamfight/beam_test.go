package beamfight

import (
	"math"
	"testing"

	"github.com/vovakirdan/beamfight/internal/core"
)

func TestBeamSpawn(t *testing.T) {
	tests := []struct {
		name     string
		rect     core.Rect
		facing   Direction
		heading  core.Vec
		wantRect core.Rect
	}{
		{
			name:     "facing right from start",
			rect:     core.NewRect(850, 350, 100, 100),
			facing:   DirRight,
			heading:  core.Vec{X: 5, Y: 0},
			wantRect: core.NewRect(945, 390, 80, 20), // center (900 + 850*5/50, 400)
		},
		{
			name:     "facing left from start",
			rect:     core.NewRect(850, 350, 100, 100),
			facing:   DirLeft,
			heading:  core.Vec{X: -5, Y: 0},
			wantRect: core.NewRect(775, 390, 80, 20), // center (900 - 85, 400)
		},
		{
			name:     "fractional offsets truncate toward zero",
			rect:     core.NewRect(7, 9, 100, 100),
			facing:   DirUpLeft,
			heading:  core.Vec{X: -5, Y: -5},
			wantRect: core.NewRect(21, 23, 71, 71), // center (int(57-0.7), int(59-0.9))
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSprites(t)
			p := newPlayer(s, 900, 400, 5)
			p.rect = tt.rect
			p.facing = tt.facing
			p.heading = tt.heading

			b := newBeam(p, s, 50)

			if b.Rect() != tt.wantRect {
				t.Errorf("Rect() = %+v, want %+v", b.Rect(), tt.wantRect)
			}
			if b.Velocity() != tt.heading {
				t.Errorf("Velocity() = %+v, want %+v", b.Velocity(), tt.heading)
			}
			if b.visual != s.Beam[tt.facing] {
				t.Errorf("visual is not the %v beam sprite", tt.facing)
			}
		})
	}
}

func TestBeamUpdateIgnoresBounds(t *testing.T) {
	b := &Beam{rect: core.NewRect(1590, 10, 80, 20), vel: core.Vec{X: 5, Y: -5}}

	for i := 0; i < 10; i++ {
		b.Update()
	}

	if b.Rect().X != 1640 || b.Rect().Y != -40 {
		t.Errorf("position = (%d, %d), want (1640, -40)", b.Rect().X, b.Rect().Y)
	}
	if b.Velocity() != (core.Vec{X: 5, Y: -5}) {
		t.Errorf("velocity changed to %+v", b.Velocity())
	}
}

func TestDirectionDegrees(t *testing.T) {
	tests := []struct {
		dir  Direction
		want float64
	}{
		{DirRight, 0},
		{DirUpRight, 45},
		{DirUp, 90},
		{DirUpLeft, 135},
		{DirLeft, 180},
		{DirDownLeft, -135},
		{DirDown, -90},
		{DirDownRight, -45},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Degrees(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Degrees() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		v      core.Vec
		want   Direction
		wantOK bool
	}{
		{core.Vec{X: 0, Y: 0}, 0, false},
		{core.Vec{X: 5, Y: 0}, DirRight, true},
		{core.Vec{X: 5, Y: -5}, DirUpRight, true},
		{core.Vec{X: 0, Y: -5}, DirUp, true},
		{core.Vec{X: -5, Y: -5}, DirUpLeft, true},
		{core.Vec{X: -5, Y: 0}, DirLeft, true},
		{core.Vec{X: -5, Y: 5}, DirDownLeft, true},
		{core.Vec{X: 0, Y: 5}, DirDown, true},
		{core.Vec{X: 5, Y: 5}, DirDownRight, true},
	}

	for _, tt := range tests {
		got, ok := DirectionOf(tt.v)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("DirectionOf(%+v) = %v, %v; want %v, %v", tt.v, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestBeamSpritesRotatedPerDirection(t *testing.T) {
	s := testSprites(t)

	// Horizontal beams keep the scaled size; vertical ones swap it
	for _, d := range []Direction{DirRight, DirLeft} {
		if w, h := s.Beam[d].Size(); w != 80 || h != 20 {
			t.Errorf("%v beam size = %dx%d, want 80x20", d, w, h)
		}
	}
	for _, d := range []Direction{DirUp, DirDown} {
		if w, h := s.Beam[d].Size(); w != 20 || h != 80 {
			t.Errorf("%v beam size = %dx%d, want 20x80", d, w, h)
		}
	}
	for _, d := range []Direction{DirUpRight, DirUpLeft, DirDownLeft, DirDownRight} {
		if w, h := s.Beam[d].Size(); w != 71 || h != 71 {
			t.Errorf("%v beam size = %dx%d, want 71x71", d, w, h)
		}
	}
}
