package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/beamfight/internal/core"
)

// keyState abstracts ebiten's global keyboard state.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// heldKeys maps keys that act while held.
var heldKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
}

// quitKeys end the session on press.
var quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}

// readInput builds the input frame for one tick.
func readInput(ks keyState) (in core.InputFrame, quit bool) {
	in = core.NewInputFrame()

	for _, k := range quitKeys {
		if ks.JustPressed(k) {
			return in, true
		}
	}

	for _, h := range heldKeys {
		if ks.Pressed(h.key) {
			in.Set(h.action)
		}
	}
	if ks.JustPressed(ebiten.KeySpace) {
		in.Press(core.ActionFire)
	}

	return in, false
}
