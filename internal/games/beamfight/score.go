package beamfight

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/beamfight/internal/core"
)

// Score counts destroyed bombs and caches its rendered text.
type Score struct {
	count    int
	label    string
	color    color.RGBA
	visual   core.Visual
	rendered int // Count the cached visual shows; -1 when stale
}

func newScore(label string, c color.RGBA) *Score {
	return &Score{label: label, color: c, rendered: -1}
}

// Increment adds one point.
func (s *Score) Increment() {
	s.count++
}

// Count returns the current score.
func (s *Score) Count() int {
	return s.count
}

// Text returns the display string for the current count.
func (s *Score) Text() string {
	return fmt.Sprintf("%s: %d", s.label, s.count)
}

// Render returns the score text visual, re-rendering only when the count changed.
func (s *Score) Render(a core.Assets) core.Visual {
	if s.visual == nil || s.rendered != s.count {
		s.visual = a.RenderText(s.Text(), s.color)
		s.rendered = s.count
	}
	return s.visual
}
