// Package beamfight implements the beam fight arcade game: the player dodges
// bouncing bombs and destroys them with beams until a bomb touches them.
//
// The package is pure game logic. Frontends supply a core.Assets to build
// sprites, feed one core.InputFrame per tick to Step, and draw with Render.
package beamfight

import (
	"math/rand"

	"github.com/vovakirdan/beamfight/internal/config"
	"github.com/vovakirdan/beamfight/internal/core"
)

// ID is the identifier used in logs and on the command line.
const ID = "beamfight"

// State is the game's lifecycle state.
type State int

const (
	StateRunning  State = iota
	StateGameOver       // Terminal: the player was hit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game owns every entity collection and is their only mutator.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	rng     *rand.Rand

	assets  core.Assets
	sprites *Sprites

	player     *Player
	bombs      []*Bomb
	beams      []*Beam
	explosions []*Explosion
	score      *Score

	state     State
	pauseLeft int // Ticks left to hold the final frame after game over
	tickCount uint64
	events    []core.Event
}

// New creates a game for the given configuration.
// Load must be called before Reset.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Window.Title
}

// Load prepares every sprite through the frontend's assets.
// Failures wrap ErrAssetLoad.
func (g *Game) Load(a core.Assets) error {
	s, err := LoadSprites(a, g.cfg)
	if err != nil {
		return err
	}
	g.assets = a
	g.sprites = s
	return nil
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.sprites == nil {
		panic("beamfight: Reset called before Load")
	}

	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.player = newPlayer(g.sprites, g.cfg.Player.StartX, g.cfg.Player.StartY, g.cfg.Player.Step)

	g.bombs = make([]*Bomb, 0, g.cfg.Bombs.Count)
	for i := 0; i < g.cfg.Bombs.Count; i++ {
		g.bombs = append(g.bombs, newBomb(g.sprites.Bomb, g.cfg.Bombs.Radius, g.cfg.Bombs.Speed, g.rng, runtime.PlayW, runtime.PlayH))
	}
	g.beams = nil
	g.explosions = nil
	g.score = newScore(g.cfg.Score.Label, g.cfg.Score.Color.RGBA())

	g.state = StateRunning
	g.pauseLeft = 0
	g.tickCount = 0
	g.events = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.state == StateGameOver {
		// Hold the final frame; nothing moves
		if g.pauseLeft > 0 {
			g.pauseLeft--
		}
		return g.result()
	}

	// Fire presses queued since the last tick
	for i := in.Presses(core.ActionFire); i > 0; i-- {
		g.fire()
	}

	if g.checkPlayerHit() {
		return g.result()
	}

	g.resolveBeamHits()
	g.prune()

	g.player.Update(in, g.runtime.PlayW, g.runtime.PlayH)

	for _, b := range g.bombs {
		b.Update(g.runtime.PlayW, g.runtime.PlayH)
	}
	for _, b := range g.beams {
		b.Update()
	}
	for _, e := range g.explosions {
		e.Update()
	}

	g.tickCount++
	return g.result()
}

// fire appends a beam along the player's heading.
func (g *Game) fire() {
	b := newBeam(g.player, g.sprites, g.cfg.Beam.OffsetDivisor)
	g.beams = append(g.beams, b)
	cx, cy := b.rect.Center()
	g.emit(core.EventBeamFired, cx, cy)
}

// checkPlayerHit ends the game if any bomb overlaps the player.
func (g *Game) checkPlayerHit() bool {
	for _, b := range g.bombs {
		if g.player.rect.Intersects(b.rect) {
			g.player.SetVisual(PlayerVisualDead)
			g.state = StateGameOver
			g.pauseLeft = g.cfg.PauseTicks()
			cx, cy := g.player.rect.Center()
			g.emit(core.EventPlayerHit, cx, cy)
			return true
		}
	}
	return false
}

// resolveBeamHits destroys every overlapping (bomb, beam) pair. Each bomb and
// each beam takes part in at most one hit per tick: pairs are matched in bomb
// order, then beam order, and the first match wins.
func (g *Game) resolveBeamHits() {
	if len(g.bombs) == 0 || len(g.beams) == 0 {
		return
	}

	bombHit := make([]bool, len(g.bombs))
	beamHit := make([]bool, len(g.beams))
	hits := 0

	for i, bomb := range g.bombs {
		for j, beam := range g.beams {
			if beamHit[j] || !bomb.rect.Intersects(beam.rect) {
				continue
			}
			bombHit[i] = true
			beamHit[j] = true
			hits++

			g.player.SetVisual(PlayerVisualHit)
			cx, cy := bomb.rect.Center()
			g.explosions = append(g.explosions, newExplosion(cx, cy, &g.sprites.Explosion, g.cfg.Explosion.Lifetime))
			g.score.Increment()
			g.emit(core.EventBombDestroyed, cx, cy)
			break
		}
	}

	if hits == 0 {
		return
	}
	g.bombs = removeMarked(g.bombs, bombHit)
	g.beams = removeMarked(g.beams, beamHit)
}

// prune drops expired explosions and, when enabled, beams that left the play area.
func (g *Game) prune() {
	live := g.explosions[:0]
	for _, e := range g.explosions {
		if !e.Expired() {
			live = append(live, e)
		}
	}
	clear(g.explosions[len(live):])
	g.explosions = live

	if !g.cfg.Beam.PruneOffscreen {
		return
	}
	area := core.NewRect(0, 0, g.runtime.PlayW, g.runtime.PlayH)
	kept := g.beams[:0]
	for _, b := range g.beams {
		if b.rect.Intersects(area) {
			kept = append(kept, b)
		}
	}
	clear(g.beams[len(kept):])
	g.beams = kept
}

// removeMarked returns items without the entries whose mark is set.
func removeMarked[T any](items []*T, marked []bool) []*T {
	kept := items[:0]
	for i, it := range items {
		if !marked[i] {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

func (g *Game) emit(kind core.EventKind, x, y int) {
	g.events = append(g.events, core.Event{Kind: kind, X: x, Y: y})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// Render draws the current frame: background, player, bombs, beams,
// explosions, then the score on top.
func (g *Game) Render(dst core.Canvas) {
	if g.sprites.Background != nil {
		dst.DrawImage(g.sprites.Background, 0, 0)
	}

	dst.DrawImage(g.player.visual, g.player.rect.X, g.player.rect.Y)
	for _, b := range g.bombs {
		dst.DrawImage(b.visual, b.rect.X, b.rect.Y)
	}
	for _, b := range g.beams {
		dst.DrawImage(b.visual, b.rect.X, b.rect.Y)
	}
	for _, e := range g.explosions {
		dst.DrawImage(e.visual, e.rect.X, e.rect.Y)
	}

	dst.DrawImage(g.score.Render(g.assets), g.cfg.Score.X, g.cfg.Score.Y)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Count(),
		Tick:     g.tickCount,
		GameOver: g.state == StateGameOver,
		Done:     g.state == StateGameOver && g.pauseLeft == 0,
	}
}

// Phase returns the lifecycle state.
func (g *Game) Phase() State {
	return g.state
}

// ScoreText returns the score line as shown on screen.
func (g *Game) ScoreText() string {
	return g.score.Text()
}
