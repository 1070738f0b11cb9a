package beamfight

// Snapshot contains the complete simulation state for replay and determinism tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	State     string
	Score     int
	PauseLeft int

	PlayerX int
	PlayerY int
	Facing  int

	// Each bomb is 4 ints: X, Y, VX, VY
	BombData []int

	// Each beam is 4 ints: X, Y, VX, VY
	BeamData []int

	// Each explosion is 3 ints: X, Y, Life
	ExplosionData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bombData := make([]int, 0, len(g.bombs)*4)
	for _, b := range g.bombs {
		bombData = append(bombData, b.rect.X, b.rect.Y, b.vel.X, b.vel.Y)
	}

	beamData := make([]int, 0, len(g.beams)*4)
	for _, b := range g.beams {
		beamData = append(beamData, b.rect.X, b.rect.Y, b.vel.X, b.vel.Y)
	}

	explosionData := make([]int, 0, len(g.explosions)*3)
	for _, e := range g.explosions {
		explosionData = append(explosionData, e.rect.X, e.rect.Y, e.life)
	}

	return Snapshot{
		Tick:          g.tickCount,
		State:         g.state.String(),
		Score:         g.score.Count(),
		PauseLeft:     g.pauseLeft,
		PlayerX:       g.player.rect.X,
		PlayerY:       g.player.rect.Y,
		Facing:        int(g.player.facing),
		BombData:      bombData,
		BeamData:      beamData,
		ExplosionData: explosionData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PauseLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Facing)    //#nosec G115 -- hash computation

	for _, data := range [][]int{snap.BombData, snap.BeamData, snap.ExplosionData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	return h
}
