package game

import (
	"github.com/vovakirdan/blockout/internal/config"
	"github.com/vovakirdan/blockout/internal/core"
)

// Particle is one ephemeral debris bit from a destroyed brick.
type Particle struct {
	X, Y   Fixed
	VX, VY Fixed
	TTL    int // Remaining lifetime in ticks
	Color  core.Color
}

// Particles drives the brick-destruction debris bursts. Spawning and
// velocities are drawn from a deterministic RNG so replays stay bit-exact.
type Particles struct {
	Bits []Particle
	RNG  *SimpleRNG

	cfg config.ParticlesConfig
}

// NewParticles creates a particle system with the given seed and tunables.
func NewParticles(seed int64, cfg config.ParticlesConfig) *Particles {
	return &Particles{
		Bits: make([]Particle, 0, 64),
		RNG:  NewSimpleRNG(seed),
		cfg:  cfg,
	}
}

// Reset clears all live particles and reseeds the RNG.
func (ps *Particles) Reset(seed int64) {
	ps.Bits = ps.Bits[:0]
	ps.RNG = NewSimpleRNG(seed)
}

// Emit spawns a burst at the given cell position in the given color.
func (ps *Particles) Emit(cellX, cellY int, c core.Color) {
	maxV := ps.cfg.MaxSpeed
	for n := 0; n < ps.cfg.BurstSize; n++ {
		vx := Fixed(ps.RNG.Range(-maxV, maxV))
		vy := Fixed(ps.RNG.Range(-maxV, maxV/3)) // Biased upward, like a pop
		ps.Bits = append(ps.Bits, Particle{
			X:     ToFixed(cellX),
			Y:     ToFixed(cellY),
			VX:    vx,
			VY:    vy,
			TTL:   ps.RNG.Range(ps.cfg.MinTTL, ps.cfg.MaxTTL),
			Color: c,
		})
	}
}

// Update advances all particles by one tick and drops the expired ones.
func (ps *Particles) Update() {
	gravity := Fixed(ps.cfg.Gravity)

	live := ps.Bits[:0]
	for _, p := range ps.Bits {
		p.TTL--
		if p.TTL <= 0 {
			continue
		}
		p.VY = p.VY.Add(gravity)
		p.X = p.X.Add(p.VX)
		p.Y = p.Y.Add(p.VY)
		live = append(live, p)
	}
	ps.Bits = live
}

// Render draws live particles that fall inside the playfield.
func (ps *Particles) Render(dst *core.Screen, field core.Rect) {
	inner := field.Inner(1)
	for _, p := range ps.Bits {
		x := p.X.ToCell()
		y := p.Y.ToCell()
		if !inner.Contains(x, y) {
			continue
		}
		glyph := '∙'
		if p.TTL > ps.cfg.MinTTL {
			glyph = '•'
		}
		dst.SetCell(x, y, glyph, p.Color)
	}
}
