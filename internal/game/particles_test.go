package game

import (
	"testing"

	"github.com/vovakirdan/blockout/internal/config"
	"github.com/vovakirdan/blockout/internal/core"
)

func testParticlesConfig() config.ParticlesConfig {
	return config.ParticlesConfig{
		BurstSize: 10,
		MinTTL:    15,
		MaxTTL:    30,
		Gravity:   40,
		MaxSpeed:  400,
	}
}

func TestParticlesEmit(t *testing.T) {
	ps := NewParticles(42, testParticlesConfig())
	ps.Emit(10, 5, core.ColorGold)

	if len(ps.Bits) != 10 {
		t.Fatalf("burst spawned %d particles, want 10", len(ps.Bits))
	}

	for i, p := range ps.Bits {
		if p.X.ToCell() != 10 || p.Y.ToCell() != 5 {
			t.Errorf("particle %d should start at the brick cell, got (%d,%d)",
				i, p.X.ToCell(), p.Y.ToCell())
		}
		if p.TTL < 15 || p.TTL > 30 {
			t.Errorf("particle %d TTL = %d, want 15..30", i, p.TTL)
		}
		if p.Color != core.ColorGold {
			t.Errorf("particle %d should carry the brick color", i)
		}
	}
}

func TestParticlesExpire(t *testing.T) {
	ps := NewParticles(42, testParticlesConfig())
	ps.Emit(10, 5, core.ColorStone)

	for rep := 0; rep < 31; rep++ {
		ps.Update()
	}

	if len(ps.Bits) != 0 {
		t.Errorf("all particles should expire after MaxTTL ticks, %d left", len(ps.Bits))
	}
}

func TestParticlesGravity(t *testing.T) {
	ps := NewParticles(42, testParticlesConfig())
	ps.Emit(10, 5, core.ColorStone)

	vyBefore := make([]Fixed, len(ps.Bits))
	for i, p := range ps.Bits {
		vyBefore[i] = p.VY
	}

	ps.Update()

	for i, p := range ps.Bits {
		if p.VY != vyBefore[i].Add(40) {
			t.Errorf("particle %d VY = %d, want %d", i, p.VY, vyBefore[i].Add(40))
		}
	}
}

func TestParticlesDeterminism(t *testing.T) {
	run := func() []Particle {
		ps := NewParticles(7, testParticlesConfig())
		ps.Emit(10, 5, core.ColorIron)
		ps.Emit(20, 8, core.ColorLapis)
		for rep := 0; rep < 10; rep++ {
			ps.Update()
		}
		return ps.Bits
	}

	a := run()
	b := run()

	if len(a) != len(b) {
		t.Fatalf("runs diverged in particle count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("particle %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestParticlesReset(t *testing.T) {
	ps := NewParticles(42, testParticlesConfig())
	ps.Emit(10, 5, core.ColorStone)
	ps.Reset(42)

	if len(ps.Bits) != 0 {
		t.Error("reset should clear live particles")
	}

	// Same seed replays the same burst
	ps.Emit(10, 5, core.ColorStone)
	first := append([]Particle(nil), ps.Bits...)

	ps.Reset(42)
	ps.Emit(10, 5, core.ColorStone)

	for i := range first {
		if first[i] != ps.Bits[i] {
			t.Errorf("particle %d differs after reseed", i)
		}
	}
}

func TestParticlesRenderClipsToField(t *testing.T) {
	ps := NewParticles(42, testParticlesConfig())
	field := core.NewRect(0, 1, 40, 20)

	// One particle well inside, one outside the field
	ps.Bits = []Particle{
		{X: ToFixed(10), Y: ToFixed(10), TTL: 20, Color: core.ColorGold},
		{X: ToFixed(60), Y: ToFixed(10), TTL: 20, Color: core.ColorGold},
	}

	screen := core.NewScreen(80, 24)
	ps.Render(screen, field)

	if screen.Get(10, 10) == ' ' {
		t.Error("inside particle should be drawn")
	}
	if screen.Get(60, 10) != ' ' {
		t.Error("outside particle should be clipped")
	}
}

func TestSimpleRNGDeterminism(t *testing.T) {
	a := NewSimpleRNG(99)
	b := NewSimpleRNG(99)

	for rep := 0; rep < 100; rep++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed should give the same sequence")
		}
	}
}

func TestSimpleRNGRange(t *testing.T) {
	r := NewSimpleRNG(1)

	for rep := 0; rep < 1000; rep++ {
		v := r.Range(-5, 5)
		if v < -5 || v > 5 {
			t.Fatalf("Range(-5,5) = %d, out of bounds", v)
		}
	}

	if r.Range(3, 3) != 3 {
		t.Error("degenerate range should return lo")
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestSimpleRNGZeroSeed(t *testing.T) {
	r := NewSimpleRNG(0)
	if r.state == 0 {
		t.Error("zero seed must be remapped so the LCG does not stick at zero")
	}
}
