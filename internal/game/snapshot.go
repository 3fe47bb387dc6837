package game

import "github.com/vovakirdan/blockout/internal/core"

// Snapshot contains the complete simulation state for replay and
// determinism testing. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	PaddleX         int
	PaddleWidth     int
	Score           int
	Lives           int
	LevelIndex      int
	BricksRemaining int
	State           string
	ServeDelay      int
	Combo           int

	// Game mode and endless tracking
	Mode         int // 0=Campaign, 1=Endless
	EndlessCycle int
	BallSpeed    int // Current ball speed (fixed-point)

	// Ball state
	BallX  int
	BallY  int
	BallVX int
	BallVY int
	Stuck  bool

	// Brick states (flattened: row*width + col = index)
	// Each brick is 2 ints: Alive, HP
	BrickData []int

	// Particle states (each particle is 6 ints: X, Y, VX, VY, TTL, Color)
	ParticleCount int
	ParticleData  []int

	// RNG states
	RNGState         uint64
	ParticleRNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickCount := g.level.Width * g.level.Height
	brickData := make([]int, brickCount*2)

	for row := 0; row < g.level.Height; row++ {
		for col := 0; col < g.level.Width; col++ {
			idx := (row*g.level.Width + col) * 2
			brick := g.level.Bricks[row][col]
			if brick.Alive {
				brickData[idx] = 1
			}
			brickData[idx+1] = brick.HP
		}
	}

	particleData := make([]int, len(g.particles.Bits)*6)
	for i, p := range g.particles.Bits {
		idx := i * 6
		particleData[idx] = int(p.X)
		particleData[idx+1] = int(p.Y)
		particleData[idx+2] = int(p.VX)
		particleData[idx+3] = int(p.VY)
		particleData[idx+4] = p.TTL
		particleData[idx+5] = int(p.Color)
	}

	return Snapshot{
		Tick:            uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PaddleX:         int(g.paddle.X),
		PaddleWidth:     g.paddle.Width,
		Score:           g.score,
		Lives:           g.lives,
		LevelIndex:      g.levelIndex,
		BricksRemaining: g.level.CountAlive(),
		State:           g.state,
		ServeDelay:      g.serveDelay,
		Combo:           g.combo,

		Mode:         int(g.mode),
		EndlessCycle: g.endlessCycle,
		BallSpeed:    int(g.currentSpeed),

		BallX:  int(g.ball.X),
		BallY:  int(g.ball.Y),
		BallVX: int(g.ball.VX),
		BallVY: int(g.ball.VY),
		Stuck:  g.ball.Stuck,

		BrickData:     brickData,
		ParticleCount: len(g.particles.Bits),
		ParticleData:  particleData,

		RNGState:         g.rng.state,
		ParticleRNGState: g.particles.RNG.state,
	}
}

// ApplySnapshot restores game state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.paddle.X = Fixed(snap.PaddleX)
	g.paddle.Width = snap.PaddleWidth
	g.score = snap.Score
	g.lives = snap.Lives
	g.levelIndex = snap.LevelIndex
	g.state = snap.State
	g.serveDelay = snap.ServeDelay
	g.combo = snap.Combo

	g.mode = GameMode(snap.Mode)
	g.endlessCycle = snap.EndlessCycle
	g.currentSpeed = Fixed(snap.BallSpeed)

	g.ball = &Ball{
		X:     Fixed(snap.BallX),
		Y:     Fixed(snap.BallY),
		VX:    Fixed(snap.BallVX),
		VY:    Fixed(snap.BallVY),
		Stuck: snap.Stuck,
	}

	if g.level != nil && len(snap.BrickData) == g.level.Width*g.level.Height*2 {
		for row := 0; row < g.level.Height; row++ {
			for col := 0; col < g.level.Width; col++ {
				idx := (row*g.level.Width + col) * 2
				g.level.Bricks[row][col].Alive = snap.BrickData[idx] == 1
				g.level.Bricks[row][col].HP = snap.BrickData[idx+1]
			}
		}
	}

	g.particles.Bits = make([]Particle, snap.ParticleCount)
	for i := 0; i < snap.ParticleCount; i++ {
		idx := i * 6
		if idx+5 < len(snap.ParticleData) {
			g.particles.Bits[i] = Particle{
				X:     Fixed(snap.ParticleData[idx]),
				Y:     Fixed(snap.ParticleData[idx+1]),
				VX:    Fixed(snap.ParticleData[idx+2]),
				VY:    Fixed(snap.ParticleData[idx+3]),
				TTL:   snap.ParticleData[idx+4],
				Color: core.Color(snap.ParticleData[idx+5]), //#nosec G115 -- palette index
			}
		}
	}

	g.rng.state = snap.RNGState
	g.particles.RNG.state = snap.ParticleRNGState
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.PaddleX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleWidth)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EndlessCycle)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallSpeed)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount)   //#nosec G115 -- hash computation

	if snap.Stuck {
		h = h*31 + 1
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ParticleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	h = h*31 + snap.ParticleRNGState

	return h
}
