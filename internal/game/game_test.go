package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockout/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func hasEvent(events []core.Event, t core.EventType) bool {
	for _, ev := range events {
		if ev.Type == t {
			return true
		}
	}
	return false
}

// killAllBricksExcept clears the level down to a single 1-HP dirt brick at
// (0, 0), so one hit finishes the level.
func killAllBricksExcept(g *Game) {
	for row := 0; row < g.level.Height; row++ {
		for col := 0; col < g.level.Width; col++ {
			g.level.Bricks[row][col].Alive = false
		}
	}
	g.level.Bricks[0][0] = Brick{Material: MatDirt, HP: 1, Alive: true}
}

// aimAtBrick positions the ball one tick below brick (row, col), rising.
func aimAtBrick(g *Game, row, col int) {
	centerX := g.layout.Left + col*g.layout.BrickW + g.layout.BrickW/2
	g.ball.X = ToFixed(centerX)
	g.ball.Y = ToFixed(g.layout.Top+row) + 1500
	g.ball.VX = 0
	g.ball.VY = -600
	g.ball.Stuck = false
	g.state = StatePlaying
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if g.state != StateServe {
		t.Errorf("fresh game should be serving, got %s", g.state)
	}
	if g.score != 0 {
		t.Errorf("score should start at 0, got %d", g.score)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("lives = %d, want %d", g.lives, g.cfg.Gameplay.Lives)
	}
	if g.levelIndex != 0 {
		t.Errorf("levelIndex = %d, want 0", g.levelIndex)
	}
	if !g.ball.Stuck {
		t.Error("ball should start stuck to the paddle")
	}
	if g.level.CountAlive() == 0 {
		t.Error("first level should have bricks")
	}
}

func TestServeStateFollowsPaddle(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	right := core.NewInputFrame()
	right.Set(core.ActionRight)

	startX := g.ball.X
	for rep := 0; rep < 5; rep++ {
		g.Step(right)
	}

	if g.ball.X <= startX {
		t.Error("stuck ball should follow the paddle right")
	}
	if g.ball.X != g.paddle.CenterX() {
		t.Errorf("stuck ball should sit at paddle center: ball=%d center=%d",
			g.ball.X, g.paddle.CenterX())
	}
	if g.state != StateServe {
		t.Errorf("state should remain serve, got %s", g.state)
	}
}

func TestLaunch(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	g.Step(launch)

	if g.state != StatePlaying {
		t.Fatalf("launch should start play, got %s", g.state)
	}
	if g.ball.Stuck {
		t.Error("launched ball should not be stuck")
	}
	if g.ball.VY >= 0 {
		t.Errorf("launched ball should rise, VY=%d", g.ball.VY)
	}
	if g.ball.VX == 0 {
		t.Error("launch should jitter the horizontal velocity")
	}
}

func TestPaddleBounceFlipsBall(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Descending ball one row above the paddle, dead center
	g.state = StatePlaying
	g.ball.Stuck = false
	g.ball.X = g.paddle.CenterX()
	g.ball.Y = ToFixed(g.paddle.Y-1) + 800
	g.ball.VX = 0
	g.ball.VY = 300

	result := g.Step(core.NewInputFrame())

	if g.ball.VY >= 0 {
		t.Errorf("paddle bounce should flip VY upward, got %d", g.ball.VY)
	}
	if !hasEvent(result.Events, core.EventPaddleBounce) {
		t.Error("paddle bounce should emit an event")
	}
	if result.State.Lives != g.cfg.Gameplay.Lives {
		t.Error("paddle bounce should not cost a life")
	}
}

func TestPaddleBounceBias(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Hit near the right edge of the paddle
	g.state = StatePlaying
	g.ball.Stuck = false
	g.ball.X = g.paddle.Right().Sub(500)
	g.ball.Y = ToFixed(g.paddle.Y-1) + 800
	g.ball.VX = 0
	g.ball.VY = 300

	g.Step(core.NewInputFrame())

	if g.ball.VX <= 0 {
		t.Errorf("edge hit should angle the ball outward, VX=%d", g.ball.VX)
	}
}

func TestBrickDestruction(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Level 1 row 0 is all dirt (1 HP)
	aimAtBrick(g, 0, 0)
	before := g.level.CountAlive()

	result := g.Step(core.NewInputFrame())

	if g.level.CountAlive() != before-1 {
		t.Errorf("brick count = %d, want %d", g.level.CountAlive(), before-1)
	}
	if g.score != MatDirt.Points() {
		t.Errorf("score = %d, want %d", g.score, MatDirt.Points())
	}
	if !hasEvent(result.Events, core.EventBrickDestroyed) {
		t.Error("destruction should emit an event")
	}
	if len(g.particles.Bits) != g.cfg.Particles.BurstSize {
		t.Errorf("destruction should spawn %d particles, got %d",
			g.cfg.Particles.BurstSize, len(g.particles.Bits))
	}
	if g.ball.VY <= 0 {
		t.Errorf("ball should bounce off the brick, VY=%d", g.ball.VY)
	}
}

func TestMultiHitBrickSurvives(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Swap in an iron brick (2 HP)
	g.level.Bricks[0][0] = Brick{Material: MatIron, HP: 2, Alive: true}
	aimAtBrick(g, 0, 0)

	result := g.Step(core.NewInputFrame())

	brick := g.level.Bricks[0][0]
	if !brick.Alive {
		t.Fatal("2-HP brick should survive one hit")
	}
	if brick.HP != 1 {
		t.Errorf("HP = %d, want 1", brick.HP)
	}
	if g.score != 0 {
		t.Errorf("damaged brick should not score, got %d", g.score)
	}
	if !hasEvent(result.Events, core.EventBrickHit) {
		t.Error("damage should emit a hit event")
	}
	if hasEvent(result.Events, core.EventBrickDestroyed) {
		t.Error("surviving brick should not emit a destroyed event")
	}
}

func TestBedrockReflectsWithoutDamage(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.level.Bricks[0][0] = Brick{Material: MatBedrock, HP: MatBedrock.HitPoints(), Alive: true}
	aimAtBrick(g, 0, 0)

	g.Step(core.NewInputFrame())

	brick := g.level.Bricks[0][0]
	if !brick.Alive || brick.HP != MatBedrock.HitPoints() {
		t.Error("bedrock should be untouched")
	}
	if g.score != 0 {
		t.Errorf("bedrock should not score, got %d", g.score)
	}
	if g.ball.VY <= 0 {
		t.Errorf("ball should still bounce, VY=%d", g.ball.VY)
	}
	if g.combo != 0 {
		t.Errorf("bedrock should not extend the combo, got %d", g.combo)
	}
}

func TestComboSpeedScaling(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	everyN := g.cfg.Gameplay.SpeedUpEveryN
	baseSpeed := g.currentSpeed

	g.combo = everyN - 1
	aimAtBrick(g, 0, 0)
	g.Step(core.NewInputFrame())

	if g.combo != everyN {
		t.Fatalf("combo = %d, want %d", g.combo, everyN)
	}
	want := baseSpeed.Add(Fixed(g.cfg.Gameplay.SpeedUpAmount))
	if g.currentSpeed != want {
		t.Errorf("speed = %d, want %d", g.currentSpeed, want)
	}
}

func TestSpeedCappedAtMax(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	maxSpeed := Fixed(g.cfg.Physics.MaxBallSpeed)
	g.currentSpeed = maxSpeed
	g.combo = g.cfg.Gameplay.SpeedUpEveryN - 1
	aimAtBrick(g, 0, 0)

	g.Step(core.NewInputFrame())

	if g.currentSpeed > maxSpeed {
		t.Errorf("speed %d exceeds the cap %d", g.currentSpeed, maxSpeed)
	}
}

func TestMissCostsLife(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.state = StatePlaying
	g.ball.Stuck = false
	g.ball.X = ToFixed(40)
	g.ball.Y = ToFixed(g.field.Bottom() - 2)
	g.ball.VX = 0
	g.ball.VY = 1200
	g.combo = 5

	livesBefore := g.lives
	result := g.Step(core.NewInputFrame())

	if g.lives != livesBefore-1 {
		t.Errorf("lives = %d, want %d", g.lives, livesBefore-1)
	}
	if g.combo != 0 {
		t.Errorf("miss should reset the combo, got %d", g.combo)
	}
	if g.state != StateLifeLost {
		t.Errorf("state = %s, want %s", g.state, StateLifeLost)
	}
	if !hasEvent(result.Events, core.EventMiss) {
		t.Error("miss should emit an event")
	}

	// After the hold the ball is back on the paddle
	for rep := 0; rep < g.cfg.Gameplay.ServeDelay + 1; rep++ {
		g.Step(core.NewInputFrame())
	}
	if g.state != StateServe {
		t.Errorf("state = %s, want %s after the hold", g.state, StateServe)
	}
	if !g.ball.Stuck {
		t.Error("ball should be stuck to the paddle again")
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.lives = 1
	g.state = StatePlaying
	g.ball.Stuck = false
	g.ball.X = ToFixed(40)
	g.ball.Y = ToFixed(g.field.Bottom() - 2)
	g.ball.VY = 1200

	result := g.Step(core.NewInputFrame())

	if g.state != StateGameOver {
		t.Fatalf("state = %s, want %s", g.state, StateGameOver)
	}
	if g.lives != 0 {
		t.Errorf("lives = %d, want 0", g.lives)
	}
	if !result.State.GameOver {
		t.Error("result should report game over")
	}
	if !hasEvent(result.Events, core.EventGameOver) {
		t.Error("game over should emit an event")
	}

	// Simulation is frozen until restart
	tick := g.tickCount
	g.Step(core.NewInputFrame())
	if g.tickCount != tick {
		t.Error("game over should freeze the simulation")
	}
}

func TestRestartResetsRun(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.score = 500
	g.lives = 1
	g.levelIndex = 2
	g.state = StateGameOver

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.score != 0 || g.lives != g.cfg.Gameplay.Lives || g.levelIndex != 0 {
		t.Errorf("restart should reset the run: score=%d lives=%d level=%d",
			g.score, g.lives, g.levelIndex)
	}
	if g.state != StateServe {
		t.Errorf("state = %s, want %s", g.state, StateServe)
	}
}

func TestLevelClearAdvances(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.score = 300
	g.lives = 2
	killAllBricksExcept(g)
	aimAtBrick(g, 0, 0)

	result := g.Step(core.NewInputFrame())

	if !hasEvent(result.Events, core.EventLevelClear) {
		t.Error("clearing the last brick should emit an event")
	}
	if g.levelIndex != 1 {
		t.Errorf("levelIndex = %d, want 1", g.levelIndex)
	}
	if g.state != StateCleared {
		t.Errorf("state = %s, want %s", g.state, StateCleared)
	}
	if g.lives != 2 {
		t.Errorf("level clear should keep lives, got %d", g.lives)
	}
	if g.score != 300+MatDirt.Points() {
		t.Errorf("score = %d, want %d", g.score, 300+MatDirt.Points())
	}
	if g.level.CountAlive() == 0 {
		t.Error("next level should be loaded with fresh bricks")
	}

	// After the hold, back to serve on the new level
	for rep := 0; rep < g.cfg.Gameplay.ServeDelay + 1; rep++ {
		g.Step(core.NewInputFrame())
	}
	if g.state != StateServe {
		t.Errorf("state = %s, want %s after the hold", g.state, StateServe)
	}
}

func TestCampaignWin(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.levelIndex = LevelCount() - 1
	g.loadLevel(g.levelIndex)
	killAllBricksExcept(g)
	aimAtBrick(g, 0, 0)

	result := g.Step(core.NewInputFrame())

	if g.state != StateWin {
		t.Fatalf("state = %s, want %s", g.state, StateWin)
	}
	if !result.State.Won || !result.State.GameOver {
		t.Error("result should report the win")
	}
}

func TestEndlessWrapsAndHardens(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig())

	g.levelIndex = LevelCount() - 1
	g.loadLevel(g.levelIndex)
	killAllBricksExcept(g)
	aimAtBrick(g, 0, 0)

	g.Step(core.NewInputFrame())

	if g.state == StateWin {
		t.Fatal("endless mode should never reach the win state")
	}
	if g.levelIndex != 0 {
		t.Errorf("levelIndex = %d, want 0 after the wrap", g.levelIndex)
	}
	if g.endlessCycle != 1 {
		t.Errorf("endlessCycle = %d, want 1", g.endlessCycle)
	}

	// First level's dirt bricks carry bonus HP on the second cycle
	brick := g.level.Bricks[0][0]
	want := brick.Material.HitPoints() + g.cfg.Gameplay.EndlessHPBonus
	if brick.HP != want {
		t.Errorf("hardened brick HP = %d, want %d", brick.HP, want)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	g.Step(launch)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if g.state != StatePaused {
		t.Fatalf("state = %s, want %s", g.state, StatePaused)
	}

	tick := g.tickCount
	ballY := g.ball.Y
	for rep := 0; rep < 10; rep++ {
		g.Step(core.NewInputFrame())
	}
	if g.tickCount != tick || g.ball.Y != ballY {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.state != StatePlaying {
		t.Errorf("state = %s, want %s after resume", g.state, StatePlaying)
	}
}

func TestPointerControlsPaddle(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.SetPointer(20)
	g.Step(in)

	wantX := ToFixed(20 - g.paddle.Width/2)
	if g.paddle.X != wantX {
		t.Errorf("paddle X = %d, want %d under the pointer", g.paddle.X, wantX)
	}

	// Pointer at the far edge clamps inside the field
	in = core.NewInputFrame()
	in.SetPointer(0)
	g.Step(in)
	if g.paddle.X != ToFixed(g.field.X+1) {
		t.Errorf("paddle should clamp to the left wall, got %d", g.paddle.X)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testConfig()

	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i == 10 {
			inputSequence[i].Set(core.ActionLaunch)
		} else if i > 10 && i%7 < 4 {
			inputSequence[i].Set(core.ActionRight)
		} else if i > 10 {
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputSequence {
			result := g.Step(in)
			if result.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("same seed and inputs should give identical runs: %d vs %d",
			snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("scores diverged: %d vs %d", snap1.Score, snap2.Score)
	}
}

func TestSnapshotRoundtrip(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	g.Step(launch)
	for rep := 0; rep < 50; rep++ {
		g.Step(core.NewInputFrame())
	}

	snap := g.Snapshot()

	g2 := New()
	g2.Reset(testConfig())
	g2.ApplySnapshot(snap)

	if g2.Snapshot().Hash() != snap.Hash() {
		t.Error("snapshot should restore the exact state")
	}

	// Both games evolve identically from here
	for rep := 0; rep < 50; rep++ {
		g.Step(core.NewInputFrame())
		g2.Step(core.NewInputFrame())
	}
	if g.Snapshot().Hash() != g2.Snapshot().Hash() {
		t.Error("restored game should stay in lockstep")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "Lives: 3") {
		t.Error("HUD should show lives")
	}
	if !strings.Contains(out, string(PaddleChar)) {
		t.Error("paddle should be drawn")
	}
	if !strings.Contains(out, string(BallChar)) {
		t.Error("ball should be drawn")
	}
	if !strings.Contains(out, "SPACE to launch") {
		t.Error("serve hint should be drawn")
	}
}

func TestRenderComboClearsScore(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.score = 123456789
	g.combo = 4

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 123456789") {
		t.Error("wide scores should render intact")
	}
	if !strings.Contains(out, "Combo x4") {
		t.Error("combo indicator should not overlap the score")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})

	screen := core.NewScreen(10, 5)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "too small") {
		t.Error("undersized terminal should show a notice")
	}
	if !strings.Contains(out, "Need 30x15") {
		t.Error("notice should state the minimum size")
	}

	// Stepping an undersized game is a safe no-op
	result := g.Step(core.NewInputFrame())
	if len(result.Events) != 0 {
		t.Error("undersized game should not produce events")
	}
}
