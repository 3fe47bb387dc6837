package game

import (
	"fmt"

	"github.com/vovakirdan/blockout/internal/config"
	"github.com/vovakirdan/blockout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar   = '='
	PaddleSeam   = '|' // Plank seams along the paddle
	BallChar     = '●'
	BorderGlyph  = '▓'
	CrackedGlyph = '▒'
)

// Game state constants
const (
	StateServe    = "serve"    // Ball on paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Game paused
	StateLifeLost = "lifelost" // Brief hold after a miss, then back to serve
	StateCleared  = "cleared"  // Brief hold after clearing a level
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // All levels completed (campaign only)
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Layouts cycle forever with hardening bricks
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the 1-based start level set via CLI (0 = first)
var startLevel int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the 1-based level to start from.
func SetStartLevel(level int) {
	startLevel = level
}

// Game implements the blockout simulation.
type Game struct {
	// Game mode
	mode GameMode

	// Game objects
	paddle    *Paddle
	ball      *Ball
	level     *Level
	particles *Particles
	rng       *SimpleRNG // Launch-angle jitter

	// Game state
	state        string
	score        int
	lives        int
	levelIndex   int
	tickCount    int
	serveDelay   int   // Countdown before allowing serve after a miss
	combo        int   // Consecutive brick hits without a miss
	currentSpeed Fixed // Current ball speed (fixed-point cells/tick)
	endlessCycle int   // Number of layout cycles completed (endless mode)

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.Config
	difficulty *config.DifficultyManager

	// Layout (computed from screen size)
	field          core.Rect // Playfield border rectangle
	layout         BrickLayout
	paddleY        int
	minScreenW     int
	minScreenH     int
	screenTooSmall bool

	// Events produced during the current tick
	events []core.Event
}

// New creates a new game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the identifier used for logging and config lookup.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "blockout_endless"
	}
	return "blockout"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Blockout (Endless)"
	}
	return "Blockout"
}

// Reset initializes or restarts the game: score to zero, lives and level
// back to their starting values.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.levelIndex = 0
	if startLevel > 0 {
		g.levelIndex = (startLevel - 1) % LevelCount()
	}
	g.tickCount = 0
	g.serveDelay = 0
	g.combo = 0
	g.endlessCycle = 0
	g.currentSpeed = Fixed(cfg.Physics.BallSpeed)

	g.rng = NewSimpleRNG(runtime.Seed)
	g.particles = NewParticles(runtime.Seed+1, cfg.Particles)

	g.calculateLayout()
	g.loadLevel(g.levelIndex)

	g.paddle = &Paddle{
		X:     ToFixed((runtime.ScreenW - cfg.Paddle.Width) / 2),
		Y:     g.paddleY,
		Width: cfg.Paddle.Width,
	}
	g.placeBallOnPaddle()
	g.state = StateServe
}

// calculateLayout computes the playfield, brick grid, and paddle positions
// from the screen size. Row 0 is the HUD; the border frames everything below.
func (g *Game) calculateLayout() {
	g.field = core.NewRect(0, 1, g.runtime.ScreenW, g.runtime.ScreenH-1)
	g.paddleY = g.field.Bottom() - 2
}

// computeBrickLayout fits the current level's grid into the playfield,
// centered horizontally.
func (g *Game) computeBrickLayout() {
	inner := g.field.Inner(1)

	brickW := 2
	if g.level.Width > 0 {
		brickW = core.Max(2, inner.W/g.level.Width)
	}

	totalW := brickW * g.level.Width
	left := inner.X + (inner.W-totalW)/2
	if left < inner.X {
		left = inner.X
	}

	g.layout = BrickLayout{
		Left:   left,
		Top:    inner.Y + 1,
		BrickW: brickW,
		BrickH: 1,
	}
}

// loadLevel loads a level by index, hardening bricks in endless cycles.
func (g *Game) loadLevel(index int) {
	g.level = GetLevel(index)
	if g.mode == ModeEndless && g.endlessCycle > 0 {
		g.level.Harden(g.endlessCycle * g.cfg.Gameplay.EndlessHPBonus)
	}
	g.computeBrickLayout()
}

// placeBallOnPaddle parks the ball on the paddle awaiting launch.
func (g *Game) placeBallOnPaddle() {
	g.ball = &Ball{
		X:     g.paddle.CenterX(),
		Y:     ToFixed(g.paddle.Y - 1),
		Stuck: true,
	}
}

// serveSpeed returns the launch speed for the current difficulty level,
// clamped to the configured bounds.
func (g *Game) serveSpeed() Fixed {
	base := g.difficulty.ServeSpeed(g.cfg.Physics.BallSpeed, g.score, g.tickCount)
	return ClampFixed(Fixed(base), Fixed(g.cfg.Physics.MinBallSpeed), Fixed(g.cfg.Physics.MaxBallSpeed))
}

// launchBall releases the ball from the paddle with a slight horizontal
// jitter so serves do not repeat the same vertical line.
func (g *Game) launchBall() {
	g.currentSpeed = g.serveSpeed()

	vx := g.currentSpeed.Div(4)
	if g.rng.Intn(2) == 0 {
		vx = -vx
	}
	g.ball.VX = vx
	g.ball.VY = -g.currentSpeed
	g.ball.Stuck = false

	g.state = StatePlaying
}

// emit records a gameplay event for this tick.
func (g *Game) emit(t core.EventType, x, y int) {
	g.events = append(g.events, core.Event{Type: t, X: x, Y: y})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.screenTooSmall {
		return g.result()
	}

	// Full restart works from any state
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return g.result()
	}

	// Pause toggle; Space also pauses/resumes once the ball is in play
	if in.Has(core.ActionPause) || (in.Has(core.ActionLaunch) && g.state != StateServe) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return g.result()
	}

	g.tickCount++
	g.particles.Update()

	// Transitional states hold briefly, then hand back to serve with the
	// paddle and ball returned to their starting spots
	if g.state == StateLifeLost || g.state == StateCleared {
		g.serveDelay--
		if g.serveDelay <= 0 {
			g.paddle.X = ToFixed((g.runtime.ScreenW - g.paddle.Width) / 2)
			g.placeBallOnPaddle()
			g.state = StateServe
		}
		return g.result()
	}

	g.updatePaddle(in)

	if g.state == StateServe {
		// Ball follows the paddle until launched
		g.ball.X = g.paddle.CenterX()
		g.ball.Y = ToFixed(g.paddle.Y - 1)

		if in.Has(core.ActionLaunch) {
			g.launchBall()
		}
		return g.result()
	}

	g.updateBall()
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// updatePaddle handles paddle movement from pointer or keys, clamped to the
// playfield.
func (g *Game) updatePaddle(in core.InputFrame) {
	if in.HasPointer {
		// Absolute: center the paddle under the pointer
		g.paddle.X = ToFixed(in.PointerX - g.paddle.Width/2)
	} else {
		speed := Fixed(g.cfg.Physics.PaddleSpeed)
		if in.Has(core.ActionLeft) {
			g.paddle.X = g.paddle.X.Sub(speed)
		}
		if in.Has(core.ActionRight) {
			g.paddle.X = g.paddle.X.Add(speed)
		}
	}

	minX := ToFixed(g.field.X + 1)
	maxX := ToFixed(g.field.Right() - 1 - g.paddle.Width)
	g.paddle.X = ClampFixed(g.paddle.X, minX, maxX)
}

// updateBall integrates the ball and resolves collisions in a fixed order:
// border, paddle, bricks, speed scaling, miss, level clear.
func (g *Game) updateBall() {
	g.ball.Move()

	// 1. Borders
	side, miss := CheckBorderCollision(g.ball, g.field)
	if miss {
		g.handleMiss()
		return
	}
	if side != CollisionNone {
		ApplyCollisionBounce(g.ball, side)
		g.emit(core.EventWallBounce, g.ball.CellX(), g.ball.CellY())
	}

	// 2. Paddle
	if CheckPaddleCollision(g.ball, g.paddle, g.currentSpeed, g.cfg.Physics.BounceBias) {
		g.emit(core.EventPaddleBounce, g.ball.CellX(), g.ball.CellY())
	}

	// 3. Bricks
	row, col, brickSide := CheckBrickCollision(g.ball, g.level, g.layout)
	if brickSide != CollisionNone {
		ApplyCollisionBounce(g.ball, brickSide)
		SeparateFromBrick(g.ball, g.layout, row, col, brickSide)
		g.hitBrick(row, col)
	}

	g.enforceMinSpeed()
}

// hitBrick damages the brick at (row, col), handling destruction, scoring,
// combo speed scaling, and level-clear detection.
func (g *Game) hitBrick(row, col int) {
	brick := &g.level.Bricks[row][col]

	centerX := g.layout.Left + col*g.layout.BrickW + g.layout.BrickW/2
	centerY := g.layout.Top + row*g.layout.BrickH

	if !brick.Material.Destructible() {
		// Bedrock just reflects
		g.emit(core.EventWallBounce, centerX, centerY)
		return
	}

	brick.HP--
	g.applyCombo()

	if brick.HP > 0 {
		g.emit(core.EventBrickHit, centerX, centerY)
		return
	}

	brick.Alive = false
	g.score += brick.Material.Points()
	g.particles.Emit(centerX, centerY, brick.Material.Color())
	g.emit(core.EventBrickDestroyed, centerX, centerY)

	if g.level.CountAlive() == 0 {
		g.handleLevelClear()
	}
}

// applyCombo counts a brick hit toward the combo streak; every N hits the
// ball speeds up by a fixed increment, capped at the maximum.
func (g *Game) applyCombo() {
	g.combo++
	if g.cfg.Gameplay.SpeedUpEveryN <= 0 || g.combo%g.cfg.Gameplay.SpeedUpEveryN != 0 {
		return
	}

	old := g.currentSpeed
	bumped := old.Add(Fixed(g.cfg.Gameplay.SpeedUpAmount))
	g.currentSpeed = ClampFixed(bumped,
		Fixed(g.cfg.Physics.MinBallSpeed), Fixed(g.cfg.Physics.MaxBallSpeed))
	if g.currentSpeed != old {
		g.ball.Rescale(g.currentSpeed, old)
	}
}

// enforceMinSpeed forbids degenerate ball states: the ball never stalls
// and never flies perfectly horizontal.
func (g *Game) enforceMinSpeed() {
	if g.ball.Stuck {
		return
	}
	minSpeed := Fixed(g.cfg.Physics.MinBallSpeed)
	if g.ball.VY == 0 {
		g.ball.VY = -minSpeed / 2
	}
	if sum := g.ball.SpeedSum(); sum > 0 && sum < minSpeed {
		g.ball.Rescale(minSpeed, sum)
	}
}

// handleMiss handles the ball crossing below the paddle baseline.
func (g *Game) handleMiss() {
	g.emit(core.EventMiss, g.ball.CellX(), g.field.Bottom()-1)
	g.lives--
	g.combo = 0
	g.currentSpeed = Fixed(g.cfg.Physics.BallSpeed)

	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		g.emit(core.EventGameOver, g.ball.CellX(), g.field.Bottom()-1)
		return
	}

	g.ball.VX = 0
	g.ball.VY = 0
	g.state = StateLifeLost
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// handleLevelClear advances to the next layout, keeping score and lives.
func (g *Game) handleLevelClear() {
	centerX, centerY := g.field.Center()
	g.emit(core.EventLevelClear, centerX, centerY)

	g.levelIndex++

	if g.mode == ModeCampaign {
		if g.levelIndex >= LevelCount() {
			g.state = StateWin
			return
		}
	} else if g.levelIndex >= LevelCount() {
		g.levelIndex = 0
		g.endlessCycle++
	}

	g.loadLevel(g.levelIndex)
	g.combo = 0
	g.ball.VX = 0
	g.ball.VY = 0
	g.state = StateCleared
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.levelNumber(),
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// levelNumber returns the 1-based level counter shown in the HUD.
func (g *Game) levelNumber() int {
	if g.mode == ModeEndless {
		return g.endlessCycle*LevelCount() + g.levelIndex + 1
	}
	return g.levelIndex + 1
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		// Wrapped so it stays readable on the cramped terminals it is for.
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, "Window")
		dst.DrawTextCentered(dst.Height()/2, "too small")
		dst.DrawTextCentered(dst.Height()/2+2, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBorder(dst)
	g.renderBricks(dst)
	g.particles.Render(dst, g.field)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, level, and combo indicators on row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColor(1, 0, scoreText, core.ColorInk)

	if g.combo > 1 {
		dst.DrawTextColor(1+len(scoreText)+2, 0, fmt.Sprintf("Combo x%d", g.combo), core.ColorGold)
	}

	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.levelNumber())
	} else {
		levelText = fmt.Sprintf("Level: %d/%d  %s", g.levelNumber(), LevelCount(), g.level.Name)
	}
	dst.DrawTextColor(dst.Width()-len(levelText)-1, 0, levelText, core.ColorInk)
}

// renderBorder draws the chunky grass border with a checkered texture.
func (g *Game) renderBorder(dst *core.Screen) {
	f := g.field
	for x := f.X; x < f.Right(); x++ {
		dst.SetCell(x, f.Y, BorderGlyph, borderColor(x, f.Y))
		dst.SetCell(x, f.Bottom()-1, BorderGlyph, borderColor(x, f.Bottom()-1))
	}
	for y := f.Y; y < f.Bottom(); y++ {
		dst.SetCell(f.X, y, BorderGlyph, borderColor(f.X, y))
		dst.SetCell(f.Right()-1, y, BorderGlyph, borderColor(f.Right()-1, y))
	}
}

// borderColor alternates grass shades for the blocky check pattern.
func borderColor(x, y int) core.Color {
	if (x+y)%2 == 0 {
		return core.ColorGrass
	}
	return core.ColorGrassDark
}

// renderBricks draws all live bricks; damaged bricks show a cracked glyph.
func (g *Game) renderBricks(dst *core.Screen) {
	inner := g.field.Inner(1)
	for row := 0; row < g.level.Height; row++ {
		for col := 0; col < g.level.Width; col++ {
			brick := g.level.Bricks[row][col]
			if !brick.Alive {
				continue
			}

			glyph := brick.Material.Glyph()
			if brick.Material.Destructible() && brick.HP < brick.Material.HitPoints() {
				glyph = CrackedGlyph
			}

			screenY := g.layout.Top + row*g.layout.BrickH
			screenX := g.layout.Left + col*g.layout.BrickW
			for dx := 0; dx < g.layout.BrickW; dx++ {
				if inner.Contains(screenX+dx, screenY) {
					dst.SetCell(screenX+dx, screenY, glyph, brick.Material.Color())
				}
			}
		}
	}
}

// renderPaddle draws the wooden paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	paddleX := g.paddle.CellX()
	for i := 0; i < g.paddle.Width; i++ {
		ch := PaddleChar
		if i%3 == 2 && i != g.paddle.Width-1 {
			ch = PaddleSeam
		}
		dst.SetCell(paddleX+i, g.paddle.Y, ch, core.ColorWood)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	dst.SetCell(g.ball.CellX(), g.ball.CellY(), BallChar, core.ColorInk)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		dst.DrawTextCentered(g.paddle.Y-2, "SPACE to launch")

	case StateLifeLost:
		g.drawCenteredBox(dst, "LIFE LOST", fmt.Sprintf("%d remaining", g.lives))

	case StateCleared:
		g.drawCenteredBox(dst, "LEVEL CLEARED", fmt.Sprintf("Next: %s", g.level.Name))

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press SPACE to resume")

	case StateGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R to restart", g.score))

	case StateWin:
		g.drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  R to restart", g.score))
	}
}

// drawCenteredBox draws a centered message box over the playfield.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
