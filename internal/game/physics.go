package game

import "github.com/vovakirdan/blockout/internal/core"

// Fixed-point scale factor: 1 cell = 1000 units.
// This allows for sub-cell precision while keeping the simulation
// deterministic across platforms.
const Scale = 1000

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts fixed-point to cell coordinate (truncated).
func (f Fixed) ToCell() int {
	return int(f) / Scale
}

// Add adds two fixed-point values.
func (f Fixed) Add(other Fixed) Fixed {
	return f + other
}

// Sub subtracts two fixed-point values.
func (f Fixed) Sub(other Fixed) Fixed {
	return f - other
}

// Mul multiplies fixed-point by an integer.
func (f Fixed) Mul(n int) Fixed {
	return Fixed(int(f) * n)
}

// Div divides fixed-point by an integer.
func (f Fixed) Div(n int) Fixed {
	if n == 0 {
		return 0
	}
	return Fixed(int(f) / n)
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1.
func (f Fixed) Sign() int {
	if f < 0 {
		return -1
	}
	if f > 0 {
		return 1
	}
	return 0
}

// ClampFixed restricts a value to [minVal, maxVal].
func ClampFixed(val, minVal, maxVal Fixed) Fixed {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Ball represents the ball state with fixed-point coordinates.
type Ball struct {
	X, Y   Fixed // Position (center)
	VX, VY Fixed // Velocity per tick
	Stuck  bool  // Whether ball is resting on the paddle awaiting launch
}

// CellX returns the ball's X position in cell coordinates.
func (b *Ball) CellX() int {
	return b.X.ToCell()
}

// CellY returns the ball's Y position in cell coordinates.
func (b *Ball) CellY() int {
	return b.Y.ToCell()
}

// Move updates ball position by velocity (semi-implicit Euler: the
// velocity set by earlier collisions is applied before the next check).
func (b *Ball) Move() {
	b.X = b.X.Add(b.VX)
	b.Y = b.Y.Add(b.VY)
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// SpeedSum returns |VX|+|VY|, the L1 speed used for min-speed enforcement.
func (b *Ball) SpeedSum() Fixed {
	return b.VX.Abs() + b.VY.Abs()
}

// Rescale multiplies the velocity by newSpeed/oldSpeed, preserving direction.
func (b *Ball) Rescale(newSpeed, oldSpeed Fixed) {
	if oldSpeed == 0 {
		return
	}
	b.VX = b.VX.Mul(int(newSpeed)).Div(int(oldSpeed))
	b.VY = b.VY.Mul(int(newSpeed)).Div(int(oldSpeed))
}

// Paddle represents the player's paddle.
type Paddle struct {
	X     Fixed // Left edge position (fixed-point)
	Y     int   // Cell Y position (fixed row near the bottom border)
	Width int   // Width in cells
}

// CellX returns paddle's left edge in cell coordinates.
func (p *Paddle) CellX() int {
	return p.X.ToCell()
}

// CenterX returns paddle's center in fixed-point.
func (p *Paddle) CenterX() Fixed {
	return p.X.Add(ToFixed(p.Width).Div(2))
}

// Left returns left edge in fixed-point.
func (p *Paddle) Left() Fixed {
	return p.X
}

// Right returns right edge in fixed-point.
func (p *Paddle) Right() Fixed {
	return p.X.Add(ToFixed(p.Width))
}

// CollisionSide indicates which face of an object was struck.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// CheckBorderCollision checks the ball against the inner edge of the
// playfield border. The velocity component perpendicular to the struck
// border is reflected and the position clamped inside the field, so a
// fast ball cannot tunnel through.
// Returns the struck side and whether the ball crossed the bottom border.
func CheckBorderCollision(ball *Ball, field core.Rect) (side CollisionSide, miss bool) {
	minX := ToFixed(field.X + 1)
	maxX := ToFixed(field.Right() - 2)
	minY := ToFixed(field.Y + 1)
	bottom := ToFixed(field.Bottom() - 1)

	// Bottom border costs a life exactly when the ball touches it.
	if ball.Y >= bottom {
		return CollisionBottom, true
	}

	if ball.X < minX {
		ball.X = minX
		return CollisionLeft, false
	}
	if ball.X > maxX {
		ball.X = maxX
		return CollisionRight, false
	}
	if ball.Y < minY {
		ball.Y = minY
		return CollisionTop, false
	}

	return CollisionNone, false
}

// CheckPaddleCollision checks if the ball hits the paddle.
// On contact the vertical velocity is reflected upward and the horizontal
// velocity is biased by the impact offset from the paddle center, giving
// the player directional control. biasPercent tunes how strongly edge hits
// angle the ball (100 = full deflection at the edges).
// Returns true if a collision occurred.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, speed Fixed, biasPercent int) bool {
	// Ball must be moving downward and at paddle level
	if ball.VY <= 0 {
		return false
	}

	ballY := ball.CellY()
	if ballY != paddle.Y && ballY != paddle.Y-1 {
		return false
	}

	if ball.X < paddle.Left() || ball.X > paddle.Right() {
		return false
	}

	// Normalize the impact offset to -1000..+1000 (paddle center = 0)
	hitOffset := ball.X.Sub(paddle.CenterX())
	halfWidth := ToFixed(paddle.Width).Div(2)
	var normalizedHit Fixed
	if halfWidth > 0 {
		normalizedHit = ClampFixed(hitOffset.Mul(Scale).Div(int(halfWidth)), -Scale, Scale)
	}

	// Reflect upward, keeping at least half the serve speed vertically so
	// extreme edge hits cannot flatten the trajectory.
	ball.VY = -ball.VY.Abs()
	if ball.VY > -speed/2 {
		ball.VY = -speed / 2
	}

	ball.VX = normalizedHit.Mul(int(speed)).Div(Scale).Mul(biasPercent).Div(100)

	// Reposition above the paddle so the ball moves away next tick
	ball.Y = ToFixed(paddle.Y - 1)

	return true
}

// CheckBrickCollision checks whether the ball overlaps a live brick.
// Broad-phase is the grid cell containing the ball; layout gives the brick
// area origin and cell size. For corner contacts the struck face is the one
// with the smaller penetration depth, which reflects the matching axis.
// Returns brick coordinates and collision side, or (-1, -1, CollisionNone).
func CheckBrickCollision(ball *Ball, level *Level, layout BrickLayout) (row, col int, side CollisionSide) {
	ballCellX := ball.CellX()
	ballCellY := ball.CellY()

	if ballCellY < layout.Top || ballCellX < layout.Left {
		return -1, -1, CollisionNone
	}
	row = (ballCellY - layout.Top) / layout.BrickH
	col = (ballCellX - layout.Left) / layout.BrickW
	if row < 0 || row >= level.Height || col < 0 || col >= level.Width {
		return -1, -1, CollisionNone
	}

	brick := &level.Bricks[row][col]
	if !brick.Alive {
		return -1, -1, CollisionNone
	}

	brickLeft := layout.Left + col*layout.BrickW
	brickRight := brickLeft + layout.BrickW
	brickTop := layout.Top + row*layout.BrickH
	brickBottom := brickTop + layout.BrickH

	// Penetration depth from each face
	distLeft := ball.X.Sub(ToFixed(brickLeft)).Abs()
	distRight := ball.X.Sub(ToFixed(brickRight)).Abs()
	distTop := ball.Y.Sub(ToFixed(brickTop)).Abs()
	distBottom := ball.Y.Sub(ToFixed(brickBottom)).Abs()

	minHoriz := distLeft
	horizSide := CollisionLeft
	if distRight < minHoriz {
		minHoriz = distRight
		horizSide = CollisionRight
	}

	minVert := distTop
	vertSide := CollisionTop
	if distBottom < minVert {
		minVert = distBottom
		vertSide = CollisionBottom
	}

	// Prefer a vertical bounce when the motion is mostly vertical
	if ball.VY.Abs() > ball.VX.Abs() || minVert <= minHoriz {
		return row, col, vertSide
	}
	return row, col, horizSide
}

// SeparateFromBrick moves the ball just outside the struck face so a
// surviving brick is not hit again on the very next tick.
func SeparateFromBrick(ball *Ball, layout BrickLayout, row, col int, side CollisionSide) {
	brickLeft := layout.Left + col*layout.BrickW
	brickRight := brickLeft + layout.BrickW
	brickTop := layout.Top + row*layout.BrickH
	brickBottom := brickTop + layout.BrickH

	switch side {
	case CollisionTop:
		ball.Y = ToFixed(brickTop) - 1
	case CollisionBottom:
		ball.Y = ToFixed(brickBottom)
	case CollisionLeft:
		ball.X = ToFixed(brickLeft) - 1
	case CollisionRight:
		ball.X = ToFixed(brickRight)
	}
}

// ApplyCollisionBounce applies the appropriate reflection for the struck side.
// Reflections negate one velocity component, so speed is conserved.
func ApplyCollisionBounce(ball *Ball, side CollisionSide) {
	switch side {
	case CollisionTop, CollisionBottom:
		ball.BounceY()
	case CollisionLeft, CollisionRight:
		ball.BounceX()
	}
}
