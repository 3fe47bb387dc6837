// Package game implements the blockout simulation: a Breakout-style brick
// breaker with a block-world theme. The package is pure logic driven by
// Step calls; rendering and input mapping live in the platform layer.
package game

import "github.com/vovakirdan/blockout/internal/core"

// Material is the ore type of a brick. Each material carries its own
// hit-point count, score value, glyph, and color.
type Material int

const (
	MatNone Material = iota
	MatDirt
	MatStone
	MatIron
	MatRedstone
	MatGold
	MatLapis
	MatEmerald
	MatDiamond
	MatBedrock // Indestructible
)

// HitPoints returns the number of hits needed to destroy the material.
// Bedrock is effectively indestructible.
func (m Material) HitPoints() int {
	switch m {
	case MatDirt, MatStone:
		return 1
	case MatIron, MatRedstone, MatGold, MatLapis:
		return 2
	case MatEmerald, MatDiamond:
		return 3
	case MatBedrock:
		return 999
	default:
		return 0
	}
}

// Points returns the score awarded when a brick of this material is destroyed.
func (m Material) Points() int {
	switch m {
	case MatDirt:
		return 5
	case MatStone:
		return 10
	case MatIron:
		return 15
	case MatRedstone:
		return 20
	case MatGold:
		return 25
	case MatLapis:
		return 30
	case MatEmerald:
		return 40
	case MatDiamond:
		return 50
	default:
		return 0
	}
}

// Glyph returns the display character for the material at full health.
func (m Material) Glyph() rune {
	switch m {
	case MatDirt:
		return '░'
	case MatStone:
		return '▒'
	case MatIron:
		return '▒'
	case MatRedstone:
		return '▓'
	case MatGold:
		return '▓'
	case MatLapis:
		return '▓'
	case MatEmerald:
		return '█'
	case MatDiamond:
		return '█'
	case MatBedrock:
		return '█'
	default:
		return ' '
	}
}

// Color returns the palette color for the material.
func (m Material) Color() core.Color {
	switch m {
	case MatDirt:
		return core.ColorDirt
	case MatStone:
		return core.ColorStone
	case MatIron:
		return core.ColorIron
	case MatRedstone:
		return core.ColorRedstone
	case MatGold:
		return core.ColorGold
	case MatLapis:
		return core.ColorLapis
	case MatEmerald:
		return core.ColorEmerald
	case MatDiamond:
		return core.ColorDiamond
	case MatBedrock:
		return core.ColorBedrock
	default:
		return core.ColorDefault
	}
}

// String returns the material name.
func (m Material) String() string {
	switch m {
	case MatNone:
		return "none"
	case MatDirt:
		return "dirt"
	case MatStone:
		return "stone"
	case MatIron:
		return "iron"
	case MatRedstone:
		return "redstone"
	case MatGold:
		return "gold"
	case MatLapis:
		return "lapis"
	case MatEmerald:
		return "emerald"
	case MatDiamond:
		return "diamond"
	case MatBedrock:
		return "bedrock"
	default:
		return "unknown"
	}
}

// Destructible reports whether bricks of this material can be destroyed.
func (m Material) Destructible() bool {
	return m != MatNone && m != MatBedrock
}

// Brick is a single brick in the level grid.
type Brick struct {
	Material Material
	HP       int  // Hit points remaining; never negative
	Alive    bool // Whether brick is still present
}

// Level is a playable level: its brick layout plus metadata.
type Level struct {
	ID     string
	Name   string
	Width  int       // Number of brick columns
	Height int       // Number of brick rows
	Bricks [][]Brick // 2D grid of bricks [row][col]
}

// BrickLayout maps the brick grid onto screen cells.
type BrickLayout struct {
	Left   int // X cell of the leftmost brick column
	Top    int // Y cell of the topmost brick row
	BrickW int // Width of each brick in cells
	BrickH int // Height of each brick in cells
}

// Clone creates a deep copy of the level (for reset).
func (l *Level) Clone() *Level {
	clone := &Level{
		ID:     l.ID,
		Name:   l.Name,
		Width:  l.Width,
		Height: l.Height,
		Bricks: make([][]Brick, len(l.Bricks)),
	}
	for i, row := range l.Bricks {
		clone.Bricks[i] = make([]Brick, len(row))
		copy(clone.Bricks[i], row)
	}
	return clone
}

// CountAlive returns the number of remaining destructible bricks.
func (l *Level) CountAlive() int {
	count := 0
	for _, row := range l.Bricks {
		for _, b := range row {
			if b.Alive && b.Material.Destructible() {
				count++
			}
		}
	}
	return count
}

// Harden adds bonus HP to every live destructible brick. Used by endless
// mode to scale difficulty on each layout cycle.
func (l *Level) Harden(bonus int) {
	if bonus <= 0 {
		return
	}
	for row := range l.Bricks {
		for col := range l.Bricks[row] {
			b := &l.Bricks[row][col]
			if b.Alive && b.Material.Destructible() {
				b.HP += bonus
			}
		}
	}
}

// materialForRune maps level-map characters to materials.
func materialForRune(ch byte) Material {
	switch ch {
	case 'd':
		return MatDirt
	case 's':
		return MatStone
	case 'i':
		return MatIron
	case 'r':
		return MatRedstone
	case 'g':
		return MatGold
	case 'l':
		return MatLapis
	case 'e':
		return MatEmerald
	case 'D':
		return MatDiamond
	case 'X':
		return MatBedrock
	default:
		return MatNone
	}
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'.' = empty
//	'd' = dirt      's' = stone    'i' = iron   'r' = redstone
//	'g' = gold      'l' = lapis    'e' = emerald
//	'D' = diamond   'X' = bedrock (indestructible)
func ParseLevel(id, name string, lines []string) *Level {
	if len(lines) == 0 {
		return &Level{ID: id, Name: name}
	}

	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	level := &Level{
		ID:     id,
		Name:   name,
		Width:  maxWidth,
		Height: len(lines),
		Bricks: make([][]Brick, len(lines)),
	}

	for row, line := range lines {
		level.Bricks[row] = make([]Brick, maxWidth)
		for col := 0; col < maxWidth; col++ {
			var ch byte = '.'
			if col < len(line) {
				ch = line[col]
			}

			mat := materialForRune(ch)
			if mat == MatNone {
				level.Bricks[row][col] = Brick{Material: MatNone}
				continue
			}
			level.Bricks[row][col] = Brick{
				Material: mat,
				HP:       mat.HitPoints(),
				Alive:    true,
			}
		}
	}

	return level
}

// BuiltinLevels returns all built-in levels in campaign order.
func BuiltinLevels() []*Level {
	return []*Level{
		// Level 1: surface digging, soft materials only
		ParseLevel("topsoil", "Topsoil", []string{
			"dddddddddddddddddddd",
			"dddddddddddddddddddd",
			"ssssssssssssssssssss",
			"ssssssssssssssssssss",
			"ssssssssssssssssssss",
		}),

		// Level 2: ore seams between stone
		ParseLevel("seams", "Ore Seams", []string{
			"ssssssssssssssssssss",
			"ssiissssggssssiissss",
			"ssssssssssssssssssss",
			"rrssssllssssrrssssll",
			"ssssssssssssssssssss",
		}),

		// Level 3: pyramid of increasingly rich ore
		ParseLevel("motherlode", "Motherlode", []string{
			"........DDDD........",
			"......eeeeeeee......",
			"....gggggggggggg....",
			"..iiiiiiiiiiiiiiii..",
			"ssssssssssssssssssss",
		}),

		// Level 4: checkerboard quarry
		ParseLevel("quarry", "Quarry", []string{
			"s.s.s.s.s.s.s.s.s.s.",
			".i.i.i.i.i.i.i.i.i.i",
			"s.s.s.s.s.s.s.s.s.s.",
			".g.g.g.g.g.g.g.g.g.g",
			"s.s.s.s.s.s.s.s.s.s.",
			".r.r.r.r.r.r.r.r.r.r",
		}),

		// Level 5: geode with a diamond core
		ParseLevel("geode", "Geode", []string{
			".........ss.........",
			".......ssllss.......",
			".....ssllDDllss.....",
			"....sllDDDDDDlls....",
			".....ssllDDllss.....",
			".......ssllss.......",
			".........ss.........",
		}),

		// Level 6: bedrock vault guarding emeralds, breached at the bottom
		ParseLevel("vault", "The Vault", []string{
			"XXXXXXXXXXXXXXXXXXXX",
			"X..................X",
			"X.eeeeeeeeeeeeeeee.X",
			"X.eeeeeeeeeeeeeeee.X",
			"X.gggggggggggggggg.X",
			"X..................X",
			"XXXX....XXXX....XXXX",
		}),

		// Level 7: alternating strip mine
		ParseLevel("stripmine", "Strip Mine", []string{
			"rrrrrrrrrrrrrrrrrrrr",
			"....................",
			"gggggggggggggggggggg",
			"....................",
			"llllllllllllllllllll",
			"....................",
			"eeeeeeeeeeeeeeeeeeee",
		}),

		// Level 8: deep dark, hardest materials everywhere
		ParseLevel("deepdark", "Deep Dark", []string{
			"XDDXXDDXXDDXXDDXXDDX",
			"DeeDDeeDDeeDDeeDDeeD",
			"DeeDDeeDDeeDDeeDDeeD",
			"XDDXXDDXXDDXXDDXXDDX",
			"llllllllllllllllllll",
			"gggggggggggggggggggg",
		}),
	}
}

// GetLevelByID returns a fresh copy of a level by its ID.
func GetLevelByID(id string) (*Level, bool) {
	for _, level := range BuiltinLevels() {
		if level.ID == id {
			return level.Clone(), true
		}
	}
	return nil, false
}

// GetLevel returns a level by index (wraps around if index >= count).
func GetLevel(index int) *Level {
	levels := BuiltinLevels()
	if len(levels) == 0 {
		return ParseLevel("empty", "Empty", []string{})
	}
	return levels[index%len(levels)].Clone()
}

// LevelCount returns the total number of built-in levels.
func LevelCount() int {
	return len(BuiltinLevels())
}
