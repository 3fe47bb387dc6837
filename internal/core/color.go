package core

// Color identifies a foreground color for a screen cell.
// The platform layer maps these to terminal colors; the simulation only
// picks from this palette.
type Color uint8

// Palette for game elements, loosely after the block-world theme:
// grass and dirt for the border, ore colors for bricks, wood for the paddle.
const (
	ColorDefault Color = iota
	ColorGrass
	ColorGrassDark
	ColorDirt
	ColorStone
	ColorWood
	ColorIron
	ColorGold
	ColorRedstone
	ColorLapis
	ColorEmerald
	ColorDiamond
	ColorBedrock
	ColorInk
	ColorMuted
)
