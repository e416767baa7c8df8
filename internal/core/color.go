package core

// Color represents a foreground color for a screen cell.
// Shells translate it to ANSI 256-color codes or RGB.
type Color uint8

// Predefined colors. The tile colors follow the classic 2048 progression
// from pale to warm to gold.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
	ColorBrightYellow
	ColorGreen
	ColorCyan
)

// TileColor returns the display color for a tile value.
func TileColor(value int) Color {
	switch {
	case value == 0:
		return ColorGray
	case value <= 2:
		return ColorWhite
	case value <= 4:
		return ColorBrightWhite
	case value <= 8:
		return ColorYellow
	case value <= 16:
		return ColorOrange
	case value <= 32:
		return ColorRed
	case value <= 64:
		return ColorBrightRed
	case value <= 256:
		return ColorMagenta
	case value <= 2048:
		return ColorBrightYellow
	default:
		return ColorGreen
	}
}
