// Package theme holds the colors of the windowed shell.
package theme

import (
	"image/color"

	"github.com/kamstrup/intmap"
)

var (
	Background = color.RGBA{187, 173, 160, 255}
	EmptyCell  = color.RGBA{205, 193, 180, 255}
	Text       = color.RGBA{119, 110, 101, 255}
	LightText  = color.RGBA{249, 246, 242, 255}
	Overlay    = color.RGBA{238, 228, 218, 186}
	Button     = color.RGBA{143, 122, 102, 255}
)

// superTile is used for every value above the last listed one.
var superTile = color.RGBA{60, 58, 50, 255}

// Palette maps tile values to fill colors.
type Palette struct {
	colors *intmap.Map[int, color.RGBA]
}

// NewPalette returns the classic 2048 tile colors.
func NewPalette() *Palette {
	m := intmap.New[int, color.RGBA](16)
	m.Put(0, EmptyCell)
	m.Put(2, color.RGBA{238, 228, 218, 255})
	m.Put(4, color.RGBA{237, 224, 200, 255})
	m.Put(8, color.RGBA{242, 177, 121, 255})
	m.Put(16, color.RGBA{245, 149, 99, 255})
	m.Put(32, color.RGBA{246, 124, 95, 255})
	m.Put(64, color.RGBA{246, 94, 59, 255})
	m.Put(128, color.RGBA{237, 207, 114, 255})
	m.Put(256, color.RGBA{237, 204, 97, 255})
	m.Put(512, color.RGBA{237, 200, 80, 255})
	m.Put(1024, color.RGBA{237, 197, 63, 255})
	m.Put(2048, color.RGBA{237, 194, 46, 255})
	m.Put(4096, superTile)
	return &Palette{colors: m}
}

// Tile returns the fill color for a tile value.
func (p *Palette) Tile(value int) color.RGBA {
	if c, ok := p.colors.Get(value); ok {
		return c
	}
	return superTile
}

// TileText returns the text color that reads well on the tile's fill.
func (p *Palette) TileText(value int) color.RGBA {
	if value <= 4 {
		return Text
	}
	return LightText
}
