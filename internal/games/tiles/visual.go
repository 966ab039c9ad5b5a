package tiles

import (
	"github.com/Entemena/MATCH3PROTOTYPE/internal/core"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/grid"
)

// Visual is how one tile looks on screen.
type Visual struct {
	Glyph rune
	Color core.Color
}

// VisualResolver maps a tile's type and level to its look.
type VisualResolver interface {
	Resolve(t grid.TileType, level int) Visual
}

// VisualFunc adapts a plain function to VisualResolver.
type VisualFunc func(t grid.TileType, level int) Visual

// Resolve implements VisualResolver.
func (f VisualFunc) Resolve(t grid.TileType, level int) Visual {
	return f(t, level)
}

var glyphs = []rune{'●', '■', '▲', '◆', '★', '♥', '♣', '♠'}

// DefaultVisuals gives every type its own glyph and color. Level only
// changes the glyph once it runs past the digits the board can print.
type DefaultVisuals struct{}

// Resolve implements VisualResolver.
func (DefaultVisuals) Resolve(t grid.TileType, level int) Visual {
	i := int(t) % len(glyphs)
	if i < 0 {
		i += len(glyphs)
	}
	v := Visual{Glyph: glyphs[i], Color: core.TileColors[i%len(core.TileColors)]}
	if level > 9 {
		v.Color = core.ColorBrightWhite
	}
	return v
}
