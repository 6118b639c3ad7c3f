package mapping

import (
	"math"

	"github.com/ironsheep/image-core/internal/colorant"
	"github.com/ironsheep/image-core/internal/fixedpoint"
	"github.com/lucasb-eyer/go-colorful"
)

// Default colors of ColorSigned.
var (
	Green1  = colorful.Color{R: 0, G: 1, B: 0}
	White   = colorful.Color{R: 1, G: 1, B: 1}
	Magenta = colorful.Color{R: 1, G: 0, B: 1}
)

// ColorSigned returns a colormap for values in [-1, 1]: -1 is green, 0 white
// and 1 magenta. Combine it with ScaleSigned or ScaleSignedCentered.
func ColorSigned() func(float64) colorant.RGB[fixedpoint.N0f8] {
	return ColorSigned3(Green1, White, Magenta)
}

// ColorSigned2 is ColorSigned with custom end colors and a white center.
func ColorSigned2(neg, pos colorful.Color) func(float64) colorant.RGB[fixedpoint.N0f8] {
	return ColorSigned3(neg, White, pos)
}

// ColorSigned3 returns a colormap interpolating linearly in RGB from neg at
// -1 through center at 0 to pos at 1. Inputs outside [-1, 1] are clamped and
// NaN maps to center.
func ColorSigned3(neg, center, pos colorful.Color) func(float64) colorant.RGB[fixedpoint.N0f8] {
	return func(x float64) colorant.RGB[fixedpoint.N0f8] {
		var c colorful.Color
		switch {
		case math.IsNaN(x):
			c = center
		case x < 0:
			c = center.BlendRgb(neg, math.Min(-x, 1))
		default:
			c = center.BlendRgb(pos, math.Min(x, 1))
		}
		return colorant.FromColorful[fixedpoint.N0f8](c)
	}
}
