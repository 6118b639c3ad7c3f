package colorant

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// FromColor converts any color.Color to a straight-alpha RGBA colorant.
func FromColor[T Channel](c color.Color) RGBA[T] {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA[T]{
		R: FromFloat64[T](float64(n.R) / 0xffff),
		G: FromFloat64[T](float64(n.G) / 0xffff),
		B: FromFloat64[T](float64(n.B) / 0xffff),
		A: FromFloat64[T](float64(n.A) / 0xffff),
	}
}

// Colorful returns the color channels of c as a go-colorful sRGB color.
// Single- and two-channel (gray) colorants replicate the intensity; alpha is
// dropped.
func Colorful[T Channel, C Color[T, C]](c C) colorful.Color {
	if c.Len() < 3 {
		v := ToFloat64(c.Channel(0))
		return colorful.Color{R: v, G: v, B: v}
	}
	return colorful.Color{
		R: ToFloat64(c.Channel(0)),
		G: ToFloat64(c.Channel(1)),
		B: ToFloat64(c.Channel(2)),
	}
}

// FromColorful converts a go-colorful color to RGB with channel type T.
func FromColorful[T Channel](c colorful.Color) RGB[T] {
	return RGB[T]{
		R: FromFloat64[T](c.R),
		G: FromFloat64[T](c.G),
		B: FromFloat64[T](c.B),
	}
}

// ParseHex parses "#RRGGBB" (or "#RGB") into an RGB colorant.
func ParseHex[T Channel](s string) (RGB[T], error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB[T]{}, err
	}
	return FromColorful[T](c), nil
}

// Hex formats the color channels of c as "#rrggbb".
func Hex[T Channel, C Color[T, C]](c C) string {
	return Colorful[T, C](c).Clamped().Hex()
}

// Luminance returns the Rec. 601 luma of c, the weighting used by
// grayscale conversion.
func Luminance[T Channel, C Color[T, C]](c C) float64 {
	k := Colorful[T, C](c)
	return 0.299*k.R + 0.587*k.G + 0.114*k.B
}
