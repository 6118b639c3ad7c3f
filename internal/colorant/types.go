package colorant

// Gray is a single-channel intensity.
type Gray[T Channel] struct {
	V T
}

// GrayA is an intensity with straight alpha.
type GrayA[T Channel] struct {
	V, A T
}

// RGB is a red, green, blue triple.
type RGB[T Channel] struct {
	R, G, B T
}

// BGR stores blue first; its channels are still ordered R, G, B.
type BGR[T Channel] struct {
	B, G, R T
}

// RGBA is RGB with straight alpha.
type RGBA[T Channel] struct {
	R, G, B, A T
}

// BGRA stores blue first; its channels are ordered R, G, B, A.
type BGRA[T Channel] struct {
	B, G, R, A T
}

// ARGB stores alpha first; its channels are ordered R, G, B, A.
type ARGB[T Channel] struct {
	A, R, G, B T
}

// NewRGB returns RGB{r, g, b}.
func NewRGB[T Channel](r, g, b T) RGB[T] { return RGB[T]{R: r, G: g, B: b} }

// NewBGR returns the BGR value with the given red, green and blue.
func NewBGR[T Channel](r, g, b T) BGR[T] { return BGR[T]{R: r, G: g, B: b} }

// NewRGBA returns RGBA{r, g, b, a}.
func NewRGBA[T Channel](r, g, b, a T) RGBA[T] { return RGBA[T]{R: r, G: g, B: b, A: a} }

// NewBGRA returns the BGRA value with the given channels.
func NewBGRA[T Channel](r, g, b, a T) BGRA[T] { return BGRA[T]{R: r, G: g, B: b, A: a} }

// NewARGB returns the ARGB value with the given channels.
func NewARGB[T Channel](r, g, b, a T) ARGB[T] { return ARGB[T]{R: r, G: g, B: b, A: a} }

func (Gray[T]) Len() int  { return 1 }
func (GrayA[T]) Len() int { return 2 }
func (RGB[T]) Len() int   { return 3 }
func (BGR[T]) Len() int   { return 3 }
func (RGBA[T]) Len() int  { return 4 }
func (BGRA[T]) Len() int  { return 4 }
func (ARGB[T]) Len() int  { return 4 }

func (c Gray[T]) Channel(i int) T {
	if i != 0 {
		panic(badChannel("Gray", i))
	}
	return c.V
}

func (c Gray[T]) WithChannel(i int, v T) Gray[T] {
	if i != 0 {
		panic(badChannel("Gray", i))
	}
	c.V = v
	return c
}

func (c GrayA[T]) Channel(i int) T {
	switch i {
	case 0:
		return c.V
	case 1:
		return c.A
	}
	panic(badChannel("GrayA", i))
}

func (c GrayA[T]) WithChannel(i int, v T) GrayA[T] {
	switch i {
	case 0:
		c.V = v
	case 1:
		c.A = v
	default:
		panic(badChannel("GrayA", i))
	}
	return c
}

func (c RGB[T]) Channel(i int) T {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	}
	panic(badChannel("RGB", i))
}

func (c RGB[T]) WithChannel(i int, v T) RGB[T] {
	switch i {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	default:
		panic(badChannel("RGB", i))
	}
	return c
}

func (c BGR[T]) Channel(i int) T {
	return RGB[T]{c.R, c.G, c.B}.Channel(i)
}

func (c BGR[T]) WithChannel(i int, v T) BGR[T] {
	rgb := RGB[T]{c.R, c.G, c.B}.WithChannel(i, v)
	return BGR[T]{B: rgb.B, G: rgb.G, R: rgb.R}
}

func (c RGBA[T]) Channel(i int) T {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	case 3:
		return c.A
	}
	panic(badChannel("RGBA", i))
}

func (c RGBA[T]) WithChannel(i int, v T) RGBA[T] {
	switch i {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	case 3:
		c.A = v
	default:
		panic(badChannel("RGBA", i))
	}
	return c
}

func (c BGRA[T]) Channel(i int) T {
	return RGBA[T]{c.R, c.G, c.B, c.A}.Channel(i)
}

func (c BGRA[T]) WithChannel(i int, v T) BGRA[T] {
	x := RGBA[T]{c.R, c.G, c.B, c.A}.WithChannel(i, v)
	return BGRA[T]{B: x.B, G: x.G, R: x.R, A: x.A}
}

func (c ARGB[T]) Channel(i int) T {
	return RGBA[T]{c.R, c.G, c.B, c.A}.Channel(i)
}

func (c ARGB[T]) WithChannel(i int, v T) ARGB[T] {
	x := RGBA[T]{c.R, c.G, c.B, c.A}.WithChannel(i, v)
	return ARGB[T]{A: x.A, R: x.R, G: x.G, B: x.B}
}

// RGBA implements color.Color.
func (c Gray[T]) RGBA() (r, g, b, a uint32) {
	v := to16(c.V)
	return v, v, v, 0xffff
}

// RGBA implements color.Color.
func (c GrayA[T]) RGBA() (r, g, b, a uint32) {
	return premultiplied(c.V, c.V, c.V, c.A)
}

// RGBA implements color.Color.
func (c RGB[T]) RGBA() (r, g, b, a uint32) {
	return to16(c.R), to16(c.G), to16(c.B), 0xffff
}

// RGBA implements color.Color.
func (c BGR[T]) RGBA() (r, g, b, a uint32) {
	return to16(c.R), to16(c.G), to16(c.B), 0xffff
}

// RGBA implements color.Color.
func (c RGBA[T]) RGBA() (r, g, b, a uint32) {
	return premultiplied(c.R, c.G, c.B, c.A)
}

// RGBA implements color.Color.
func (c BGRA[T]) RGBA() (r, g, b, a uint32) {
	return premultiplied(c.R, c.G, c.B, c.A)
}

// RGBA implements color.Color.
func (c ARGB[T]) RGBA() (r, g, b, a uint32) {
	return premultiplied(c.R, c.G, c.B, c.A)
}
