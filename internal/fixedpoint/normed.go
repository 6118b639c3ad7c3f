package fixedpoint

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrOutOfRange is returned when a value cannot be represented by the target
// fixed-point type.
var ErrOutOfRange = errors.New("value out of range for fixed-point type")

// N0f8 is an 8-bit normalized number in [0, 1].
type N0f8 uint8

// N6f10 is a 16-bit word holding 10-bit normalized data.
type N6f10 uint16

// N4f12 is a 16-bit word holding 12-bit normalized data.
type N4f12 uint16

// N2f14 is a 16-bit word holding 14-bit normalized data.
type N2f14 uint16

// N0f16 is a 16-bit normalized number in [0, 1].
type N0f16 uint16

// Normed is the constraint satisfied by every normalized fixed-point type.
type Normed interface {
	N0f8 | N6f10 | N4f12 | N2f14 | N0f16

	// Float64 returns the represented real value.
	Float64() float64

	// FracBits returns the number of fractional bits f.
	FracBits() uint

	// StorageBits returns the width of the raw storage word.
	StorageBits() uint
}

func (x N0f8) Float64() float64  { return float64(x) / 255 }
func (x N6f10) Float64() float64 { return float64(x) / 1023 }
func (x N4f12) Float64() float64 { return float64(x) / 4095 }
func (x N2f14) Float64() float64 { return float64(x) / 16383 }
func (x N0f16) Float64() float64 { return float64(x) / 65535 }

func (x N0f8) Float32() float32  { return float32(x.Float64()) }
func (x N6f10) Float32() float32 { return float32(x.Float64()) }
func (x N4f12) Float32() float32 { return float32(x.Float64()) }
func (x N2f14) Float32() float32 { return float32(x.Float64()) }
func (x N0f16) Float32() float32 { return float32(x.Float64()) }

func (N0f8) FracBits() uint  { return 8 }
func (N6f10) FracBits() uint { return 10 }
func (N4f12) FracBits() uint { return 12 }
func (N2f14) FracBits() uint { return 14 }
func (N0f16) FracBits() uint { return 16 }

func (N0f8) StorageBits() uint  { return 8 }
func (N6f10) StorageBits() uint { return 16 }
func (N4f12) StorageBits() uint { return 16 }
func (N2f14) StorageBits() uint { return 16 }
func (N0f16) StorageBits() uint { return 16 }

// Raw returns the underlying storage word.
func (x N0f8) Raw() uint8 { return uint8(x) }

// Raw returns the underlying storage word.
func (x N6f10) Raw() uint16 { return uint16(x) }

// Raw returns the underlying storage word.
func (x N4f12) Raw() uint16 { return uint16(x) }

// Raw returns the underlying storage word.
func (x N2f14) Raw() uint16 { return uint16(x) }

// Raw returns the underlying storage word.
func (x N0f16) Raw() uint16 { return uint16(x) }

func (x N0f8) String() string  { return format(x) }
func (x N6f10) String() string { return format(x) }
func (x N4f12) String() string { return format(x) }
func (x N2f14) String() string { return format(x) }
func (x N0f16) String() string { return format(x) }

// TypeName returns the conventional short name of T, e.g. "N0f8".
func TypeName[T Normed]() string {
	var z T
	f := z.FracBits()
	return fmt.Sprintf("N%df%d", z.StorageBits()-f, f)
}

// scale is the raw value that represents 1.0.
func scale[T Normed]() float64 {
	var z T
	return float64(uint64(1)<<z.FracBits() - 1)
}

// rawMax is the largest raw value the storage word can hold.
func rawMax[T Normed]() uint64 {
	var z T
	return uint64(1)<<z.StorageBits() - 1
}

// Eps returns the spacing between adjacent representable values of T.
func Eps[T Normed]() float64 {
	return 1 / scale[T]()
}

// MaxValue returns the largest real value representable by T.
func MaxValue[T Normed]() float64 {
	return float64(rawMax[T]()) / scale[T]()
}

// FromFloat converts x to the nearest value of T.
//
// It returns ErrOutOfRange when x is NaN or outside [0, MaxValue[T]()] after
// rounding.
func FromFloat[T Normed](x float64) (T, error) {
	if math.IsNaN(x) {
		return 0, fmt.Errorf("%w: NaN to %s", ErrOutOfRange, TypeName[T]())
	}
	r := math.Round(x * scale[T]())
	if r < 0 || r > float64(rawMax[T]()) {
		return 0, fmt.Errorf("%w: %g to %s", ErrOutOfRange, x, TypeName[T]())
	}
	return T(uint64(r)), nil
}

// Clamp converts x to the nearest value of T, saturating at the range limits.
// NaN maps to zero.
func Clamp[T Normed](x float64) T {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	r := math.Round(x * scale[T]())
	if r >= float64(rawMax[T]()) {
		return T(rawMax[T]())
	}
	return T(uint64(r))
}

// ToFloat returns the real value of x.
func ToFloat[T Normed](x T) float64 {
	return x.Float64()
}

// NewN0f8 is FromFloat[N0f8].
func NewN0f8(x float64) (N0f8, error) { return FromFloat[N0f8](x) }

// NewN6f10 is FromFloat[N6f10].
func NewN6f10(x float64) (N6f10, error) { return FromFloat[N6f10](x) }

// NewN4f12 is FromFloat[N4f12].
func NewN4f12(x float64) (N4f12, error) { return FromFloat[N4f12](x) }

// NewN2f14 is FromFloat[N2f14].
func NewN2f14(x float64) (N2f14, error) { return FromFloat[N2f14](x) }

// NewN0f16 is FromFloat[N0f16].
func NewN0f16(x float64) (N0f16, error) { return FromFloat[N0f16](x) }

// ClampN0f8 is Clamp[N0f8].
func ClampN0f8(x float64) N0f8 { return Clamp[N0f8](x) }

// ClampN6f10 is Clamp[N6f10].
func ClampN6f10(x float64) N6f10 { return Clamp[N6f10](x) }

// ClampN4f12 is Clamp[N4f12].
func ClampN4f12(x float64) N4f12 { return Clamp[N4f12](x) }

// ClampN2f14 is Clamp[N2f14].
func ClampN2f14(x float64) N2f14 { return Clamp[N2f14](x) }

// ClampN0f16 is Clamp[N0f16].
func ClampN0f16(x float64) N0f16 { return Clamp[N0f16](x) }

// format prints x with as many decimals as its fractional bits resolve,
// trimming trailing zeros but keeping one, followed by the type name:
// raw 128 in N0f8 prints as "0.502N0f8" and raw 255 as "1.0N0f8".
func format[T Normed](x T) string {
	digits := int(math.Ceil(float64(x.FracBits()) * math.Log10(2)))
	s := strconv.FormatFloat(x.Float64(), 'f', digits, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s + TypeName[T]()
}
