package fixedpoint

import (
	"errors"
	"math"
	"testing"
)

func TestFloat64_Endpoints(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"N0f8 zero", N0f8(0).Float64(), 0},
		{"N0f8 one", N0f8(255).Float64(), 1},
		{"N0f16 one", N0f16(65535).Float64(), 1},
		{"N6f10 one", N6f10(1023).Float64(), 1},
		{"N4f12 one", N4f12(4095).Float64(), 1},
		{"N2f14 one", N2f14(16383).Float64(), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"half-ish", N0f8(128).String(), "0.502N0f8"},
		{"one", N0f8(255).String(), "1.0N0f8"},
		{"zero", N0f8(0).String(), "0.0N0f8"},
		{"quarter", N0f8(64).String(), "0.251N0f8"},
		{"16-bit one", N0f16(65535).String(), "1.0N0f16"},
		{"10-bit", N6f10(1023).String(), "1.0N6f10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	if got := TypeName[N0f8](); got != "N0f8" {
		t.Errorf("TypeName[N0f8]: got %s", got)
	}
	if got := TypeName[N4f12](); got != "N4f12" {
		t.Errorf("TypeName[N4f12]: got %s", got)
	}
	if got := TypeName[N2f14](); got != "N2f14" {
		t.Errorf("TypeName[N2f14]: got %s", got)
	}
}

func TestFromFloat_RoundTrip(t *testing.T) {
	for raw := 0; raw <= 255; raw++ {
		x := N0f8(raw)
		back, err := FromFloat[N0f8](x.Float64())
		if err != nil {
			t.Fatalf("raw %d: %v", raw, err)
		}
		if back != x {
			t.Fatalf("raw %d: round trip gave %d", raw, back)
		}
	}

	for _, raw := range []uint16{0, 1, 511, 1023, 4095, 65535} {
		x := N6f10(raw)
		back, err := NewN6f10(x.Float64())
		if err != nil {
			t.Fatalf("raw %d: %v", raw, err)
		}
		if back != x {
			t.Fatalf("raw %d: round trip gave %d", raw, back)
		}
	}
}

func TestFromFloat_Rounds(t *testing.T) {
	got, err := NewN0f8(0.5)
	if err != nil {
		t.Fatalf("NewN0f8(0.5): %v", err)
	}
	if got != 128 {
		t.Errorf("NewN0f8(0.5): got raw %d, want 128", got)
	}

	got, err = NewN0f8(0.25)
	if err != nil {
		t.Fatalf("NewN0f8(0.25): %v", err)
	}
	if got != 64 {
		t.Errorf("NewN0f8(0.25): got raw %d, want 64", got)
	}
}

func TestFromFloat_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		x    float64
	}{
		{"negative", -0.1},
		{"above one", 1.01},
		{"NaN", math.NaN()},
		{"infinity", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewN0f8(tt.x)
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("NewN0f8(%v): got %v, want ErrOutOfRange", tt.x, err)
			}
		})
	}

	// N6f10 stores values above 1.
	if _, err := NewN6f10(2.0); err != nil {
		t.Errorf("NewN6f10(2.0) should succeed: %v", err)
	}
	if _, err := NewN6f10(65); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("NewN6f10(65): got %v, want ErrOutOfRange", err)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want N0f8
	}{
		{"below", -3, 0},
		{"above", 7, 255},
		{"NaN", math.NaN(), 0},
		{"inside", 0.502, 128},
		{"negative infinity", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampN0f8(tt.x); got != tt.want {
				t.Errorf("ClampN0f8(%v): got %d, want %d", tt.x, got, tt.want)
			}
		})
	}

	if got := ClampN0f16(2); got != 65535 {
		t.Errorf("ClampN0f16(2): got %d", got)
	}
}

func TestEpsAndMaxValue(t *testing.T) {
	if got := Eps[N0f8](); math.Abs(got-1.0/255) > 1e-15 {
		t.Errorf("Eps[N0f8]: got %v", got)
	}
	if got := MaxValue[N0f8](); got != 1 {
		t.Errorf("MaxValue[N0f8]: got %v", got)
	}
	if got := MaxValue[N2f14](); math.Abs(got-65535.0/16383) > 1e-12 {
		t.Errorf("MaxValue[N2f14]: got %v", got)
	}
}
