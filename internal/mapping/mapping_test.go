package mapping

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ironsheep/image-core/internal/colorant"
	"github.com/ironsheep/image-core/internal/fixedpoint"
	"github.com/ironsheep/image-core/internal/ndarray"
	"github.com/lucasb-eyer/go-colorful"
)

type rgb8 = colorant.RGB[fixedpoint.N0f8]

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want, wantNaN float64
	}{
		{-0.5, 0, 0},
		{0.25, 0.25, 0.25},
		{1.5, 1, 1},
		{math.Inf(1), 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got := Clamp01NaN(tt.in); got != tt.wantNaN {
			t.Errorf("Clamp01NaN(%v) = %v, want %v", tt.in, got, tt.wantNaN)
		}
	}

	if !math.IsNaN(Clamp01(math.NaN())) {
		t.Error("Clamp01 should pass NaN through")
	}
	if got := Clamp01NaN(float32(math.NaN())); got != 0 {
		t.Errorf("Clamp01NaN(NaN) = %v, want 0", got)
	}
}

func TestClamp01Color(t *testing.T) {
	c := colorant.NewRGB(-0.2, 0.4, 1.7)
	got := Clamp01Color[float64](c)
	if want := colorant.NewRGB(0.0, 0.4, 1.0); got != want {
		t.Errorf("Clamp01Color: got %+v, want %+v", got, want)
	}

	n := Clamp01NaNColor[float64](colorant.NewRGB(math.NaN(), 2, 0.5))
	if want := colorant.NewRGB(0.0, 1.0, 0.5); n != want {
		t.Errorf("Clamp01NaNColor: got %+v, want %+v", n, want)
	}

	// N6f10 can hold values above 1.
	over := colorant.Gray[fixedpoint.N6f10]{V: 0xffff}
	if got := Clamp01Color[fixedpoint.N6f10](over).V.Float64(); got != 1 {
		t.Errorf("N6f10 clamp: got %v, want 1", got)
	}
}

func TestClamp01InPlace(t *testing.T) {
	a, _ := ndarray.FromSlice([]float64{-1, 0.5, 2, math.NaN()}, 4)
	if err := Clamp01InPlace[float64](a); err != nil {
		t.Fatalf("Clamp01InPlace: %v", err)
	}
	got := ndarray.Values[float64](a)
	want := []float64{0, 0.5, 1, math.NaN()}
	if diff := cmp.Diff(want, got, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if err := Clamp01NaNInPlace[float64](a); err != nil {
		t.Fatalf("Clamp01NaNInPlace: %v", err)
	}
	if got := a.At(3); got != 0 {
		t.Errorf("NaN after Clamp01NaNInPlace: got %v", got)
	}
}

func TestClamp01ColorInPlace(t *testing.T) {
	a, _ := ndarray.FromSlice([]colorant.Gray[float32]{{V: -1}, {V: 3}}, 2)
	if err := Clamp01ColorInPlace[float32, colorant.Gray[float32]](a); err != nil {
		t.Fatalf("Clamp01ColorInPlace: %v", err)
	}
	if a.At(0).V != 0 || a.At(1).V != 1 {
		t.Errorf("got %v, %v", a.At(0), a.At(1))
	}
}

func TestScaleMinMax(t *testing.T) {
	f, err := ScaleMinMax(-10, 10)
	if err != nil {
		t.Fatalf("ScaleMinMax: %v", err)
	}
	tests := []struct {
		in, want float64
	}{
		{10, 1},
		{-10, 0},
		{5, 0.75},
		{0, 0.5},
		{100, 1},
		{-100, 0},
	}
	for _, tt := range tests {
		if got := f(tt.in); !approx(got, tt.want) {
			t.Errorf("f(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScaleMinMax_InvalidRange(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
	}{
		{"equal", 1, 1},
		{"reversed", 5, 0},
		{"nan", math.NaN(), 1},
		{"infinite", 0, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ScaleMinMax(tt.lo, tt.hi); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("got %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestScaleMinMaxColor(t *testing.T) {
	f, err := ScaleMinMaxColor[float64, colorant.RGB[float64]](0, 255)
	if err != nil {
		t.Fatalf("ScaleMinMaxColor: %v", err)
	}
	got := f(colorant.NewRGB(255.0, 128.0, 0.0))
	if !approx(got.R, 1) || !approx(got.G, 128.0/255) || got.B != 0 {
		t.Errorf("got %+v, want (1, 0.50196, 0)", got)
	}
	if math.Abs(got.G-0.50196) > 1e-5 {
		t.Errorf("G = %v", got.G)
	}
}

func TestScaleSigned(t *testing.T) {
	f, err := ScaleSigned(4)
	if err != nil {
		t.Fatalf("ScaleSigned: %v", err)
	}
	for in, want := range map[float64]float64{-8: -1, -2: -0.5, 0: 0, 1: 0.25, 9: 1} {
		if got := f(in); got != want {
			t.Errorf("f(%v) = %v, want %v", in, got, want)
		}
	}
	if _, err := ScaleSigned(0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("ScaleSigned(0): got %v", err)
	}
}

func TestScaleSignedCentered(t *testing.T) {
	f, err := ScaleSignedCentered(-5, 0, 20)
	if err != nil {
		t.Fatalf("ScaleSignedCentered: %v", err)
	}
	for in, want := range map[float64]float64{-10: -1, -5: -1, -2.5: -0.5, 0: 0, 10: 0.5, 20: 1, 40: 1} {
		if got := f(in); got != want {
			t.Errorf("f(%v) = %v, want %v", in, got, want)
		}
	}
	if _, err := ScaleSignedCentered(0, 0, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("degenerate center: got %v", err)
	}
}

func TestColorSigned(t *testing.T) {
	scale, err := ScaleSignedCentered(-5, 0, 20)
	if err != nil {
		t.Fatalf("ScaleSignedCentered: %v", err)
	}
	cmap := ColorSigned()

	tests := []struct {
		in   float64
		want rgb8
	}{
		{-5, rgb8{R: 0, G: 255, B: 0}},
		{20, rgb8{R: 255, G: 0, B: 255}},
		{0, rgb8{R: 255, G: 255, B: 255}},
		{10, rgb8{R: 255, G: 128, B: 255}},
	}
	for _, tt := range tests {
		if got := cmap(scale(tt.in)); got != tt.want {
			t.Errorf("colorsigned(%v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if got := cmap(scale(10)).G.String(); got != "0.502N0f8" {
		t.Errorf("green channel at 10 prints %s", got)
	}
	if got := cmap(math.NaN()); got != (rgb8{R: 255, G: 255, B: 255}) {
		t.Errorf("NaN: got %+v, want white", got)
	}
}

func TestColorSigned2(t *testing.T) {
	blue := colorful.Color{B: 1}
	red := colorful.Color{R: 1}
	cmap := ColorSigned2(blue, red)
	if got := cmap(-1); got != (rgb8{B: 255}) {
		t.Errorf("-1: got %+v", got)
	}
	if got := cmap(2); got != (rgb8{R: 255}) {
		t.Errorf("clamped 2: got %+v", got)
	}

	black := colorful.Color{}
	mid := ColorSigned3(blue, black, red)(0.5)
	if mid != (rgb8{R: 128}) {
		t.Errorf("ColorSigned3(0.5): got %+v", mid)
	}
}

func TestTakeMap(t *testing.T) {
	a, _ := ndarray.FromSlice([]float64{0, 1, 1000}, 3)
	f, err := TakeMap[float64](ScaleMinMax, a)
	if err != nil {
		t.Fatalf("TakeMap: %v", err)
	}
	got := ndarray.Values(ApplyFloat[float64](a, f))
	want := []float64{0, 0.001, 1}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTakeMap_FixedPoint(t *testing.T) {
	// Fixed-point values are fitted on their normalized value.
	a, _ := ndarray.FromSlice([]fixedpoint.N0f8{51, 102, 204}, 3)
	f, err := TakeMap[fixedpoint.N0f8](ScaleMinMax, a)
	if err != nil {
		t.Fatalf("TakeMap: %v", err)
	}
	if got := f(0.4); !approx(got, 1.0/3) {
		t.Errorf("f(0.4) = %v, want 1/3", got)
	}
}

func TestTakeMap_Errors(t *testing.T) {
	nan, _ := ndarray.FromSlice([]float64{math.NaN(), math.NaN()}, 2)
	if _, err := TakeMap[float64](ScaleMinMax, nan); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("all NaN: got %v", err)
	}
	flat, _ := ndarray.FromSlice([]int{3, 3}, 2)
	if _, err := TakeMap[int](ScaleMinMax, flat); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("constant: got %v", err)
	}
}

func TestTakeMapSigned(t *testing.T) {
	a, _ := ndarray.FromSlice([]int16{-50, 10, 25}, 3)
	f, err := TakeMapSigned[int16](a)
	if err != nil {
		t.Fatalf("TakeMapSigned: %v", err)
	}
	if got := f(25); got != 0.5 {
		t.Errorf("f(25) = %v, want 0.5", got)
	}
	if got := f(-50); got != -1 {
		t.Errorf("f(-50) = %v, want -1", got)
	}
}

func TestApply(t *testing.T) {
	a, _ := ndarray.FromSlice([]int{1, 2, 3}, 3)
	sq := Apply[int, int](a, func(v int) int { return v * v })
	if diff := cmp.Diff([]int{1, 4, 9}, ndarray.Values(sq)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if err := sq.Set(1, 0); !errors.Is(err, ndarray.ErrReadOnly) {
		t.Errorf("Set: got %v, want ErrReadOnly", err)
	}
	// Lazy: later writes to a are visible.
	_ = a.Set(5, 0)
	if sq.At(0) != 25 {
		t.Errorf("At(0) = %d, want 25", sq.At(0))
	}
}
