package convert

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ironsheep/image-core/internal/colorant"
	"github.com/ironsheep/image-core/internal/fixedpoint"
	"github.com/ironsheep/image-core/internal/ndarray"
)

func TestNumeric_FixedToFloat(t *testing.T) {
	a, _ := ndarray.FromSlice([]fixedpoint.N0f8{0, 51, 255}, 3)
	got := Float32[fixedpoint.N0f8](a)
	want := []float32{0, 0.2, 1}
	if diff := cmp.Diff(want, got.Data()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNumeric_FloatToFixed(t *testing.T) {
	a, _ := ndarray.FromSlice([]float64{-0.5, 0.5, 1, 2, math.NaN()}, 5)

	tests := []struct {
		name string
		got  []uint64
		want []uint64
	}{
		{"N0f8", raws(N0f8[float64](a).Data()), []uint64{0, 128, 255, 255, 0}},
		{"N0f16", raws(N0f16[float64](a).Data()), []uint64{0, 32768, 65535, 65535, 0}},
		{"N4f12", raws(N4f12[float64](a).Data()), []uint64{0, 2048, 4095, 8190, 0}},
		{"N6f10", raws(N6f10[float64](a).Data()), []uint64{0, 512, 1023, 2046, 0}},
		{"N2f14", raws(N2f14[float64](a).Data()), []uint64{0, 8192, 16383, 32766, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func raws[T fixedpoint.Normed](vs []T) []uint64 {
	out := make([]uint64, len(vs))
	for i, v := range vs {
		out[i] = uint64(v)
	}
	return out
}

func TestNumeric_RoundTrip(t *testing.T) {
	data := make([]fixedpoint.N0f8, 256)
	for i := range data {
		data[i] = fixedpoint.N0f8(i)
	}
	a, _ := ndarray.FromSlice(data, 16, 16)
	back := N0f8[float64](Float64[fixedpoint.N0f8](a))
	if !ndarray.Equal[fixedpoint.N0f8](a, back) {
		t.Error("N0f8 -> Float64 -> N0f8 changed values")
	}
	if diff := cmp.Diff([]int{16, 16}, back.Shape()); diff != "" {
		t.Errorf("shape mismatch (-want +got):\n%s", diff)
	}
}

func TestLazy_ReadOnly(t *testing.T) {
	a, _ := ndarray.FromSlice([]float32{0.25}, 1)
	v := Lazy[float32, fixedpoint.N0f8](a)
	if got := v.At(0); got != 64 {
		t.Errorf("At(0) = %d, want raw 64", got)
	}
	if err := v.Set(0, 0); !errors.Is(err, ndarray.ErrReadOnly) {
		t.Errorf("Set: got %v, want ErrReadOnly", err)
	}
}

func TestStorage(t *testing.T) {
	img, _ := ndarray.FromSlice([]colorant.RGB[fixedpoint.N0f8]{
		{R: 255, G: 0, B: 51},
		{R: 0, G: 255, B: 0},
	}, 1, 2)

	out, err := Storage[fixedpoint.N0f8, float32, colorant.RGB[fixedpoint.N0f8], colorant.RGB[float32]](img)
	if err != nil {
		t.Fatalf("Storage: %v", err)
	}
	want := []colorant.RGB[float32]{{R: 1, G: 0, B: 0.2}, {R: 0, G: 1, B: 0}}
	if diff := cmp.Diff(want, out.Data()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStorage_ChannelOrderPreserved(t *testing.T) {
	// BGR and RGB share constructor order, so converting between them keeps
	// red as red.
	c := colorant.NewBGR[float64](1, 0.5, 0)
	d, err := Color[float64, fixedpoint.N0f8, colorant.BGR[float64], colorant.RGB[fixedpoint.N0f8]](c)
	if err != nil {
		t.Fatalf("Color: %v", err)
	}
	if want := (colorant.RGB[fixedpoint.N0f8]{R: 255, G: 128, B: 0}); d != want {
		t.Errorf("got %+v, want %+v", d, want)
	}
}

func TestStorage_ChannelCount(t *testing.T) {
	img := ndarray.New[colorant.RGB[float64]](1, 1)
	_, err := Storage[float64, float64, colorant.RGB[float64], colorant.Gray[float64]](img)
	if !errors.Is(err, colorant.ErrChannelCount) {
		t.Errorf("got %v, want ErrChannelCount", err)
	}
}
