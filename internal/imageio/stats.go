package imageio

import (
	"fmt"
	"image"

	"github.com/ironsheep/image-core/internal/colorant"
	"github.com/ironsheep/image-core/internal/fixedpoint"
	"github.com/ironsheep/image-core/internal/ndarray"
	"github.com/ironsheep/image-core/internal/views"
)

// ChannelNames are the names of the channels of RGBA8, in channel order.
var ChannelNames = []string{"r", "g", "b", "a"}

// ChannelIndex returns the channel index for a name in ChannelNames.
func ChannelIndex(name string) (int, error) {
	for i, n := range ChannelNames {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown channel %q (want r, g, b or a)", name)
}

// ChannelStat summarizes one channel of an image.
type ChannelStat struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`  // Smallest normalized value (0-1)
	Max  float64 `json:"max"`  // Largest normalized value (0-1)
	Mean float64 `json:"mean"` // Mean normalized value (0-1)
}

// ChannelStatsResult contains per-channel statistics in channel order.
type ChannelStatsResult struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Channels []ChannelStat `json:"channels"`
}

// ChannelStats computes the minimum, maximum and mean of every channel of
// an (height, width) RGBA array. It works on a channel view, so no pixel
// data is copied.
func ChannelStats(a ndarray.Array[RGBA8]) (*ChannelStatsResult, error) {
	shape := a.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: image needs 2 dimensions, got %v", ndarray.ErrInvalidShape, shape)
	}
	cv := views.Channels[fixedpoint.N0f8, RGBA8](a)

	result := &ChannelStatsResult{Width: shape[1], Height: shape[0]}
	for k, name := range ChannelNames {
		plane, err := ndarray.Slice(cv, 0, k)
		if err != nil {
			return nil, err
		}
		stat := ChannelStat{Name: name}
		if lo, hi, ok := ndarray.Extrema(plane, fixedpoint.ToFloat[fixedpoint.N0f8]); ok {
			stat.Min, stat.Max = lo, hi
		}
		var sum float64
		n := 0
		ndarray.Each(plane, func(_ []int, v fixedpoint.N0f8) {
			sum += v.Float64()
			n++
		})
		if n > 0 {
			stat.Mean = sum / float64(n)
		}
		result.Channels = append(result.Channels, stat)
	}
	return result, nil
}

// RawChannel is one channel of a pixel in raw and normalized form.
type RawChannel struct {
	Name  string  `json:"name"`
	Raw   uint8   `json:"raw"`   // Storage value (0-255)
	Value float64 `json:"value"` // Normalized value raw/255
	Text  string  `json:"text"`  // Fixed-point rendering, e.g. "0.502N0f8"
}

// RawSample describes the pixel at (X, Y).
type RawSample struct {
	X        int          `json:"x"`
	Y        int          `json:"y"`
	Hex      string       `json:"hex"` // "#rrggbb", alpha excluded
	Channels []RawChannel `json:"channels"`
}

// SampleRaw reads the pixel at (x, y) through a raw view of its channels.
func SampleRaw(a ndarray.Array[RGBA8], x, y int) (*RawSample, error) {
	shape := a.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: image needs 2 dimensions, got %v", ndarray.ErrInvalidShape, shape)
	}
	if x < 0 || y < 0 || x >= shape[1] || y >= shape[0] {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	cv := views.Channels[fixedpoint.N0f8, RGBA8](a)
	raw := views.RawView8(cv)
	px := a.At(y, x)

	sample := &RawSample{X: x, Y: y, Hex: colorant.Hex[fixedpoint.N0f8, RGBA8](px)}
	for k, name := range ChannelNames {
		v := cv.At(k, y, x)
		sample.Channels = append(sample.Channels, RawChannel{
			Name:  name,
			Raw:   raw.At(k, y, x),
			Value: v.Float64(),
			Text:  v.String(),
		})
	}
	return sample, nil
}

// SampleImage is SampleRaw for an image.Image; (x, y) are relative to
// img.Bounds().Min.
func SampleImage(img image.Image, x, y int) (*RawSample, error) {
	a, _, err := FromImage(img)
	if err != nil {
		return nil, err
	}
	return SampleRaw(a, x, y)
}

// LabeledPoint is a pixel coordinate with an optional label, e.g.
// "background" or "text".
type LabeledPoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// LabeledSample is a RawSample tagged with the label of its point.
type LabeledSample struct {
	Label string `json:"label,omitempty"`
	RawSample
}

// MultiSampleResult holds samples in the order of the requested points.
type MultiSampleResult struct {
	Samples []LabeledSample `json:"samples"`
}

// SampleRawMulti samples every point with SampleRaw. If any point is outside
// the image no partial result is returned.
func SampleRawMulti(a ndarray.Array[RGBA8], points []LabeledPoint) (*MultiSampleResult, error) {
	result := &MultiSampleResult{Samples: make([]LabeledSample, 0, len(points))}
	for _, p := range points {
		s, err := SampleRaw(a, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		result.Samples = append(result.Samples, LabeledSample{Label: p.Label, RawSample: *s})
	}
	return result, nil
}
