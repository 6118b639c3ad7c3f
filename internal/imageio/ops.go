package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"regexp"
	"strings"

	"github.com/ironsheep/image-core/internal/colorant"
	"github.com/ironsheep/image-core/internal/convert"
	"github.com/ironsheep/image-core/internal/fixedpoint"
	"github.com/ironsheep/image-core/internal/mapping"
	"github.com/ironsheep/image-core/internal/ndarray"
	"github.com/ironsheep/image-core/internal/views"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrPartialBounds is returned when only one of min and max is given.
var ErrPartialBounds = errors.New("min and max must be given together")

// RGB8 is the colorant produced by channel recombination.
type RGB8 = colorant.RGB[fixedpoint.N0f8]

// ImageResult is a rendered image, PNG-encoded for transport.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func encodeResult(img *image.NRGBA) (*ImageResult, error) {
	encoded, err := EncodePNGBase64(img)
	if err != nil {
		return nil, err
	}
	return &ImageResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

func render[C color.Color](a ndarray.Array[C]) (*ImageResult, error) {
	img, err := ToNRGBA(a)
	if err != nil {
		return nil, err
	}
	return encodeResult(img)
}

// ChannelPlane returns channel name ("r", "g", "b" or "a") of a as a
// (height, width) view.
func ChannelPlane(a ndarray.Array[RGBA8], name string) (ndarray.Array[fixedpoint.N0f8], error) {
	k, err := ChannelIndex(name)
	if err != nil {
		return nil, err
	}
	return ndarray.Slice(views.Channels[fixedpoint.N0f8, RGBA8](a), 0, k)
}

// SplitChannel renders one channel of img as a grayscale image.
func SplitChannel(img image.Image, name string) (*ImageResult, error) {
	a, _, err := FromImage(img)
	if err != nil {
		return nil, err
	}
	plane, err := ChannelPlane(a, name)
	if err != nil {
		return nil, err
	}
	return render(AsGray(plane))
}

// CombineChannels builds an RGB image whose red, green and blue channels
// come from the named sources. A source is a channel of img ("r", "g",
// "b", "a"), its luminance ("gray"), or "zero".
func CombineChannels(img image.Image, r, g, b string) (*ImageResult, error) {
	a, _, err := FromImage(img)
	if err != nil {
		return nil, err
	}

	var gray ndarray.Array[fixedpoint.N0f8]
	planes := make([]ndarray.Array[fixedpoint.N0f8], 3)
	for i, src := range []string{r, g, b} {
		switch src {
		case "zero":
			planes[i] = views.ZeroArray[fixedpoint.N0f8]()
		case "gray":
			if gray == nil {
				if gray, err = GrayFromImage(img); err != nil {
					return nil, err
				}
			}
			planes[i] = gray
		default:
			if planes[i], err = ChannelPlane(a, src); err != nil {
				return nil, err
			}
		}
	}

	combined, err := views.ColorsOf[fixedpoint.N0f8, RGB8](planes...)
	if err != nil {
		return nil, fmt.Errorf("combine channels: %w", err)
	}
	return render(combined)
}

// PermuteChannels reorders the channels of img. order names the output
// channels, e.g. "bgr" or "argb"; three letters give an opaque RGB image,
// four an RGBA image. transpose swaps the x and y axes.
func PermuteChannels(img image.Image, order string, transpose bool) (*ImageResult, error) {
	order = strings.ToLower(order)
	if len(order) != 3 && len(order) != 4 {
		return nil, fmt.Errorf("channel order %q must name 3 or 4 channels", order)
	}
	a, _, err := FromImage(img)
	if err != nil {
		return nil, err
	}

	planes := make([]ndarray.Array[fixedpoint.N0f8], len(order))
	for i, ch := range order {
		if planes[i], err = ChannelPlane(a, string(ch)); err != nil {
			return nil, err
		}
	}

	if len(order) == 3 {
		rgb, err := views.ColorsOf[fixedpoint.N0f8, RGB8](planes...)
		if err != nil {
			return nil, err
		}
		return renderTransposed(rgb, transpose)
	}
	rgba, err := views.ColorsOf[fixedpoint.N0f8, RGBA8](planes...)
	if err != nil {
		return nil, err
	}
	return renderTransposed(rgba, transpose)
}

func renderTransposed[C color.Color](a ndarray.Array[C], transpose bool) (*ImageResult, error) {
	if transpose {
		t, err := views.PermutedDimsView(a, 1, 0)
		if err != nil {
			return nil, err
		}
		a = t
	}
	return render(a)
}

// MappedResult is an image rendered through a value mapping, with the raw
// intensity range the mapping was fitted to.
type MappedResult struct {
	ImageResult
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	AutoRange bool    `json:"auto_range"`
}

// ScaleMinMaxView is the luminance of img stretched so raw level lo becomes
// black and hi becomes white, as a lazy view. With lo or hi nil the range
// is taken from the image; giving only one of them is ErrPartialBounds. It
// returns the range used.
func ScaleMinMaxView(img image.Image, lo, hi *float64) (ndarray.Array[Gray8], float64, float64, error) {
	if (lo == nil) != (hi == nil) {
		return nil, 0, 0, ErrPartialBounds
	}
	gray, err := GrayFromImage(img)
	if err != nil {
		return nil, 0, 0, err
	}
	raw := views.RawView8(gray)

	var f func(float64) float64
	var from, to float64
	if lo == nil {
		from, to, _ = ndarray.Extrema(raw, mapping.ToFloat[uint8])
		f, err = mapping.TakeMap[uint8](mapping.ScaleMinMax, raw)
	} else {
		from, to = *lo, *hi
		f, err = mapping.ScaleMinMax(from, to)
	}
	if err != nil {
		return nil, 0, 0, err
	}

	scaled := convert.Lazy[float64, fixedpoint.N0f8](mapping.ApplyFloat[uint8](raw, f))
	return AsGray(scaled), from, to, nil
}

// ScaleMinMaxImage renders ScaleMinMaxView.
func ScaleMinMaxImage(img image.Image, lo, hi *float64) (*MappedResult, error) {
	view, from, to, err := ScaleMinMaxView(img, lo, hi)
	if err != nil {
		return nil, err
	}
	rendered, err := render(view)
	if err != nil {
		return nil, err
	}
	return &MappedResult{ImageResult: *rendered, Min: from, Max: to, AutoRange: lo == nil || hi == nil}, nil
}

// HexColorPattern matches the color forms SignedColors accepts: #rgb and
// #rrggbb, in either case.
const HexColorPattern = "^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$"

var hexColorRE = regexp.MustCompile(HexColorPattern)

// SignedColors are the hex colors of a diverging colormap. Empty fields
// take the defaults green, white and magenta.
type SignedColors struct {
	Negative string
	Center   string
	Positive string
}

func (c SignedColors) parse() (neg, center, pos colorful.Color, err error) {
	parse := func(s string, def colorful.Color) (colorful.Color, error) {
		if s == "" {
			return def, nil
		}
		if !hexColorRE.MatchString(s) {
			return colorful.Color{}, fmt.Errorf("invalid color %q: want #rgb or #rrggbb", s)
		}
		col, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return col, nil
	}
	if neg, err = parse(c.Negative, mapping.Green1); err != nil {
		return
	}
	if center, err = parse(c.Center, mapping.White); err != nil {
		return
	}
	pos, err = parse(c.Positive, mapping.Magenta)
	return
}

// ColorSignedView is the luminance of img through a diverging colormap,
// as a lazy view: raw levels from lo to center fade from the negative color
// to the center color, and from center to hi into the positive color.
func ColorSignedView(img image.Image, lo, center, hi float64, colors SignedColors) (ndarray.Array[RGB8], error) {
	neg, mid, pos, err := colors.parse()
	if err != nil {
		return nil, err
	}
	scale, err := mapping.ScaleSignedCentered(lo, center, hi)
	if err != nil {
		return nil, err
	}
	gray, err := GrayFromImage(img)
	if err != nil {
		return nil, err
	}

	signed := mapping.ApplyFloat[uint8](views.RawView8(gray), scale)
	return mapping.Apply(signed, mapping.ColorSigned3(neg, mid, pos)), nil
}

// ColorSignedImage renders ColorSignedView.
func ColorSignedImage(img image.Image, lo, center, hi float64, colors SignedColors) (*MappedResult, error) {
	view, err := ColorSignedView(img, lo, center, hi, colors)
	if err != nil {
		return nil, err
	}
	rendered, err := render(view)
	if err != nil {
		return nil, err
	}
	return &MappedResult{ImageResult: *rendered, Min: lo, Max: hi}, nil
}
