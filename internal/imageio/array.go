package imageio

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
	"github.com/ironsheep/image-core/internal/colorant"
	"github.com/ironsheep/image-core/internal/fixedpoint"
	"github.com/ironsheep/image-core/internal/ndarray"
	"github.com/ironsheep/image-core/internal/views"
)

// RGBA8 is the pixel type of 8-bit images.
type RGBA8 = colorant.RGBA[fixedpoint.N0f8]

// RGBA16 is the pixel type of 16-bit images.
type RGBA16 = colorant.RGBA[fixedpoint.N0f16]

// Gray8 is the pixel type of 8-bit grayscale images.
type Gray8 = colorant.Gray[fixedpoint.N0f8]

// PixArray exposes the Pix slice of img as a uint8 array of shape
// (4, height, width) without copying. Element (k, y, x) is channel k of the
// pixel at (x, y) relative to img.Bounds().Min.
func PixArray(img *image.NRGBA) (*ndarray.Dense[uint8], error) {
	b := img.Bounds()
	return ndarray.FromStrided(img.Pix, 0, []int{4, b.Dy(), b.Dx()}, []int{1, img.Stride, 4})
}

// FromNRGBA returns an (height, width) array of RGBA{N0f8} sharing storage
// with img: writes to the array change the image and vice versa.
func FromNRGBA(img *image.NRGBA) (ndarray.Array[RGBA8], error) {
	pix, err := PixArray(img)
	if err != nil {
		return nil, err
	}
	return views.Colors[fixedpoint.N0f8, RGBA8](views.NormedView8(pix))
}

// FromImage converts any image to an array of RGBA{N0f8}. The array shares
// storage with a fresh *image.NRGBA copy of img, which is also returned.
func FromImage(img image.Image) (ndarray.Array[RGBA8], *image.NRGBA, error) {
	nrgba := imaging.Clone(img)
	arr, err := FromNRGBA(nrgba)
	if err != nil {
		return nil, nil, err
	}
	return arr, nrgba, nil
}

// GrayFromImage returns the luminance of img as an (height, width) array of
// N0f8.
func GrayFromImage(img image.Image) (ndarray.Array[fixedpoint.N0f8], error) {
	g := imaging.Grayscale(img)
	b := g.Bounds()
	red, err := ndarray.FromStrided(g.Pix, 0, []int{b.Dy(), b.Dx()}, []int{g.Stride, 4})
	if err != nil {
		return nil, err
	}
	return views.NormedView8(red), nil
}

// FromImage16 converts img to an array of RGBA{N0f16}, keeping the full
// 16-bit depth of PNG and TIFF images.
func FromImage16(img image.Image) *ndarray.Dense[RGBA16] {
	b := img.Bounds()
	out := ndarray.New[RGBA16](b.Dy(), b.Dx())
	data := out.Data()
	parallel.Line(b.Dy(), func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
				data[y*b.Dx()+x] = RGBA16{
					R: fixedpoint.N0f16(c.R),
					G: fixedpoint.N0f16(c.G),
					B: fixedpoint.N0f16(c.B),
					A: fixedpoint.N0f16(c.A),
				}
			}
		}
	})
	return out
}

// AsGray presents an array of N0f8 intensities as an array of Gray
// colorants, ready for ToNRGBA.
func AsGray(a ndarray.Array[fixedpoint.N0f8]) ndarray.Array[Gray8] {
	g, err := views.Colors[fixedpoint.N0f8, Gray8](a)
	if err != nil {
		// Gray consumes no dimension, so any shape is accepted.
		panic(err)
	}
	return g
}

// ToNRGBA renders a two-dimensional array of colors into a new image.
// Rows are rendered in parallel.
func ToNRGBA[C color.Color](a ndarray.Array[C]) (*image.NRGBA, error) {
	shape := a.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: image needs 2 dimensions, got %v", ndarray.ErrInvalidShape, shape)
	}
	h, w := shape[0], shape[1]
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			row := img.Pix[y*img.Stride:]
			for x := 0; x < w; x++ {
				c := color.NRGBAModel.Convert(a.At(y, x)).(color.NRGBA)
				row[4*x+0] = c.R
				row[4*x+1] = c.G
				row[4*x+2] = c.B
				row[4*x+3] = c.A
			}
		}
	})
	return img, nil
}

// EncodePNGBase64 encodes img as PNG and returns it base64-encoded.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Save renders a and writes it to path. The format is chosen from the file
// extension.
func Save[C color.Color](a ndarray.Array[C], path string) error {
	img, err := ToNRGBA(a)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// Resize scales img to width x height with a Lanczos filter. A zero width
// or height preserves the aspect ratio.
func Resize(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
