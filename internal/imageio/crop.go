package imageio

import (
	"fmt"
	"image"

	"github.com/ironsheep/image-core/internal/ndarray"
)

// CropView returns the view of a covering rows y1, y1+step, ... (< y2) and
// columns x1, x1+step, ... (< x2). Writes to the view reach a.
func CropView[C any](a ndarray.Array[C], x1, y1, x2, y2, step int) (ndarray.Array[C], error) {
	shape := a.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: image needs 2 dimensions, got %v", ndarray.ErrInvalidShape, shape)
	}
	if x1 < 0 || y1 < 0 || x2 > shape[1] || y2 > shape[0] {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
			x1, y1, x2, y2, shape[1], shape[0])
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}
	if step < 1 {
		return nil, fmt.Errorf("invalid crop step %d: must be at least 1", step)
	}

	rows, err := ndarray.SubRange(a, 0, y1, y2, step)
	if err != nil {
		return nil, err
	}
	return ndarray.SubRange(rows, 1, x1, x2, step)
}

// Crop extracts a rectangular region from an image, keeping every step-th
// pixel, and optionally rescales the result.
func Crop(img image.Image, x1, y1, x2, y2, step int, scale float64) (*ImageResult, error) {
	a, _, err := FromImage(img)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	view, err := CropView(a, x1-b.Min.X, y1-b.Min.Y, x2-b.Min.X, y2-b.Min.Y, step)
	if err != nil {
		return nil, err
	}

	cropped, err := ToNRGBA(view)
	if err != nil {
		return nil, err
	}
	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %g leaves an empty image", scale)
		}
		cropped = Resize(cropped, newWidth, newHeight)
	}

	return encodeResult(cropped)
}

// quadrants gives each named region as x1, y1, x2, y2 in quarters of the
// image width and height.
var quadrants = map[string][4]int{
	"top-left":     {0, 0, 2, 2},
	"top-right":    {2, 0, 4, 2},
	"bottom-left":  {0, 2, 2, 4},
	"bottom-right": {2, 2, 4, 4},
	"top-half":     {0, 0, 4, 2},
	"bottom-half":  {0, 2, 4, 4},
	"left-half":    {0, 0, 2, 4},
	"right-half":   {2, 0, 4, 4},
	"center":       {1, 1, 3, 3},
}

// CropQuadrant crops a named region of img (see quadrants) and optionally
// rescales it.
func CropQuadrant(img image.Image, region string, scale float64) (*ImageResult, error) {
	q, ok := quadrants[region]
	if !ok {
		return nil, fmt.Errorf("unknown region: %s", region)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	return Crop(img,
		b.Min.X+w*q[0]/4, b.Min.Y+h*q[1]/4,
		b.Min.X+w*q[2]/4, b.Min.Y+h*q[3]/4,
		1, scale)
}
