package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/image-core/internal/colorant"
	"github.com/ironsheep/image-core/internal/fixedpoint"
	"github.com/ironsheep/image-core/internal/traits"
	"github.com/ironsheep/image-core/internal/views"
)

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format implied by the file extension: "png", "jpeg",
	// "gif", "bmp", "tiff", or "unknown".
	Format string `json:"format"`

	// ColorType names the colorant an array of this image holds natively,
	// e.g. "RGBA{N0f8}" or "Gray{N0f16}".
	ColorType string `json:"color_type"`

	// Channels is the number of color channels of ColorType.
	Channels int `json:"channels"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image has an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`

	// Spatial traits of the (height, width) pixel array.
	SDims        int            `json:"sdims"`
	SizeSpatial  []int          `json:"size_spatial"`
	PixelSpacing []float64      `json:"pixel_spacing"`
	Indices      []traits.Range `json:"indices_spatial"`
	NImages      int            `json:"nimages"`
}

// LoadImageInfo loads an image through cache and describes it.
//
// The color type is derived from the decoded Go image type:
//   - *image.Gray -> Gray{N0f8}, *image.Gray16 -> Gray{N0f16}
//   - *image.RGBA64, *image.NRGBA64 -> RGBA{N0f16}
//   - *image.YCbCr, *image.CMYK -> RGB{N0f8}
//   - everything else -> RGBA{N0f8}
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	info := describe(img)
	info.Format = formatFromExt(path)
	info.FileSizeBytes = stat.Size()
	return info, nil
}

func describe(img image.Image) *ImageInfo {
	b := img.Bounds()
	info := &ImageInfo{
		Width:      b.Dx(),
		Height:     b.Dy(),
		ColorType:  colorTypeName[fixedpoint.N0f8, RGBA8](),
		Channels:   4,
		ColorDepth: "8-bit",
		HasAlpha:   true,
	}

	switch img.(type) {
	case *image.Gray:
		info.ColorType = colorTypeName[fixedpoint.N0f8, Gray8]()
		info.Channels, info.HasAlpha = 1, false
	case *image.Gray16:
		info.ColorType = colorTypeName[fixedpoint.N0f16, colorant.Gray[fixedpoint.N0f16]]()
		info.Channels, info.HasAlpha = 1, false
		info.ColorDepth = "16-bit"
	case *image.RGBA64, *image.NRGBA64:
		info.ColorType = colorTypeName[fixedpoint.N0f16, RGBA16]()
		info.ColorDepth = "16-bit"
	case *image.YCbCr, *image.CMYK:
		info.ColorType = colorTypeName[fixedpoint.N0f8, colorant.RGB[fixedpoint.N0f8]]()
		info.Channels, info.HasAlpha = 3, false
	}

	// The pixel array is indexed (y, x) with unit spacing.
	shape := views.NewZeros[uint8](b.Dy(), b.Dx())
	info.SDims = traits.SDims[uint8](shape)
	info.SizeSpatial = traits.SizeSpatial[uint8](shape)
	info.PixelSpacing = traits.PixelSpacing[uint8](shape)
	info.Indices = traits.IndicesSpatial[uint8](shape)
	info.NImages = traits.NImages[uint8](shape)
	return info
}

func colorTypeName[T colorant.Channel, C colorant.Color[T, C]]() string {
	var c C
	name := fmt.Sprintf("%T", c)
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name + "{" + colorant.ChannelName[T]() + "}"
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	}
	return "unknown"
}

// DimensionsResult contains image dimensions.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional
// metadata. The image is loaded into the cache if not already present.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	return &DimensionsResult{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}
