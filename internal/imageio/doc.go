// Package imageio connects arrays to Go images and image files.
//
// Images are loaded through disintegration/imaging (PNG, JPEG, GIF, BMP and
// TIFF) and exposed as arrays of colorants without copying: FromNRGBA wraps
// the Pix slice of an *image.NRGBA in a NormedView and a ColorView, so the
// resulting array of RGBA{N0f8} and the image share storage.
//
// # Coordinate System
//
// Arrays are indexed (y, x) with shape (height, width); channel views put
// the channel first, (c, y, x). Pixel coordinates in results are 0-based
// with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive and (x2,y2) is exclusive
//
// # Rendering
//
// ToNRGBA renders any two-dimensional array of colors back into an image,
// splitting rows across goroutines with bild's parallel.Line. The result can
// be encoded with EncodePNGBase64 or written with Save.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Arrays returned by FromImage share
// storage with a private copy of the source image, except for FromNRGBA
// which shares storage with its argument; concurrent writes to the same
// array must be synchronized by the caller.
package imageio
