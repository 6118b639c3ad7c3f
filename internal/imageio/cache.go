package imageio

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache provides thread-safe caching of decoded images to avoid
// redundant disk reads.
//
// Images are keyed by the exact path string passed to Load. A cache created
// with a positive limit holds at most that many images and evicts the least
// recently loaded one when full; a limit of zero means unbounded.
//
// # Example Usage
//
//	cache := imageio.NewImageCache(0)
//	img, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    return err
//	}
//	arr, _, err := imageio.FromImage(img)
type ImageCache struct {
	mu     sync.RWMutex
	limit  int
	images map[string]image.Image
	order  []string
}

// NewImageCache creates an empty cache holding at most limit images.
func NewImageCache(limit int) *ImageCache {
	if limit < 0 {
		limit = 0
	}
	return &ImageCache{
		limit:  limit,
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// Decoding honors EXIF orientation for JPEG files. The returned image must
// be treated as read-only because it is shared by every caller; use
// FromImage to get a writable array.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.images[path]; ok {
		return cached, nil
	}
	if c.limit > 0 && len(c.order) >= c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.images, oldest)
	}
	c.images[path] = img
	c.order = append(c.order, path)
	return img, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.order = nil
	c.mu.Unlock()
}

// Evict removes the image loaded from path. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.images[path]; !ok {
		return
	}
	delete(c.images, path)
	for i, p := range c.order {
		if p == path {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
