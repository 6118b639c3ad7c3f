package imageio_test

import (
	"fmt"

	"github.com/ironsheep/image-core/internal/imageio"
)

func ExampleImageCache() {
	cache := imageio.NewImageCache(0)
	img, err := cache.Load("/path/to/image.png")
	if err != nil {
		fmt.Println(err)
		return
	}
	arr, _, err := imageio.FromImage(img)
	if err != nil {
		return
	}
	fmt.Println(arr.Shape())
}
