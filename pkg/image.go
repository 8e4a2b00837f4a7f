package sfcm

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/anthonynsimon/bild/blur"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func LoadImageFile(imageFilename string) (im image.Image, err error) {
	imageFile, err := os.Open(imageFilename)
	if err != nil {
		return
	}
	defer imageFile.Close()
	im, _, err = image.Decode(imageFile)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", imageFilename, err)
	}
	return
}

// SaveImage writes im as PNG.
func SaveImage(im image.Image, imageFilename string) (err error) {
	imageFile, err := os.Create(imageFilename)
	if err != nil {
		return
	}
	defer func() {
		if errClose := imageFile.Close(); err == nil {
			err = errClose
		}
	}()
	return png.Encode(imageFile, im)
}

// Blur smooths im with a Gaussian of the given radius. Non-positive radius
// returns im unchanged.
func Blur(im image.Image, radius float64) image.Image {
	if radius <= 0 {
		return im
	}
	return blur.Gaussian(im, radius)
}
