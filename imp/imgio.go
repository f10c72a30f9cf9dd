package imp

import (
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // imaging already registers bmp and tiff
)

// ReadFile reads an image from a file. The file is closed before returning.
func ReadFile(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read reads an image from a io.Reader.
func Read(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

// Save creates a file and writes an image to it. Image format is decided based
// upon its extension (png, jpg, gif, bmp or tif).
func Save(filename string, img image.Image) error {
	return imaging.Save(img, filename, imaging.JPEGQuality(100))
}
