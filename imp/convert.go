package imp

import (
	"image"

	"github.com/disintegration/imaging"
)

// ToRGB converts any image in an 8-bit picture of the same size anchored at (0,0).
func ToRGB(src image.Image) *image.NRGBA {
	if dst, ok := src.(*image.NRGBA); ok && dst.Rect.Min == (image.Point{}) {
		return dst
	}
	return imaging.Clone(src)
}
