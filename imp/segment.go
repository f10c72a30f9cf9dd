package imp

import (
	"image"
)

// DarkThreshold is the R+G+B sum under which a region is considered dark,
// i.e. an average channel value below the 8-bit midpoint (3 × 128).
const DarkThreshold = 384

// IsDark performs the binarization of a channel sum.
func IsDark(sum int) bool {
	return sum < DarkThreshold
}

// PixelSum returns R+G+B for the pixel at (x, y).
func PixelSum(img *image.NRGBA, x, y int) int {
	c := img.NRGBAAt(x, y)
	return int(c.R) + int(c.G) + int(c.B)
}

// MeanSum averages each channel independently over rect, rounding down, and
// returns the sum of the three averages. Pixels outside the image are ignored;
// an empty region sums to 0.
func MeanSum(img *image.NRGBA, rect image.Rectangle) int {
	rect = rect.Intersect(img.Rect)
	n := rect.Dx() * rect.Dy()
	if n == 0 {
		return 0
	}

	var r, g, b int
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		i := img.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r += int(img.Pix[i])
			g += int(img.Pix[i+1])
			b += int(img.Pix[i+2])
			i += 4
		}
	}
	return r/n + g/n + b/n
}
