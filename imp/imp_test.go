package imp

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDark(t *testing.T) {
	assert.True(t, IsDark(0))
	assert.True(t, IsDark(383))
	assert.False(t, IsDark(384))
	assert.False(t, IsDark(765))
}

func TestPixelSum(t *testing.T) {
	img := imaging.New(2, 1, color.NRGBA{10, 20, 30, 255})
	img.SetNRGBA(1, 0, color.NRGBA{255, 255, 255, 0})

	assert.Equal(t, 60, PixelSum(img, 0, 0))
	assert.Equal(t, 765, PixelSum(img, 1, 0), "alpha must not affect the sum")
}

func TestMeanSum(t *testing.T) {
	img := imaging.New(2, 2, color.NRGBA{0, 0, 0, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 2, 3, 255})

	// Channels are floored independently: 255/4 + 2/4 + 3/4 = 63 + 0 + 0.
	assert.Equal(t, 63, MeanSum(img, img.Rect))

	t.Run("single pixel region", func(t *testing.T) {
		assert.Equal(t, 260, MeanSum(img, image.Rect(1, 1, 2, 2)))
	})

	t.Run("clipped to bounds", func(t *testing.T) {
		assert.Equal(t, 260, MeanSum(img, image.Rect(1, 1, 5, 5)))
	})

	t.Run("empty region", func(t *testing.T) {
		assert.Equal(t, 0, MeanSum(img, image.Rect(4, 4, 6, 6)))
	})
}

func TestToRGB(t *testing.T) {
	t.Run("gray is expanded", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 3, 2))
		src.SetGray(2, 1, color.Gray{Y: 100})

		dst := ToRGB(src)
		require.Equal(t, image.Rect(0, 0, 3, 2), dst.Bounds())
		assert.Equal(t, color.NRGBA{100, 100, 100, 255}, dst.NRGBAAt(2, 1))
		assert.Equal(t, 0, PixelSum(dst, 0, 0))
	})

	t.Run("paletted is expanded", func(t *testing.T) {
		pal := color.Palette{color.Black, color.NRGBA{200, 100, 50, 255}}
		src := image.NewPaletted(image.Rect(0, 0, 1, 1), pal)
		src.SetColorIndex(0, 0, 1)

		assert.Equal(t, 350, PixelSum(ToRGB(src), 0, 0))
	})

	t.Run("origin is normalized", func(t *testing.T) {
		src := imaging.New(4, 4, color.White)
		src.SetNRGBA(2, 2, color.NRGBA{0, 0, 0, 255})
		sub := src.SubImage(image.Rect(2, 2, 4, 4))

		dst := ToRGB(sub)
		require.Equal(t, image.Rect(0, 0, 2, 2), dst.Bounds())
		assert.Equal(t, 0, PixelSum(dst, 0, 0))
	})

	t.Run("nrgba is reused", func(t *testing.T) {
		src := imaging.New(1, 1, color.White)
		assert.Same(t, src, ToRGB(src))
	})
}

func TestSaveAndReadFile(t *testing.T) {
	src := imaging.New(3, 2, color.NRGBA{12, 34, 56, 255})

	for _, name := range []string{"img.png", "img.bmp", "img.tif"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, src))

			img, err := ReadFile(path)
			require.NoError(t, err)
			rgb := ToRGB(img)
			assert.Equal(t, src.Bounds(), rgb.Bounds())
			assert.Equal(t, 102, PixelSum(rgb, 2, 1))
		})
	}
}

func TestSaveUnknownExtension(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "img.xyz"), imaging.New(1, 1, color.White))
	assert.ErrorIs(t, err, imaging.ErrUnsupportedFormat)
}

func TestReadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(t.TempDir(), "nope.png"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("not an image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.png")
		require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0o644))
		_, err := ReadFile(path)
		assert.ErrorIs(t, err, image.ErrFormat)
	})
}

func TestRead(t *testing.T) {
	_, err := Read(bytes.NewReader(nil))
	assert.Error(t, err)
}
