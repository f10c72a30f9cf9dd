package grid

import (
	"image"

	"github.com/ArnaudCalmettes/png2grid/imp"
)

// Options configures a Sampler.
type Options struct {
	Policy Policy
}

// DefaultOptions samples cells by area average.
func DefaultOptions() Options {
	return Options{Policy: AreaAverage}
}

// A Sampler converts images into grids. It holds no state besides its
// configuration and can be reused.
type Sampler struct {
	policy Policy
}

// NewSampler creates a sampler. An empty policy falls back to the default one.
func NewSampler(opts Options) (*Sampler, error) {
	if opts.Policy == "" {
		opts.Policy = DefaultOptions().Policy
	}
	p, err := ParsePolicy(string(opts.Policy))
	if err != nil {
		return nil, err
	}
	return &Sampler{policy: p}, nil
}

// Policy returns the sampling policy in use.
func (s *Sampler) Policy() Policy {
	return s.policy
}

// Sample reads the image stored at path and samples it in cells of
// size×size pixels.
//
// It fails with an *InvalidArgumentError if size isn't positive, and with an
// *ImageLoadError if the file can't be opened or decoded. The file is closed
// before the grid is computed.
func (s *Sampler) Sample(path string, size int) (Grid, error) {
	if err := checkCellSize(size); err != nil {
		return nil, err
	}
	img, err := imp.ReadFile(path)
	if err != nil {
		return nil, &ImageLoadError{Path: path, Err: err}
	}
	return s.SampleImage(img, size)
}

// SampleImage samples an already decoded image in cells of size×size pixels.
// The grid has height/size rows and width/size columns; partial cells on the
// right and bottom edges are left out.
func (s *Sampler) SampleImage(img image.Image, size int) (Grid, error) {
	if err := checkCellSize(size); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, &InvalidArgumentError{Name: "image", Value: "<nil>", Reason: "nothing to sample"}
	}

	rgb := imp.ToRGB(img)
	bounds := rgb.Bounds()
	rows, cols := bounds.Dy()/size, bounds.Dx()/size

	g := make(Grid, rows)
	for row := range g {
		g[row] = make([]int, cols)
		for col := range g[row] {
			cell := image.Rect(col*size, row*size, (col+1)*size, (row+1)*size)
			if imp.IsDark(s.policy.cellSum(rgb, cell)) {
				g[row][col] = Alive
			}
		}
	}
	return g, nil
}
