package grid

import (
	"image"
	"strings"

	"github.com/ArnaudCalmettes/png2grid/imp"
)

// Policy selects how the brightness of a cell is sampled.
type Policy string

const (
	// SinglePixel only looks at the top-left pixel of each cell.
	SinglePixel Policy = "single_pixel"
	// AreaAverage averages every channel over the whole cell.
	AreaAverage Policy = "area_average"
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case SinglePixel, AreaAverage:
		return p, nil
	}
	return "", &InvalidArgumentError{
		Name:   "sampling policy",
		Value:  s,
		Reason: "expected single_pixel or area_average",
	}
}

func (p Policy) String() string {
	return string(p)
}

// Set implements pflag.Value.
func (p *Policy) Set(s string) error {
	v, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Type implements pflag.Value.
func (p *Policy) Type() string {
	return "policy"
}

// cellSum returns the R+G+B value representing cell.
func (p Policy) cellSum(img *image.NRGBA, cell image.Rectangle) int {
	if p == SinglePixel {
		return imp.PixelSum(img, cell.Min.X, cell.Min.Y)
	}
	return imp.MeanSum(img, cell)
}
