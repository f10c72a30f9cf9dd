package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidArgumentError reports a caller-supplied value that was rejected.
type InvalidArgumentError struct {
	Name   string
	Value  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Reason)
}

// ImageLoadError reports an image file that couldn't be opened or decoded.
type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("couldn't load image %s: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// ParseCellSize parses a cell side length in pixels, as given on a command line.
func ParseCellSize(s string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InvalidArgumentError{Name: "grid size", Value: s, Reason: "not an integer"}
	}
	if err := checkCellSize(size); err != nil {
		return 0, err
	}
	return size, nil
}

func checkCellSize(size int) error {
	if size <= 0 {
		return &InvalidArgumentError{
			Name:   "grid size",
			Value:  strconv.Itoa(size),
			Reason: "must be a positive number of pixels",
		}
	}
	return nil
}
