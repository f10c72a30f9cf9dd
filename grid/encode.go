package grid

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a textual serialization of a grid.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a format name. "yml" is accepted as an alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", &InvalidArgumentError{Name: "output format", Value: s, Reason: "expected json or yaml"}
}

func (f Format) String() string {
	return string(f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// Serialize renders g as compact JSON, e.g. [[0,1],[1,0]].
func Serialize(g Grid) (string, error) {
	b, err := json.Marshal(g.normalized())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Encode writes g to w in the given format, followed by a newline.
func Encode(w io.Writer, g Grid, f Format) error {
	switch f {
	case JSON:
		s, err := Serialize(g)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	case YAML:
		return encodeYAML(w, g)
	}
	return fmt.Errorf("unknown format %q", f)
}

// encodeYAML writes one flow sequence per row so the output keeps the shape
// of the grid:
//
//	- [0, 1, 1]
//	- [1, 0, 0]
func encodeYAML(w io.Writer, g Grid) error {
	root := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range g {
		r := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range row {
			r.Content = append(r.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!int",
				Value: strconv.Itoa(v),
			})
		}
		root.Content = append(root.Content, r)
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}
