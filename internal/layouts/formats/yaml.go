// Package formats provides layout file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLayout represents the YAML structure for a layout file.
type YAMLLayout struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Steps       []YAMLStep        `yaml:"steps"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// YAMLStep is one edit. Either At names a single cell, or Path lists cells
// that all receive the same op.
type YAMLStep struct {
	Op   string    `yaml:"op,omitempty"` // place (default), erase, rotate
	At   []int32   `yaml:"at,omitempty"`
	Path [][]int32 `yaml:"path,omitempty"`
}

// Step is a parsed edit on a single cell.
type Step struct {
	Op  string
	Col int32
	Row int32
}

// Layout represents a parsed layout ready for use.
type Layout struct {
	ID          string
	Name        string
	Description string
	Steps       []Step
	Metadata    map[string]string
}

// ParseYAML parses a YAML layout file.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Layout{}, fmt.Errorf("layout has no id")
	}

	layout := Layout{
		ID:          yl.ID,
		Name:        yl.Name,
		Description: yl.Description,
		Metadata:    yl.Metadata,
	}
	if layout.Name == "" {
		layout.Name = yl.ID
	}

	for i, s := range yl.Steps {
		op := s.Op
		if op == "" {
			op = "place"
		}
		if op != "place" && op != "erase" && op != "rotate" {
			return Layout{}, fmt.Errorf("step %d: unknown op %q", i, s.Op)
		}

		cells := s.Path
		if len(s.At) > 0 {
			cells = append([][]int32{s.At}, cells...)
		}
		if len(cells) == 0 {
			return Layout{}, fmt.Errorf("step %d: needs at or path", i)
		}
		for _, xy := range cells {
			if len(xy) != 2 {
				return Layout{}, fmt.Errorf("step %d: coordinate %v must be [col, row]", i, xy)
			}
			layout.Steps = append(layout.Steps, Step{Op: op, Col: xy[0], Row: xy[1]})
		}
	}

	return layout, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
