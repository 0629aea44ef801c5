// Package config loads the YAML run specs used by the drivers and watches
// project files for changes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultCellSize = 16
	defaultZoom     = 2.0
	defaultScale    = 1
)

// AtlasSpec describes the tileset image a level is drawn from.
type AtlasSpec struct {
	Path     string `yaml:"path"`
	CellSize int    `yaml:"cell_size"`
	Padding  int    `yaml:"padding"`
	Spacing  int    `yaml:"spacing"`
}

type ViewerSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Background string  `yaml:"background"` // hex, overrides the project bgColor
}

type ExportSpec struct {
	PNG   string `yaml:"png"`
	Scale int    `yaml:"scale"`
}

// RunSpec is the top-level document of a run spec file.
type RunSpec struct {
	Project string     `yaml:"project"`
	Sample  string     `yaml:"sample"`
	Level   int        `yaml:"level"`
	Layers  []string   `yaml:"layers"`
	Atlas   AtlasSpec  `yaml:"atlas"`
	Viewer  ViewerSpec `yaml:"viewer"`
	Export  ExportSpec `yaml:"export"`
}

// ApplyDefaults fills zero values with the defaults.
func (s *RunSpec) ApplyDefaults() {
	if s.Atlas.CellSize <= 0 {
		s.Atlas.CellSize = defaultCellSize
	}
	if s.Viewer.Zoom <= 0 {
		s.Viewer.Zoom = defaultZoom
	}
	if s.Export.Scale <= 0 {
		s.Export.Scale = defaultScale
	}
}

// LoadSpec reads the YAML file at filename into a T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := os.ReadFile(filename)
	if err != nil {
		return zero, fmt.Errorf("config: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadRunSpec loads a RunSpec and applies its defaults. An empty filename
// yields the defaults alone.
func LoadRunSpec(filename string) (*RunSpec, error) {
	var spec RunSpec
	if filename != "" {
		var err error
		spec, err = LoadSpec[RunSpec](filename)
		if err != nil {
			return nil, err
		}
	}
	spec.ApplyDefaults()
	return &spec, nil
}
