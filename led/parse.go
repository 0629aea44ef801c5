package led

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	ErrMissingField     = errors.New("led: missing required field")
	ErrUnknownFieldType = errors.New("led: unknown field type")
)

func missingField(object, field string) error {
	return fmt.Errorf("%w: %s.%s", ErrMissingField, object, field)
}

// ParseJSON decodes a project from the raw bytes of an LEd export.
func ParseJSON(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("led: parse project: %w", err)
	}
	return &p, nil
}

// Decode reads a single project document from r.
func Decode(r io.Reader) (*Project, error) {
	var p Project
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("led: decode project: %w", err)
	}
	return &p, nil
}

// LoadProject reads and parses the project file at path. ProjectFilePath and
// ProjectDir are filled from path when the document does not carry them.
func LoadProject(path string) (*Project, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("led: read project: %w", err)
	}

	p, err := ParseJSON(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if p.ProjectFilePath == nil {
		file := filepath.ToSlash(path)
		p.ProjectFilePath = &file
	}
	if p.ProjectDir == nil {
		dir := filepath.ToSlash(filepath.Dir(path))
		p.ProjectDir = &dir
	}
	return p, nil
}
