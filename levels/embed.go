// Package levels embeds a few LEd sample projects used by the drivers and
// the tests.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/milk9111/ledgrid/led"
)

//go:embed *.json
var LevelsFS embed.FS

// LoadProjectFromFS parses the embedded sample called name (".json" optional).
func LoadProjectFromFS(name string) (*led.Project, error) {
	data, err := fs.ReadFile(LevelsFS, normalizeName(name))
	if err != nil {
		return nil, fmt.Errorf("read sample: %w", err)
	}
	p, err := led.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", name, err)
	}
	return p, nil
}

// Names lists the embedded samples without their extension.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	if !strings.HasSuffix(name, ".json") {
		return name + ".json"
	}
	return name
}
