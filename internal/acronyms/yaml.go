package acronyms

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML loads an acronym table from a YAML file:
//
//	strokes:
//	  Freestyle: [free, fr, freestyle]
//	styles:
//	  Kick: [kick, k]
//
// Missing sections yield empty mappings.
func LoadYAML(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, &LoadError{
			Field:   "file",
			Message: fmt.Sprintf("reading %s: %v", path, err),
		}
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return Table{}, &LoadError{
			Field:   "yaml",
			Message: fmt.Sprintf("parsing %s: %v", path, err),
		}
	}

	if table.Strokes == nil {
		table.Strokes = make(map[string][]string)
	}
	if table.Styles == nil {
		table.Styles = make(map[string][]string)
	}
	return table, nil
}
