// Package areacodes maps place names to MARC geographic area codes.
package areacodes

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tables/default.yaml
var defaultYAML []byte

// Table maps a place name, as it appears in geographic subject headings, to
// a MARC geographic area code.
type Table map[string]string

// Default returns the built-in table covering the United States and its
// states. Each call returns a fresh table, so callers may extend it freely.
func Default() Table {
	t, err := parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("areacodes: embedded table: %v", err))
	}
	return t
}

// Load reads a table from YAML: a flat mapping of place name to area code.
func Load(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading area code table: %w", err)
	}
	return parse(data)
}

// LoadFile reads a table from a YAML file.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading area code file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing area code table: %w", err)
	}
	return t, nil
}

// Lookup returns the area code for a place name.
func (t Table) Lookup(place string) (string, bool) {
	code, ok := t[place]
	return code, ok
}
