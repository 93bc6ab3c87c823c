package metadata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAliases reads a YAML file mapping source header names to canonical
// column names, in the shape ParseOptions.Aliases expects.
func LoadAliases(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading alias file: %w", err)
	}

	var aliases map[string]string
	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("parsing alias file: %w", err)
	}

	return aliases, nil
}
