package room

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCatalogFromYAML loads a room template catalog from a YAML file and
// validates every template in it.
func LoadCatalogFromYAML(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse templates file: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return &catalog, nil
}
