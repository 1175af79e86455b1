package items

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// itemsFile is the YAML shape of an item catalog: a map keyed by item id.
type itemsFile struct {
	Items map[string]*Item `yaml:"items"`
}

// LoadCatalogFromYAML loads an item catalog from a YAML file. Every entry
// must carry a valid category.
func LoadCatalogFromYAML(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	var file itemsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse items file: %w", err)
	}
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("items file %s defines no items", filename)
	}

	entries := make([]Item, 0, len(file.Items))
	for id, item := range file.Items {
		if item == nil {
			return nil, fmt.Errorf("item %q has no definition", id)
		}
		if !item.Category.IsValid() {
			return nil, fmt.Errorf("item %q has unknown category %q", id, item.Category)
		}
		item.ID = id
		entries = append(entries, *item)
	}

	return NewCatalog(entries), nil
}
