// Package race defines the hero race catalog. Races carry the base stats a
// hero derives its max HP, body, and mind from.
package race

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Race identifies a hero race.
type Race string

const (
	Human Race = "Human"
	Elf   Race = "Elf"
	Orc   Race = "Orc"
)

// Definition is one race's stat block.
type Definition struct {
	Name  string `yaml:"name"`
	MaxHP int    `yaml:"max_hp"`
	Body  int    `yaml:"body"`
	Mind  int    `yaml:"mind"`
}

// Config is the full race catalog.
type Config struct {
	Races map[string]*Definition `yaml:"races"`
}

// globalConfig holds the active race catalog, seeded with defaults.
var globalConfig = DefaultConfig()

// DefaultConfig returns the built-in race catalog.
func DefaultConfig() *Config {
	return &Config{
		Races: map[string]*Definition{
			string(Human): {Name: "Human", MaxHP: 10, Body: 3, Mind: 3},
			string(Elf):   {Name: "Elf", MaxHP: 8, Body: 2, Mind: 4},
			string(Orc):   {Name: "Orc", MaxHP: 12, Body: 4, Mind: 2},
		},
	}
}

// LoadFromYAML loads race definitions from a YAML file and installs them as
// the active catalog.
func LoadFromYAML(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read races file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse races file: %w", err)
	}
	if len(config.Races) == 0 {
		return nil, fmt.Errorf("races file %s defines no races", filename)
	}

	globalConfig = config
	return config, nil
}

// SetConfig installs a catalog directly, resetting to defaults when nil.
func SetConfig(config *Config) {
	if config == nil || len(config.Races) == 0 {
		globalConfig = DefaultConfig()
		return
	}
	globalConfig = config
}

// IsValid reports whether the race exists in the active catalog.
func (r Race) IsValid() bool {
	_, ok := globalConfig.Races[string(r)]
	return ok
}

// String returns the race's display name.
func (r Race) String() string {
	if def, ok := globalConfig.Races[string(r)]; ok {
		return def.Name
	}
	return "Unknown"
}

// Stats returns the race's stat block, falling back to Human's defaults for
// unknown races.
func (r Race) Stats() Definition {
	if def, ok := globalConfig.Races[string(r)]; ok {
		return *def
	}
	return *DefaultConfig().Races[string(Human)]
}

// Parse parses a string into a Race, case-insensitively.
func Parse(s string) (Race, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for name := range globalConfig.Races {
		if strings.ToLower(name) == needle {
			return Race(name), nil
		}
	}
	return "", fmt.Errorf("unknown race: %s", s)
}
