package marketplace

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the YAML schema accepted by Parse.
type document struct {
	Marketplaces []Marketplace `yaml:"marketplaces"`
}

// Parse reads marketplace definitions from YAML and returns a Registry
// seeded with the built-in table plus the parsed entries. Parsed entries
// replace built-in entries with the same id.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("marketplace: parse yaml: %w", err)
	}

	reg := NewRegistry()
	for _, m := range doc.Marketplaces {
		if err := reg.Add(m); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// LoadFile reads marketplace definitions from a YAML file. See Parse.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}
