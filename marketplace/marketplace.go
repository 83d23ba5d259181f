package marketplace

import (
	"fmt"
	"strings"
)

// Marketplace describes one regional endpoint of the Product Advertising
// API. Values are immutable once registered.
type Marketplace struct {
	// ID is the short identifier callers configure, such as "us" or "uk".
	ID string `yaml:"id"`

	// Region is the signing region for requests to this marketplace.
	Region string `yaml:"region"`

	// Host is the API hostname requests are sent to.
	Host string `yaml:"host"`

	// Site is the retail site identifier carried in the request payload.
	Site string `yaml:"site"`
}

// EndpointURL returns the full URL for one operation, such as "GetItems".
func (m Marketplace) EndpointURL(operation string) string {
	return "https://" + m.Host + "/paapi5/" + strings.ToLower(operation)
}

func (m Marketplace) validate() error {
	for _, field := range []struct {
		name, value string
	}{
		{"id", m.ID},
		{"region", m.Region},
		{"host", m.Host},
		{"site", m.Site},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: missing %s", ErrInvalidMarketplace, field.name)
		}
	}

	return nil
}
