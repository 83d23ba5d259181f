package marketplace

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownMarketplace is returned by Lookup when the identifier has
	// no registry entry.
	ErrUnknownMarketplace = errors.New("marketplace: unknown marketplace identifier")

	// ErrInvalidMarketplace is returned when a marketplace definition is
	// missing a required field.
	ErrInvalidMarketplace = errors.New("marketplace: invalid marketplace definition")
)

// builtins is the table of known marketplaces.
var builtins = []Marketplace{
	{ID: "au", Region: "us-west-2", Host: "webservices.amazon.com.au", Site: "www.amazon.com.au"},
	{ID: "be", Region: "eu-west-1", Host: "webservices.amazon.com.be", Site: "www.amazon.com.be"},
	{ID: "br", Region: "us-east-1", Host: "webservices.amazon.com.br", Site: "www.amazon.com.br"},
	{ID: "ca", Region: "us-east-1", Host: "webservices.amazon.ca", Site: "www.amazon.ca"},
	{ID: "eg", Region: "eu-west-1", Host: "webservices.amazon.eg", Site: "www.amazon.eg"},
	{ID: "fr", Region: "eu-west-1", Host: "webservices.amazon.fr", Site: "www.amazon.fr"},
	{ID: "de", Region: "eu-west-1", Host: "webservices.amazon.de", Site: "www.amazon.de"},
	{ID: "in", Region: "eu-west-1", Host: "webservices.amazon.in", Site: "www.amazon.in"},
	{ID: "it", Region: "eu-west-1", Host: "webservices.amazon.it", Site: "www.amazon.it"},
	{ID: "jp", Region: "us-west-2", Host: "webservices.amazon.co.jp", Site: "www.amazon.co.jp"},
	{ID: "mx", Region: "us-east-1", Host: "webservices.amazon.com.mx", Site: "www.amazon.com.mx"},
	{ID: "nl", Region: "eu-west-1", Host: "webservices.amazon.nl", Site: "www.amazon.nl"},
	{ID: "pl", Region: "eu-west-1", Host: "webservices.amazon.pl", Site: "www.amazon.pl"},
	{ID: "sg", Region: "us-west-2", Host: "webservices.amazon.sg", Site: "www.amazon.sg"},
	{ID: "sa", Region: "eu-west-1", Host: "webservices.amazon.sa", Site: "www.amazon.sa"},
	{ID: "es", Region: "eu-west-1", Host: "webservices.amazon.es", Site: "www.amazon.es"},
	{ID: "se", Region: "eu-west-1", Host: "webservices.amazon.se", Site: "www.amazon.se"},
	{ID: "tr", Region: "eu-west-1", Host: "webservices.amazon.com.tr", Site: "www.amazon.com.tr"},
	{ID: "ae", Region: "eu-west-1", Host: "webservices.amazon.ae", Site: "www.amazon.ae"},
	{ID: "uk", Region: "eu-west-1", Host: "webservices.amazon.co.uk", Site: "www.amazon.co.uk"},
	{ID: "us", Region: "us-east-1", Host: "webservices.amazon.com", Site: "www.amazon.com"},
}

// Registry holds marketplace definitions keyed by identifier. It is
// populated at construction and safe for concurrent lookups thereafter.
type Registry struct {
	entries map[string]Marketplace
}

// NewRegistry returns a Registry seeded with the built-in marketplace
// table.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]Marketplace, len(builtins))}
	for _, m := range builtins {
		r.entries[m.ID] = m
	}

	return r
}

// Lookup returns the marketplace registered under id.
func (r *Registry) Lookup(id string) (Marketplace, error) {
	m, ok := r.entries[id]
	if !ok {
		return Marketplace{}, fmt.Errorf("%w: %q", ErrUnknownMarketplace, id)
	}

	return m, nil
}

// Add registers a marketplace, replacing any existing entry with the same
// id.
func (r *Registry) Add(m Marketplace) error {
	if err := m.validate(); err != nil {
		return err
	}

	r.entries[m.ID] = m

	return nil
}

// IDs returns the registered marketplace identifiers in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
