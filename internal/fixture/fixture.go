// Package fixture holds the hand-curated datasets the generators draw from.
// Every list can be replaced from a YAML file; lists left out keep their
// built-in values.
package fixture

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Product is a catalog entry before an id and price are assigned.
type Product struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Address holds the pools a street address is assembled from.
type Address struct {
	Streets []string `yaml:"streets"`
	Cities  []string `yaml:"cities"`
	States  []string `yaml:"states"`
}

// Set is a complete collection of fixture pools.
type Set struct {
	Products            []Product `yaml:"products"`
	CredentialUsernames []string  `yaml:"credential_usernames"`
	ProfileUsernames    []string  `yaml:"profile_usernames"`
	Address             Address   `yaml:"address"`

	Source string `yaml:"-"`
}

// Default returns a copy of the built-in fixtures.
func Default() Set {
	return Set{
		Products:            append([]Product(nil), products...),
		CredentialUsernames: append([]string(nil), credentialUsernames...),
		ProfileUsernames:    append([]string(nil), profileUsernames...),
		Address: Address{
			Streets: append([]string(nil), streets...),
			Cities:  append([]string(nil), cities...),
			States:  append([]string(nil), states...),
		},
		Source: "builtin",
	}
}

// FromYAML overlays the lists present in data onto the built-in fixtures.
func FromYAML(data string) (Set, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return Set{}, errors.New("fixture YAML is empty")
	}

	var override Set
	if err := yaml.Unmarshal([]byte(trimmed), &override); err != nil {
		return Set{}, fmt.Errorf("parse fixture YAML: %w", err)
	}

	set := Default()
	if len(override.Products) > 0 {
		set.Products = override.Products
	}
	if len(override.CredentialUsernames) > 0 {
		set.CredentialUsernames = override.CredentialUsernames
	}
	if len(override.ProfileUsernames) > 0 {
		set.ProfileUsernames = override.ProfileUsernames
	}
	if len(override.Address.Streets) > 0 {
		set.Address.Streets = override.Address.Streets
	}
	if len(override.Address.Cities) > 0 {
		set.Address.Cities = override.Address.Cities
	}
	if len(override.Address.States) > 0 {
		set.Address.States = override.Address.States
	}
	set.Source = "yaml"

	if err := set.Validate(); err != nil {
		return Set{}, err
	}
	return set, nil
}

// LoadFile reads a fixture override file. An empty path yields the defaults.
func LoadFile(path string) (Set, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read fixture file %s: %w", path, err)
	}

	set, err := FromYAML(string(data))
	if err != nil {
		return Set{}, fmt.Errorf("fixture file %s: %w", path, err)
	}
	set.Source = path
	return set, nil
}

// Validate reports the first empty pool or blank product name.
func (s Set) Validate() error {
	pools := []struct {
		name string
		n    int
	}{
		{"products", len(s.Products)},
		{"credential_usernames", len(s.CredentialUsernames)},
		{"profile_usernames", len(s.ProfileUsernames)},
		{"address.streets", len(s.Address.Streets)},
		{"address.cities", len(s.Address.Cities)},
		{"address.states", len(s.Address.States)},
	}
	for _, p := range pools {
		if p.n == 0 {
			return fmt.Errorf("fixture pool %q is empty", p.name)
		}
	}

	for i, p := range s.Products {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("fixture product %d has no name", i+1)
		}
	}
	return nil
}
