// Package effecttype resolves effect type ids (e.g. "firebot:chat") to the
// names users see in the host application.
package effecttype

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// Definition describes one effect type.
type Definition struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Registry looks up effect types by id.
type Registry interface {
	EffectByID(id string) (Definition, bool)
}

// Catalog is an in-memory Registry.
type Catalog struct {
	Version string
	types   map[string]Definition
}

type catalogFile struct {
	CatalogVersion string       `yaml:"catalog_version"`
	EffectTypes    []Definition `yaml:"effect_types"`
}

// Default returns the catalog of built-in effect types.
func Default() *Catalog {
	c, err := Parse(builtinCatalog)
	if err != nil {
		panic(fmt.Sprintf("builtin effect catalog: %v", err))
	}
	return c
}

// Parse reads a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse effect catalog: %w", err)
	}
	c := &Catalog{Version: f.CatalogVersion, types: make(map[string]Definition, len(f.EffectTypes))}
	for i, def := range f.EffectTypes {
		if def.ID == "" {
			return nil, fmt.Errorf("parse effect catalog: entry %d has no id", i)
		}
		if def.Name == "" {
			def.Name = def.ID
		}
		c.types[def.ID] = def
	}
	return c, nil
}

// Load reads a YAML catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read effect catalog: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open effect catalog: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// EffectByID implements Registry.
func (c *Catalog) EffectByID(id string) (Definition, bool) {
	if c == nil {
		return Definition{}, false
	}
	def, ok := c.types[id]
	return def, ok
}

// Merge overlays other onto c. Entries in other win.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := &Catalog{Version: c.Version, types: make(map[string]Definition, len(c.types))}
	for id, def := range c.types {
		merged.types[id] = def
	}
	if other == nil {
		return merged
	}
	if other.Version != "" {
		merged.Version = other.Version
	}
	for id, def := range other.types {
		merged.types[id] = def
	}
	return merged
}

// Len returns the number of known types.
func (c *Catalog) Len() int {
	return len(c.types)
}

// IDs returns the known type ids, sorted.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.types))
	for id := range c.types {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
