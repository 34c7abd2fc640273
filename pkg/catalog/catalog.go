// Package catalog provides the static index→descriptor tables the record
// fields refer to (species, items, moves, locations) and the mail word
// dictionary. Lookups never fail: indices outside a table's documented
// range resolve to a flagged placeholder.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var builtin embed.FS

var ErrDuplicateIndex = errors.New("duplicate catalog index")

// Range is an inclusive index range.
type Range struct {
	From uint16 `yaml:"from"`
	To   uint16 `yaml:"to"`
}

func (r Range) contains(i uint16) bool {
	return r.From <= i && i <= r.To
}

// Entry is the result of a catalog lookup.
type Entry struct {
	Index uint16
	Name  string
	// Named is true when the catalog has a name for the index.
	Named bool
	// Unassigned marks slots inside the documented range that the game
	// reserves without assigning content.
	Unassigned bool
	// Glitch is true for reserved slots and for indices past the
	// documented range.
	Glitch bool
}

// Catalog is an immutable index→name table.
type Catalog struct {
	name        string
	max         uint16
	placeholder string
	reserved    []Range
	names       map[uint16]string
}

type catalogFile struct {
	Name        string            `yaml:"name"`
	Max         uint16            `yaml:"max"`
	Placeholder string            `yaml:"placeholder"`
	Reserved    []Range           `yaml:"reserved"`
	Entries     map[uint16]string `yaml:"entries"`
}

// New builds a catalog. max is the last documented index.
func New(name string, max uint16, placeholder string, reserved []Range, names map[uint16]string) *Catalog {
	c := &Catalog{
		name:        name,
		max:         max,
		placeholder: placeholder,
		reserved:    append([]Range(nil), reserved...),
		names:       make(map[uint16]string, len(names)),
	}
	for i, n := range names {
		c.names[i] = n
	}
	return c
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Name, f.Max, f.Placeholder, f.Reserved, f.Entries), nil
}

// Load reads a YAML catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Builtin returns one of the embedded catalogs: species, items, moves or
// locations.
func Builtin(name string) (*Catalog, error) {
	data, err := builtin.ReadFile(path.Join("data", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("no builtin catalog %q: %w", name, err)
	}
	return Parse(data)
}

// Name is the catalog's name.
func (c *Catalog) Name() string {
	return c.name
}

// Len is the number of named entries.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Lookup resolves an index. It never fails.
func (c *Catalog) Lookup(i uint16) Entry {
	e := Entry{Index: i, Name: c.placeholder}
	if name, ok := c.names[i]; ok && i <= c.max {
		e.Name, e.Named = name, true
	}

	if i > c.max {
		e.Glitch = true
		return e
	}
	for _, r := range c.reserved {
		if r.contains(i) {
			e.Unassigned, e.Glitch = true, true
			break
		}
	}
	return e
}

// Catalogs groups the tables a record dump refers to.
type Catalogs struct {
	Species   *Catalog
	Items     *Catalog
	Moves     *Catalog
	Locations *Catalog
}

// Paths overrides builtin catalogs with YAML files. Empty paths keep the
// builtin table.
type Paths struct {
	Items     string
	Moves     string
	Locations string
}

// LoadCatalogs loads the builtin catalogs, replacing those with a path set.
func LoadCatalogs(p Paths) (*Catalogs, error) {
	var cs Catalogs
	for _, t := range []struct {
		name string
		path string
		dst  **Catalog
	}{
		{"species", "", &cs.Species},
		{"items", p.Items, &cs.Items},
		{"moves", p.Moves, &cs.Moves},
		{"locations", p.Locations, &cs.Locations},
	} {
		var err error
		if t.path != "" {
			*t.dst, err = Load(t.path)
		} else {
			*t.dst, err = Builtin(t.name)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.name, err)
		}
	}
	return &cs, nil
}
