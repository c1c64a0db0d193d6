// Package item defines item definitions, concrete item stacks, and the
// equipment slot model.
package item

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Kind constants for Def.Kind.
const (
	KindSword      = "sword"
	KindAxe        = "axe"
	KindBow        = "bow"
	KindCrossbow   = "crossbow"
	KindTrident    = "trident"
	KindShield     = "shield"
	KindPickaxe    = "pickaxe"
	KindHelmet     = "helmet"
	KindChestplate = "chestplate"
	KindLeggings   = "leggings"
	KindBoots      = "boots"
	KindGem        = "gem"
	KindJunk       = "junk"
)

// validKinds is the set of valid Def kinds.
var validKinds = map[string]bool{
	KindSword:      true,
	KindAxe:        true,
	KindBow:        true,
	KindCrossbow:   true,
	KindTrident:    true,
	KindShield:     true,
	KindPickaxe:    true,
	KindHelmet:     true,
	KindChestplate: true,
	KindLeggings:   true,
	KindBoots:      true,
	KindGem:        true,
	KindJunk:       true,
}

// Def defines the static properties of an item loaded from YAML.
type Def struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"`
	// Sockets is the number of gem sockets this item carries. Gems and junk
	// have none.
	Sockets    int `yaml:"sockets"`
	Durability int `yaml:"durability"`
	Value      int `yaml:"value"`
}

// Validate checks that the Def satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *Def) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !validKinds[d.Kind] {
		errs = append(errs, fmt.Errorf("Kind must be a known item kind; got %q", d.Kind))
	}
	if d.Sockets < 0 {
		errs = append(errs, errors.New("Sockets must be >= 0"))
	}
	if d.Kind == KindGem && d.Sockets != 0 {
		errs = append(errs, errors.New("gems must not carry sockets themselves"))
	}
	if d.Durability < 0 {
		errs = append(errs, errors.New("Durability must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}

// LoadDefs reads all *.yaml and *.yml files from dir, parses each as a Def,
// validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Defs or the first encountered error.
func LoadDefs(dir string) ([]*Def, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadDefs: cannot read directory %q: %w", dir, err)
	}

	var defs []*Def
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadDefs: cannot read file %q: %w", path, err)
		}
		var d Def
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("LoadDefs: cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadDefs: invalid item in %q: %w", path, err)
		}
		defs = append(defs, &d)
	}
	return defs, nil
}
