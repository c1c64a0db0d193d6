package loot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rarity is the static definition of one rarity tier, loaded from YAML.
// Gem rarity is independent of the rarity of the item a gem is socketed into.
type Rarity struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	// Weight is the relative chance of this tier in random picks.
	Weight int `yaml:"weight"`
	// Ordinal orders tiers from lowest (0) to highest.
	Ordinal int `yaml:"ordinal"`
}

// Validate checks that the Rarity satisfies its invariants.
//
// Postcondition: Returns nil iff ID and Name are set and Weight/Ordinal are
// non-negative.
func (r *Rarity) Validate() error {
	var errs []string
	if r.ID == "" {
		errs = append(errs, "id must not be empty")
	}
	if r.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if r.Weight < 0 {
		errs = append(errs, fmt.Sprintf("weight must be >= 0, got %d", r.Weight))
	}
	if r.Ordinal < 0 {
		errs = append(errs, fmt.Sprintf("ordinal must be >= 0, got %d", r.Ordinal))
	}
	if len(errs) > 0 {
		return fmt.Errorf("rarity validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Rarities holds all known rarity tiers keyed by ID.
type Rarities struct {
	defs map[string]*Rarity
}

// NewRarities creates an empty Rarities registry.
func NewRarities() *Rarities {
	return &Rarities{defs: make(map[string]*Rarity)}
}

// Register adds r to the registry.
//
// Precondition:  r must not be nil.
// Postcondition: Get(r.ID) returns (r, true); returns error if r.ID already registered.
func (rs *Rarities) Register(r *Rarity) error {
	if _, exists := rs.defs[r.ID]; exists {
		return fmt.Errorf("loot: Rarities.Register: rarity ID %q already registered", r.ID)
	}
	rs.defs[r.ID] = r
	return nil
}

// Get returns the Rarity for id, or (nil, false) if not found.
func (rs *Rarities) Get(id string) (*Rarity, bool) {
	r, ok := rs.defs[id]
	return r, ok
}

// All returns a snapshot slice of all registered rarities in unspecified order.
func (rs *Rarities) All() []*Rarity {
	out := make([]*Rarity, 0, len(rs.defs))
	for _, r := range rs.defs {
		out = append(out, r)
	}
	return out
}

// Pick returns a weight-proportional random rarity using src.
// When all weights are zero, the tier with the lowest ordinal is returned.
//
// Precondition: src must be non-nil; at least one rarity must be registered.
// Postcondition: Returns a registered rarity, or nil when the registry is empty.
func (rs *Rarities) Pick(src Source) *Rarity {
	total := 0
	var lowest *Rarity
	for _, r := range rs.defs {
		total += r.Weight
		if lowest == nil || r.Ordinal < lowest.Ordinal {
			lowest = r
		}
	}
	if lowest == nil {
		return nil
	}
	if total <= 0 {
		return lowest
	}
	roll := src.Intn(total)
	// Iterate in ordinal order so the pick is deterministic for a given roll.
	for _, r := range rs.sortedByOrdinal() {
		roll -= r.Weight
		if roll < 0 {
			return r
		}
	}
	return lowest
}

func (rs *Rarities) sortedByOrdinal() []*Rarity {
	out := rs.All()
	sort.Slice(out, func(i, j int) bool { return out[i].Ordinal < out[j].Ordinal })
	return out
}

// LoadRarities reads every *.yaml file in dir, parses each as a Rarity, and
// returns a populated Rarities registry.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Rarities, or an error if any file fails to
// parse or validate.
func LoadRarities(dir string) (*Rarities, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading rarity dir %q: %w", dir, err)
	}
	reg := NewRarities()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var r Rarity
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("invalid rarity in %q: %w", path, err)
		}
		if err := reg.Register(&r); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
