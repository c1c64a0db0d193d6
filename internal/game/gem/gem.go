// Package gem implements socketable gems: definitions, the bonus handler
// surface, and the Instance dispatch record that forwards gameplay hooks to
// the bonus registered for the socketed category.
package gem

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/adventure/internal/game/loot"
)

// Stack tag keys linking a gem item stack to its definition and rarity.
const (
	// TagGem holds the gem definition ID on a gem item stack.
	TagGem = "gem"
	// TagRarity holds the rarity ID of the gem itself, not of the host item.
	TagRarity = "gem_rarity"
)

// BonusSpec configures one bonus of a gem for one category, loaded from YAML.
// Type selects the handler implementation; the remaining fields are
// interpreted per type.
type BonusSpec struct {
	Category string `yaml:"category"`
	Type     string `yaml:"type"`
	// Attribute and Operation configure attribute-modifier bonuses.
	Attribute string `yaml:"attribute"`
	Operation string `yaml:"operation"`
	// Mob restricts slaying bonuses to one mob type.
	Mob string `yaml:"mob"`
	// Enchantment names the enchantment raised by enchant bonuses.
	Enchantment string `yaml:"enchantment"`
	// Item is the bonus drop contributed by loot bonuses.
	Item string `yaml:"item"`
	// Chance gates chance-rolled bonuses, in (0, 1].
	Chance float64 `yaml:"chance"`
	// Values maps rarity ID to the bonus magnitude at that tier.
	Values map[string]float64 `yaml:"values"`
	// Hook is the Lua function name prefix for script bonuses.
	Hook string `yaml:"hook"`
}

// Value returns the magnitude configured for the given rarity.
//
// Postcondition: ok is false iff no magnitude is configured for r.
func (s BonusSpec) Value(r *loot.Rarity) (float64, bool) {
	if r == nil {
		return 0, false
	}
	v, ok := s.Values[r.ID]
	return v, ok
}

// Gem is the static definition of one gem, loaded from YAML. Bonus handlers
// are bound per category by Compile.
type Gem struct {
	ID      string      `yaml:"id"`
	Name    string      `yaml:"name"`
	Bonuses []BonusSpec `yaml:"bonuses"`

	compiled map[loot.Category]Bonus
}

// Validate checks that the Gem satisfies its invariants. Rarity IDs inside
// bonus values are checked later, during Compile, against the loaded tiers.
//
// Precondition: g is non-nil.
// Postcondition: returns nil iff ID, Name, and all bonus specs are valid and
// no category appears twice.
func (g *Gem) Validate() error {
	var errs []error
	if g.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if g.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	seen := map[loot.Category]bool{}
	for i, spec := range g.Bonuses {
		cat, ok := loot.ParseCategory(spec.Category)
		if !ok || cat == loot.CategoryNone {
			errs = append(errs, fmt.Errorf("bonus[%d]: category %q is not socketable", i, spec.Category))
			continue
		}
		if seen[cat] {
			errs = append(errs, fmt.Errorf("bonus[%d]: duplicate category %q", i, spec.Category))
		}
		seen[cat] = true
		if spec.Type == "" {
			errs = append(errs, fmt.Errorf("bonus[%d]: type must not be empty", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("gem validation failed: %v", errs)
	}
	return nil
}

// Bonus returns the compiled bonus handler for cat and whether one exists.
// Before Compile has run, no category resolves.
//
// Postcondition: ok is false for loot.CategoryNone.
func (g *Gem) Bonus(cat loot.Category) (Bonus, bool) {
	b, ok := g.compiled[cat]
	return b, ok
}

// Registry holds all loaded gem definitions indexed by ID.
type Registry struct {
	gems map[string]*Gem
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{gems: make(map[string]*Gem)}
}

// Register adds g to the registry.
//
// Precondition:  g must not be nil.
// Postcondition: Get(g.ID) returns (g, true); returns error if g.ID already registered.
func (r *Registry) Register(g *Gem) error {
	if _, exists := r.gems[g.ID]; exists {
		return fmt.Errorf("gem: Registry.Register: gem ID %q already registered", g.ID)
	}
	r.gems[g.ID] = g
	return nil
}

// Get returns the Gem for id, or (nil, false) if not found.
func (r *Registry) Get(id string) (*Gem, bool) {
	g, ok := r.gems[id]
	return g, ok
}

// All returns a snapshot slice of all registered gems in unspecified order.
func (r *Registry) All() []*Gem {
	out := make([]*Gem, 0, len(r.gems))
	for _, g := range r.gems {
		out = append(out, g)
	}
	return out
}

// LoadGems reads every *.yaml file in dir, parses each as a Gem, and returns
// a populated Registry. The gems still need Compile before bonuses resolve.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Registry, or an error if any file fails to
// parse or validate.
func LoadGems(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading gem dir %q: %w", dir, err)
	}
	reg := NewRegistry()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var g Gem
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&g); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("invalid gem in %q: %w", path, err)
		}
		if err := reg.Register(&g); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Factory maps a bonus spec type to its handler constructor.
type Factory map[string]func(g *Gem, spec BonusSpec) (Bonus, error)

// Compile binds a bonus handler to every (gem, category) pair in reg using
// the given factory, validating that all referenced rarity IDs exist.
//
// Precondition: every gem in reg has passed Validate; rarities and factory
// must be non-nil.
// Postcondition: Gem.Bonus resolves for every configured category, or an
// error identifies the offending gem and spec.
func Compile(reg *Registry, rarities *loot.Rarities, factory Factory) error {
	for _, g := range reg.gems {
		compiled := make(map[loot.Category]Bonus, len(g.Bonuses))
		for i, spec := range g.Bonuses {
			ctor, ok := factory[spec.Type]
			if !ok {
				return fmt.Errorf("gem %q: bonus[%d]: unknown bonus type %q", g.ID, i, spec.Type)
			}
			for rarityID := range spec.Values {
				if _, ok := rarities.Get(rarityID); !ok {
					return fmt.Errorf("gem %q: bonus[%d]: unknown rarity %q in values", g.ID, i, rarityID)
				}
			}
			b, err := ctor(g, spec)
			if err != nil {
				return fmt.Errorf("gem %q: bonus[%d]: %w", g.ID, i, err)
			}
			cat, _ := loot.ParseCategory(spec.Category)
			compiled[cat] = b
		}
		g.compiled = compiled
	}
	return nil
}
