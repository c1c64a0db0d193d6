package item

import "fmt"

// Registry holds all loaded item definitions indexed by ID.
type Registry struct {
	defs map[string]*Def
}

// NewRegistry returns an empty Registry.
//
// Postcondition: the internal map is initialised.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Def)}
}

// Register adds d to the registry.
//
// Precondition:  d must not be nil.
// Postcondition: Def(d.ID) returns (d, true); returns error if d.ID already registered.
func (r *Registry) Register(d *Def) error {
	if _, exists := r.defs[d.ID]; exists {
		return fmt.Errorf("item: Registry.Register: item ID %q already registered", d.ID)
	}
	r.defs[d.ID] = d
	return nil
}

// Def returns the Def for the given id and whether it was found.
//
// Postcondition: ok is true iff the id is registered.
func (r *Registry) Def(id string) (*Def, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// All returns all registered Defs in unspecified order.
//
// Postcondition: len(result) == number of registered defs.
func (r *Registry) All() []*Def {
	out := make([]*Def, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	return out
}

// LoadRegistry loads all item defs from dir into a fresh Registry.
//
// Precondition: dir is a readable directory path.
// Postcondition: Returns a populated Registry or the first load/collision error.
func LoadRegistry(dir string) (*Registry, error) {
	defs, err := LoadDefs(dir)
	if err != nil {
		return nil, err
	}
	reg := NewRegistry()
	for _, d := range defs {
		if err := reg.Register(d); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
