package gem

import (
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/loot"
)

// Resolver resolves item stacks against the loaded item, gem, and rarity
// registries and constructs Instances from them.
type Resolver struct {
	Items    *item.Registry
	Gems     *Registry
	Rarities *loot.Rarities
}

// resolve looks up the gem definition and rarity tagged on a gem stack.
// The two are derived together: a stack missing either tag, or referencing
// an unknown gem or rarity, resolves to neither.
//
// Postcondition: returns (gem, rarity) both non-nil, or both nil.
func (r Resolver) resolve(gemStack item.Stack) (*Gem, *loot.Rarity) {
	gemID, ok := gemStack.Tag(TagGem)
	if !ok {
		return nil, nil
	}
	rarityID, ok := gemStack.Tag(TagRarity)
	if !ok {
		return nil, nil
	}
	g, ok := r.Gems.Get(gemID)
	if !ok {
		return nil, nil
	}
	rar, ok := r.Rarities.Get(rarityID)
	if !ok {
		return nil, nil
	}
	return g, rar
}

// Instance builds a live Instance for a gem socketed into host. The category
// is classified from host's item definition; an unknown host definition
// classifies as loot.CategoryNone.
//
// Postcondition: the result's gem and rarity are both resolved or both absent.
func (r Resolver) Instance(host, gemStack item.Stack) Instance {
	g, rar := r.resolve(gemStack)
	def, _ := r.Items.Def(host.DefID)
	return Instance{
		gem:      g,
		category: loot.CategoryFor(def),
		stack:    gemStack,
		rarity:   rar,
	}
}

// Unsocketed builds an Instance with loot.CategoryNone. The result can never
// resolve a bonus handler, but exposes the gem's properties for tooltips and
// inventory display.
//
// Postcondition: IsValid() is false on the result.
func (r Resolver) Unsocketed(gemStack item.Stack) Instance {
	g, rar := r.resolve(gemStack)
	return Instance{
		gem:      g,
		category: loot.CategoryNone,
		stack:    gemStack,
		rarity:   rar,
	}
}

// NewGemStack creates an item stack of def carrying the tags that identify
// it as gem g at rarity rar.
//
// Precondition: def, g, and rar must be non-nil; def.Kind should be
// item.KindGem.
func NewGemStack(def *item.Def, g *Gem, rar *loot.Rarity) item.Stack {
	return item.NewStack(def).WithTag(TagGem, g.ID).WithTag(TagRarity, rar.ID)
}
