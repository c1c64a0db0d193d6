// Package bonus provides the built-in gem bonus handler implementations and
// the factory that binds them to content-defined bonus specs.
package bonus

import (
	"github.com/cory-johannsen/adventure/internal/game/gem"
	"github.com/cory-johannsen/adventure/internal/scripting"
)

// Bonus spec type identifiers recognised by DefaultFactory.
const (
	TypeAttribute  = "attribute"
	TypeSlaying    = "slaying"
	TypeWarding    = "warding"
	TypeDurability = "durability"
	TypeEnchant    = "enchant"
	TypeLoot       = "loot"
	TypeScript     = "script"
)

// DefaultFactory returns the factory for all built-in bonus types. scripts
// backs the "script" type and may be nil when no scripts are loaded; gems
// declaring script bonuses then fail to compile.
func DefaultFactory(scripts *scripting.Host) gem.Factory {
	return gem.Factory{
		TypeAttribute:  newAttribute,
		TypeSlaying:    newSlaying,
		TypeWarding:    newWarding,
		TypeDurability: newDurability,
		TypeEnchant:    newEnchant,
		TypeLoot:       newLootPile,
		TypeScript: func(g *gem.Gem, spec gem.BonusSpec) (gem.Bonus, error) {
			return newScript(scripts, g, spec)
		},
	}
}
