// Package loot defines loot categories, gem/item rarity tiers, and loot
// table generation.
package loot

import "github.com/cory-johannsen/adventure/internal/game/item"

// Category classifies a socketable host item and determines which gem
// bonuses can apply to it.
type Category int

const (
	// CategoryNone is the sentinel for "not socketed into anything". No
	// bonus ever resolves for it.
	CategoryNone Category = iota
	CategoryMeleeWeapon
	CategoryTrident
	CategoryBow
	CategoryCrossbow
	CategoryBreaker
	CategoryShield
	CategoryHelmet
	CategoryChestplate
	CategoryLeggings
	CategoryBoots
)

// categoryNames maps each category to its content-file spelling.
var categoryNames = map[Category]string{
	CategoryNone:        "none",
	CategoryMeleeWeapon: "melee_weapon",
	CategoryTrident:     "trident",
	CategoryBow:         "bow",
	CategoryCrossbow:    "crossbow",
	CategoryBreaker:     "breaker",
	CategoryShield:      "shield",
	CategoryHelmet:      "helmet",
	CategoryChestplate:  "chestplate",
	CategoryLeggings:    "leggings",
	CategoryBoots:       "boots",
}

// String returns the content-file spelling of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCategory converts a content-file spelling into a Category.
//
// Postcondition: ok is false iff s names no category; "none" parses to
// CategoryNone with ok == true.
func ParseCategory(s string) (Category, bool) {
	for c, name := range categoryNames {
		if name == s {
			return c, true
		}
	}
	return CategoryNone, false
}

// categorySlots maps each category to the equipment slots in which its
// bonuses are active. CategoryNone has no slots.
var categorySlots = map[Category][]item.Slot{
	CategoryMeleeWeapon: {item.SlotMainHand},
	CategoryTrident:     {item.SlotMainHand},
	CategoryBow:         {item.SlotMainHand, item.SlotOffHand},
	CategoryCrossbow:    {item.SlotMainHand, item.SlotOffHand},
	CategoryBreaker:     {item.SlotMainHand},
	CategoryShield:      {item.SlotOffHand},
	CategoryHelmet:      {item.SlotHead},
	CategoryChestplate:  {item.SlotChest},
	CategoryLeggings:    {item.SlotLegs},
	CategoryBoots:       {item.SlotFeet},
}

// Slots returns the equipment slots valid for this category. The returned
// slice is shared; callers must not modify it.
//
// Postcondition: Returns an empty slice for CategoryNone.
func (c Category) Slots() []item.Slot {
	return categorySlots[c]
}

// kindCategories maps item kinds to their loot category.
var kindCategories = map[string]Category{
	item.KindSword:      CategoryMeleeWeapon,
	item.KindAxe:        CategoryMeleeWeapon,
	item.KindTrident:    CategoryTrident,
	item.KindBow:        CategoryBow,
	item.KindCrossbow:   CategoryCrossbow,
	item.KindPickaxe:    CategoryBreaker,
	item.KindShield:     CategoryShield,
	item.KindHelmet:     CategoryHelmet,
	item.KindChestplate: CategoryChestplate,
	item.KindLeggings:   CategoryLeggings,
	item.KindBoots:      CategoryBoots,
}

// CategoryFor classifies an item definition.
//
// Postcondition: Returns CategoryNone for nil defs and for kinds that are
// not socketable hosts (gems, junk).
func CategoryFor(d *item.Def) Category {
	if d == nil {
		return CategoryNone
	}
	return kindCategories[d.Kind]
}
