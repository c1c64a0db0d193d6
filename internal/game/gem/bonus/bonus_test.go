package bonus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/adventure/internal/game/attribute"
	"github.com/cory-johannsen/adventure/internal/game/combat"
	"github.com/cory-johannsen/adventure/internal/game/gem"
	"github.com/cory-johannsen/adventure/internal/game/gem/bonus"
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/loot"
)

var (
	rare   = &loot.Rarity{ID: "rare", Name: "Rare", Weight: 1, Ordinal: 1}
	common = &loot.Rarity{ID: "common", Name: "Common", Weight: 1, Ordinal: 0}
)

// build compiles a single-spec gem through the default factory and returns
// the bound handler.
func build(t *testing.T, spec gem.BonusSpec) gem.Bonus {
	t.Helper()
	g := &gem.Gem{ID: "test_gem", Name: "Test Gem", Bonuses: []gem.BonusSpec{spec}}
	require.NoError(t, g.Validate())

	gems := gem.NewRegistry()
	require.NoError(t, gems.Register(g))
	rarities := loot.NewRarities()
	require.NoError(t, rarities.Register(rare))
	require.NoError(t, rarities.Register(common))

	require.NoError(t, gem.Compile(gems, rarities, bonus.DefaultFactory(nil)))
	cat, _ := loot.ParseCategory(spec.Category)
	b, ok := g.Bonus(cat)
	require.True(t, ok)
	return b
}

func gemStack() item.Stack {
	return item.Stack{DefID: "gem_item", InstanceID: "i", Count: 1, Tags: map[string]string{}}
}

func TestAttributeBonus_AddModifiers(t *testing.T) {
	b := build(t, gem.BonusSpec{
		Category:  "melee_weapon",
		Type:      bonus.TypeAttribute,
		Attribute: "attack_damage",
		Values:    map[string]float64{"rare": 2.5},
	})

	collected := attribute.Map{}
	b.AddModifiers(gemStack(), rare, collected.Collect)
	mods := collected[attribute.AttackDamage]
	require.Len(t, mods, 1)
	assert.Equal(t, 2.5, mods[0].Amount)
	assert.Equal(t, attribute.OpAdd, mods[0].Op)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", mods[0].ID.String())

	// Same gem and attribute yields the same modifier identity on re-equip.
	again := attribute.Map{}
	b.AddModifiers(gemStack(), rare, again.Collect)
	assert.Equal(t, mods[0].ID, again[attribute.AttackDamage][0].ID)

	// No value configured for this tier: nothing is contributed.
	empty := attribute.Map{}
	b.AddModifiers(gemStack(), common, empty.Collect)
	assert.Empty(t, empty)
}

func TestAttributeBonus_Tooltip(t *testing.T) {
	b := build(t, gem.BonusSpec{
		Category:  "melee_weapon",
		Type:      bonus.TypeAttribute,
		Attribute: "attack_damage",
		Values:    map[string]float64{"rare": 2.5},
	})
	assert.Equal(t, "+2.5 attack_damage", b.SocketBonusTooltip(gemStack(), rare))
	assert.Equal(t, gem.InvalidCategoryTooltip, b.SocketBonusTooltip(gemStack(), common))
}

func TestAttributeBonus_RequiresAttribute(t *testing.T) {
	g := &gem.Gem{ID: "g", Name: "G", Bonuses: []gem.BonusSpec{
		{Category: "melee_weapon", Type: bonus.TypeAttribute},
	}}
	gems := gem.NewRegistry()
	require.NoError(t, gems.Register(g))
	err := gem.Compile(gems, loot.NewRarities(), bonus.DefaultFactory(nil))
	assert.Error(t, err)
}

func TestSlayingBonus_MobFilter(t *testing.T) {
	b := build(t, gem.BonusSpec{
		Category: "melee_weapon",
		Type:     bonus.TypeSlaying,
		Mob:      "undead",
		Values:   map[string]float64{"rare": 4.0},
	})
	assert.Equal(t, 4.0, b.DamageBonus(gemStack(), rare, combat.MobUndead))
	assert.Equal(t, 0.0, b.DamageBonus(gemStack(), rare, combat.MobArthropod))
	assert.Equal(t, 0.0, b.DamageBonus(gemStack(), common, combat.MobUndead))
	assert.Equal(t, "+4.0 damage vs undead", b.SocketBonusTooltip(gemStack(), rare))
}

func TestWardingBonus_HalvedWhenIndirect(t *testing.T) {
	b := build(t, gem.BonusSpec{
		Category: "chestplate",
		Type:     bonus.TypeWarding,
		Values:   map[string]float64{"rare": 5},
	})
	assert.Equal(t, 5, b.DamageProtection(gemStack(), rare, combat.MeleeSource("x")))
	assert.Equal(t, 2, b.DamageProtection(gemStack(), rare, combat.ProjectileSource("x")))
	assert.Equal(t, 0, b.DamageProtection(gemStack(), common, combat.MeleeSource("x")))
}

func TestDurabilityBonus_ValueRange(t *testing.T) {
	b := build(t, gem.BonusSpec{
		Category: "breaker",
		Type:     bonus.TypeDurability,
		Values:   map[string]float64{"rare": 0.3},
	})
	assert.Equal(t, 0.3, b.DurabilityBonusPercent(gemStack(), rare, nil))
	assert.Equal(t, 0.0, b.DurabilityBonusPercent(gemStack(), common, nil))
	assert.Equal(t, "+30% durability", b.SocketBonusTooltip(gemStack(), rare))
}

func TestDurabilityBonus_RejectsOutOfRangeValues(t *testing.T) {
	g := &gem.Gem{ID: "g", Name: "G", Bonuses: []gem.BonusSpec{
		{Category: "breaker", Type: bonus.TypeDurability, Values: map[string]float64{"rare": 1.5}},
	}}
	gems := gem.NewRegistry()
	require.NoError(t, gems.Register(g))
	rarities := loot.NewRarities()
	require.NoError(t, rarities.Register(rare))
	err := gem.Compile(gems, rarities, bonus.DefaultFactory(nil))
	assert.Error(t, err)
}

func TestEnchantBonus_RaisesLevels(t *testing.T) {
	b := build(t, gem.BonusSpec{
		Category:    "melee_weapon",
		Type:        bonus.TypeEnchant,
		Enchantment: "sharpness",
		Values:      map[string]float64{"rare": 2},
	})
	levels := map[item.EnchantmentID]int{item.EnchantSharpness: 1}
	b.EnchantmentLevels(gemStack(), rare, levels)
	assert.Equal(t, 3, levels[item.EnchantSharpness])

	// Unconfigured tier leaves the map untouched.
	b.EnchantmentLevels(gemStack(), common, levels)
	assert.Equal(t, 3, levels[item.EnchantSharpness])
}

func TestLootPileBonus_GuaranteedChance(t *testing.T) {
	b := build(t, gem.BonusSpec{
		Category: "breaker",
		Type:     bonus.TypeLoot,
		Item:     "raw_ore",
		Chance:   1.0,
		Values:   map[string]float64{"rare": 2},
	})
	ctx := loot.Context{Rand: loot.NewSource(1)}
	drops := b.ModifyLoot(gemStack(), rare, []item.Stack{{DefID: "stone", Count: 1}}, ctx)
	require.Len(t, drops, 3)
	assert.Equal(t, "stone", drops[0].DefID)
	assert.Equal(t, "raw_ore", drops[1].DefID)
	assert.Equal(t, "raw_ore", drops[2].DefID)
	assert.NotEqual(t, drops[1].InstanceID, drops[2].InstanceID)
}

func TestLootPileBonus_NilRand_Noop(t *testing.T) {
	b := build(t, gem.BonusSpec{
		Category: "breaker",
		Type:     bonus.TypeLoot,
		Item:     "raw_ore",
		Chance:   1.0,
		Values:   map[string]float64{"rare": 2},
	})
	in := []item.Stack{{DefID: "stone", Count: 1}}
	assert.Equal(t, in, b.ModifyLoot(gemStack(), rare, in, loot.Context{}))
}

func TestLootPileBonus_RejectsBadChance(t *testing.T) {
	g := &gem.Gem{ID: "g", Name: "G", Bonuses: []gem.BonusSpec{
		{Category: "breaker", Type: bonus.TypeLoot, Item: "raw_ore", Chance: 0},
	}}
	gems := gem.NewRegistry()
	require.NoError(t, gems.Register(g))
	err := gem.Compile(gems, loot.NewRarities(), bonus.DefaultFactory(nil))
	assert.Error(t, err)
}

func TestScriptBonus_RequiresHost(t *testing.T) {
	g := &gem.Gem{ID: "g", Name: "G", Bonuses: []gem.BonusSpec{
		{Category: "melee_weapon", Type: bonus.TypeScript},
	}}
	gems := gem.NewRegistry()
	require.NoError(t, gems.Register(g))
	err := gem.Compile(gems, loot.NewRarities(), bonus.DefaultFactory(nil))
	assert.Error(t, err)
}
