package gem

import (
	"github.com/cory-johannsen/adventure/internal/game/attribute"
	"github.com/cory-johannsen/adventure/internal/game/combat"
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/loot"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// Bonus is the capability surface of one gem bonus, bound to one category.
// Every operation receives the gem's item stack and rarity so one handler
// instance serves all stacks and tiers.
//
// Implementations should embed NoopBonus and override the operations they
// care about; the embedded defaults match the dispatch defaults documented
// on Instance.
type Bonus interface {
	// AddModifiers contributes attribute modifiers granted while the host
	// item is equipped.
	AddModifiers(stack item.Stack, rarity *loot.Rarity, collect attribute.Collector)
	// SocketBonusTooltip renders the bonus line shown on the host item.
	SocketBonusTooltip(stack item.Stack, rarity *loot.Rarity) string
	// DamageProtection returns flat protection points against source.
	DamageProtection(stack item.Stack, rarity *loot.Rarity, source combat.DamageSource) int
	// DamageBonus returns bonus damage dealt to the given mob type.
	DamageBonus(stack item.Stack, rarity *loot.Rarity, mob combat.MobType) float64
	// PostAttack fires after the wearer lands an attack. target may be nil.
	PostAttack(stack item.Stack, rarity *loot.Rarity, user, target *combat.Combatant)
	// PostHurt fires after the wearer takes a hit. attacker may be nil.
	PostHurt(stack item.Stack, rarity *loot.Rarity, user, attacker *combat.Combatant)
	// ArrowFired fires when the wearer launches a projectile.
	ArrowFired(stack item.Stack, rarity *loot.Rarity, user *combat.Combatant, arrow *combat.Arrow)
	// ItemUse handles use-on-block interactions; ok reports whether the
	// bonus consumed the interaction.
	ItemUse(stack item.Stack, rarity *loot.Rarity, ctx combat.UseContext) (combat.InteractionResult, bool)
	// ShieldBlock adjusts blocked damage and returns the amount to apply.
	ShieldBlock(stack item.Stack, rarity *loot.Rarity, entity *combat.Combatant, source combat.DamageSource, amount float64) float64
	// BlockBreak fires when the wearer breaks a block with the host item.
	BlockBreak(stack item.Stack, rarity *loot.Rarity, player *combat.Combatant, level world.Level, pos world.Pos, block world.Block)
	// DurabilityBonusPercent returns the chance in [0, 1] to ignore a point
	// of durability damage.
	DurabilityBonusPercent(stack item.Stack, rarity *loot.Rarity, user *combat.Combatant) float64
	// Hurt adjusts incoming damage and returns the amount to apply.
	Hurt(stack item.Stack, rarity *loot.Rarity, source combat.DamageSource, entity *combat.Combatant, amount float64) float64
	// EnchantmentLevels raises enchantment levels in place.
	EnchantmentLevels(stack item.Stack, rarity *loot.Rarity, levels map[item.EnchantmentID]int)
	// ModifyLoot rewrites a generated drop list and returns the result.
	ModifyLoot(stack item.Stack, rarity *loot.Rarity, drops []item.Stack, ctx loot.Context) []item.Stack
}

// NoopBonus implements Bonus with the neutral default for every operation:
// zero values, unchanged amounts, untouched collections, and unconsumed
// interactions.
type NoopBonus struct{}

var _ Bonus = NoopBonus{}

func (NoopBonus) AddModifiers(item.Stack, *loot.Rarity, attribute.Collector) {}

func (NoopBonus) SocketBonusTooltip(item.Stack, *loot.Rarity) string { return "" }

func (NoopBonus) DamageProtection(item.Stack, *loot.Rarity, combat.DamageSource) int { return 0 }

func (NoopBonus) DamageBonus(item.Stack, *loot.Rarity, combat.MobType) float64 { return 0 }

func (NoopBonus) PostAttack(item.Stack, *loot.Rarity, *combat.Combatant, *combat.Combatant) {}

func (NoopBonus) PostHurt(item.Stack, *loot.Rarity, *combat.Combatant, *combat.Combatant) {}

func (NoopBonus) ArrowFired(item.Stack, *loot.Rarity, *combat.Combatant, *combat.Arrow) {}

func (NoopBonus) ItemUse(item.Stack, *loot.Rarity, combat.UseContext) (combat.InteractionResult, bool) {
	return combat.InteractPass, false
}

func (NoopBonus) ShieldBlock(_ item.Stack, _ *loot.Rarity, _ *combat.Combatant, _ combat.DamageSource, amount float64) float64 {
	return amount
}

func (NoopBonus) BlockBreak(item.Stack, *loot.Rarity, *combat.Combatant, world.Level, world.Pos, world.Block) {
}

func (NoopBonus) DurabilityBonusPercent(item.Stack, *loot.Rarity, *combat.Combatant) float64 {
	return 0
}

func (NoopBonus) Hurt(_ item.Stack, _ *loot.Rarity, _ combat.DamageSource, _ *combat.Combatant, amount float64) float64 {
	return amount
}

func (NoopBonus) EnchantmentLevels(item.Stack, *loot.Rarity, map[item.EnchantmentID]int) {}

func (NoopBonus) ModifyLoot(_ item.Stack, _ *loot.Rarity, drops []item.Stack, _ loot.Context) []item.Stack {
	return drops
}
