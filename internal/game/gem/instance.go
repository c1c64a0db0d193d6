package gem

import (
	"github.com/cory-johannsen/adventure/internal/game/attribute"
	"github.com/cory-johannsen/adventure/internal/game/combat"
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/loot"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// InvalidCategoryTooltip is the tooltip shown when a gem sits in a category
// it grants no bonus for.
const InvalidCategoryTooltip = "Invalid Gem Category"

// Instance is a live copy of a gem with all context needed to invoke its
// bonus: the gem definition, the category of the host item it is socketed
// into, the gem's own item stack, and the gem's rarity.
//
// Instance is an immutable value, built fresh per gameplay event via
// Resolver.Instance or Resolver.Unsocketed and discarded after use. Every
// hook operation resolves the bonus handler for (gem, category) per call;
// when none is registered the operation falls back to a neutral default —
// absence of a bonus is a normal case, never an error.
type Instance struct {
	gem      *Gem
	category loot.Category
	stack    item.Stack
	rarity   *loot.Rarity
}

// Gem returns the resolved gem definition, or nil when the stack did not
// resolve to a known gem.
func (i Instance) Gem() *Gem { return i.gem }

// Category returns the loot category of the host item, loot.CategoryNone for
// unsocketed instances.
func (i Instance) Category() loot.Category { return i.category }

// Stack returns the gem's item stack.
func (i Instance) Stack() item.Stack { return i.stack }

// Rarity returns the gem's rarity, or nil when unresolved. The gem and
// rarity are always both present or both absent.
func (i Instance) Rarity() *loot.Rarity { return i.rarity }

// IsValidUnsocketed reports whether the gem and rarity both resolved. Use
// this for instances built with Resolver.Unsocketed; otherwise use IsValid.
func (i Instance) IsValidUnsocketed() bool {
	return i.gem != nil && i.rarity != nil
}

// IsValid reports whether the gem and rarity resolved and the gem grants a
// bonus for the socketed category. Always false for unsocketed instances.
func (i Instance) IsValid() bool {
	if !i.IsValidUnsocketed() {
		return false
	}
	_, ok := i.gem.Bonus(i.category)
	return ok
}

// bonus resolves the handler for this instance's gem and category.
//
// Postcondition: ok is true iff IsValid().
func (i Instance) bonus() (Bonus, bool) {
	if i.gem == nil || i.rarity == nil {
		return nil, false
	}
	return i.gem.Bonus(i.category)
}

// AddModifiers forwards to Bonus.AddModifiers, but only when slot is among
// the slots valid for the socketed category. For any other slot the
// collector receives no calls.
func (i Instance) AddModifiers(slot item.Slot, collect attribute.Collector) {
	for _, catSlot := range i.category.Slots() {
		if catSlot == slot {
			if b, ok := i.bonus(); ok {
				b.AddModifiers(i.stack, i.rarity, collect)
			}
		}
	}
}

// SocketBonusTooltip forwards to Bonus.SocketBonusTooltip, or returns
// InvalidCategoryTooltip when no bonus is registered.
func (i Instance) SocketBonusTooltip() string {
	if b, ok := i.bonus(); ok {
		return b.SocketBonusTooltip(i.stack, i.rarity)
	}
	return InvalidCategoryTooltip
}

// DamageProtection forwards to Bonus.DamageProtection, or returns 0.
func (i Instance) DamageProtection(source combat.DamageSource) int {
	if b, ok := i.bonus(); ok {
		return b.DamageProtection(i.stack, i.rarity, source)
	}
	return 0
}

// DamageBonus forwards to Bonus.DamageBonus, or returns 0.
func (i Instance) DamageBonus(mob combat.MobType) float64 {
	if b, ok := i.bonus(); ok {
		return b.DamageBonus(i.stack, i.rarity, mob)
	}
	return 0
}

// PostAttack forwards to Bonus.PostAttack. target may be nil.
func (i Instance) PostAttack(user, target *combat.Combatant) {
	if b, ok := i.bonus(); ok {
		b.PostAttack(i.stack, i.rarity, user, target)
	}
}

// PostHurt forwards to Bonus.PostHurt. attacker may be nil.
func (i Instance) PostHurt(user, attacker *combat.Combatant) {
	if b, ok := i.bonus(); ok {
		b.PostHurt(i.stack, i.rarity, user, attacker)
	}
}

// ArrowFired forwards to Bonus.ArrowFired.
func (i Instance) ArrowFired(user *combat.Combatant, arrow *combat.Arrow) {
	if b, ok := i.bonus(); ok {
		b.ArrowFired(i.stack, i.rarity, user, arrow)
	}
}

// ItemUse forwards to Bonus.ItemUse. ok is false when no bonus is registered
// or the bonus did not consume the interaction.
func (i Instance) ItemUse(ctx combat.UseContext) (combat.InteractionResult, bool) {
	if b, ok := i.bonus(); ok {
		return b.ItemUse(i.stack, i.rarity, ctx)
	}
	return combat.InteractPass, false
}

// ArrowImpact is a placeholder for projectile impact effects. No bonus type
// consumes impacts yet, so it deliberately does nothing.
//
// TODO: resolve the firing gem from the arrow's tags and forward the impact
// to its bonus once a bonus type needs it.
func (i Instance) ArrowImpact(arrow *combat.Arrow, res combat.HitResult) {
}

// ShieldBlock forwards to Bonus.ShieldBlock, or returns amount unchanged.
func (i Instance) ShieldBlock(entity *combat.Combatant, source combat.DamageSource, amount float64) float64 {
	if b, ok := i.bonus(); ok {
		return b.ShieldBlock(i.stack, i.rarity, entity, source, amount)
	}
	return amount
}

// BlockBreak forwards to Bonus.BlockBreak.
func (i Instance) BlockBreak(player *combat.Combatant, level world.Level, pos world.Pos, block world.Block) {
	if b, ok := i.bonus(); ok {
		b.BlockBreak(i.stack, i.rarity, player, level, pos, block)
	}
}

// DurabilityBonusPercent forwards to Bonus.DurabilityBonusPercent, or
// returns 0.
func (i Instance) DurabilityBonusPercent(user *combat.Combatant) float64 {
	if b, ok := i.bonus(); ok {
		return b.DurabilityBonusPercent(i.stack, i.rarity, user)
	}
	return 0
}

// Hurt forwards to Bonus.Hurt, or returns amount unchanged.
func (i Instance) Hurt(source combat.DamageSource, entity *combat.Combatant, amount float64) float64 {
	if b, ok := i.bonus(); ok {
		return b.Hurt(i.stack, i.rarity, source, entity, amount)
	}
	return amount
}

// EnchantmentLevels forwards to Bonus.EnchantmentLevels, which raises levels
// in place. Without a bonus the map is untouched.
func (i Instance) EnchantmentLevels(levels map[item.EnchantmentID]int) {
	if b, ok := i.bonus(); ok {
		b.EnchantmentLevels(i.stack, i.rarity, levels)
	}
}

// ModifyLoot forwards to Bonus.ModifyLoot and returns the resulting drop
// list. Without a bonus the input is returned unchanged.
func (i Instance) ModifyLoot(drops []item.Stack, ctx loot.Context) []item.Stack {
	if b, ok := i.bonus(); ok {
		return b.ModifyLoot(i.stack, i.rarity, drops, ctx)
	}
	return drops
}
