package bonus

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/adventure/internal/game/combat"
	"github.com/cory-johannsen/adventure/internal/game/gem"
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/loot"
	"github.com/cory-johannsen/adventure/internal/scripting"
)

// scriptBonus dispatches hook operations to Lua functions named
// "<hook>_<operation>" in the script host. Undefined functions, and script
// errors, fall back to the operation's neutral default, so a content script
// only implements the operations it cares about.
type scriptBonus struct {
	gem.NoopBonus
	host *scripting.Host
	hook string
}

func newScript(host *scripting.Host, g *gem.Gem, spec gem.BonusSpec) (gem.Bonus, error) {
	if host == nil {
		return nil, fmt.Errorf("script bonus for gem %q: no script host configured", g.ID)
	}
	hook := spec.Hook
	if hook == "" {
		hook = g.ID
	}
	return &scriptBonus{host: host, hook: hook}, nil
}

// number calls a hook expected to return a number; fallback is returned when
// the hook is absent, errors, or returns a non-number.
func (b *scriptBonus) number(op string, fallback float64, args ...lua.LValue) float64 {
	ret, ok := b.host.CallHook(b.hook+"_"+op, args...)
	if !ok {
		return fallback
	}
	if n, isNum := ret.(lua.LNumber); isNum {
		return float64(n)
	}
	return fallback
}

func (b *scriptBonus) SocketBonusTooltip(_ item.Stack, rarity *loot.Rarity) string {
	ret, ok := b.host.CallHook(b.hook+"_tooltip", lua.LString(rarity.ID))
	if !ok {
		return gem.InvalidCategoryTooltip
	}
	if s, isStr := ret.(lua.LString); isStr {
		return string(s)
	}
	return gem.InvalidCategoryTooltip
}

func (b *scriptBonus) DamageBonus(_ item.Stack, rarity *loot.Rarity, mob combat.MobType) float64 {
	return b.number("damage_bonus", 0, lua.LString(rarity.ID), lua.LString(mob))
}

func (b *scriptBonus) DamageProtection(_ item.Stack, rarity *loot.Rarity, source combat.DamageSource) int {
	return int(b.number("damage_protection", 0,
		lua.LString(rarity.ID), lua.LString(source.Kind), lua.LBool(source.Indirect)))
}

func (b *scriptBonus) ShieldBlock(_ item.Stack, rarity *loot.Rarity, _ *combat.Combatant, source combat.DamageSource, amount float64) float64 {
	return b.number("shield_block", amount,
		lua.LString(rarity.ID), lua.LString(source.Kind), lua.LNumber(amount))
}

func (b *scriptBonus) Hurt(_ item.Stack, rarity *loot.Rarity, source combat.DamageSource, _ *combat.Combatant, amount float64) float64 {
	return b.number("hurt", amount,
		lua.LString(rarity.ID), lua.LString(source.Kind), lua.LNumber(amount))
}

func (b *scriptBonus) DurabilityBonusPercent(_ item.Stack, rarity *loot.Rarity, _ *combat.Combatant) float64 {
	return b.number("durability", 0, lua.LString(rarity.ID))
}

func (b *scriptBonus) PostAttack(_ item.Stack, rarity *loot.Rarity, user, target *combat.Combatant) {
	targetID := lua.LValue(lua.LNil)
	if target != nil {
		targetID = lua.LString(target.ID)
	}
	b.host.CallHook(b.hook+"_post_attack", lua.LString(rarity.ID), lua.LString(user.ID), targetID)
}
