package bonus

import (
	"fmt"

	"github.com/cory-johannsen/adventure/internal/game/gem"
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/loot"
)

// enchantBonus raises the level of one enchantment on the host item.
type enchantBonus struct {
	gem.NoopBonus
	spec gem.BonusSpec
	ench item.EnchantmentID
}

func newEnchant(_ *gem.Gem, spec gem.BonusSpec) (gem.Bonus, error) {
	if spec.Enchantment == "" {
		return nil, fmt.Errorf("enchant bonus requires an enchantment")
	}
	return &enchantBonus{spec: spec, ench: item.EnchantmentID(spec.Enchantment)}, nil
}

func (b *enchantBonus) EnchantmentLevels(_ item.Stack, rarity *loot.Rarity, levels map[item.EnchantmentID]int) {
	v, ok := b.spec.Value(rarity)
	if !ok {
		return
	}
	levels[b.ench] += int(v)
}

func (b *enchantBonus) SocketBonusTooltip(_ item.Stack, rarity *loot.Rarity) string {
	v, ok := b.spec.Value(rarity)
	if !ok {
		return gem.InvalidCategoryTooltip
	}
	return fmt.Sprintf("+%d %s", int(v), b.ench)
}
