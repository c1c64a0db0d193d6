package bonus

import (
	"fmt"

	"github.com/cory-johannsen/adventure/internal/game/combat"
	"github.com/cory-johannsen/adventure/internal/game/gem"
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/loot"
)

// durabilityBonus grants a chance to ignore durability damage. Values are
// fractions in [0, 1] per rarity.
type durabilityBonus struct {
	gem.NoopBonus
	spec gem.BonusSpec
}

func newDurability(_ *gem.Gem, spec gem.BonusSpec) (gem.Bonus, error) {
	for rarityID, v := range spec.Values {
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("durability bonus: value for %q must be in [0, 1], got %f", rarityID, v)
		}
	}
	return &durabilityBonus{spec: spec}, nil
}

func (b *durabilityBonus) DurabilityBonusPercent(_ item.Stack, rarity *loot.Rarity, _ *combat.Combatant) float64 {
	v, _ := b.spec.Value(rarity)
	return v
}

func (b *durabilityBonus) SocketBonusTooltip(_ item.Stack, rarity *loot.Rarity) string {
	v, ok := b.spec.Value(rarity)
	if !ok {
		return gem.InvalidCategoryTooltip
	}
	return fmt.Sprintf("+%.0f%% durability", v*100)
}
