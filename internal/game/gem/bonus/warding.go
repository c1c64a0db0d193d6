package bonus

import (
	"fmt"

	"github.com/cory-johannsen/adventure/internal/game/combat"
	"github.com/cory-johannsen/adventure/internal/game/gem"
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/loot"
)

// wardingBonus grants flat damage protection points. Indirect sources
// (projectiles, area effects) are only warded at half strength.
type wardingBonus struct {
	gem.NoopBonus
	spec gem.BonusSpec
}

func newWarding(_ *gem.Gem, spec gem.BonusSpec) (gem.Bonus, error) {
	return &wardingBonus{spec: spec}, nil
}

func (b *wardingBonus) DamageProtection(_ item.Stack, rarity *loot.Rarity, source combat.DamageSource) int {
	v, ok := b.spec.Value(rarity)
	if !ok {
		return 0
	}
	points := int(v)
	if source.Indirect {
		points /= 2
	}
	return points
}

func (b *wardingBonus) SocketBonusTooltip(_ item.Stack, rarity *loot.Rarity) string {
	v, ok := b.spec.Value(rarity)
	if !ok {
		return gem.InvalidCategoryTooltip
	}
	return fmt.Sprintf("+%d protection", int(v))
}
