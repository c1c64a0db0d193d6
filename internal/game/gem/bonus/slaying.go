package bonus

import (
	"fmt"

	"github.com/cory-johannsen/adventure/internal/game/combat"
	"github.com/cory-johannsen/adventure/internal/game/gem"
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/loot"
)

// slayingBonus adds flat damage against one mob type.
type slayingBonus struct {
	gem.NoopBonus
	spec gem.BonusSpec
	mob  combat.MobType
}

func newSlaying(_ *gem.Gem, spec gem.BonusSpec) (gem.Bonus, error) {
	if spec.Mob == "" {
		return nil, fmt.Errorf("slaying bonus requires a mob type")
	}
	return &slayingBonus{spec: spec, mob: combat.MobType(spec.Mob)}, nil
}

func (b *slayingBonus) DamageBonus(_ item.Stack, rarity *loot.Rarity, mob combat.MobType) float64 {
	if mob != b.mob {
		return 0
	}
	v, _ := b.spec.Value(rarity)
	return v
}

func (b *slayingBonus) SocketBonusTooltip(_ item.Stack, rarity *loot.Rarity) string {
	v, ok := b.spec.Value(rarity)
	if !ok {
		return gem.InvalidCategoryTooltip
	}
	return fmt.Sprintf("%+.1f damage vs %s", v, b.mob)
}
