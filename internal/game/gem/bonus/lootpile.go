package bonus

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/adventure/internal/game/gem"
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/loot"
)

// lootPileBonus appends chance-gated bonus drops to generated loot. The
// per-rarity value is the number of bonus stacks rolled; the context's Luck
// scales the configured chance.
type lootPileBonus struct {
	gem.NoopBonus
	spec gem.BonusSpec
}

func newLootPile(_ *gem.Gem, spec gem.BonusSpec) (gem.Bonus, error) {
	if spec.Item == "" {
		return nil, fmt.Errorf("loot bonus requires an item")
	}
	if spec.Chance <= 0 || spec.Chance > 1 {
		return nil, fmt.Errorf("loot bonus: chance must be in (0, 1], got %f", spec.Chance)
	}
	return &lootPileBonus{spec: spec}, nil
}

func (b *lootPileBonus) ModifyLoot(_ item.Stack, rarity *loot.Rarity, drops []item.Stack, ctx loot.Context) []item.Stack {
	if ctx.Rand == nil {
		return drops
	}
	rolls, ok := b.spec.Value(rarity)
	if !ok {
		return drops
	}
	chance := b.spec.Chance * (1 + ctx.Luck)
	if chance > 1 {
		chance = 1
	}
	for n := 0; n < int(rolls); n++ {
		if ctx.Rand.Float64() < chance {
			drops = append(drops, item.Stack{
				DefID:      b.spec.Item,
				InstanceID: uuid.New().String(),
				Count:      1,
				Tags:       map[string]string{},
			})
		}
	}
	return drops
}

func (b *lootPileBonus) SocketBonusTooltip(_ item.Stack, rarity *loot.Rarity) string {
	rolls, ok := b.spec.Value(rarity)
	if !ok {
		return gem.InvalidCategoryTooltip
	}
	return fmt.Sprintf("%.0f%% chance of %d bonus %s", b.spec.Chance*100, int(rolls), b.spec.Item)
}
