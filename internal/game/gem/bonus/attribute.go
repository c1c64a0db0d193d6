package bonus

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/adventure/internal/game/attribute"
	"github.com/cory-johannsen/adventure/internal/game/gem"
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/loot"
)

// attributeBonus contributes one attribute modifier per rarity tier while
// the host item is equipped.
type attributeBonus struct {
	gem.NoopBonus
	spec  gem.BonusSpec
	modID uuid.UUID
	attr  attribute.ID
	op    attribute.Operation
	name  string
}

func newAttribute(g *gem.Gem, spec gem.BonusSpec) (gem.Bonus, error) {
	if spec.Attribute == "" {
		return nil, fmt.Errorf("attribute bonus requires an attribute")
	}
	op, ok := attribute.ParseOperation(spec.Operation)
	if !ok {
		return nil, fmt.Errorf("attribute bonus: unknown operation %q", spec.Operation)
	}
	name := fmt.Sprintf("gem/%s/%s", g.ID, spec.Attribute)
	return &attributeBonus{
		spec: spec,
		// Stable per (gem, attribute) so re-equipping replaces rather than
		// stacks the modifier.
		modID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
		attr:  attribute.ID(spec.Attribute),
		op:    op,
		name:  name,
	}, nil
}

func (b *attributeBonus) AddModifiers(_ item.Stack, rarity *loot.Rarity, collect attribute.Collector) {
	v, ok := b.spec.Value(rarity)
	if !ok {
		return
	}
	collect(b.attr, attribute.Modifier{
		ID:     b.modID,
		Name:   b.name,
		Amount: v,
		Op:     b.op,
	})
}

func (b *attributeBonus) SocketBonusTooltip(_ item.Stack, rarity *loot.Rarity) string {
	v, ok := b.spec.Value(rarity)
	if !ok {
		return gem.InvalidCategoryTooltip
	}
	switch b.op {
	case attribute.OpAdd:
		return fmt.Sprintf("%+.1f %s", v, b.attr)
	default:
		return fmt.Sprintf("%+.0f%% %s", v*100, b.attr)
	}
}
