package loot

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/adventure/internal/game/item"
)

// CurrencyDrop defines the range of currency a kill can drop.
type CurrencyDrop struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// ItemDrop defines a single item entry in a loot table with a drop chance.
type ItemDrop struct {
	ItemID string  `yaml:"item"`
	Chance float64 `yaml:"chance"`
	MinQty int     `yaml:"min_qty"`
	MaxQty int     `yaml:"max_qty"`
}

// Table defines the possible drops for one loot source.
type Table struct {
	Currency *CurrencyDrop `yaml:"currency"`
	Items    []ItemDrop    `yaml:"items"`
}

// Validate checks that the loot table satisfies its invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff all currency and item constraints hold;
// an empty loot table (no currency, no items) is valid.
func (t *Table) Validate() error {
	if t.Currency != nil {
		if t.Currency.Min < 0 {
			return fmt.Errorf("loot table: currency min must be >= 0, got %d", t.Currency.Min)
		}
		if t.Currency.Min > t.Currency.Max {
			return fmt.Errorf("loot table: currency min (%d) must be <= max (%d)", t.Currency.Min, t.Currency.Max)
		}
	}
	for i, drop := range t.Items {
		if drop.ItemID == "" {
			return fmt.Errorf("loot table: item[%d] must have a non-empty item id", i)
		}
		if drop.Chance <= 0 || drop.Chance > 1.0 {
			return fmt.Errorf("loot table: item[%d] chance must be in (0, 1.0], got %f", i, drop.Chance)
		}
		if drop.MinQty < 1 {
			return fmt.Errorf("loot table: item[%d] min_qty must be >= 1, got %d", i, drop.MinQty)
		}
		if drop.MinQty > drop.MaxQty {
			return fmt.Errorf("loot table: item[%d] min_qty (%d) must be <= max_qty (%d)", i, drop.MinQty, drop.MaxQty)
		}
	}
	return nil
}

// Result holds the generated loot from a single source.
type Result struct {
	Currency int
	Items    []item.Stack
}

// Context describes the circumstances of one loot generation, handed to gem
// bonuses that rewrite drop lists.
type Context struct {
	// SourceID identifies the killed entity or opened container.
	SourceID string
	// Luck raises drop chances for chance-gated bonus drops.
	Luck float64
	// Rand is the randomness for this generation; must be non-nil.
	Rand Source
}

// Generate rolls loot from the given Table using src.
//
// Precondition: t must have passed Validate(); src must be non-nil.
// Postcondition: Currency is in [Currency.Min, Currency.Max] if currency is
// set; each stack's Count is in [MinQty, MaxQty] for items that pass the
// chance roll.
func Generate(t Table, src Source) Result {
	var result Result

	if t.Currency != nil && t.Currency.Max > 0 {
		spread := t.Currency.Max - t.Currency.Min
		if spread == 0 {
			result.Currency = t.Currency.Min
		} else {
			result.Currency = t.Currency.Min + src.Intn(spread+1)
		}
	}

	for _, drop := range t.Items {
		if src.Float64() < drop.Chance {
			qty := drop.MinQty
			spread := drop.MaxQty - drop.MinQty
			if spread > 0 {
				qty += src.Intn(spread + 1)
			}
			result.Items = append(result.Items, item.Stack{
				DefID:      drop.ItemID,
				InstanceID: uuid.New().String(),
				Count:      qty,
				Tags:       map[string]string{},
			})
		}
	}

	return result
}
