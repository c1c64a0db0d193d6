// Package attribute defines the attribute identifiers and modifier model
// shared by equipment and gem bonuses.
package attribute

import "github.com/google/uuid"

// ID names a modifiable entity attribute.
type ID string

const (
	AttackDamage   ID = "attack_damage"
	AttackSpeed    ID = "attack_speed"
	Armor          ID = "armor"
	ArmorToughness ID = "armor_toughness"
	MoveSpeed      ID = "move_speed"
	MaxHealth      ID = "max_health"
	Luck           ID = "luck"
)

// Operation determines how a Modifier's Amount is combined with the base value.
type Operation int

const (
	// OpAdd adds Amount to the base value.
	OpAdd Operation = iota
	// OpMultiplyBase adds base*Amount after all OpAdd modifiers.
	OpMultiplyBase
	// OpMultiplyTotal multiplies the running total by 1+Amount.
	OpMultiplyTotal
)

// String returns the content-file spelling of the operation.
func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpMultiplyBase:
		return "multiply_base"
	case OpMultiplyTotal:
		return "multiply_total"
	default:
		return "unknown"
	}
}

// ParseOperation converts a content-file spelling into an Operation.
//
// Postcondition: ok is false iff s is not a known operation name.
func ParseOperation(s string) (Operation, bool) {
	switch s {
	case "add", "":
		return OpAdd, true
	case "multiply_base":
		return OpMultiplyBase, true
	case "multiply_total":
		return OpMultiplyTotal, true
	default:
		return OpAdd, false
	}
}

// Modifier is a single named adjustment to one attribute.
type Modifier struct {
	ID     uuid.UUID
	Name   string
	Amount float64
	Op     Operation
}

// Collector receives modifiers contributed by an equipment or gem source.
type Collector func(attr ID, mod Modifier)

// Map accumulates collected modifiers per attribute. Useful for aggregation
// and in tests that assert on contributed modifiers.
type Map map[ID][]Modifier

// Collect appends mod under attr. Usable directly as a Collector:
//
//	m := attribute.Map{}
//	inst.AddModifiers(slot, m.Collect)
func (m Map) Collect(attr ID, mod Modifier) {
	m[attr] = append(m[attr], mod)
}

// Total folds all modifiers for attr over base in operation order:
// adds first, then base multipliers, then total multipliers.
//
// Postcondition: Returns base when no modifiers are present for attr.
func (m Map) Total(attr ID, base float64) float64 {
	mods := m[attr]
	total := base
	for _, mod := range mods {
		if mod.Op == OpAdd {
			total += mod.Amount
		}
	}
	for _, mod := range mods {
		if mod.Op == OpMultiplyBase {
			total += base * mod.Amount
		}
	}
	for _, mod := range mods {
		if mod.Op == OpMultiplyTotal {
			total *= 1 + mod.Amount
		}
	}
	return total
}
