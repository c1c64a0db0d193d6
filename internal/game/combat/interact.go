package combat

import (
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// UseContext carries the state of an item-use-on-block interaction.
type UseContext struct {
	User  *Combatant
	Stack item.Stack
	Pos   world.Pos
	Block world.Block
}

// InteractionResult is the outcome of an item-use interaction.
type InteractionResult int

const (
	// InteractPass lets the engine continue with default behaviour.
	InteractPass InteractionResult = iota
	// InteractSuccess consumes the interaction with an arm swing.
	InteractSuccess
	// InteractConsume consumes the interaction without an arm swing.
	InteractConsume
	// InteractFail cancels the interaction.
	InteractFail
)

// String returns a human-readable result label.
func (r InteractionResult) String() string {
	switch r {
	case InteractPass:
		return "pass"
	case InteractSuccess:
		return "success"
	case InteractConsume:
		return "consume"
	case InteractFail:
		return "fail"
	default:
		return "unknown"
	}
}
