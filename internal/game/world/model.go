// Package world holds the minimal block-level world model the gem hook
// surface needs. World simulation itself is owned by the host engine.
package world

import "fmt"

// Pos is an integer block position.
type Pos struct {
	X, Y, Z int
}

// String returns "(x, y, z)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// Level identifies the dimension a block event happened in. Hooks receive it
// alongside the position so a bonus can act differently per dimension.
type Level struct {
	// ID is the dimension identifier, e.g. "overworld".
	ID string
}

// Block is the state of one block at a position.
type Block struct {
	// ID is the block type identifier, e.g. "stone".
	ID string
	// Hardness is the base break-time multiplier; 0 breaks instantly.
	Hardness float64
}
