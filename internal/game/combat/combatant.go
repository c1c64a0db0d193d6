// Package combat defines the combat-facing types consumed by gem bonus
// hooks: combatants, damage sources, mob types, and projectiles.
package combat

// Kind distinguishes player combatants from NPC combatants.
type Kind int

const (
	KindPlayer Kind = iota
	KindNPC
)

// Combatant represents one participant in combat — either a player or an NPC.
type Combatant struct {
	ID        string
	Kind      Kind
	Name      string
	MaxHP     int
	CurrentHP int
	Level     int
	// Luck feeds loot generation for drops this combatant causes.
	Luck float64
	// Mob classifies NPC combatants for slaying-style bonuses. Players are
	// always MobNone.
	Mob MobType
	// Dead is true when this combatant has been permanently killed.
	Dead bool
}

// IsPlayer reports whether this combatant is a player character.
// Postcondition: Returns true iff Kind == KindPlayer.
func (c *Combatant) IsPlayer() bool { return c.Kind == KindPlayer }

// IsDead reports whether this combatant is permanently dead.
//
// Postcondition: Returns true iff Dead is set or CurrentHP has reached 0.
func (c *Combatant) IsDead() bool {
	return c.Dead || c.CurrentHP <= 0
}

// ApplyDamage reduces CurrentHP by amount, flooring at zero.
// Precondition: amount must be >= 0.
// Postcondition: CurrentHP >= 0.
func (c *Combatant) ApplyDamage(amount int) {
	c.CurrentHP -= amount
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
}

// MobType classifies a creature for type-targeted damage bonuses.
type MobType string

const (
	MobNone      MobType = "none"
	MobUndead    MobType = "undead"
	MobArthropod MobType = "arthropod"
	MobIllager   MobType = "illager"
	MobWater     MobType = "water"
)
