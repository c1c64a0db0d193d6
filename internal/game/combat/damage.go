package combat

// DamageKind is the broad classification of a damage source.
type DamageKind string

const (
	DamageMelee      DamageKind = "melee"
	DamageProjectile DamageKind = "projectile"
	DamageMagic      DamageKind = "magic"
	DamageFire       DamageKind = "fire"
	DamageFall       DamageKind = "fall"
	DamageGeneric    DamageKind = "generic"
)

// DamageSource describes the origin of one instance of incoming damage.
type DamageSource struct {
	Kind DamageKind
	// AttackerID is the combatant responsible, empty for environmental damage.
	AttackerID string
	// Indirect is true when the damage was not dealt by a direct hit
	// (projectiles, area effects). Warding-style protections are weaker
	// against indirect sources.
	Indirect bool
}

// MeleeSource returns a direct melee DamageSource attributed to attackerID.
func MeleeSource(attackerID string) DamageSource {
	return DamageSource{Kind: DamageMelee, AttackerID: attackerID}
}

// ProjectileSource returns an indirect projectile DamageSource attributed to
// shooterID.
func ProjectileSource(shooterID string) DamageSource {
	return DamageSource{Kind: DamageProjectile, AttackerID: shooterID, Indirect: true}
}
