package combat

import "github.com/cory-johannsen/adventure/internal/game/world"

// Arrow is a projectile in flight, carrying enough state for gem hooks to
// adjust it after firing.
type Arrow struct {
	ShooterID string
	Damage    float64
	Crit      bool
	// Tags carries per-arrow state contributed by bonuses (e.g. an effect id
	// to apply on impact).
	Tags map[string]string
}

// HitKind classifies what a projectile struck.
type HitKind int

const (
	HitNone HitKind = iota
	HitBlock
	HitEntity
)

// HitResult records where a projectile landed.
type HitResult struct {
	Kind HitKind
	Pos  world.Pos
	// EntityID is set when Kind == HitEntity.
	EntityID string
}
