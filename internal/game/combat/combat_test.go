package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/adventure/internal/game/combat"
)

func TestCombatant_ApplyDamage_FloorsAtZero(t *testing.T) {
	c := &combat.Combatant{ID: "orc", Kind: combat.KindNPC, MaxHP: 10, CurrentHP: 10}
	c.ApplyDamage(4)
	assert.Equal(t, 6, c.CurrentHP)
	assert.False(t, c.IsDead())

	c.ApplyDamage(100)
	assert.Equal(t, 0, c.CurrentHP)
	assert.True(t, c.IsDead())
}

func TestCombatant_DeadFlag(t *testing.T) {
	c := &combat.Combatant{ID: "ghost", CurrentHP: 5, Dead: true}
	assert.True(t, c.IsDead())
}

func TestCombatant_IsPlayer(t *testing.T) {
	assert.True(t, (&combat.Combatant{Kind: combat.KindPlayer}).IsPlayer())
	assert.False(t, (&combat.Combatant{Kind: combat.KindNPC}).IsPlayer())
}

func TestDamageSources(t *testing.T) {
	melee := combat.MeleeSource("attacker")
	assert.Equal(t, "attacker", melee.AttackerID)
	assert.False(t, melee.Indirect)

	proj := combat.ProjectileSource("shooter")
	assert.Equal(t, "shooter", proj.AttackerID)
	assert.True(t, proj.Indirect)
}
