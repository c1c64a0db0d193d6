package loot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/adventure/internal/game/loot"
)

func testRarities(t *testing.T) *loot.Rarities {
	t.Helper()
	rs := loot.NewRarities()
	require.NoError(t, rs.Register(&loot.Rarity{ID: "common", Name: "Common", Weight: 70, Ordinal: 0}))
	require.NoError(t, rs.Register(&loot.Rarity{ID: "rare", Name: "Rare", Weight: 25, Ordinal: 1}))
	require.NoError(t, rs.Register(&loot.Rarity{ID: "epic", Name: "Epic", Weight: 5, Ordinal: 2}))
	return rs
}

func TestRarity_Validate(t *testing.T) {
	assert.NoError(t, (&loot.Rarity{ID: "common", Name: "Common"}).Validate())
	assert.Error(t, (&loot.Rarity{Name: "Common"}).Validate())
	assert.Error(t, (&loot.Rarity{ID: "common"}).Validate())
	assert.Error(t, (&loot.Rarity{ID: "common", Name: "Common", Weight: -1}).Validate())
	assert.Error(t, (&loot.Rarity{ID: "common", Name: "Common", Ordinal: -1}).Validate())
}

func TestRarities_RejectsDuplicate(t *testing.T) {
	rs := loot.NewRarities()
	require.NoError(t, rs.Register(&loot.Rarity{ID: "common", Name: "Common"}))
	assert.Error(t, rs.Register(&loot.Rarity{ID: "common", Name: "Common Again"}))
}

func TestRarities_Pick_OnlyRegistered(t *testing.T) {
	rs := testRarities(t)
	src := loot.NewSource(42)
	for i := 0; i < 200; i++ {
		r := rs.Pick(src)
		require.NotNil(t, r)
		_, ok := rs.Get(r.ID)
		assert.True(t, ok, "picked unregistered rarity %q", r.ID)
	}
}

func TestRarities_Pick_ZeroWeightFallsBackToLowestOrdinal(t *testing.T) {
	rs := loot.NewRarities()
	require.NoError(t, rs.Register(&loot.Rarity{ID: "epic", Name: "Epic", Weight: 0, Ordinal: 2}))
	require.NoError(t, rs.Register(&loot.Rarity{ID: "common", Name: "Common", Weight: 0, Ordinal: 0}))

	r := rs.Pick(loot.NewSource(1))
	require.NotNil(t, r)
	assert.Equal(t, "common", r.ID)
}

func TestRarities_Pick_EmptyRegistry(t *testing.T) {
	assert.Nil(t, loot.NewRarities().Pick(loot.NewSource(1)))
}

func TestRarities_Pick_RespectsWeights(t *testing.T) {
	rs := testRarities(t)
	src := loot.NewSource(7)
	counts := map[string]int{}
	for i := 0; i < 5000; i++ {
		counts[rs.Pick(src).ID]++
	}
	// 70/25/5 split: exact proportions vary, but the ordering must hold
	// decisively over 5000 picks.
	assert.Greater(t, counts["common"], counts["rare"])
	assert.Greater(t, counts["rare"], counts["epic"])
	assert.Greater(t, counts["epic"], 0)
}

func TestRarities_Pick_DeterministicForSeed(t *testing.T) {
	first := testRarities(t)
	second := testRarities(t)
	srcA := loot.NewSource(11)
	srcB := loot.NewSource(11)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first.Pick(srcA).ID, second.Pick(srcB).ID)
	}
}

func TestLoadRarities_LoadsYAML(t *testing.T) {
	dir := t.TempDir()
	content := `id: rare
name: Rare
color: "#5555ff"
weight: 25
ordinal: 1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rare.yaml"), []byte(content), 0644))

	rs, err := loot.LoadRarities(dir)
	require.NoError(t, err)
	r, ok := rs.Get("rare")
	require.True(t, ok)
	assert.Equal(t, "Rare", r.Name)
	assert.Equal(t, 25, r.Weight)
}

func TestLoadRarities_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	content := `id: rare
name: Rare
shine: blinding
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rare.yaml"), []byte(content), 0644))

	_, err := loot.LoadRarities(dir)
	assert.Error(t, err)
}
