package loot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/loot"
)

func TestCategoryFor_Classification(t *testing.T) {
	cases := []struct {
		kind string
		want loot.Category
	}{
		{item.KindSword, loot.CategoryMeleeWeapon},
		{item.KindAxe, loot.CategoryMeleeWeapon},
		{item.KindTrident, loot.CategoryTrident},
		{item.KindBow, loot.CategoryBow},
		{item.KindCrossbow, loot.CategoryCrossbow},
		{item.KindPickaxe, loot.CategoryBreaker},
		{item.KindShield, loot.CategoryShield},
		{item.KindHelmet, loot.CategoryHelmet},
		{item.KindChestplate, loot.CategoryChestplate},
		{item.KindLeggings, loot.CategoryLeggings},
		{item.KindBoots, loot.CategoryBoots},
		{item.KindGem, loot.CategoryNone},
		{item.KindJunk, loot.CategoryNone},
	}
	for _, tc := range cases {
		d := &item.Def{ID: "x", Name: "X", Kind: tc.kind}
		assert.Equal(t, tc.want, loot.CategoryFor(d), "kind %s", tc.kind)
	}
}

func TestCategoryFor_NilDef(t *testing.T) {
	assert.Equal(t, loot.CategoryNone, loot.CategoryFor(nil))
}

func TestCategory_Slots(t *testing.T) {
	assert.Equal(t, []item.Slot{item.SlotMainHand}, loot.CategoryMeleeWeapon.Slots())
	assert.Equal(t, []item.Slot{item.SlotMainHand, item.SlotOffHand}, loot.CategoryBow.Slots())
	assert.Equal(t, []item.Slot{item.SlotOffHand}, loot.CategoryShield.Slots())
	assert.Equal(t, []item.Slot{item.SlotHead}, loot.CategoryHelmet.Slots())
	assert.Empty(t, loot.CategoryNone.Slots())
}

func TestParseCategory_RoundTrip(t *testing.T) {
	for _, c := range []loot.Category{
		loot.CategoryNone, loot.CategoryMeleeWeapon, loot.CategoryTrident,
		loot.CategoryBow, loot.CategoryCrossbow, loot.CategoryBreaker,
		loot.CategoryShield, loot.CategoryHelmet, loot.CategoryChestplate,
		loot.CategoryLeggings, loot.CategoryBoots,
	} {
		got, ok := loot.ParseCategory(c.String())
		assert.True(t, ok, "category %s must parse", c)
		assert.Equal(t, c, got)
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	_, ok := loot.ParseCategory("wand")
	assert.False(t, ok)
}
