package item_test

import (
	"testing"

	"github.com/cory-johannsen/adventure/internal/game/item"
	"pgregory.net/rapid"
)

func TestNewStack_FreshInstanceIDs(t *testing.T) {
	d := &item.Def{ID: "iron_sword", Name: "Iron Sword", Kind: item.KindSword}
	a := item.NewStack(d)
	b := item.NewStack(d)
	if a.InstanceID == "" || a.InstanceID == b.InstanceID {
		t.Fatalf("expected distinct non-empty instance IDs, got %q and %q", a.InstanceID, b.InstanceID)
	}
	if a.Count != 1 {
		t.Fatalf("expected Count 1, got %d", a.Count)
	}
	if a.IsEmpty() {
		t.Fatal("fresh stack must not be empty")
	}
}

func TestStack_IsEmpty(t *testing.T) {
	if !(item.Stack{}).IsEmpty() {
		t.Fatal("zero stack must be empty")
	}
	if !(item.Stack{DefID: "x", Count: 0}).IsEmpty() {
		t.Fatal("zero-count stack must be empty")
	}
}

func TestStack_WithTag_DoesNotMutateReceiver(t *testing.T) {
	d := &item.Def{ID: "gem_item", Name: "Gem", Kind: item.KindGem}
	base := item.NewStack(d)
	tagged := base.WithTag("gem", "ballast")

	if _, ok := base.Tag("gem"); ok {
		t.Fatal("WithTag mutated the receiver's tags")
	}
	v, ok := tagged.Tag("gem")
	if !ok || v != "ballast" {
		t.Fatalf("expected tag gem=ballast, got %q (ok=%v)", v, ok)
	}
}

func TestProperty_WithTag_PreservesOtherTags(t *testing.T) {
	d := &item.Def{ID: "gem_item", Name: "Gem", Kind: item.KindGem}
	rapid.Check(t, func(rt *rapid.T) {
		keys := rapid.SliceOfNDistinct(
			rapid.StringMatching(`[a-z]{1,8}`), 1, 5, rapid.ID[string],
		).Draw(rt, "keys")

		s := item.NewStack(d)
		for _, k := range keys {
			s = s.WithTag(k, "v:"+k)
		}
		for _, k := range keys {
			v, ok := s.Tag(k)
			if !ok || v != "v:"+k {
				rt.Fatalf("tag %q lost or rewritten: got %q (ok=%v)", k, v, ok)
			}
		}
	})
}
