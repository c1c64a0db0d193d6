package item

// Slot identifies an equipment slot an item can occupy.
type Slot string

const (
	// SlotMainHand is the main-hand (weapon/tool) slot.
	SlotMainHand Slot = "mainhand"
	// SlotOffHand is the off-hand (shield/secondary) slot.
	SlotOffHand Slot = "offhand"
	// SlotHead is the helmet slot.
	SlotHead Slot = "head"
	// SlotChest is the chestplate slot.
	SlotChest Slot = "chest"
	// SlotLegs is the leggings slot.
	SlotLegs Slot = "legs"
	// SlotFeet is the boots slot.
	SlotFeet Slot = "feet"
)

// slotDisplayNames maps every slot identifier to its human-readable label.
var slotDisplayNames = map[Slot]string{
	SlotMainHand: "Main Hand",
	SlotOffHand:  "Off Hand",
	SlotHead:     "Head",
	SlotChest:    "Chest",
	SlotLegs:     "Legs",
	SlotFeet:     "Feet",
}

// SlotDisplayName returns the human-readable label for a slot identifier.
//
// Postcondition: returns the registered label, or string(slot) if not found.
func SlotDisplayName(slot Slot) string {
	if label, ok := slotDisplayNames[slot]; ok {
		return label
	}
	return string(slot)
}

// AllSlots returns every equipment slot in display order.
func AllSlots() []Slot {
	return []Slot{SlotMainHand, SlotOffHand, SlotHead, SlotChest, SlotLegs, SlotFeet}
}
