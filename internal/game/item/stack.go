package item

import "github.com/google/uuid"

// Stack is one concrete item instance. The definition it instantiates is
// referenced by DefID; per-instance state (socketed gem ids, rarity tags,
// enchantment data) lives in Tags.
//
// Stack has value semantics. WithTag returns a modified copy; the receiver is
// never mutated, so Stacks are safe to share.
type Stack struct {
	DefID      string
	InstanceID string
	Count      int
	Tags       map[string]string
}

// NewStack creates a single-count Stack of the given definition with a fresh
// instance ID.
//
// Precondition: d must not be nil.
// Postcondition: Count == 1; Tags is non-nil and empty.
func NewStack(d *Def) Stack {
	return Stack{
		DefID:      d.ID,
		InstanceID: uuid.New().String(),
		Count:      1,
		Tags:       map[string]string{},
	}
}

// IsEmpty reports whether the stack holds no items.
func (s Stack) IsEmpty() bool {
	return s.DefID == "" || s.Count <= 0
}

// Tag returns the tag value for key and whether it is set.
func (s Stack) Tag(key string) (string, bool) {
	v, ok := s.Tags[key]
	return v, ok
}

// WithTag returns a copy of s with key set to value. The receiver's tag map
// is copied, not shared.
//
// Postcondition: s is unchanged; the returned Stack has Tag(key) == (value, true).
func (s Stack) WithTag(key, value string) Stack {
	tags := make(map[string]string, len(s.Tags)+1)
	for k, v := range s.Tags {
		tags[k] = v
	}
	tags[key] = value
	s.Tags = tags
	return s
}

// EnchantmentID names an enchantment. Enchantment behaviour is owned by the
// host item system; gems only contribute levels.
type EnchantmentID string

const (
	EnchantSharpness  EnchantmentID = "sharpness"
	EnchantProtection EnchantmentID = "protection"
	EnchantUnbreaking EnchantmentID = "unbreaking"
	EnchantFortune    EnchantmentID = "fortune"
	EnchantPower      EnchantmentID = "power"
)
