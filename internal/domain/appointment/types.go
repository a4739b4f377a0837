package appointment

import "errors"

var ErrInvalidSlot = errors.New("slot must be one of 09:00, 10:00, 11:00, 14:00, 15:00, 16:00")

// Slot is one of the fixed bookable times of a day.
type Slot string

const (
	Slot0900 Slot = "09:00"
	Slot1000 Slot = "10:00"
	Slot1100 Slot = "11:00"
	Slot1400 Slot = "14:00"
	Slot1500 Slot = "15:00"
	Slot1600 Slot = "16:00"
)

var canonicalSlots = [...]Slot{Slot0900, Slot1000, Slot1100, Slot1400, Slot1500, Slot1600}

// Slots returns the daily slots in canonical order.
func Slots() []Slot {
	out := make([]Slot, len(canonicalSlots))
	copy(out, canonicalSlots[:])
	return out
}

func ParseSlot(s string) (Slot, error) {
	slot := Slot(s)
	if !slot.IsValid() {
		return "", ErrInvalidSlot
	}
	return slot, nil
}

func (s Slot) String() string {
	return string(s)
}

func (s Slot) IsValid() bool {
	return s.index() >= 0
}

func (s Slot) index() int {
	for i, c := range canonicalSlots {
		if c == s {
			return i
		}
	}
	return -1
}

// Before reports whether s comes earlier than other in the day.
func (s Slot) Before(other Slot) bool {
	return s.index() < other.index()
}

// AvailableSlots returns the canonical slots not present in taken, in canonical order.
// Unknown values in taken are ignored.
func AvailableSlots(taken []Slot) []Slot {
	var held [len(canonicalSlots)]bool
	for _, t := range taken {
		if i := t.index(); i >= 0 {
			held[i] = true
		}
	}

	free := make([]Slot, 0, len(canonicalSlots))
	for i, s := range canonicalSlots {
		if !held[i] {
			free = append(free, s)
		}
	}
	return free
}
