package models

// ItemType is the coarse category reported back to the overlay
type ItemType int

const (
	ItemTypeHelmet ItemType = iota
	ItemTypeBody
	ItemTypeGloves
	ItemTypeBoots
	ItemTypeWeapon
	ItemTypeRing
	ItemTypeAmulet
	ItemTypeBelt
	ItemTypeChaosItem
)

var itemTypeNames = [...]string{
	ItemTypeHelmet:    "helmet",
	ItemTypeBody:      "body",
	ItemTypeGloves:    "gloves",
	ItemTypeBoots:     "boots",
	ItemTypeWeapon:    "weapon",
	ItemTypeRing:      "ring",
	ItemTypeAmulet:    "amulet",
	ItemTypeBelt:      "belt",
	ItemTypeChaosItem: "chaos-item",
}

func (t ItemType) String() string {
	if t < 0 || int(t) >= len(itemTypeNames) {
		return "unknown"
	}
	return itemTypeNames[t]
}

// ActiveItemTypes records which coarse item types currently have a filter section.
// It is a value type: every update returns a copy.
type ActiveItemTypes struct {
	flags [len(itemTypeNames)]bool
}

// With returns a copy with the flag for t set to active
func (a ActiveItemTypes) With(t ItemType, active bool) ActiveItemTypes {
	if t < 0 || int(t) >= len(a.flags) {
		return a
	}
	a.flags[t] = active
	return a
}

// IsActive reports the flag for t
func (a ActiveItemTypes) IsActive(t ItemType) bool {
	if t < 0 || int(t) >= len(a.flags) {
		return false
	}
	return a.flags[t]
}

// Active returns the active types in declaration order
func (a ActiveItemTypes) Active() []ItemType {
	var active []ItemType
	for i, on := range a.flags {
		if on {
			active = append(active, ItemType(i))
		}
	}
	return active
}

// Changed returns the types that are active in a but were not in prev.
// The overlay uses this to decide whether to play a notification.
func (a ActiveItemTypes) Changed(prev ActiveItemTypes) []ItemType {
	var changed []ItemType
	for i, on := range a.flags {
		if on && !prev.flags[i] {
			changed = append(changed, ItemType(i))
		}
	}
	return changed
}
