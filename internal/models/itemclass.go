package models

// ItemClass identifies a gear category that counts toward a chaos recipe set
type ItemClass int

const (
	Helmets ItemClass = iota
	BodyArmours
	Gloves
	Boots
	OneHandWeapons
	TwoHandWeapons
	Rings
	Amulets
	Belts
)

type itemClassInfo struct {
	key  string // config key under [classes]
	tag  string // tag reported by the set tracker
	name string
}

var itemClasses = [...]itemClassInfo{
	Helmets:        {key: "helmets", tag: "Helmets", name: "Helmets"},
	BodyArmours:    {key: "body_armours", tag: "BodyArmours", name: "Body Armours"},
	Gloves:         {key: "gloves", tag: "Gloves", name: "Gloves"},
	Boots:          {key: "boots", tag: "Boots", name: "Boots"},
	OneHandWeapons: {key: "one_hand_weapons", tag: "OneHandWeapons", name: "One Hand Weapons"},
	TwoHandWeapons: {key: "two_hand_weapons", tag: "TwoHandWeapons", name: "Two Hand Weapons"},
	Rings:          {key: "rings", tag: "Rings", name: "Rings"},
	Amulets:        {key: "amulets", tag: "Amulets", name: "Amulets"},
	Belts:          {key: "belts", tag: "Belts", name: "Belts"},
}

// AllItemClasses returns every item class in enumeration order
func AllItemClasses() []ItemClass {
	classes := make([]ItemClass, len(itemClasses))
	for i := range itemClasses {
		classes[i] = ItemClass(i)
	}
	return classes
}

// Valid reports whether c is one of the known item classes
func (c ItemClass) Valid() bool {
	return c >= 0 && int(c) < len(itemClasses)
}

// Key returns the config key for the class
func (c ItemClass) Key() string {
	if !c.Valid() {
		return ""
	}
	return itemClasses[c].key
}

// Tag returns the identifier the set tracker uses for the class
func (c ItemClass) Tag() string {
	if !c.Valid() {
		return ""
	}
	return itemClasses[c].tag
}

func (c ItemClass) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return itemClasses[c].name
}

// ItemClassByKey looks up a class by its config key
func ItemClassByKey(key string) (ItemClass, bool) {
	for i, info := range itemClasses {
		if info.key == key {
			return ItemClass(i), true
		}
	}
	return 0, false
}

// ClassSettings holds the resolved per-class table entry
type ClassSettings struct {
	Color        string `mapstructure:"color"`         // #AARRGGBB, empty = fallback red
	AlwaysActive bool   `mapstructure:"always_active"`
}
