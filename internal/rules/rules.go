package rules

import (
	"strconv"
	"strings"

	"github.com/bnema/chaos-recipe-filter/internal/models"
)

// ItemClassRule describes how one item class renders into filter text
type ItemClassRule interface {
	Class() models.ItemClass
	// IsStillMissing reports whether any of the class tags is in missing
	IsStillMissing(missing map[string]struct{}) bool
	AlwaysActive() bool
	// BaseTypeClause returns the class/base type line, or "" when the
	// section relies on rarity and item level only
	BaseTypeClause() string
	// ClassColor returns #AARRGGBB, or "" for the fallback color
	ClassColor() string
	// SetActiveTypes returns current with this class's item type set to active
	SetActiveTypes(current models.ActiveItemTypes, active bool) models.ActiveItemTypes
}

// classRule is the shared implementation behind every item class
type classRule struct {
	class        models.ItemClass
	tags         []string
	classNames   []string
	itemType     models.ItemType
	color        string
	alwaysActive bool
}

func (r *classRule) Class() models.ItemClass { return r.class }

func (r *classRule) AlwaysActive() bool { return r.alwaysActive }

func (r *classRule) ClassColor() string { return r.color }

func (r *classRule) IsStillMissing(missing map[string]struct{}) bool {
	for _, tag := range r.tags {
		if _, ok := missing[tag]; ok {
			return true
		}
	}
	return false
}

func (r *classRule) BaseTypeClause() string {
	if len(r.classNames) == 0 {
		return ""
	}
	quoted := make([]string, len(r.classNames))
	for i, name := range r.classNames {
		quoted[i] = strconv.Quote(name)
	}
	return "Class " + strings.Join(quoted, " ")
}

func (r *classRule) SetActiveTypes(current models.ActiveItemTypes, active bool) models.ActiveItemTypes {
	return current.With(r.itemType, active)
}

var weaponTags = []string{
	models.OneHandWeapons.Tag(),
	models.TwoHandWeapons.Tag(),
}

// newClassRule builds the rule for class with its built-in class names and tags
func newClassRule(class models.ItemClass, settings models.ClassSettings) *classRule {
	r := &classRule{
		class:        class,
		tags:         []string{class.Tag()},
		color:        settings.Color,
		alwaysActive: settings.AlwaysActive,
	}

	switch class {
	case models.Helmets:
		r.itemType = models.ItemTypeHelmet
		r.classNames = []string{"Helmets"}
	case models.BodyArmours:
		r.itemType = models.ItemTypeBody
		r.classNames = []string{"Body Armours"}
	case models.Gloves:
		r.itemType = models.ItemTypeGloves
		r.classNames = []string{"Gloves"}
	case models.Boots:
		r.itemType = models.ItemTypeBoots
		r.classNames = []string{"Boots"}
	case models.OneHandWeapons:
		// a set takes either two one-handers or one two-hander
		r.itemType = models.ItemTypeWeapon
		r.tags = weaponTags
		r.classNames = []string{
			"Daggers", "One Hand Axes", "One Hand Maces", "One Hand Swords",
			"Rune Daggers", "Sceptres", "Thrusting One Hand Swords", "Wands",
		}
	case models.TwoHandWeapons:
		r.itemType = models.ItemTypeWeapon
		r.tags = weaponTags
		r.classNames = []string{
			"Bows", "Staves", "Two Hand Axes", "Two Hand Maces", "Two Hand Swords", "Warstaves",
		}
	case models.Rings:
		r.itemType = models.ItemTypeRing
		r.classNames = []string{"Rings"}
	case models.Amulets:
		r.itemType = models.ItemTypeAmulet
		r.classNames = []string{"Amulets"}
	case models.Belts:
		r.itemType = models.ItemTypeBelt
		r.classNames = []string{"Belts"}
	}

	return r
}
