package rules

import (
	"github.com/bnema/chaos-recipe-filter/internal/models"
)

// DefaultSettings is the class table used for classes missing from the config
var DefaultSettings = map[models.ItemClass]models.ClassSettings{
	models.Helmets:        {Color: "#FFFF00FF"},
	models.BodyArmours:    {Color: "#FFFF0080"},
	models.Gloves:         {Color: "#FF00FFFF"},
	models.Boots:          {Color: "#FFFFFF00"},
	models.OneHandWeapons: {Color: "#FF6464FF"},
	models.TwoHandWeapons: {Color: "#FF6464FF"},
	models.Rings:          {Color: "#FFFF0000"},
	models.Amulets:        {Color: "#FFFF0000"},
	models.Belts:          {Color: "#FF00FF00"},
}

// Registry holds exactly one rule per item class
type Registry struct {
	rules []ItemClassRule
}

// NewRegistry resolves the class table from config entries keyed by class key
// (e.g. "rings"), falling back to DefaultSettings per class
func NewRegistry(settings map[string]models.ClassSettings) (*Registry, error) {
	resolved := make(map[models.ItemClass]models.ClassSettings, len(DefaultSettings))
	for class, s := range DefaultSettings {
		resolved[class] = s
	}

	for key, s := range settings {
		class, ok := models.ItemClassByKey(key)
		if !ok {
			return nil, models.NewConfigurationError("classes."+key, "unknown item class")
		}
		resolved[class] = s
	}

	classes := models.AllItemClasses()
	reg := &Registry{rules: make([]ItemClassRule, 0, len(classes))}
	for _, class := range classes {
		s := resolved[class]
		if _, err := models.ParseARGB(s.Color); err != nil {
			return nil, models.NewConfigurationError("classes."+class.Key()+".color", err.Error())
		}
		reg.rules = append(reg.rules, newClassRule(class, s))
	}

	return reg, nil
}

// Rules returns the rules in item class enumeration order
func (r *Registry) Rules() []ItemClassRule {
	return r.rules
}

// Rule returns the rule for class
func (r *Registry) Rule(class models.ItemClass) (ItemClassRule, bool) {
	if !class.Valid() || int(class) >= len(r.rules) {
		return nil, false
	}
	return r.rules[class], true
}
