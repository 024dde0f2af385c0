package resolver

import (
	"github.com/bnema/chaos-recipe-filter/internal/generator"
	"github.com/bnema/chaos-recipe-filter/internal/models"
	"github.com/bnema/chaos-recipe-filter/internal/rules"
)

// Resolver decides which item classes get a section
type Resolver struct {
	registry  *rules.Registry
	generator *generator.Generator
}

// Result is the outcome of one resolution run
type Result struct {
	Active   models.ActiveItemTypes
	Sections []string
	Classes  []models.ItemClass // class of each section, same order
}

// New creates a resolver
func New(registry *rules.Registry, gen *generator.Generator) *Resolver {
	return &Resolver{registry: registry, generator: gen}
}

// Generator returns the section generator in use
func (r *Resolver) Generator() *generator.Generator {
	return r.generator
}

// Resolve walks every item class in enumeration order. A class gets a section
// when it is always active or still missing from the current set.
func (r *Resolver) Resolve(missing map[string]struct{}) Result {
	var res Result

	for _, rule := range r.registry.Rules() {
		stillMissing := rule.IsStillMissing(missing)

		if rule.AlwaysActive() || stillMissing {
			res.Sections = append(res.Sections, r.generator.Generate(rule))
			res.Classes = append(res.Classes, rule.Class())
			res.Active = rule.SetActiveTypes(res.Active, true)
		} else {
			res.Active = rule.SetActiveTypes(res.Active, false)
		}
	}

	return res
}

// MissingSet builds the lookup set Resolve expects
func MissingSet(classes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		set[c] = struct{}{}
	}
	return set
}
