package resolver

import (
	"testing"

	"github.com/bnema/chaos-recipe-filter/internal/generator"
	"github.com/bnema/chaos-recipe-filter/internal/models"
	"github.com/bnema/chaos-recipe-filter/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T, settings map[string]models.ClassSettings, flags models.FilterFlags) *Resolver {
	t.Helper()
	reg, err := rules.NewRegistry(settings)
	require.NoError(t, err)
	return New(reg, generator.New(flags, nil))
}

func TestResolveNothingMissing(t *testing.T) {
	r := newResolver(t, nil, models.FilterFlags{})
	res := r.Resolve(MissingSet(nil))

	assert.Empty(t, res.Sections)
	assert.Empty(t, res.Active.Active())
}

func TestResolveMissingClasses(t *testing.T) {
	r := newResolver(t, nil, models.FilterFlags{})
	res := r.Resolve(MissingSet([]string{"Rings", "Boots"}))

	// enumeration order, not input order
	assert.Equal(t, []models.ItemClass{models.Boots, models.Rings}, res.Classes)
	require.Len(t, res.Sections, 2)
	assert.Contains(t, res.Sections[0], `Class "Boots"`)
	assert.Contains(t, res.Sections[1], `Class "Rings"`)
	assert.Equal(t, []models.ItemType{models.ItemTypeBoots, models.ItemTypeRing}, res.Active.Active())
}

func TestResolveWeaponTags(t *testing.T) {
	r := newResolver(t, nil, models.FilterFlags{})
	res := r.Resolve(MissingSet([]string{"TwoHandWeapons"}))

	assert.Equal(t, []models.ItemClass{models.OneHandWeapons, models.TwoHandWeapons}, res.Classes)
	assert.True(t, res.Active.IsActive(models.ItemTypeWeapon))
}

func TestResolveAlwaysActive(t *testing.T) {
	settings := map[string]models.ClassSettings{
		"amulets": {AlwaysActive: true},
		"belts":   {AlwaysActive: true},
	}
	r := newResolver(t, settings, models.FilterFlags{})

	for _, missing := range [][]string{nil, {"Rings"}, {"Amulets", "Belts", "Helmets"}} {
		res := r.Resolve(MissingSet(missing))

		count := map[models.ItemClass]int{}
		for _, c := range res.Classes {
			count[c]++
		}
		assert.Equal(t, 1, count[models.Amulets], "missing=%v", missing)
		assert.Equal(t, 1, count[models.Belts], "missing=%v", missing)
		assert.True(t, res.Active.IsActive(models.ItemTypeAmulet))
		assert.True(t, res.Active.IsActive(models.ItemTypeBelt))
	}
}

func TestResolveFlagMatchesMissing(t *testing.T) {
	r := newResolver(t, nil, models.FilterFlags{})
	reg, err := rules.NewRegistry(nil)
	require.NoError(t, err)

	missing := MissingSet([]string{"Helmets", "Gloves", "Amulets"})
	res := r.Resolve(missing)

	produced := map[models.ItemClass]bool{}
	for _, c := range res.Classes {
		produced[c] = true
	}

	for _, rule := range reg.Rules() {
		still := rule.IsStillMissing(missing)
		assert.Equal(t, still, produced[rule.Class()], rule.Class().String())
		assert.Equal(t, still, res.Active.IsActive(typeOf(rule)), rule.Class().String())
	}
}

func TestResolveRecipeTracking(t *testing.T) {
	r := newResolver(t, map[string]models.ClassSettings{"rings": {AlwaysActive: true}}, models.FilterFlags{RecipeTracking: true})
	res := r.Resolve(MissingSet([]string{"Helmets"}))

	require.NotEmpty(t, res.Sections)
	for _, s := range res.Sections {
		assert.Contains(t, s, "ItemLevel >= 60")
		assert.NotContains(t, s, "ItemLevel <= 74")
	}
}

func TestResolveIsReproducible(t *testing.T) {
	r := newResolver(t, nil, models.FilterFlags{Icons: true})
	missing := MissingSet([]string{"Belts", "BodyArmours", "OneHandWeapons"})

	assert.Equal(t, r.Resolve(missing), r.Resolve(missing))
}

// typeOf finds the item type a rule toggles
func typeOf(rule rules.ItemClassRule) models.ItemType {
	active := rule.SetActiveTypes(models.ActiveItemTypes{}, true).Active()
	return active[0]
}
