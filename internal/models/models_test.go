package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemClasses(t *testing.T) {
	classes := AllItemClasses()
	require.Len(t, classes, 9)
	assert.Equal(t, Helmets, classes[0])
	assert.Equal(t, Belts, classes[len(classes)-1])

	for _, c := range classes {
		got, ok := ItemClassByKey(c.Key())
		assert.True(t, ok, c.String())
		assert.Equal(t, c, got)
		assert.NotEmpty(t, c.Tag())
	}

	_, ok := ItemClassByKey("flasks")
	assert.False(t, ok)
	assert.Equal(t, "Unknown", ItemClass(42).String())
	assert.Equal(t, "", ItemClass(-1).Tag())
}

func TestParseARGB(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Color
		wantErr  bool
	}{
		{name: "green", input: "#FF00FF00", expected: Color{R: 0, G: 255, B: 0, A: 255}},
		{name: "no hash", input: "80FF8000", expected: Color{R: 255, G: 128, B: 0, A: 128}},
		{name: "lower case", input: "#ff0000ff", expected: Color{R: 0, G: 0, B: 255, A: 255}},
		{name: "empty is fallback", input: "", expected: FallbackColor},
		{name: "rgb only", input: "#FF0000", wantErr: true},
		{name: "not hex", input: "#ZZ00FF00", wantErr: true},
		{name: "too long", input: "#FF00FF0000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseARGB(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestActiveItemTypes(t *testing.T) {
	var a ActiveItemTypes
	b := a.With(ItemTypeRing, true).With(ItemTypeWeapon, true)

	assert.Empty(t, a.Active())
	assert.Equal(t, []ItemType{ItemTypeWeapon, ItemTypeRing}, b.Active())
	assert.Equal(t, []ItemType{ItemTypeWeapon, ItemTypeRing}, b.Changed(a))
	assert.Empty(t, a.Changed(b))

	c := b.With(ItemTypeRing, false).With(ItemTypeBelt, true)
	assert.Equal(t, []ItemType{ItemTypeBelt}, c.Changed(b))

	assert.False(t, a.IsActive(ItemType(99)))
	assert.Equal(t, a, a.With(ItemType(99), true))
	assert.Equal(t, "chaos-item", ItemTypeChaosItem.String())
}

func TestStashTabIndices(t *testing.T) {
	tests := []struct {
		name     string
		indices  string
		expected []int
		wantErr  bool
	}{
		{name: "single", indices: "0", expected: []int{0}},
		{name: "spaces and duplicates", indices: " 3, 1 ,3,2", expected: []int{3, 1, 2}},
		{name: "empty", indices: "  ", wantErr: true},
		{name: "not a number", indices: "1,two", wantErr: true},
		{name: "negative", indices: "-1", wantErr: true},
		{name: "trailing comma", indices: "1,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Stash: StashConfig{Indices: tt.indices}}
			got, err := cfg.StashTabIndices()
			if tt.wantErr {
				var cfgErr *ConfigurationError
				require.True(t, errors.As(err, &cfgErr))
				assert.Equal(t, "stash.indices", cfgErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Storage: StorageConfig{Type: StorageLocal, Path: "Chaos.filter"}}
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown storage", func(c *Config) { c.Storage.Type = "s3" }, "storage.type"},
		{"local without path", func(c *Config) { c.Storage.Path = "" }, "storage.path"},
		{"remote without url", func(c *Config) { c.Storage.Type = StorageRemote }, "storage.url"},
		{"unknown class", func(c *Config) { c.Classes = map[string]ClassSettings{"quivers": {}} }, "classes.quivers"},
		{"bad stash indices", func(c *Config) { c.Stash = StashConfig{Manipulation: true, Indices: "x"} }, "stash.indices"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(cfg.Validate(), &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}

	// indices are only checked when stash manipulation is on
	cfg = valid()
	cfg.Stash.Indices = "x"
	assert.NoError(t, cfg.Validate())
}
