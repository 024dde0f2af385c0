package splicer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ringSection   = "Show\n\tRarity Rare\n\tClass \"Rings\"\n"
	beltSection   = "Show\n\tRarity Rare\n\tClass \"Belts\"\n"
	amuletSection = "Show\n\tRarity Rare\n\tClass \"Amulets\"\n"
)

func TestBlock(t *testing.T) {
	expected := StartMarker + "\n\n" +
		ringSection + "\n" +
		beltSection + "\n" +
		EndMarker + "\n"

	assert.Equal(t, expected, Block([]string{ringSection, beltSection}))
	assert.Equal(t, StartMarker+"\n\n"+EndMarker+"\n", Block(nil))
}

func TestMergeWithoutMarkersAppends(t *testing.T) {
	docs := []string{
		"",
		"Show\n\tBaseType \"Mirror of Kalandra\"\n",
		"Hide\n\tRarity Normal",
		"# just a comment mentioning Chaos Recipe\n",
		StartMarker + "\nShow\n", // start marker alone is not a block
	}

	sections := []string{ringSection}
	for _, doc := range docs {
		assert.Equal(t, doc+Block(sections), Merge(doc, sections))
	}
}

func TestMergeReplacesExistingBlock(t *testing.T) {
	before := "Show\n\tBaseType \"Divine Orb\"\n\n"
	tail := "\nHide\n\tRarity Normal\n"
	doc := before + Block([]string{ringSection, beltSection}) + tail

	merged := Merge(doc, []string{amuletSection})

	assert.Equal(t, before+Block([]string{amuletSection})+tail, merged)
	assert.True(t, strings.HasPrefix(merged, before))
	assert.True(t, strings.HasSuffix(merged, tail))
	assert.NotContains(t, merged, `Class "Rings"`)
	assert.Equal(t, 1, strings.Count(merged, StartMarker))
	assert.Equal(t, 1, strings.Count(merged, EndMarker))
}

func TestMergeEndMarkerWithoutStart(t *testing.T) {
	doc := "Show\n\tRarity Unique\n" + EndMarker + "\nHide\n"

	merged := Merge(doc, []string{ringSection})

	assert.Equal(t, Block([]string{ringSection})+doc, merged)
}

func TestMergeUsesFirstEndMarker(t *testing.T) {
	first := Block([]string{ringSection})
	second := Block([]string{beltSection})
	doc := "head\n" + first + "middle\n" + second + "tail\n"

	merged := Merge(doc, []string{amuletSection})

	assert.Equal(t, "head\n"+Block([]string{amuletSection})+"middle\n"+second+"tail\n", merged)
}

func TestMergeIsIdempotent(t *testing.T) {
	docs := map[string]string{
		"empty":         "",
		"no markers":    "Show\n\tBaseType \"Exalted Orb\"\n",
		"no newline":    "Hide",
		"well formed":   "a\n" + Block([]string{ringSection}) + "b\n",
		"only end":      "a\n" + EndMarker + "\nb\n",
		"end then pair": "x\n" + EndMarker + "\n" + Block([]string{beltSection}),
		"two blocks":    Block([]string{ringSection}) + Block([]string{beltSection}),
	}

	sections := []string{amuletSection, ringSection}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			once := Merge(doc, sections)
			twice := Merge(once, sections)
			assert.Equal(t, once, twice)
		})
	}
}

func TestMergeEndToEnd(t *testing.T) {
	before := "# my filter\nShow\n\tBaseType \"Chaos Orb\"\n\n"
	tail := "\n# trailing rules\nHide\n"
	doc := before + Block([]string{ringSection, beltSection, amuletSection}) + tail

	merged := Merge(doc, []string{ringSection})

	head, rest, found := strings.Cut(merged, StartMarker)
	require.True(t, found)
	assert.Equal(t, before, head)

	inner, ok := Extract(merged)
	require.True(t, ok)
	assert.Equal(t, "\n"+ringSection+"\n", inner)

	_, after, found := strings.Cut(rest, EndMarker+"\n")
	require.True(t, found)
	assert.Equal(t, tail, after)
}

func TestExtract(t *testing.T) {
	_, ok := Extract("nothing here")
	assert.False(t, ok)

	_, ok = Extract(EndMarker + "\n")
	assert.False(t, ok)

	inner, ok := Extract("x\n" + Block([]string{beltSection}) + "y\n")
	require.True(t, ok)
	assert.Equal(t, "\n"+beltSection+"\n", inner)
}
