package generator

import (
	"fmt"
	"strings"

	"github.com/bnema/chaos-recipe-filter/internal/models"
	"github.com/bnema/chaos-recipe-filter/internal/rules"
)

// Newline terminates every line of a generated section
const Newline = "\n"

const indent = "\t"

// Generator builds filter sections for item classes
type Generator struct {
	flags models.FilterFlags
	style []string
	stats Stats
}

// Stats tracks generation statistics
type Stats struct {
	Generated      int
	ColorFallbacks int // undecodable class colors replaced by the fallback
}

// New creates a generator. style is appended verbatim to every section and
// is not re-read; build a new generator to pick up style changes.
func New(flags models.FilterFlags, style []string) *Generator {
	return &Generator{
		flags: flags,
		style: append([]string(nil), style...),
	}
}

// Stats returns generation statistics
func (g *Generator) Stats() Stats {
	return g.stats
}

// Flags returns the flags the generator was built with
func (g *Generator) Flags() models.FilterFlags {
	return g.flags
}

// Generate renders the Show block for one item class
func (g *Generator) Generate(rule rules.ItemClassRule) string {
	var sb strings.Builder

	sb.WriteString("Show" + Newline)
	writeLine(&sb, "HasInfluence None")
	writeLine(&sb, "Rarity Rare")

	if !g.flags.IncludeIdentified {
		writeLine(&sb, "Identified False")
	}

	switch {
	case g.flags.RecipeTracking:
		writeLine(&sb, "ItemLevel >= 60")
	case !rule.AlwaysActive():
		writeLine(&sb, "ItemLevel >= 60")
		writeLine(&sb, "ItemLevel <= 74")
	default:
		writeLine(&sb, "ItemLevel >= 75")
	}

	if clause := rule.BaseTypeClause(); clause != "" {
		writeLine(&sb, clause)
	}

	writeLine(&sb, backgroundColor(g.color(rule)))

	for _, line := range g.style {
		writeLine(&sb, line)
	}

	if g.flags.Icons {
		writeLine(&sb, "MinimapIcon 2 White Star")
	}

	g.stats.Generated++
	return sb.String()
}

// color decodes the rule color, counting and replacing anything undecodable
func (g *Generator) color(rule rules.ItemClassRule) models.Color {
	c, err := models.ParseARGB(rule.ClassColor())
	if err != nil {
		g.stats.ColorFallbacks++
		return models.FallbackColor
	}
	return c
}

// backgroundColor emits the channels as R G B A
func backgroundColor(c models.Color) string {
	return fmt.Sprintf("SetBackgroundColor %d %d %d %d", c.R, c.G, c.B, c.A)
}

func writeLine(sb *strings.Builder, line string) {
	sb.WriteString(indent)
	sb.WriteString(line)
	sb.WriteString(Newline)
}
