package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/chaos-recipe-filter/internal/resolver"
	"github.com/bnema/chaos-recipe-filter/internal/rules"
	"github.com/bnema/chaos-recipe-filter/internal/splicer"
	"github.com/bnema/chaos-recipe-filter/internal/tracker"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the chaos recipe block in the loot filter",
	RunE:  runGenerate,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the generated block without touching the loot filter",
	RunE:  runPreview,
}

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List item classes and their filter settings",
	RunE:  runClasses,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config and style files",
	RunE:  runInit,
}

func init() {
	for _, cmd := range []*cobra.Command{generateCmd, previewCmd, watchCmd} {
		cmd.Flags().String("state", "", "set tracker state file (default: tracker.state_file)")
	}
	for _, cmd := range []*cobra.Command{generateCmd, previewCmd} {
		cmd.Flags().StringSlice("missing", nil, "missing item classes, e.g. Rings,Boots (overrides the state file)")
		cmd.Flags().Bool("chaos-missing", false, "the set still needs a chaos-level item")
	}

	rootCmd.AddCommand(generateCmd, previewCmd, watchCmd, classesCmd, initCmd)
}

// currentState reads missing classes from flags, falling back to the state file
func currentState(cmd *cobra.Command) (tracker.State, error) {
	if cmd.Flags().Changed("missing") {
		missing, _ := cmd.Flags().GetStringSlice("missing")
		chaos, _ := cmd.Flags().GetBool("chaos-missing")
		return tracker.State{MissingItemClasses: missing, MissingChaosItem: chaos}, nil
	}
	return tracker.LoadState(statePath(cmd))
}

func statePath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("state"); path != "" {
		return path
	}
	return cfg.Tracker.StateFile
}

func runGenerate(cmd *cobra.Command, args []string) error {
	state, err := currentState(cmd)
	if err != nil {
		return err
	}

	u, err := newUpdater(cfg)
	if err != nil {
		return err
	}

	out, err := u.Run(context.Background(), state.MissingItemClasses, state.MissingChaosItem)
	if err != nil {
		return err
	}

	fmt.Println(renderActive(out.Result.Active))
	if out.Written {
		fmt.Printf("Updated loot filter with %d sections\n", len(out.Result.Sections))
	} else {
		fmt.Printf("Loot filter not written: %s\n", out.Reason)
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	state, err := currentState(cmd)
	if err != nil {
		return err
	}

	r, err := newResolver(cfg)
	if err != nil {
		return err
	}

	res := r.Resolve(resolver.MissingSet(state.MissingItemClasses))
	fmt.Print(splicer.Block(res.Sections))
	fmt.Fprintln(os.Stderr, renderActive(res.Active))
	return nil
}

func runClasses(cmd *cobra.Command, args []string) error {
	reg, err := rules.NewRegistry(cfg.Classes)
	if err != nil {
		return err
	}

	fmt.Print("Item classes:\n\n")
	for _, rule := range reg.Rules() {
		class := rule.Class()
		mode := "when missing"
		if rule.AlwaysActive() {
			mode = "always"
		}
		color := rule.ClassColor()
		if color == "" {
			color = "(fallback red)"
		}
		fmt.Printf("  %-18s %s\n", class.String(), renderSwatch(rule.ClassColor()))
		fmt.Printf("         key=%s tag=%s color=%s shown=%s\n", class.Key(), class.Tag(), color, mode)
		if clause := rule.BaseTypeClause(); clause != "" {
			fmt.Printf("         %s\n", clause)
		}
		fmt.Println()
	}
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := "./configs/chaos_recipe.toml"
	if cfgFile != "" {
		configPath = cfgFile
	}

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := writeFile(configPath, defaultConfig); err != nil {
		return err
	}
	fmt.Printf("Created config file: %s\n", configPath)

	stylePath := cfg.Style.Path
	if stylePath == "" {
		return nil
	}
	if _, err := os.Stat(stylePath); err == nil {
		fmt.Printf("Keeping existing style file: %s\n", stylePath)
		return nil
	}
	if err := writeFile(stylePath, defaultStyle); err != nil {
		return err
	}
	fmt.Printf("Created style file: %s\n", stylePath)
	return nil
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

const defaultStyle = `# Extra lines added to every generated section.
# Lines containing a # anywhere are ignored.
SetFontSize 40
SetTextColor 0 0 0 255
SetBorderColor 0 0 0 255
`

const defaultConfig = `# Chaos recipe loot filter configuration

[filter]
# show identified rares too
include_identified = false
# add a minimap star to every highlighted item
icons = true
# write the generated block into the loot filter
manipulation = true
# track the recipe from item level 60 with no upper bound
recipe_tracking = true

[stash]
manipulation = false
indices = "0"

# Where the loot filter lives: "local" file or "remote" HTTP endpoint
[storage]
type = "local"
path = "./filter/Chaos.filter"
url = ""
token = ""
timeout = "30s"
retries = 3

[style]
path = "./configs/normal_item_style.filter"
optional = false

[tracker]
state_file = "./state/set.json"

[watch]
debounce = "250ms"

[log]
level = "info"

# Per-class colors (#AARRGGBB, empty = red) and always-active flags
[classes.helmets]
color = "#FFFF00FF"
always_active = false

[classes.body_armours]
color = "#FFFF0080"
always_active = false

[classes.gloves]
color = "#FF00FFFF"
always_active = false

[classes.boots]
color = "#FFFFFF00"
always_active = false

[classes.one_hand_weapons]
color = "#FF6464FF"
always_active = false

[classes.two_hand_weapons]
color = "#FF6464FF"
always_active = false

[classes.rings]
color = "#FFFF0000"
always_active = false

[classes.amulets]
color = "#FFFF0000"
always_active = false

[classes.belts]
color = "#FF00FF00"
always_active = false
`
