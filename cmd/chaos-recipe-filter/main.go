package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bnema/chaos-recipe-filter/internal/generator"
	"github.com/bnema/chaos-recipe-filter/internal/models"
	"github.com/bnema/chaos-recipe-filter/internal/resolver"
	"github.com/bnema/chaos-recipe-filter/internal/rules"
	"github.com/bnema/chaos-recipe-filter/internal/storage"
	"github.com/bnema/chaos-recipe-filter/internal/style"
	"github.com/bnema/chaos-recipe-filter/internal/updater"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     models.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var cfgErr *models.ConfigurationError
		if errors.As(err, &cfgErr) {
			fmt.Fprintln(os.Stderr, renderConfigError(cfgErr))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chaos-recipe-filter",
	Short: "Keep a loot filter in step with your chaos recipe set",
	Long: `Generates loot filter sections for the item classes still missing from
the current chaos recipe set and splices them into your loot filter,
replacing the block it inserted last time and leaving the rest untouched.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(cfg.Log.Level)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./configs/chaos_recipe.toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("chaos_recipe")
		viper.SetConfigType("toml")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("CRF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("filter.include_identified", false)
	viper.SetDefault("filter.icons", true)
	viper.SetDefault("filter.manipulation", true)
	viper.SetDefault("filter.recipe_tracking", true)
	viper.SetDefault("stash.manipulation", false)
	viper.SetDefault("stash.indices", "")
	viper.SetDefault("storage.type", models.StorageLocal)
	viper.SetDefault("storage.path", "./filter/Chaos.filter")
	viper.SetDefault("storage.url", "")
	viper.SetDefault("storage.token", "")
	viper.SetDefault("storage.timeout", "30s")
	viper.SetDefault("storage.retries", 3)
	viper.SetDefault("style.path", "./configs/normal_item_style.filter")
	viper.SetDefault("style.optional", false)
	viper.SetDefault("tracker.state_file", "./state/set.json")
	viper.SetDefault("watch.debounce", "250ms")
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing config: %v\n", err)
	}
}

func setupLogger(level string) {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})
	slog.SetDefault(slog.New(handler))
}

// loadStyle reads the custom style file. A missing file is fatal unless
// style.optional is set.
func loadStyle(c models.StyleConfig) ([]string, error) {
	if c.Path == "" {
		return nil, nil
	}

	l := style.NewLoader()
	lines, err := l.Load(c.Path)
	if err != nil {
		if c.Optional && errors.Is(err, os.ErrNotExist) {
			slog.Warn("custom style file not found, continuing without it", "path", c.Path)
			return nil, nil
		}
		return nil, err
	}

	stats := l.Stats()
	slog.Debug("loaded custom style", "path", c.Path, "lines", stats.Kept, "comments", stats.Comments, "empty", stats.Empty)
	return lines, nil
}

// newResolver builds the registry, style and generator from config
func newResolver(c models.Config) (*resolver.Resolver, error) {
	reg, err := rules.NewRegistry(c.Classes)
	if err != nil {
		return nil, err
	}

	lines, err := loadStyle(c.Style)
	if err != nil {
		return nil, err
	}

	return resolver.New(reg, generator.New(c.Filter, lines)), nil
}

// newUpdater validates config and wires the full pipeline
func newUpdater(c models.Config) (*updater.Updater, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	r, err := newResolver(c)
	if err != nil {
		return nil, err
	}

	s, err := storage.New(c.Storage)
	if err != nil {
		return nil, err
	}

	return updater.New(r, s, slog.Default()), nil
}
