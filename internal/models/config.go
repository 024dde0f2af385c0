package models

import (
	"strconv"
	"strings"
	"time"
)

// Config represents the main configuration
type Config struct {
	Filter  FilterFlags              `mapstructure:"filter"`
	Stash   StashConfig              `mapstructure:"stash"`
	Storage StorageConfig            `mapstructure:"storage"`
	Style   StyleConfig              `mapstructure:"style"`
	Tracker TrackerConfig            `mapstructure:"tracker"`
	Watch   WatchConfig              `mapstructure:"watch"`
	Log     LogConfig                `mapstructure:"log"`
	Classes map[string]ClassSettings `mapstructure:"classes"`
}

// FilterFlags are the global switches read by section generation
type FilterFlags struct {
	IncludeIdentified bool `mapstructure:"include_identified"`
	Icons             bool `mapstructure:"icons"`
	Manipulation      bool `mapstructure:"manipulation"`    // write the merged filter back
	RecipeTracking    bool `mapstructure:"recipe_tracking"` // ilvl 60+ without upper bound
}

// StashConfig contains stash tab settings
type StashConfig struct {
	Manipulation bool   `mapstructure:"manipulation"`
	Indices      string `mapstructure:"indices"` // comma separated
}

// StorageConfig selects and configures the filter document backend
type StorageConfig struct {
	Type    string        `mapstructure:"type"` // local, remote
	Path    string        `mapstructure:"path"`
	URL     string        `mapstructure:"url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
	Retries int           `mapstructure:"retries"`
}

// Storage backend names
const (
	StorageLocal  = "local"
	StorageRemote = "remote"
)

// StyleConfig points at the custom style file
type StyleConfig struct {
	Path     string `mapstructure:"path"`
	Optional bool   `mapstructure:"optional"`
}

// TrackerConfig locates the set tracker state file
type TrackerConfig struct {
	StateFile string `mapstructure:"state_file"`
}

// WatchConfig contains file watcher settings
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// StashTabIndices parses the comma separated stash tab index list.
// Duplicates are dropped, order is preserved.
func (c *Config) StashTabIndices() ([]int, error) {
	if strings.TrimSpace(c.Stash.Indices) == "" {
		return nil, NewConfigurationError("stash.indices", "no stash tab indices configured")
	}

	var indices []int
	seen := make(map[int]bool)
	for _, s := range strings.Split(c.Stash.Indices, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || idx < 0 {
			return nil, NewConfigurationError("stash.indices", "stash tab index must be a number: "+strconv.Quote(strings.TrimSpace(s)))
		}
		if !seen[idx] {
			seen[idx] = true
			indices = append(indices, idx)
		}
	}
	return indices, nil
}

// Validate checks settings that cannot be expressed as defaults
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageLocal:
		if c.Storage.Path == "" {
			return NewConfigurationError("storage.path", "local storage needs a filter path")
		}
	case StorageRemote:
		if c.Storage.URL == "" {
			return NewConfigurationError("storage.url", "remote storage needs a url")
		}
	default:
		return NewConfigurationError("storage.type", "unsupported storage type: "+strconv.Quote(c.Storage.Type))
	}

	for key := range c.Classes {
		if _, ok := ItemClassByKey(key); !ok {
			return NewConfigurationError("classes."+key, "unknown item class")
		}
	}

	if c.Stash.Manipulation {
		if _, err := c.StashTabIndices(); err != nil {
			return err
		}
	}
	return nil
}
