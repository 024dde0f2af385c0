// Package tracker reads the set tracker's state file and watches it, along
// with the custom style file, for changes.
package tracker

import (
	"encoding/json"
	"fmt"
	"os"
)

// State is what the set tracker reports about the current chaos recipe set
type State struct {
	MissingItemClasses []string `json:"missing_item_classes"`
	MissingChaosItem   bool     `json:"missing_chaos_item"`
}

// LoadState reads a state file
func LoadState(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("read state file: %w", err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("parse state file %s: %w", path, err)
	}
	return s, nil
}
