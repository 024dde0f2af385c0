// Package updater runs the read, merge, write cycle that keeps the chaos
// recipe block of a loot filter in step with the current set.
package updater

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/chaos-recipe-filter/internal/models"
	"github.com/bnema/chaos-recipe-filter/internal/resolver"
	"github.com/bnema/chaos-recipe-filter/internal/splicer"
	"github.com/bnema/chaos-recipe-filter/internal/storage"
)

// Updater regenerates the filter block for a set of missing item classes
type Updater struct {
	resolver *resolver.Resolver
	storage  storage.Storage
	logger   *slog.Logger
}

// Outcome describes what an update did
type Outcome struct {
	Result  resolver.Result
	Written bool
	Reason  string // why nothing was written, empty when Written
}

// Reasons for skipping the write
const (
	SkipManipulationDisabled = "loot filter manipulation disabled"
	SkipNoDocument           = "no filter document available"
	SkipUnchanged            = "filter already up to date"
)

// New creates an updater. A nil logger uses slog.Default().
func New(r *resolver.Resolver, s storage.Storage, logger *slog.Logger) *Updater {
	if logger == nil {
		logger = slog.Default()
	}
	return &Updater{resolver: r, storage: s, logger: logger}
}

// Update generates sections for the missing item classes and, when loot
// filter manipulation is enabled, merges them into the stored filter.
// missingChaosItem is accepted for the set tracker but does not change
// what gets generated.
func (u *Updater) Update(ctx context.Context, missing []string, missingChaosItem bool) (models.ActiveItemTypes, error) {
	out, err := u.Run(ctx, missing, missingChaosItem)
	return out.Result.Active, err
}

// Run is Update with the full outcome
func (u *Updater) Run(ctx context.Context, missing []string, missingChaosItem bool) (Outcome, error) {
	gen := u.resolver.Generator()
	before := gen.Stats()

	res := u.resolver.Resolve(resolver.MissingSet(missing))
	out := Outcome{Result: res}

	if fallbacks := gen.Stats().ColorFallbacks - before.ColorFallbacks; fallbacks > 0 {
		u.logger.Warn("class colors could not be decoded, using fallback", "count", fallbacks)
	}
	u.logger.Debug("resolved sections",
		"missing", missing,
		"missing_chaos_item", missingChaosItem,
		"sections", len(res.Sections),
		"active", res.Active.Active())

	if !gen.Flags().Manipulation {
		out.Reason = SkipManipulationDisabled
		return out, nil
	}

	old, ok, err := u.storage.Read(ctx)
	if err != nil {
		return out, fmt.Errorf("read loot filter: %w", err)
	}
	if !ok {
		u.logger.Info("skipping update", "reason", SkipNoDocument)
		out.Reason = SkipNoDocument
		return out, nil
	}

	merged := splicer.Merge(old, res.Sections)
	if merged == old {
		out.Reason = SkipUnchanged
		return out, nil
	}

	if err := u.storage.Write(ctx, merged); err != nil {
		return out, fmt.Errorf("write loot filter: %w", err)
	}

	u.logger.Info("loot filter updated", "sections", len(res.Sections), "bytes", len(merged))
	out.Written = true
	return out, nil
}
