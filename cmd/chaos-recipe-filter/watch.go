package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/chaos-recipe-filter/internal/models"
	"github.com/bnema/chaos-recipe-filter/internal/tracker"
	"github.com/bnema/chaos-recipe-filter/internal/updater"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the loot filter whenever the set tracker state or style changes",
	RunE:  runWatch,
}

// watchSession owns the updater between file events. Handlers run on the
// watcher goroutine one at a time.
type watchSession struct {
	ctx     context.Context
	updater *updater.Updater
	state   *tracker.State
	active  models.ActiveItemTypes
}

func (s *watchSession) update(state tracker.State) {
	s.state = &state

	out, err := s.updater.Run(s.ctx, state.MissingItemClasses, state.MissingChaosItem)
	if err != nil {
		slog.Error("update failed", "error", err)
		return
	}

	if changed := out.Result.Active.Changed(s.active); len(changed) > 0 {
		fmt.Println(renderNewlyActive(changed))
	}
	s.active = out.Result.Active

	if out.Written {
		slog.Info("loot filter regenerated", "sections", len(out.Result.Sections))
	} else {
		slog.Debug("loot filter not written", "reason", out.Reason)
	}
}

// reloadStyle rebuilds the pipeline so the generator picks up the new style
func (s *watchSession) reloadStyle() {
	u, err := newUpdater(cfg)
	if err != nil {
		slog.Error("reload style failed, keeping previous style", "error", err)
		return
	}
	s.updater = u
	slog.Info("custom style reloaded", "path", cfg.Style.Path)

	if s.state != nil {
		s.update(*s.state)
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	u, err := newUpdater(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := &watchSession{ctx: ctx, updater: u}
	path := statePath(cmd)

	if state, err := tracker.LoadState(path); err == nil {
		session.update(state)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	w, err := tracker.NewWatcher(path, cfg.Style.Path, cfg.Watch.Debounce, tracker.Handlers{
		OnState: session.update,
		OnStyle: session.reloadStyle,
		OnError: func(err error) { slog.Warn("watch error", "error", err) },
	}, slog.Default())
	if err != nil {
		return err
	}
	w.Start()
	defer w.Stop()

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", path)
	<-ctx.Done()
	fmt.Println("\nStopped.")
	return nil
}
