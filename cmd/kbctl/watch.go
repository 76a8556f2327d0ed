package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hyprpal/kbgen/internal/config"
	"github.com/hyprpal/kbgen/internal/metrics"
	"github.com/hyprpal/kbgen/internal/util"
	"github.com/hyprpal/kbgen/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reinstall the rules whenever karabiner.json drifts from the catalog",
		Long: `watch keeps the installed rules in line with the catalog. Karabiner-Elements
rewrites karabiner.json when settings change in its UI; whenever the rules in
the target profile no longer match, they are reinstalled. Edits to the kbgen
settings file are picked up without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			err := newReconciler(a).run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

// reconciler reinstalls the rules when they drift. Settings reloads and
// karabiner.json changes arrive on different goroutines.
type reconciler struct {
	app     *app
	metrics *metrics.Collector
	mu      sync.Mutex
}

const (
	sourceStartup  = "startup"
	sourceConfig   = "karabiner.json"
	sourceSettings = "settings"
)

func newReconciler(a *app) *reconciler {
	return &reconciler{app: a, metrics: metrics.NewCollector()}
}

func (r *reconciler) run(ctx context.Context) error {
	if err := r.reconcile(ctx, sourceStartup); err != nil {
		return err
	}
	defer r.logStats()

	r.mu.Lock()
	mainConfig := r.app.paths().MainConfig
	debounce := r.app.settings.Debounce()
	r.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w := &watch.Watcher{
			Path:     mainConfig,
			Debounce: debounce,
			Logger:   r.app.logger,
			OnChange: func(ctx context.Context) error {
				return r.reconcile(ctx, sourceConfig)
			},
		}
		return w.Run(gctx)
	})
	if info, err := os.Stat(filepath.Dir(r.app.settingsPath)); err == nil && info.IsDir() {
		g.Go(func() error {
			w := &watch.Watcher{
				Path:     r.app.settingsPath,
				Debounce: debounce,
				Logger:   r.app.logger,
				OnChange: r.reloadSettings,
			}
			return w.Run(gctx)
		})
	} else {
		r.app.logger.Debugf("settings directory missing, not watching %s", r.app.settingsPath)
	}
	r.app.logger.Infof("watching %s", mainConfig)
	return g.Wait()
}

// reconcile reinstalls the rules when karabiner.json no longer holds them.
func (r *reconciler) reconcile(ctx context.Context, source string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.app.updater()
	file := r.app.rulesFile()
	r.metrics.RecordCheck(source)
	inSync, err := u.InSync(file)
	if err != nil {
		r.metrics.RecordError(source)
		return err
	}
	if inSync {
		r.app.logger.Debugf("installed rules match the catalog")
		return nil
	}
	res, err := u.Update(file)
	if err != nil {
		r.metrics.RecordError(source)
		return err
	}
	r.metrics.RecordReinstall(source)
	r.app.logger.Infof("reinstalled %d rules into %s", len(file.Rules), u.Paths().MainConfig)
	if res.Diff != "" {
		r.app.logger.Debugf("changes:\n%s", res.Diff)
	}
	return nil
}

func (r *reconciler) reloadSettings(ctx context.Context) error {
	settings, err := config.Load(r.app.settingsPath)
	if err != nil {
		return err
	}
	r.mu.Lock()
	if r.app.profile != "" {
		settings.Profile = r.app.profile
	}
	if r.app.logLevel != "" {
		settings.LogLevel = r.app.logLevel
	}
	r.app.settings = settings
	r.app.logger.SetLevel(util.ParseLogLevel(settings.LogLevel))
	r.mu.Unlock()
	r.app.logger.Infof("reloaded settings from %s", r.app.settingsPath)
	return r.reconcile(ctx, sourceSettings)
}

func (r *reconciler) logStats() {
	snap := r.metrics.Snapshot()
	r.app.logger.Infof("watched for %s: %d checks, %d reinstalls, %d errors",
		time.Since(snap.Started).Round(time.Second), snap.Totals.Checked, snap.Totals.Reinstalled, snap.Totals.Errors)
	for _, src := range snap.Sources {
		r.app.logger.Debugf("%s: %d checks, %d reinstalls, %d errors", src.Source, src.Checked, src.Reinstalled, src.Errors)
	}
}
