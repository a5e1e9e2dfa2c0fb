package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/command-menu/internal/backend"
	"github.com/atomicstack/command-menu/internal/logging/events"
	"github.com/atomicstack/command-menu/internal/menu"
	"github.com/atomicstack/command-menu/internal/metric"
	"github.com/atomicstack/command-menu/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	MenuPath    string
	Active      string
	Width       int
	Height      int
	ShowFooter  bool
	Theme       string
	StartOpen   bool
	Watch       bool
	MetricsAddr string
	Verbose     bool
}

// reloadInterval is the minimum time between two menu reloads.
const reloadInterval = 500 * time.Millisecond

// LoadMenu returns the root list and default label for cfg. Without a menu
// file the built-in menu is used.
func LoadMenu(cfg Config) (menu.List, string, error) {
	if cfg.MenuPath == "" {
		return menu.Default(), cfg.Active, nil
	}
	def, err := menu.Load(cfg.MenuPath)
	if err != nil {
		return nil, "", err
	}
	entries, titles := menu.NewRegistry(def.Items).Count()
	events.Menu.Load(cfg.MenuPath, entries, titles)
	active := def.Active
	if active == "" {
		active = cfg.Active
	}
	return def.Items, active, nil
}

// Run bootstraps and executes the Bubble Tea program. It returns the link the
// user chose, or an empty string when the menu was closed without one.
func Run(ctx context.Context, cfg Config) (string, error) {
	root, active, err := LoadMenu(cfg)
	if err != nil {
		return "", fmt.Errorf("load menu: %w", err)
	}

	var watcher *backend.Watcher
	if cfg.Watch && cfg.MenuPath != "" {
		watcher, err = backend.NewWatcher(cfg.MenuPath, backend.DefaultSettle, reloadInterval)
		if err != nil {
			return "", fmt.Errorf("watch menu: %w", err)
		}
		defer watcher.Stop()
	}

	reg := prometheus.NewRegistry()
	recorder := metric.NewRecorder(reg)

	model := ui.NewModel(ui.Options{
		Root:         root,
		DefaultLabel: active,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		StartOpen:    cfg.StartOpen,
		Theme:        cfg.Theme,
		Watcher:      watcher,
		Observer:     recorder.Observe,
		OnAction:     recorder.Action,
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gCtx := errgroup.WithContext(runCtx)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(gCtx))

	if cfg.MetricsAddr != "" {
		events.App.MetricsListen(cfg.MetricsAddr)
		g.Go(func() error {
			return metric.Serve(gCtx, cfg.MetricsAddr, reg)
		})
	}

	var href string
	g.Go(func() error {
		// the program is done once Run returns; release the metrics server
		defer cancel()
		final, err := program.Run()
		if m, ok := final.(*ui.Model); ok {
			href = m.Href()
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})

	err = g.Wait()
	events.App.Exit(href, err)
	return href, err
}
