package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/command-menu/internal/app"
	"github.com/atomicstack/command-menu/internal/config"
	"github.com/atomicstack/command-menu/internal/format/table"
	"github.com/atomicstack/command-menu/internal/logging"
	"github.com/atomicstack/command-menu/internal/logging/events"
	"github.com/atomicstack/command-menu/internal/menu"
	"github.com/atomicstack/command-menu/internal/nav"
)

var (
	version = "dev"
	commit  = "none"
)

// configError marks failures that happen before the program starts.
type configError struct{ error }

func (e configError) Unwrap() error { return e.error }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Environ()).ExecuteContext(ctx)
	stop()
	logging.Sync()
	if err == nil {
		return
	}
	var cfgErr configError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func newRootCmd(environ []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "command-menu",
		Short:         "Keyboard and mouse driven command menu",
		Long:          "Opens a nested command menu overlay. Choosing a link prints its target on stdout.",
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	binding := config.Bind(root.PersistentFlags(), environ)

	load := func(cmd *cobra.Command) (config.Config, error) {
		cfg, err := binding.Config()
		if err != nil {
			return config.Config{}, configError{err}
		}
		cfg.Args = append([]string(nil), os.Args[1:]...)
		if err := config.Validate(cfg); err != nil {
			return config.Config{}, configError{err}
		}
		logging.Configure(cfg.Logging.FilePath)
		logging.SetTraceEnabled(cfg.Logging.Trace)
		logging.SetVerbose(cfg.Logging.Verbose)
		return cfg, nil
	}

	root.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := load(cmd)
		if err != nil {
			return err
		}
		traceStartup(cfg)
		href, err := app.Run(cmd.Context(), cfg.App)
		if err != nil {
			return err
		}
		if href != "" {
			fmt.Fprintln(cmd.OutOrStdout(), href)
		}
		return nil
	}

	root.AddCommand(newValidateCmd(load), newReplayCmd(load), newVersionCmd())
	return root
}

func newValidateCmd(load func(*cobra.Command) (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a menu definition and print its shape",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.App.MenuPath = args[0]
			}
			root, active, err := app.LoadMenu(cfg.App)
			if err != nil {
				return err
			}
			writeSummary(cmd.OutOrStdout(), cfg.App.MenuPath, root, active)
			return nil
		},
	}
}

func writeSummary(w io.Writer, path string, root menu.List, active string) {
	if path == "" {
		path = "(built-in)"
	}
	reg := menu.NewRegistry(root)
	entries, titles := reg.Count()
	state := nav.New(reg.Root(), active)
	fmt.Fprintf(w, "menu:    %s\n", path)
	fmt.Fprintf(w, "entries: %d (%d titles)\n", entries, titles)
	fmt.Fprintf(w, "depth:   %d\n", reg.Depth())
	fmt.Fprintf(w, "active:  %s\n", state.ActiveLabel())
	fmt.Fprintln(w)
	for _, line := range table.Format(entryRows(root, 0), []table.Alignment{table.AlignRight}) {
		fmt.Fprintln(w, line)
	}
}

// entryRows flattens the tree depth first into ID, kind, label and target
// columns.
func entryRows(l menu.List, depth int) [][]string {
	var rows [][]string
	for _, entry := range l {
		target := entry.Href
		switch {
		case entry.Action != "":
			target = "action:" + entry.Action
		case entry.HasChildren():
			target = fmt.Sprintf("%d entries", len(entry.Children))
		}
		label := strings.Repeat("  ", depth) + entry.Label
		rows = append(rows, []string{entry.ID, entry.Kind.String(), label, target})
		if entry.HasChildren() {
			rows = append(rows, entryRows(entry.Children, depth+1)...)
		}
	}
	return rows
}

func newReplayCmd(load func(*cobra.Command) (config.Config, error)) *cobra.Command {
	var inputs string
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Apply a sequence of navigation inputs and print each step",
		Example: `  command-menu replay --events down,enter,down,backspace,backspace
  command-menu replay --menu menu.yaml --events next,confirm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			evts, err := nav.ParseEvents(inputs)
			if err != nil {
				return configError{err}
			}
			root, active, err := app.LoadMenu(cfg.App)
			if err != nil {
				return err
			}
			return replay(cmd.Context(), cmd.OutOrStdout(), root, active, evts)
		},
	}
	cmd.Flags().StringVar(&inputs, "events", "", "comma separated inputs: next, previous, confirm, back")
	return cmd
}

// replay feeds evts through a session over a channel and prints the state
// after every step.
func replay(ctx context.Context, w io.Writer, root menu.List, active string, evts []nav.Event) error {
	reg := menu.NewRegistry(root)
	session := nav.NewSession(reg.Root(), active, func(tr nav.Transition) {
		fmt.Fprintf(w, "%-8s %-5t %s\n", tr.Cause, tr.Changed, describe(reg, tr.After))
	})
	fmt.Fprintf(w, "%-8s %-5s %s\n", "start", "", describe(reg, session.State()))

	ch := make(chan nav.Event)
	go func() {
		defer close(ch)
		for _, evt := range evts {
			select {
			case <-ctx.Done():
				return
			case ch <- evt:
			}
		}
	}()
	return session.Run(ctx, ch)
}

func describe(reg *menu.Registry, s nav.State) string {
	label := s.ActiveLabel()
	if label == "" {
		label = "(none)"
	}
	crumbs := append(reg.Path(s.Active), label)
	return fmt.Sprintf("%s [depth %d]", strings.Join(crumbs, " → "), s.History.Depth())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "command-menu %s (commit: %s)\n", version, commit)
		},
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"version": version,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
