package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/atomicstack/command-menu/internal/app"
	"github.com/atomicstack/command-menu/internal/menu"
	"github.com/atomicstack/command-menu/internal/theme"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
	Verbose  bool
}

const (
	envMenu        = "COMMAND_MENU_FILE"
	envActive      = "COMMAND_MENU_ACTIVE"
	envWidth       = "COMMAND_MENU_WIDTH"
	envHeight      = "COMMAND_MENU_HEIGHT"
	envShowFooter  = "COMMAND_MENU_FOOTER"
	envTheme       = "COMMAND_MENU_THEME"
	envOpen        = "COMMAND_MENU_OPEN"
	envWatch       = "COMMAND_MENU_WATCH"
	envMetricsAddr = "COMMAND_MENU_METRICS_ADDR"
	envVerbose     = "COMMAND_MENU_VERBOSE"
	envTrace       = "COMMAND_MENU_TRACE"
	envLogFile     = "COMMAND_MENU_LOG_FILE"
)

// Binding holds flag values registered on a flag set until they are parsed.
type Binding struct {
	fs          *pflag.FlagSet
	menuPath    *string
	active      *string
	width       *int
	height      *int
	footer      *bool
	themeName   *string
	open        *bool
	watch       *bool
	metricsAddr *string
	trace       *bool
	verbose     *bool
	logFile     *string
}

// Bind registers the application flags on fs. Every default comes from the
// matching environment variable when it is set.
func Bind(fs *pflag.FlagSet, environ []string) *Binding {
	env := parseEnv(environ)
	return &Binding{
		fs:          fs,
		menuPath:    fs.String("menu", envOrDefault(env, envMenu, ""), "path to a YAML menu definition (built-in menu when empty)"),
		active:      fs.String("active", envOrDefault(env, envActive, menu.DefaultActive), "label of the item highlighted when the menu opens"),
		width:       fs.Int("width", envOrInt(env, envWidth, 0), "desired overlay width in cells (0 uses terminal width)"),
		height:      fs.Int("height", envOrInt(env, envHeight, 0), "desired overlay height in rows (0 uses terminal height)"),
		footer:      fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable key help footer (disabled by default)"),
		themeName:   fs.String("theme", envOrDefault(env, envTheme, theme.Dark), "initial theme: "+strings.Join(theme.Names(), "|")),
		open:        fs.Bool("open", envOrBool(env, envOpen, true), "start with the menu overlay open"),
		watch:       fs.Bool("watch", envOrBool(env, envWatch, false), "reload the menu file when it changes"),
		metricsAddr: fs.String("metrics-addr", envOrDefault(env, envMetricsAddr, ""), "serve prometheus metrics on this address"),
		trace:       fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		verbose:     fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions"),
		logFile:     fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
}

// Config builds the configuration from the parsed flag set.
func (b *Binding) Config() (Config, error) {
	if *b.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *b.width)
	}
	if *b.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *b.height)
	}
	themeName := strings.ToLower(strings.TrimSpace(*b.themeName))

	cfg := Config{
		App: app.Config{
			MenuPath:    strings.TrimSpace(*b.menuPath),
			Active:      strings.TrimSpace(*b.active),
			Width:       *b.width,
			Height:      *b.height,
			ShowFooter:  *b.footer,
			Theme:       themeName,
			StartOpen:   *b.open,
			Watch:       *b.watch,
			MetricsAddr: strings.TrimSpace(*b.metricsAddr),
			Verbose:     *b.verbose,
		},
		Logging: Logging{
			FilePath: *b.logFile,
			Trace:    *b.trace,
			Verbose:  *b.verbose,
		},
		Flags: map[string]string{
			"menu":        *b.menuPath,
			"active":      *b.active,
			"width":       strconv.Itoa(*b.width),
			"height":      strconv.Itoa(*b.height),
			"footer":      strconv.FormatBool(*b.footer),
			"theme":       themeName,
			"open":        strconv.FormatBool(*b.open),
			"watch":       strconv.FormatBool(*b.watch),
			"metricsAddr": *b.metricsAddr,
			"trace":       strconv.FormatBool(*b.trace),
			"verbose":     strconv.FormatBool(*b.verbose),
			"logFile":     *b.logFile,
		},
		Args: append([]string(nil), b.fs.Args()...),
	}
	return cfg, nil
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("command-menu", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	binding := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return binding.Config()
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects settings the application cannot start with.
func Validate(cfg Config) error {
	if _, ok := theme.Lookup(cfg.App.Theme); !ok {
		return fmt.Errorf("unknown theme %q (want one of %s)", cfg.App.Theme, strings.Join(theme.Names(), ", "))
	}
	if cfg.App.Watch && cfg.App.MenuPath == "" {
		return fmt.Errorf("--watch requires --menu")
	}
	if cfg.App.MenuPath != "" {
		info, err := os.Stat(cfg.App.MenuPath)
		if err != nil {
			return fmt.Errorf("menu file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("menu file %s is a directory", cfg.App.MenuPath)
		}
	}
	return nil
}
