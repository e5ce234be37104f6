// Package main is the entry point for the keybridge shortcut playground.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/keybridge/internal/config"
	"github.com/dshills/keybridge/internal/input/keymap"
	"github.com/dshills/keybridge/internal/logging"
	"github.com/dshills/keybridge/internal/playground"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath  string
	keymapPath  string
	logLevel    string
	printKeymap string
	watch       bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.keymapPath != "" {
		cfg.Keymap.Path = opts.keymapPath
	}
	if opts.watch {
		cfg.Keymap.Watch = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	km, err := loadKeymap(cfg.Keymap.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.printKeymap != "" {
		data, err := keymap.Marshal(km, keymap.Format(opts.printKeymap))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		_, _ = os.Stdout.Write(data)
		return 0
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()
	logger := logging.For("main")

	view, err := playground.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: building playground: %v\n", err)
		return 1
	}
	defer view.Close()
	if err := view.Bind(km); err != nil {
		fmt.Fprintf(os.Stderr, "Error: binding keymap: %v\n", err)
		return 1
	}

	logger.Info().Str("keymap", km.Source).Int("shortcuts", len(km.Shortcuts)).Msg("playground started")
	if err := runScreen(view, cfg.Keymap); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runScreen owns the terminal for the lifetime of the playground so that
// errors are reported after the screen is restored.
func runScreen(view *playground.View, kc config.KeymapConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	if kc.Watch {
		w, err := keymap.NewWatcher(kc.Path, view.Binder(),
			keymap.OnReload(func(km *keymap.Keymap, err error) {
				var msg string
				if err != nil {
					msg = "reload failed: " + err.Error()
				} else {
					msg = fmt.Sprintf("reloaded %s (%d shortcuts)", km.Source, len(km.Shortcuts))
				}
				_ = screen.PostEvent(tcell.NewEventInterrupt(msg))
			}))
		if err != nil {
			return fmt.Errorf("watching keymap: %w", err)
		}
		defer w.Close()
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := view.Run(ctx, screen); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func loadKeymap(path string) (*keymap.Keymap, error) {
	if path == "" {
		return keymap.DefaultKeymap(), nil
	}
	km, err := keymap.NewLoader().LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading keymap: %w", err)
	}
	return km, nil
}

// setupLogging installs the process logger. The terminal belongs to the
// playground, so without a log file logging stays disabled.
func setupLogging(cfg config.LogConfig) (func(), error) {
	if cfg.File == "" {
		logging.Set(zerolog.Nop())
		return func() {}, nil
	}
	f, err := logging.OpenFile(cfg.File)
	if err != nil {
		return nil, err
	}
	logging.Set(logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Level),
		Format: cfg.Format,
		Output: f,
	}))
	return func() { _ = f.Close() }, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "keybridge.toml", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "keybridge.toml", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.keymapPath, "keymap", "", "Keymap file (.toml, .yaml); overrides the config")
	flag.StringVar(&opts.keymapPath, "k", "", "Keymap file (shorthand)")
	flag.BoolVar(&opts.watch, "watch", false, "Reload the keymap file when it changes")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flag.StringVar(&opts.printKeymap, "print-keymap", "", "Print the effective keymap as toml or yaml and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keybridge - keyboard shortcut playground\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keybridge [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keybridge                          Run with the built-in keymap\n")
		fmt.Fprintf(os.Stderr, "  keybridge -k keymap.yaml -watch    Run a keymap and reload on save\n")
		fmt.Fprintf(os.Stderr, "  keybridge -print-keymap toml       Print the built-in keymap\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("keybridge %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.logLevel != "" && !logging.ValidLevel(opts.logLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", opts.logLevel)
		os.Exit(1)
	}

	return opts
}
