package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/prefs"
	"github.com/vovakirdan/tui-farm/internal/registry"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

// prefsAppName names the data directory lifetime statistics are kept in.
const prefsAppName = "tui-farm"

// newLogger builds the logger from --log and --log-level. The TUI owns the
// terminal, so logs go to a file or nowhere. The returned func closes the file.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "farm",
	})
	return logger, func() { f.Close() }, nil
}

// mustLogger is newLogger for commands that cannot continue without one.
func mustLogger() (*log.Logger, func()) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeLog
}

// openPrefs opens the lifetime statistics store, falling back to memory.
func openPrefs(logger *log.Logger) prefs.Store {
	store, err := prefs.Open(prefsAppName, logger)
	if err != nil {
		logger.Warn("lifetime stats will not persist", "error", err)
		return prefs.NewMemory()
	}
	return store
}

// gameOptions collects the collaborators every game is created with.
func gameOptions(logger *log.Logger, store prefs.Store) registry.Options {
	return registry.Options{
		Logger:     logger,
		Prefs:      store,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// requireGame exits with a suggestion when gameID is not registered.
func requireGame(gameID string) {
	if registry.Exists(gameID) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
	if s := registry.Suggest(gameID); s != "" {
		fmt.Fprintf(os.Stderr, "Did you mean %q?\n", s)
	}
	fmt.Fprintln(os.Stderr, "Run 'farm list' to see available games.")
	os.Exit(1)
}
