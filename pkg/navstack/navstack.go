// Package navstack provides hierarchical screen navigation for applications
// built from named stacks of routes.
//
// A tree of stacks is declared once, in Go or in TOML, and a Navigator
// keeps the single current position in it. Screens receive the navigator
// as a router.Navigation handle and move themselves around with Navigate,
// NavigateFromRoot, GoBack and GoHome. The platform back button is wired
// through the backbutton package.
package navstack

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/navstack/pkg/navstack/backbutton"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
)

// Options configures logging and navigator construction.
type Options struct {
	LogPath  string                 // Full path for log file including filename (creates parent directories)
	LogLevel string                 // Application log level ("debug", "info", "warn", "error")
	Strict   bool                   // Reject configurations that fail router.Validate
	Back     *backbutton.Dispatcher // Dispatcher the navigator subscribes its back handler to
}

// Init applies the logging options. Call it before any logger is used.
// NAVSTACK_LOG_LEVEL, if set, sets the internal log level.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if raw := os.Getenv(constants.LogLevelEnvVar); raw != "" {
		internal.SetInternalLogLevel(internal.ParseLevel(raw))
	}
}

// New binds screens to the routes of cfg and builds a navigator for it.
// A nil screens map leaves the routes as configured.
func New(cfg router.StackConfig, screens map[string]router.ScreenFunc, options Options) (*router.Navigator, error) {
	if screens != nil {
		if err := cfg.Bind(screens); err != nil {
			internal.GetInternalLogger().Warn("Some routes have no screen", "error", err)
		}
	}

	return router.New(cfg, router.Options{
		Strict: options.Strict,
		Back:   options.Back,
	})
}

// Load reads a TOML navigation tree from path and builds a navigator for it.
func Load(path string, screens map[string]router.ScreenFunc, options Options) (*router.Navigator, error) {
	cfg, err := router.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return New(cfg, screens, options)
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetInternalLogLevel sets the minimum log level for navstack's own logging.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
