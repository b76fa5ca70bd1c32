// Package app provides the application context and dependency management
// for the automark CLI. It centralizes configuration, logging and the
// version information that commands receive through appcontext.Interface.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/automark/internal/appcontext"
	"github.com/agentstation/automark/pkg/errors"
)

// App represents the automark application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Global flag values, applied to config in setupCommand
	flags globalFlags
}

// New creates a new App instance with the given version information.
// Configuration is loaded from .env files, the environment and the config
// file, and can be replaced with functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured report format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Settings returns the merge defaults from configuration.
func (a *App) Settings() appcontext.Settings {
	return appcontext.Settings{
		Output:            a.config.Output,
		Erase:             a.config.Erase,
		Strict:            a.config.Strict,
		SignedHemispheres: a.config.SignedHemispheres,
		RootFolder:        a.config.RootFolder,
		NoColor:           a.config.NoColor,
	}
}

// Shutdown releases application resources. A merge holds no background
// work, so only the logger is flushed by a final debug line.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutdown complete")
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
