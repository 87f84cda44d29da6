// Package app provides the application context and dependency management
// for the chanmap CLI: configuration, logging and transformer construction.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/chanmap"
	"github.com/agentstation/chanmap/internal/appcontext"
	"github.com/agentstation/chanmap/pkg/errors"
	"github.com/agentstation/chanmap/pkg/merger"
)

// App represents the chanmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment,
// config files and .env files; options are applied last.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "loading configuration", err)
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

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// NoColor reports whether coloured output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// InputPath returns the configured input path.
func (a *App) InputPath() string {
	return a.config.Input
}

// OutputPath returns the configured output path.
func (a *App) OutputPath() string {
	return a.config.Output
}

// Strategy returns the configured merge strategy name.
func (a *App) Strategy() string {
	return a.config.Strategy
}

// Transformer builds a transformer from the configuration. Options passed
// by the caller override the configured ones.
func (a *App) Transformer(opts ...chanmap.Option) (chanmap.Transformer, error) {
	strategy, err := merger.ParseStrategy(a.config.Strategy)
	if err != nil {
		return nil, err
	}

	base := []chanmap.Option{
		chanmap.WithLogger(a.logger),
		chanmap.WithStrategy(strategy),
	}
	return chanmap.New(append(base, opts...)...)
}

// Shutdown performs graceful shutdown of the application. A transform
// either completes its atomic write or writes nothing, so there is no
// background work to stop; pending log output is all that remains.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutting down")
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewValidationError("config", nil, "cannot be nil")
		}
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
