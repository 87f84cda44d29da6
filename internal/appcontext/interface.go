// Package appcontext provides the application context interface shared by
// all commands, so command packages depend on behaviour rather than on the
// concrete App type.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/chanmap"
)

// Interface defines what commands need from the application. The App struct
// from cmd/chanmap/app implements it; tests use Mock.
type Interface interface {
	// Transformer returns a new transformer configured from the application
	// config, with opts applied on top.
	Transformer(opts ...chanmap.Option) (chanmap.Transformer, error)

	// InputPath returns the configured default input export path.
	InputPath() string

	// OutputPath returns the configured default output table path.
	OutputPath() string

	// Strategy returns the configured merge strategy name.
	Strategy() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, wide, markdown).
	OutputFormat() string

	// NoColor reports whether coloured output is disabled by flag,
	// NO_COLOR or the config file.
	NoColor() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
