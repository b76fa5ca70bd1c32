// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App so that they can be tested with Mock.
package appcontext

import (
	"github.com/rs/zerolog"
)

// Settings are the merge defaults resolved from configuration files,
// environment and global flags. Command flags override them per run.
type Settings struct {
	Output            string
	Erase             bool
	Strict            bool
	SignedHemispheres bool
	RootFolder        string
	NoColor           bool
}

// Interface defines the application context that commands need.
type Interface interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured report format (table, json, yaml).
	OutputFormat() string

	// Settings returns the configured merge defaults.
	Settings() Settings

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
