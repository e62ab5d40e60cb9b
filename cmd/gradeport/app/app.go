// Package app provides the application context and dependency management
// for the gradeport CLI. It centralizes configuration, logging, and the
// wiring between cobra commands and the reconciliation pipeline.
package app

import (
	"github.com/rs/zerolog"

	"github.com/classkit/gradeport/pkg/errors"
)

// App represents the gradeport application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapConfig("app", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

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

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}
