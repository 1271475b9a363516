// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/toolbelt/toolbelt/internal/config"
	"github.com/toolbelt/toolbelt/internal/sysinfo"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

type (
	// App wires CLI services and shared dependencies. All command handlers
	// receive an App reference; nothing in the command tree reaches for the
	// real filesystem or host directly.
	App struct {
		Config    config.Provider
		Fs        afero.Fs
		Collector sysinfo.Collector
		Now       func() time.Time
		stdout    io.Writer
		stderr    io.Writer

		// Set by the root command's PersistentPreRunE.
		cfg      *config.Config
		source   string
		loadOpts config.LoadOptions
		verbose  bool
		logger   *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config    config.Provider
		Fs        afero.Fs
		Collector sysinfo.Collector
		Now       func() time.Time
		Stdout    io.Writer
		Stderr    io.Writer
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:    deps.Config,
		Fs:        deps.Fs,
		Collector: deps.Collector,
		Now:       deps.Now,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Fs == nil {
		app.Fs = afero.NewOsFs()
	}
	if app.Collector == nil {
		app.Collector = sysinfo.NewHostCollector()
	}
	if app.Now == nil {
		app.Now = time.Now
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	app.logger = newLogger(app.stderr, false)
	return app
}

// loadConfig resolves configuration once per invocation. verboseFlag wins
// over ui.verbose when set.
func (a *App) loadConfig(ctx context.Context, opts config.LoadOptions, verboseFlag bool) error {
	loaded, err := a.Config.Load(ctx, opts)
	if err != nil {
		return err
	}
	a.cfg = loaded.Config
	a.source = loaded.Source
	a.loadOpts = opts
	a.verbose = verboseFlag || a.cfg.UI.Verbose
	a.logger = newLogger(a.stderr, a.verbose)
	a.logger.Debug("configuration loaded", "source", a.source, "verbose", a.verbose)
	return nil
}

// settings returns the loaded configuration, or defaults when the root
// pre-run hook has not run (as in command unit tests).
func (a *App) settings() *config.Config {
	if a.cfg == nil {
		return config.DefaultConfig()
	}
	return a.cfg
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: config.AppName})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
