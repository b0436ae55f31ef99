package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	konfig "github.com/0xalexb/hjarta-konfig"
	"github.com/0xalexb/hjarta-konfig/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is an Fx application whose configuration sections are managed by konfig.
//
// Starting the App loads the config file into every section, stopping it
// saves them back when auto-save is enabled. Run therefore saves the
// configuration when the process receives SIGINT or SIGTERM.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options, os.Stderr),
	}
}

func configure(options *Options, w io.Writer) *fx.App {
	logger := logging.NewLogger(logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}, w)
	slog.SetDefault(logger)

	fxOptions := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}),
		fx.Supply(logger),
	}

	for _, constructor := range options.Sections {
		fxOptions = append(fxOptions, fx.Provide(konfig.AsSection(constructor)))
	}

	if options.Konfig != nil {
		fxOptions = append(fxOptions, konfig.NewModule(options.Konfig...))
	}

	fxOptions = append(fxOptions, fx.Options(options.Modules...))

	return fx.New(fxOptions...)
}

// Err returns the error Fx reported while building the application, if any.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err() //nolint:wrapcheck // returned as reported by Fx
}

// Start starts the Fx application, loading the configuration.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		slog.Info("starting app", slog.String("version", Version), slog.String("compiled_at", CompiledAt))

		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully, saving the configuration when auto-save is enabled.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
