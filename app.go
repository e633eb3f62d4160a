package cfg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-cfg/logging"
	"github.com/0xalexb/hjarta-cfg/store"
	"github.com/0xalexb/hjarta-cfg/watch"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// ErrWatchWithoutStore is reported when WithWatch is used without WithStoreFile.
var ErrWatchWithoutStore = errors.New("watch requires a store file")

// App is a configured starting point for an application using Fx.
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
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	loggerCfg := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}

	out := options.LogOutput
	if out == nil {
		out = os.Stderr
	}

	logger := logging.NewLogger(loggerCfg, out)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerCfg),
		fx.Supply(logger),
		storeModules(options),
		fx.Options(options.Modules...),
	)
}

//nolint:ireturn // fx.Option is the standard return type for Fx modules
func storeModules(options *Options) fx.Option {
	var modules []fx.Option

	if options.StorePath != "" {
		modules = append(modules, store.NewModule(options.StorePath))
	}

	if options.Watch {
		if options.StorePath == "" {
			return fx.Error(ErrWatchWithoutStore)
		}

		modules = append(modules, watch.NewModule(watch.Config{
			Path:     options.StorePath,
			Debounce: options.WatchDebounce,
		}))
	}

	return fx.Options(modules...)
}

// Err returns any error encountered while building the application graph.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err() //nolint:wrapcheck
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Start(context.Background())
	if err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}

	return nil
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Stop(context.Background())
	if err != nil {
		return fmt.Errorf("failed to stop app: %w", err)
	}

	return nil
}
