package cfg

import (
	"io"
	"time"

	"github.com/0xalexb/hjarta-cfg/api"
	"github.com/0xalexb/hjarta-cfg/listener"
	"go.uber.org/fx"
)

// QueryListener is the name of the listener serving the query API.
const QueryListener = "query"

// Options holds configuration settings for the application.
type Options struct {
	Modules       []fx.Option
	LogLevel      string
	LogFormat     string
	LogOutput     io.Writer
	StorePath     string
	Watch         bool
	WatchDebounce time.Duration
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects logs from stderr to w.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithStoreFile loads the .cfg file at path and provides *store.Store and
// *store.Holder to the container.
func WithStoreFile(path string) Option {
	return func(opts *Options) {
		opts.StorePath = path
	}
}

// WithWatch reloads the store file when it changes. A zero debounce uses
// watch.DefaultDebounce. Requires WithStoreFile.
func WithWatch(debounce time.Duration) Option {
	return func(opts *Options) {
		opts.Watch = true
		opts.WatchDebounce = debounce
	}
}

// WithHTTPListener adds a named HTTP listener module to the application.
// The name is used as both the Fx module name and the DI named tag for http.Handler and Config.
// When options are provided (e.g., WithAddress), Config is supplied to DI automatically.
func WithHTTPListener(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, listener.NewModule(name, opts...))
	}
}

// WithQueryListener serves the query API over the store holder on the
// QueryListener listener. Requires WithStoreFile.
func WithQueryListener(opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules,
			fx.Provide(
				fx.Annotate(
					api.NewHandler,
					fx.ResultTags(listener.NameTag(QueryListener)),
				),
			),
			listener.NewModule(QueryListener, opts...),
		)
	}
}
