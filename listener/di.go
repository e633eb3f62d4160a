package listener

import (
	"log/slog"
	"net/http"

	"go.uber.org/fx"
)

// NameTag returns the Fx name tag used for a listener's http.Handler, Config and *Server.
func NameTag(name string) string {
	return `name:"` + name + `"`
}

// NewModule creates an Fx module for a named HTTP listener.
// The module consumes an http.Handler tagged NameTag(name), provides the
// *Server under the same tag and ties it to the Fx lifecycle.
// If any options are passed, the module supplies Config from them.
// Otherwise, Config must be provided externally under the same tag (e.g., via config.Provider).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	tag := NameTag(name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		var cfg Config

		for _, apply := range opts {
			apply(&cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(fx.Annotate(cfg, fx.ResultTags(tag))))
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(
			fx.Annotate(
				func(shutdowner fx.Shutdowner, handler http.Handler, cfg Config) (*Server, error) {
					return NewServer(name, handler, cfg, func() {
						shutdownErr := shutdowner.Shutdown()
						if shutdownErr != nil {
							slog.Error("failed to trigger shutdown",
								slog.String("name", name), slog.String("error", shutdownErr.Error()))
						}
					})
				},
				fx.ParamTags("", tag, tag),
				fx.ResultTags(tag),
			),
		),
		fx.Invoke(
			fx.Annotate(
				func(lifecycle fx.Lifecycle, srv *Server) {
					lifecycle.Append(fx.Hook{
						OnStart: srv.Start,
						OnStop:  srv.Stop,
					})
				},
				fx.ParamTags("", tag),
			),
		),
	)

	return fx.Module(name, moduleOpts...)
}
