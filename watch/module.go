package watch

import (
	"github.com/0xalexb/hjarta-cfg/store"
	"go.uber.org/fx"
)

// CallbackGroup is the Fx value group reload callbacks are collected from.
const CallbackGroup = "watch_callbacks"

// NewModule creates an Fx module that watches the store file and keeps the
// *store.Holder provided by store.NewModule up to date. Callbacks provided
// into CallbackGroup run after each successful reload.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(cfg Config) fx.Option {
	return fx.Module("watch",
		fx.Provide(
			fx.Annotate(
				func(holder *store.Holder, callbacks []Callback) (*Watcher, error) {
					return New(cfg, holder, callbacks...)
				},
				fx.ParamTags("", `group:"`+CallbackGroup+`"`),
			),
		),
		fx.Invoke(func(lifecycle fx.Lifecycle, w *Watcher) {
			lifecycle.Append(fx.Hook{
				OnStart: w.Start,
				OnStop:  w.Stop,
			})
		}),
	)
}
