package store

import (
	"errors"

	"go.uber.org/fx"
)

// ErrEmptyPath is returned when a module is created without a file path.
var ErrEmptyPath = errors.New("store path must not be empty")

// NewModule creates an Fx module that loads the .cfg file at path when the
// container is built and provides both the *Store and a *Holder wrapping it.
// Components that must observe reloads depend on *Holder.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(path string) fx.Option {
	if path == "" {
		return fx.Error(ErrEmptyPath)
	}

	return fx.Module("store",
		fx.Provide(
			func() (*Store, error) {
				return New(path)
			},
			NewHolder,
		),
	)
}
