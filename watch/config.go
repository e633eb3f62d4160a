package watch

import (
	"errors"
	"time"
)

// DefaultDebounce is the delay applied when Config.Debounce is zero.
const DefaultDebounce = 250 * time.Millisecond

// ErrEmptyPath is returned when Config.Path is empty.
var ErrEmptyPath = errors.New("watch path must not be empty")

// ErrNegativeDebounce is returned when Config.Debounce is negative.
var ErrNegativeDebounce = errors.New("debounce must not be negative")

// ErrNilHolder is returned when a watcher is created without a holder.
var ErrNilHolder = errors.New("holder must not be nil")

// Config holds the watcher settings.
type Config struct {
	Path     string        `yaml:"path"`
	Debounce time.Duration `yaml:"debounce"`
}

// SetDefaults fills in the debounce delay.
func (c *Config) SetDefaults() bool {
	if c.Debounce == 0 {
		c.Debounce = DefaultDebounce

		return true
	}

	return false
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrEmptyPath
	}

	if c.Debounce < 0 {
		return ErrNegativeDebounce
	}

	return nil
}
