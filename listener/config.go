// Package listener provides a named HTTP listener module for the Fx DI container.
// The query API is served through it.
package listener

import (
	"errors"
	"fmt"
	"net"
	"time"
)

// DefaultAddress is the default address for the HTTP listener. It is loopback only.
const DefaultAddress = "127.0.0.1:8080"

// DefaultReadTimeout and DefaultWriteTimeout bound a single request.
const (
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)

// ErrEmptyAddress is returned when the address is empty.
var ErrEmptyAddress = errors.New("address must not be empty")

// ErrInvalidAddress is returned when the address is not host:port.
var ErrInvalidAddress = errors.New("invalid address")

// ErrNegativeTimeout is returned when a timeout is negative.
var ErrNegativeTimeout = errors.New("timeout must not be negative")

// ErrListenFailed is returned when the server fails to listen on the configured address.
var ErrListenFailed = errors.New("failed to listen")

// ErrShutdownFailed is returned when the server fails to shut down gracefully.
var ErrShutdownFailed = errors.New("shutdown failed")

// ErrEmptyName is returned when the listener name is empty.
var ErrEmptyName = errors.New("listener name must not be empty")

// ErrNilHandler is returned when a nil http.Handler is provided.
var ErrNilHandler = errors.New("handler must not be nil")

// Config holds the configuration for an HTTP listener.
type Config struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// SetDefaults fills in unset fields and reports whether anything changed.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.Address == "" {
		c.Address = DefaultAddress
		changed = true
	}

	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
		changed = true
	}

	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
		changed = true
	}

	return changed
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	_, _, err := net.SplitHostPort(c.Address)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	if c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return ErrNegativeTimeout
	}

	return nil
}
