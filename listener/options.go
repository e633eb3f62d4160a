package listener

import "time"

// Option defines a function type for configuring an HTTP listener.
type Option func(*Config)

// WithAddress sets the address for the HTTP listener.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithTimeouts sets the per-request read and write timeouts.
func WithTimeouts(read, write time.Duration) Option {
	return func(cfg *Config) {
		cfg.ReadTimeout = read
		cfg.WriteTimeout = write
	}
}
