package cfg_test

import (
	"io"
	"testing"
	"time"

	cfg "github.com/0xalexb/hjarta-cfg"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	var opts cfg.Options

	for _, apply := range []cfg.Option{
		cfg.WithLogLevel("debug"),
		cfg.WithLogFormat("text"),
		cfg.WithLogOutput(io.Discard),
		cfg.WithStoreFile("app.cfg"),
		cfg.WithWatch(time.Second),
	} {
		apply(&opts)
	}

	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, "text", opts.LogFormat)
	assert.Equal(t, io.Discard, opts.LogOutput)
	assert.Equal(t, "app.cfg", opts.StorePath)
	assert.True(t, opts.Watch)
	assert.Equal(t, time.Second, opts.WatchDebounce)
}

func TestOptions_ZeroValue(t *testing.T) {
	t.Parallel()

	var opts cfg.Options

	assert.Empty(t, opts.LogLevel)
	assert.False(t, opts.Watch)
	assert.Nil(t, opts.LogOutput)
}

func TestWithModules(t *testing.T) {
	t.Parallel()

	var opts cfg.Options

	cfg.WithModules(fx.Module("test1"))(&opts)
	assert.Len(t, opts.Modules, 1)

	cfg.WithModules(fx.Module("test2"), fx.Module("test3"))(&opts)
	assert.Len(t, opts.Modules, 3)
}

func TestWithListeners(t *testing.T) {
	t.Parallel()

	var opts cfg.Options

	cfg.WithHTTPListener("admin")(&opts)
	assert.Len(t, opts.Modules, 1)

	cfg.WithQueryListener()(&opts)
	assert.Len(t, opts.Modules, 3, "handler provider and listener module")
}
