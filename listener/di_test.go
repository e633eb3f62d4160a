package listener

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0xalexb/hjarta-cfg/api"
	"github.com/0xalexb/hjarta-cfg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// captureAddr records the bound address of the named listener once the app starts.
func captureAddr(name string, addr *string) fx.Option {
	return fx.Invoke(fx.Annotate(
		func(lifecycle fx.Lifecycle, srv *Server) {
			lifecycle.Append(fx.StartHook(func() { *addr = srv.Addr() }))
		},
		fx.ParamTags("", NameTag(name)),
	))
}

func supplyHandler(name string, handler http.Handler) fx.Option {
	return fx.Supply(fx.Annotate(handler, fx.As(new(http.Handler)), fx.ResultTags(NameTag(name))))
}

func TestNewModule_ServesStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "served.cfg")
	require.NoError(t, os.WriteFile(path, []byte("title = demo\n[name]\narray = [1, 2, 3]\n"), 0o600))

	var addr string

	app := fxtest.New(t,
		store.NewModule(path),
		fx.Provide(fx.Annotate(api.NewHandler, fx.ResultTags(NameTag("query")))),
		NewModule("query", WithAddress("127.0.0.1:0")),
		captureAddr("query", &addr),
	)

	app.RequireStart()
	t.Cleanup(app.RequireStop)

	status, body := get(t, "http://"+addr+"/v1/sections/name/keys/array")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"value":[1,2,3]`)
}

func TestNewModule_WithExternalConfig(t *testing.T) {
	t.Parallel()

	var addr string

	app := fxtest.New(t,
		supplyHandler("metrics", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})),
		fx.Supply(fx.Annotate(Config{Address: "127.0.0.1:0"}, fx.ResultTags(NameTag("metrics")))),
		NewModule("metrics"),
		captureAddr("metrics", &addr),
	)

	app.RequireStart()
	t.Cleanup(app.RequireStop)

	status, _ := get(t, "http://"+addr)

	assert.Equal(t, http.StatusNoContent, status)
}

func TestNewModule_TwoListeners(t *testing.T) {
	t.Parallel()

	text := func(s string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(s))
		})
	}

	var queryAddr, adminAddr string

	app := fxtest.New(t,
		supplyHandler("query", text("query")),
		supplyHandler("admin", text("admin")),
		NewModule("query", WithAddress("127.0.0.1:0")),
		NewModule("admin", WithAddress("127.0.0.1:0")),
		captureAddr("query", &queryAddr),
		captureAddr("admin", &adminAddr),
	)

	app.RequireStart()
	t.Cleanup(app.RequireStop)

	_, body := get(t, "http://"+queryAddr)
	assert.Equal(t, "query", body)

	_, body = get(t, "http://"+adminAddr)
	assert.Equal(t, "admin", body)
}

func TestNewModule_ShutdownStopsServer(t *testing.T) {
	t.Parallel()

	var addr string

	app := fxtest.New(t,
		supplyHandler("query", noop),
		NewModule("query", WithAddress("127.0.0.1:0")),
		captureAddr("query", &addr),
	)

	app.RequireStart()
	app.RequireStop()

	dialer := net.Dialer{Timeout: 100 * time.Millisecond} //nolint:exhaustruct

	conn, err := dialer.DialContext(context.Background(), "tcp", addr)
	if err == nil {
		_ = conn.Close()
	}

	assert.Error(t, err, "no connections after shutdown")
}

func TestNewModule_Errors(t *testing.T) {
	t.Parallel()

	t.Run("port in use", func(t *testing.T) {
		t.Parallel()

		taken := startServer(t, noop, nil)

		app := fx.New(
			supplyHandler("query", noop),
			NewModule("query", WithAddress(taken.Addr())),
			fx.NopLogger,
		)

		err := app.Start(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrListenFailed.Error())
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		app := fx.New(
			supplyHandler("", noop),
			NewModule(""),
			fx.NopLogger,
		)

		require.ErrorIs(t, app.Err(), ErrEmptyName)
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()

		app := fx.New(
			supplyHandler("query", noop),
			NewModule("query", WithAddress("no-port")),
			fx.NopLogger,
		)

		err := app.Err()

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrInvalidAddress.Error())
	})
}
