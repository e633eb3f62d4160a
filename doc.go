// Package cfg wires the hjarta-cfg components into an Fx application:
// a store loaded from a .cfg file, an optional file watcher that reloads it,
// and an optional HTTP listener serving the read-only query API.
//
//	app := cfg.NewApp(
//		cfg.WithLogLevel("info"),
//		cfg.WithStoreFile("app.cfg"),
//		cfg.WithWatch(0),
//		cfg.WithQueryListener(listener.WithAddress("127.0.0.1:8080")),
//	)
//	app.Run()
//
// The packages can also be used on their own; see store for the typed
// accessors and parser for the file format.
package cfg
