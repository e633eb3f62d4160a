// Package api serves a read-only JSON view of a store over HTTP.
//
// Routes (all GET):
//
//	/healthz                                  liveness
//	/metrics                                  Prometheus metrics
//	/v1/sections                              section names, parents and attributes
//	/v1/sections/{section}                    resolved entries of one section
//	/v1/sections/{section}/attributes         the section's attributes
//	/v1/sections/{section}/keys/{key}         one value with its origin section
//
// The unnamed root section is addressed as "~". Every request reads the
// store currently published by the store.Holder, so reloads are visible
// without restarting the server.
package api
