// Package middleware provides the HTTP middleware used in front of the query
// API: access logging, panic recovery and Prometheus request metrics.
//
// Request IDs come from chi's middleware.RequestID, which must run first for
// the "request_id" log attribute to be present.
package middleware
