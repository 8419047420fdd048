// Package server runs the blog API over HTTP.
//
// It owns the listener lifecycle: startup, reaction to cancellation of the
// run context, and graceful shutdown bounded by the configured timeout.
package server
