package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// Run serves requests until ctx is cancelled or the listener fails,
	// then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// no longer than ctx allows.
	Shutdown(ctx context.Context) error
}
