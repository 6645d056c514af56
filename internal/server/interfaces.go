package server

import "context"

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer serves until a termination signal arrives.
	RunServer() error

	// Run serves until ctx is done or a transport fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the servers and the background workers.
	Shutdown()
}
