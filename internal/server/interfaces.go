package server

import "context"

// Server is the lifecycle contract of the service's transport server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT is received and then
	// shuts down gracefully.
	RunServer()

	// Run serves until ctx is cancelled or serving fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
