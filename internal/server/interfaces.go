package server

// Server is the lifecycle contract main works against. The HTTP server is
// the only transport behind it today.
//
// RunServer blocks until a stop signal arrives; Shutdown drains in-flight
// requests and releases listeners.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
