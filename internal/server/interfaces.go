package server

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until a stop signal arrives or the listener fails;
// Shutdown drains in-flight requests and releases the listener.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns an error only when the listener could not serve.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
