package server

// Server runs the registry's transports.
//
// RunServer blocks until the process receives a stop signal; Shutdown stops
// every started transport and may be called on its own.
type Server interface {
	RunServer()
	Shutdown()
}
