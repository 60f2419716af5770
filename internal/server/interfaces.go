package server

// Server is what main runs: RunServer blocks until a stop signal has been
// handled, and Shutdown drains in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
