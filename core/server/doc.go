// Package server owns the listener side of the mock server.
//
// # Configuration
//
// Config defines the bind host, port and whether CORS is enabled. Validate
// enforces the 1-65535 port range before anything is bound.
//
// # Binding
//
// Listen binds the TCP port itself instead of letting Fiber do it, so that a
// failure can be classified before the readiness line is printed. The error
// wraps ErrPortInUse when the kernel reports EADDRINUSE and ErrBind otherwise;
// callers test it with errors.Is. The port is never probed ahead of time.
//
// # Serving
//
// Serve hands the listener to Fiber and blocks until the context is cancelled,
// at which point the app is shut down gracefully.
package server
