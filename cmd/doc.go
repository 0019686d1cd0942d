// Package cmd implements the mocklet command line.
//
// The root command loads configuration, validates the endpoint, status and
// port, binds the listener and serves the mock route until SIGINT or SIGTERM.
// Startup failures are returned from the command and rendered by Execute as
// a single human-readable line on stderr before exiting with status 1.
package cmd
