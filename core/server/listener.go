package server

import (
	"errors"
	"fmt"
	"net"
	"syscall"
)

var (
	// ErrPortInUse is returned when another process already holds the port.
	ErrPortInUse = errors.New("port already in use")
	// ErrBind is returned for every other failure to bind the listener.
	ErrBind = errors.New("failed to bind listener")
)

// netListen creates the TCP listener. Only tests replace it.
var netListen = net.Listen

// Listen binds the configured address. The returned error wraps either
// ErrPortInUse or ErrBind together with the underlying cause.
func Listen(cfg Config) (net.Listener, error) {
	ln, err := netListen("tcp", cfg.Addr())
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return nil, &BindError{Port: cfg.Port, kind: ErrPortInUse, cause: err}
		}
		return nil, &BindError{Port: cfg.Port, kind: ErrBind, cause: err}
	}
	return ln, nil
}

// BindError describes a failure to bind the server port.
type BindError struct {
	Port  int
	kind  error
	cause error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("%v on port %d: %v", e.kind, e.Port, e.cause)
}

// Is matches the error kind, so errors.Is(err, ErrPortInUse) works.
func (e *BindError) Is(target error) bool {
	return target == e.kind
}

func (e *BindError) Unwrap() error {
	return e.cause
}
