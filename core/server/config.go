package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// ErrInvalidPort is returned when the configured port is outside 1-65535.
var ErrInvalidPort = errors.New("invalid port")

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to. Empty means all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port int `mapstructure:"port" default:"8080"`
	// CORS enables the permissive CORS middleware.
	CORS bool `mapstructure:"cors" default:"true"`
}

// Validate checks the port range.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d (must be between 1 and 65535)", ErrInvalidPort, c.Port)
	}
	return nil
}

// Addr returns the host:port address to bind.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// PublicURL returns the URL announced once the server is listening.
func (c Config) PublicURL(path string) string {
	host := c.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Port)) + path
}
