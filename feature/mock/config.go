package mock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrInvalidEndpoint is returned when the endpoint does not start with "/".
	ErrInvalidEndpoint = errors.New(`the API endpoint must start with "/"`)
	// ErrInvalidStatus is returned when the status is not a valid HTTP status code.
	ErrInvalidStatus = errors.New("invalid HTTP status code")
)

// DefaultResponse is served when no response specifier is configured.
const DefaultResponse = `{"response": "success"}`

// Config holds the route definition of the mock.
type Config struct {
	// Endpoint is the only path the server answers on.
	Endpoint string `mapstructure:"endpoint" default:"/api"`
	// Response is literal text, literal JSON, a file path or an s3:// key.
	Response string `mapstructure:"response" default:"{\"response\": \"success\"}"`
	// Status is the HTTP status of successful responses. Zero means 200.
	Status int `mapstructure:"status" default:"200"`
}

// Validate checks the endpoint and status before the listener is bound.
func (c Config) Validate() error {
	if !strings.HasPrefix(c.Endpoint, "/") {
		return fmt.Errorf("%w: got %q", ErrInvalidEndpoint, c.Endpoint)
	}
	if c.Status != 0 && (c.Status < 100 || c.Status > 599) {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, c.Status)
	}
	return nil
}

// StatusCode returns the status to send for successful responses.
func (c Config) StatusCode() int {
	if c.Status == 0 {
		return fiber.StatusOK
	}
	return c.Status
}
