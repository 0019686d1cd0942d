package mock

import (
	"errors"

	"mocklet/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Bodies sent when the response source is broken.
const (
	MessageInvalidJSON = "Server Error: Invalid JSON file."
	MessageFileRead    = "Server Error: Unable to read response file."
)

// Handler serves the configured response on the mock endpoint.
type Handler struct {
	cfg      Config
	resolver *Resolver
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(cfg Config, resolver *Resolver, logger *zap.Logger) *Handler {
	return &Handler{cfg: cfg, resolver: resolver, logger: logger}
}

// RegisterRoutes registers the mock endpoint for every HTTP method.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.All(h.cfg.Endpoint, h.HandleMock)
}

// HandleMock resolves the response source and writes it out.
// Resolution failures always produce a 500, whatever status is configured.
func (h *Handler) HandleMock(c *fiber.Ctx) error {
	res, err := h.resolver.Resolve(c.UserContext(), h.cfg.Response)
	if err != nil {
		l := logger.WithRayID(h.logger, c)
		switch {
		case errors.Is(err, ErrInvalidJSONFile):
			l.Error("Error parsing JSON response file", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).SendString(MessageInvalidJSON)
		default:
			l.Error("Error reading response file", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).SendString(MessageFileRead)
		}
	}

	c.Set(fiber.HeaderContentType, res.ContentType)
	return c.Status(h.cfg.StatusCode()).Send(res.Body)
}
