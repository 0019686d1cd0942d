package requestlog

import (
	"time"

	"mocklet/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware logging every request with its RayID.
// It must be registered after the rayid middleware.
func New(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(log, c)
		start := time.Now()

		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}

		l.Info("Request served",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	}
}
