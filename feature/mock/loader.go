package mock

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the mock feature.
func NewFeature(cfg Config, resolver *Resolver, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(cfg, resolver, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "mock"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.handler.cfg.Validate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
