package static

import (
	"devserve/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Static feature.
func NewFeature(cfg server.Config, logger *zap.Logger) *Feature {
	svc := NewService(cfg, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load resolves the serving root and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	root, err := f.service.Resolve()
	if err != nil {
		return err
	}
	f.service.logger.Info("Serving static files", zap.String("root", root))
	f.handler.RegisterRoutes(app, root)
	return nil
}
