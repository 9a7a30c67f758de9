package static

import (
	"github.com/gofiber/fiber/v2"
)

// Handler mounts the file-serving routes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts Fiber's static file handler at the site root.
// Path resolution, traversal safety, content types and the 404/403/405
// policy are all the delegate's defaults; caching behavior is handled
// upstream by the nocache middleware.
func (h *Handler) RegisterRoutes(app fiber.Router, root string) {
	app.Static("/", root, fiber.Static{
		Index:     h.service.Index(),
		ByteRange: true,
	})
}
