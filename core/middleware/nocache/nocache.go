package nocache

import "github.com/gofiber/fiber/v2"

// Header values understood by both HTTP/1.1 (Cache-Control) and
// HTTP/1.0 (Pragma, Expires) caches.
const (
	CacheControlValue = "no-store, no-cache, must-revalidate"
	PragmaValue       = "no-cache"
	ExpiresValue      = "0"
)

// New returns a middleware that disables client-side caching.
//
// The downstream chain runs first; the headers are then set on the buffered
// response, so they land after whatever the static handler wrote and each
// appears exactly once. The headers are applied to every response regardless
// of status code, including 304 and 404.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		c.Set(fiber.HeaderCacheControl, CacheControlValue)
		c.Set(fiber.HeaderPragma, PragmaValue)
		c.Set(fiber.HeaderExpires, ExpiresValue)

		return err
	}
}
