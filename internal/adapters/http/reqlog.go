package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samirrijal/tunimap/internal/pkg/logging"
)

// RequestIDLogMiddleware copies the Fiber request ID into the user context
// together with a request-scoped logger, so usecases can log with
// logging.FromContext.
func RequestIDLogMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid, ok := c.Locals("requestid").(string)
		if !ok || rid == "" {
			return c.Next()
		}

		c.SetUserContext(logging.WithRequest(c.UserContext(), rid))
		return c.Next()
	}
}
