package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/timeout"

	"github.com/samirrijal/tunimap/internal/pkg/metrics"
)

// SetupRoutes registers all REST, GraphQL and documentation routes. The app
// should be created with ErrorHandler as its error handler.
func SetupRoutes(app *fiber.App, deps *Dependencies) {
	// Panics become errors and reach ErrorHandler as a generic 500.
	app.Use(recover.New())

	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Response compression (gzip)
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // Balance speed vs compression ratio
	}))

	// Request ID
	app.Use(requestid.New())

	// Propagate request ID into slog context
	app.Use(RequestIDLogMiddleware())

	// Access logs (structured HTTP request logging)
	app.Use(AccessLogMiddleware())

	// Rate limiting per IP
	maxRequests, window := deps.rateLimit()
	app.Use(limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return newError(c, fiber.StatusTooManyRequests, "rate_limited",
				"Too many requests", "too many requests, please try again later")
		},
	}))

	// Security headers + API version
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("X-API-Version", "1.0.0")
		return c.Next()
	})

	// ETag for conditional caching
	app.Use(ETagMiddleware())

	// Default Cache-Control headers
	app.Use(CachingMiddleware())

	withTimeout := func(h fiber.Handler) fiber.Handler {
		return timeout.NewWithContext(h, deps.handlerTimeout())
	}

	api := app.Group("/api")

	// Health & readiness (no timeout, fast internal checks)
	api.Get("/health", HealthHandler(deps))
	api.Get("/ready", ReadyHandler(deps))

	legacy := DeprecationMiddleware(LegacySearchParams())
	api.Get("/municipalities", legacy, withTimeout(ListMunicipalitiesHandler(deps)))
	api.Get("/municipalities/near", withTimeout(NearbyMunicipalitiesHandler(deps)))
	api.Get("/municipalities/stats", withTimeout(StatsHandler(deps)))
	api.Get("/municipalities/suggest", withTimeout(SuggestHandler(deps)))
	api.Get("/municipalities/geojson", legacy, withTimeout(GeoJSONHandler(deps)))

	// GraphQL
	app.Post("/graphql", withTimeout(GraphQLHandler(deps)))

	// API documentation (Swagger UI)
	SetupDocs(app)
}
