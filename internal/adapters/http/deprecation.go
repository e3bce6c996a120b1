package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/samirrijal/tunimap/internal/core/domain"
)

// DeprecatedParam marks a query parameter as deprecated.
type DeprecatedParam struct {
	Name        string    // Query parameter name
	Alternative string    // Parameter clients should use instead
	SunsetDate  time.Time // Zero means no removal date is announced
}

// LegacySearchParams returns the deprecated search parameters of the list
// endpoint.
func LegacySearchParams() []DeprecatedParam {
	var out []DeprecatedParam
	for _, p := range domain.SearchParams {
		if p.Deprecated {
			out = append(out, DeprecatedParam{Name: p.Name, Alternative: "search"})
		}
	}
	return out
}

// DeprecationMiddleware adds Deprecation, Sunset, Link and Warning headers
// when a request carries one of the deprecated parameters.
func DeprecationMiddleware(deprecated []DeprecatedParam) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, d := range deprecated {
			if c.Query(d.Name) == "" {
				continue
			}

			// RFC 8594 Deprecation header
			c.Set("Deprecation", "true")

			if !d.SunsetDate.IsZero() {
				c.Set("Sunset", d.SunsetDate.UTC().Format(time.RFC1123))
			}

			if d.Alternative != "" {
				c.Set("Link", fmt.Sprintf(`<%s?%s=>; rel="successor-version"`, c.Path(), d.Alternative))
				c.Set("Warning", fmt.Sprintf(`299 - "Query parameter '%s' is deprecated, use '%s'"`, d.Name, d.Alternative))
			} else {
				c.Set("Warning", fmt.Sprintf(`299 - "Query parameter '%s' is deprecated"`, d.Name))
			}

			break
		}

		return c.Next()
	}
}
