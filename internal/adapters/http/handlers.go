package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/samirrijal/tunimap/internal/adapters/geojson"
	"github.com/samirrijal/tunimap/internal/core/domain"
)

const (
	HeaderSearchMode     = "X-Search-Mode"
	HeaderSearchFallback = "X-Search-Fallback"

	maxQueryLength = 200
)

// queryLookup adapts fiber query access to domain.ParseMunicipalityQuery.
// Values are copied out of fiber's reusable request buffer.
func queryLookup(c *fiber.Ctx) func(string) string {
	return func(key string) string { return utils.CopyString(c.Query(key)) }
}

// ListMunicipalitiesHandler searches, filters and sorts governorates.
func ListMunicipalitiesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := domain.ParseMunicipalityQuery(queryLookup(c))

		res, err := deps.Municipalities.List(c.UserContext(), q)
		if err != nil {
			return errInternal(c, err)
		}

		if res.Search != nil {
			c.Set(HeaderSearchMode, string(res.Search.ModeUsed))
			c.Set(HeaderSearchFallback, strconv.FormatBool(res.Search.FallbackApplied))
		}
		return c.JSON(res.Governorates)
	}
}

// NearbyMunicipalitiesHandler returns delegations within a radius of a point.
// Unusable parameters return the whole dataset rather than an error.
func NearbyMunicipalitiesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := domain.ParseNearbyParams(c.Query("lat"), c.Query("lng"), c.Query("radius"))

		govs, err := deps.Municipalities.Nearby(c.UserContext(), params)
		if err != nil {
			return errInternal(c, err)
		}
		return c.JSON(govs)
	}
}

// StatsHandler returns dataset counts.
func StatsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := deps.Municipalities.Stats(c.UserContext())
		if err != nil {
			return errInternal(c, err)
		}
		return c.JSON(st)
	}
}

// SuggestHandler returns names close to a possibly misspelled term.
func SuggestHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			return errBadRequest(c, "q query parameter is required")
		}
		if len(query) > maxQueryLength {
			return errBadRequest(c, "query too long (max 200 characters)")
		}
		limit := c.QueryInt("limit", deps.suggestLimit())

		out, err := deps.Municipalities.Suggest(c.UserContext(), query, limit)
		if err != nil {
			return errInternal(c, err)
		}
		return c.JSON(out)
	}
}

// GeoJSONHandler renders the list endpoint result as delegation points.
func GeoJSONHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := domain.ParseMunicipalityQuery(queryLookup(c))

		res, err := deps.Municipalities.List(c.UserContext(), q)
		if err != nil {
			return errInternal(c, err)
		}

		body, err := geojson.Marshal(res.Governorates)
		if err != nil {
			return errInternal(c, err)
		}
		c.Set(fiber.HeaderContentType, geojson.ContentType)
		return c.Send(body)
	}
}
