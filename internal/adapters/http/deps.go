package http

import (
	"time"

	"github.com/samirrijal/tunimap/internal/adapters/dataset"
	"github.com/samirrijal/tunimap/internal/adapters/postgres"
	"github.com/samirrijal/tunimap/internal/core/usecases"
)

const (
	defaultRateLimitMax    = 120
	defaultRateLimitWindow = time.Minute
	defaultHandlerTimeout  = 15 * time.Second
	defaultSuggestLimit    = usecases.DefaultSuggestLimit
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Municipalities *usecases.MunicipalityService
	Dataset        *dataset.Store
	DB             *postgres.DB // nil unless the dataset is served from Postgres

	// Zero values fall back to the defaults above.
	RateLimitMax    int
	RateLimitWindow time.Duration
	HandlerTimeout  time.Duration
	SuggestLimit    int
	Version         string
}

func (d *Dependencies) rateLimit() (int, time.Duration) {
	n, window := d.RateLimitMax, d.RateLimitWindow
	if n <= 0 {
		n = defaultRateLimitMax
	}
	if window <= 0 {
		window = defaultRateLimitWindow
	}
	return n, window
}

func (d *Dependencies) handlerTimeout() time.Duration {
	if d.HandlerTimeout <= 0 {
		return defaultHandlerTimeout
	}
	return d.HandlerTimeout
}

func (d *Dependencies) suggestLimit() int {
	if d.SuggestLimit <= 0 {
		return defaultSuggestLimit
	}
	return d.SuggestLimit
}

func (d *Dependencies) version() string {
	if d.Version == "" {
		return "dev"
	}
	return d.Version
}
