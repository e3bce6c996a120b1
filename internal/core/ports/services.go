package ports

import (
	"context"

	"github.com/samirrijal/tunimap/internal/core/domain"
)

// MunicipalityQuerier is the read side consumed by the transports.
type MunicipalityQuerier interface {
	List(ctx context.Context, q domain.MunicipalityQuery) (domain.ListResult, error)
	Nearby(ctx context.Context, params domain.NearbyParams) ([]domain.Governorate, error)
	Stats(ctx context.Context) (domain.DatasetStats, error)
	Suggest(ctx context.Context, term string, limit int) ([]domain.Suggestion, error)
}
