package usecases

import (
	"github.com/samirrijal/tunimap/internal/core/domain"
	"github.com/samirrijal/tunimap/internal/pkg/geospatial"
)

// WithinRadius keeps delegations whose centroid lies at most radiusKm from
// center, dropping governorates left empty. Input order is preserved.
func WithinRadius(center domain.GeoPoint, radiusKm float64, govs []domain.Governorate) []domain.Governorate {
	out := make([]domain.Governorate, 0, len(govs))
	for _, g := range govs {
		var kept []domain.Delegation
		for _, d := range g.Delegations {
			if geospatial.DistanceKm(center.Lat, center.Lon, d.Latitude, d.Longitude) <= radiusKm {
				kept = append(kept, d)
			}
		}
		if len(kept) > 0 {
			out = append(out, g.WithDelegations(kept))
		}
	}
	return out
}
