// Package geojson renders the governorate hierarchy as a GeoJSON feature
// collection with one point per delegation.
package geojson

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/samirrijal/tunimap/internal/core/domain"
)

// ContentType is the registered media type for GeoJSON.
const ContentType = "application/geo+json"

// FromGovernorates flattens govs into delegation point features.
func FromGovernorates(govs []domain.Governorate) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, g := range govs {
		for _, d := range g.Delegations {
			f := geojson.NewFeature(orb.Point{d.Longitude, d.Latitude})
			f.ID = g.Code + "/" + d.Code
			f.Properties["name"] = d.Name
			f.Properties["name_ar"] = d.NameAr
			f.Properties["code"] = d.Code
			f.Properties["postal_code"] = d.PostalCode
			f.Properties["governorate"] = g.Name
			f.Properties["governorate_ar"] = g.NameAr
			fc.Append(f)
		}
	}
	return fc
}

// Marshal renders govs as GeoJSON bytes.
func Marshal(govs []domain.Governorate) ([]byte, error) {
	return FromGovernorates(govs).MarshalJSON()
}
