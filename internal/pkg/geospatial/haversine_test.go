package geospatial

import (
	"math"
	"testing"

	geo "github.com/kellydunn/golang-geo"
	"github.com/stretchr/testify/assert"
)

var points = []struct {
	name     string
	lat, lon float64
}{
	{"ariana ville", 36.866011, 10.193923},
	{"tunis bab bhar", 36.7990, 10.1800},
	{"sfax ville", 34.7406, 10.7603},
	{"tozeur", 33.9197, 8.1335},
	{"equator origin", 0, 0},
	{"sydney", -33.8688, 151.2093},
}

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	for _, p := range points {
		assert.Zero(t, DistanceKm(p.lat, p.lon, p.lat, p.lon), p.name)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	for _, a := range points {
		for _, b := range points {
			ab := DistanceKm(a.lat, a.lon, b.lat, b.lon)
			ba := DistanceKm(b.lat, b.lon, a.lat, a.lon)
			assert.InDelta(t, ab, ba, 1e-9, "%s <-> %s", a.name, b.name)
			assert.GreaterOrEqual(t, ab, 0.0)
		}
	}
}

func TestDistanceKm_MatchesGreatCircleOracle(t *testing.T) {
	for _, a := range points {
		for _, b := range points {
			want := geo.NewPoint(a.lat, a.lon).GreatCircleDistance(geo.NewPoint(b.lat, b.lon))
			got := DistanceKm(a.lat, a.lon, b.lat, b.lon)
			assert.InDelta(t, want, got, 1e-6, "%s -> %s", a.name, b.name)
		}
	}
}

func TestDistanceKm_KnownValues(t *testing.T) {
	// One degree of latitude on a 6371 km sphere.
	assert.InDelta(t, 2*math.Pi*EarthRadiusKm/360, DistanceKm(0, 0, 1, 0), 1e-9)

	// Half the circumference between antipodes.
	assert.InDelta(t, math.Pi*EarthRadiusKm, DistanceKm(0, 0, 0, 180), 1e-6)

	// A few kilometers from the Ariana Ville centroid.
	d := DistanceKm(36.8, 10.19, 36.866011, 10.193923)
	assert.Greater(t, d, 7.0)
	assert.Less(t, d, 8.0)
}

func TestHaversine_Meters(t *testing.T) {
	km := DistanceKm(36.8, 10.19, 36.866011, 10.193923)
	assert.InDelta(t, km*1000, Haversine(36.8, 10.19, 36.866011, 10.193923), 1e-6)
}

func TestValidCoordinate(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{36.8, 10.19, true},
		{90, 180, true},
		{-90, -180, true},
		{0, 0, true},
		{90.0001, 0, false},
		{0, -180.5, false},
		{math.NaN(), 0, false},
		{0, math.Inf(1), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidCoordinate(tt.lat, tt.lon), "lat=%v lon=%v", tt.lat, tt.lon)
	}
}
