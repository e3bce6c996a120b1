package domain

import (
	"math"
	"strconv"
	"strings"
)

// SearchMode selects which level of the hierarchy a search term is matched
// against first.
type SearchMode string

const (
	SearchGovernorate SearchMode = "governorate"
	SearchDelegation  SearchMode = "delegation"
)

// Other returns the fallback mode.
func (m SearchMode) Other() SearchMode {
	if m == SearchDelegation {
		return SearchGovernorate
	}
	return SearchDelegation
}

// Normalize maps anything that is not a delegation search to governorate.
func (m SearchMode) Normalize() SearchMode {
	if m == SearchDelegation {
		return SearchDelegation
	}
	return SearchGovernorate
}

// SortField names a sortable governorate field. Unknown values are kept so
// callers can still see them, but sorting on them is a no-op.
type SortField string

const (
	SortNone   SortField = ""
	SortName   SortField = "name"
	SortNameAr SortField = "nameAr"
)

// Known reports whether sorting on f changes anything.
func (f SortField) Known() bool {
	return f == SortName || f == SortNameAr
}

// SortOrder is asc unless explicitly "desc".
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortOrder treats every value other than "desc" as ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(OrderDesc)) {
		return OrderDesc
	}
	return OrderAsc
}

// MunicipalityQuery is the typed form of the list endpoint parameters.
type MunicipalityQuery struct {
	// Term is the search text; empty means no search stage.
	Term string
	// SearchMode is the primary mode implied by the parameter that carried Term.
	SearchMode SearchMode
	// SearchParam is the query parameter name Term came from.
	SearchParam string
	PostalCode  string
	Sort        SortField
	Order       SortOrder
}

// HasSearch reports whether a search stage runs.
func (q MunicipalityQuery) HasSearch() bool { return q.Term != "" }

// SearchParamSpec declares one recognised search parameter.
type SearchParamSpec struct {
	Name       string
	Mode       SearchMode
	Deprecated bool
}

// SearchParams lists the search parameters in priority order. The first one
// with a non-empty value is honored; the rest are ignored.
var SearchParams = []SearchParamSpec{
	{Name: "search", Mode: SearchGovernorate},
	{Name: "name", Mode: SearchGovernorate, Deprecated: true},
	{Name: "delegation", Mode: SearchDelegation, Deprecated: true},
}

// Non-search parameters of the list endpoint.
const (
	ParamPostalCode = "postalCode"
	ParamSort       = "sort"
	ParamOrder      = "order"
)

// ParseMunicipalityQuery builds a query from a parameter lookup. Missing
// parameters must be reported as "".
func ParseMunicipalityQuery(lookup func(key string) string) MunicipalityQuery {
	q := MunicipalityQuery{
		PostalCode: lookup(ParamPostalCode),
		Sort:       SortField(lookup(ParamSort)),
		Order:      ParseSortOrder(lookup(ParamOrder)),
	}
	for _, p := range SearchParams {
		if v := lookup(p.Name); v != "" {
			q.Term = v
			q.SearchMode = p.Mode
			q.SearchParam = p.Name
			break
		}
	}
	return q
}

// NearbyParams holds the raw numeric parameters of a radius query. A nil
// field means the parameter was missing or not a number.
type NearbyParams struct {
	Lat    *float64
	Lng    *float64
	Radius *float64
}

// ParseNearbyParams parses the string parameters of a radius query.
func ParseNearbyParams(lat, lng, radius string) NearbyParams {
	return NearbyParams{
		Lat:    parseFloat(lat),
		Lng:    parseFloat(lng),
		Radius: parseFloat(radius),
	}
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// NearbyQuery is a resolved radius query. When Active is false the full
// dataset is returned unfiltered.
type NearbyQuery struct {
	Center   GeoPoint
	RadiusKm float64
	Active   bool
}

// NearbyPolicy decides when a radius query is applied.
type NearbyPolicy struct {
	// ZeroDisablesFilter treats a zero lat, lng or radius like a missing one.
	ZeroDisablesFilter bool
}

// DefaultNearbyPolicy mirrors the historic behavior of the public API.
var DefaultNearbyPolicy = NearbyPolicy{ZeroDisablesFilter: true}

// Resolve turns raw parameters into a query. Missing, non-finite or
// out-of-range values disable the filter. A negative radius stays active and
// matches nothing.
func (p NearbyPolicy) Resolve(params NearbyParams) NearbyQuery {
	if params.Lat == nil || params.Lng == nil || params.Radius == nil {
		return NearbyQuery{}
	}
	lat, lng, r := *params.Lat, *params.Lng, *params.Radius
	for _, v := range []float64{lat, lng, r} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NearbyQuery{}
		}
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return NearbyQuery{}
	}
	if p.ZeroDisablesFilter && (lat == 0 || lng == 0 || r == 0) {
		return NearbyQuery{}
	}
	return NearbyQuery{Center: GeoPoint{Lat: lat, Lon: lng}, RadiusKm: r, Active: true}
}

// SearchReport describes how the search stage of a list query resolved.
type SearchReport struct {
	Param           string
	Requested       SearchMode
	ModeUsed        SearchMode
	FallbackApplied bool
}

// ListResult is the outcome of a list query. Search is nil when no search
// parameter was given.
type ListResult struct {
	Governorates []Governorate
	Search       *SearchReport
}
