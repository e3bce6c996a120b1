package telemetry

// Span and attribute names used for instrumentation.
const (
	TracerName = "github.com/samirrijal/tunimap"

	// Spans
	SpanList    = "municipalities.list"
	SpanNearby  = "municipalities.nearby"
	SpanStats   = "municipalities.stats"
	SpanSuggest = "municipalities.suggest"
	SpanLoad    = "dataset.load"

	// Attributes
	AttrSearchParam    = "search.param"
	AttrSearchMode     = "search.mode_used"
	AttrSearchFallback = "search.fallback_applied"
	AttrPostalCode     = "filter.postal_code"
	AttrSortField      = "sort.field"
	AttrSortOrder      = "sort.order"
	AttrNearbyActive   = "nearby.active"
	AttrNearbyRadius   = "nearby.radius_km"
	AttrResultCount    = "result.governorates"
	AttrDatasetSource  = "dataset.source"
)
