package usecases

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samirrijal/tunimap/internal/core/domain"
	"github.com/samirrijal/tunimap/internal/core/ports"
	"github.com/samirrijal/tunimap/internal/pkg/logging"
	"github.com/samirrijal/tunimap/internal/pkg/metrics"
	"github.com/samirrijal/tunimap/internal/pkg/telemetry"
)

const (
	DefaultSuggestLimit       = 5
	MaxSuggestLimit           = 20
	DefaultSuggestMaxDistance = 3
)

// MunicipalityOptions tunes the query engine.
type MunicipalityOptions struct {
	Nearby             domain.NearbyPolicy
	SuggestMaxDistance int
}

// DefaultMunicipalityOptions returns the options the public API runs with.
func DefaultMunicipalityOptions() MunicipalityOptions {
	return MunicipalityOptions{
		Nearby:             domain.DefaultNearbyPolicy,
		SuggestMaxDistance: DefaultSuggestMaxDistance,
	}
}

// MunicipalityService answers read-only queries over the governorate dataset.
type MunicipalityService struct {
	repo ports.DatasetRepository
	opts MunicipalityOptions
}

// NewMunicipalityService creates a new MunicipalityService.
func NewMunicipalityService(repo ports.DatasetRepository, opts MunicipalityOptions) *MunicipalityService {
	if opts.SuggestMaxDistance <= 0 {
		opts.SuggestMaxDistance = DefaultSuggestMaxDistance
	}
	return &MunicipalityService{repo: repo, opts: opts}
}

// List runs search, postal code filter and sort, in that order. The result
// slice is never nil.
func (s *MunicipalityService) List(ctx context.Context, q domain.MunicipalityQuery) (domain.ListResult, error) {
	ctx, span := telemetry.Tracer().Start(ctx, telemetry.SpanList)
	defer span.End()

	govs, err := s.snapshot(ctx, span)
	if err != nil {
		return domain.ListResult{}, err
	}

	var report *domain.SearchReport
	if q.HasSearch() {
		outcome := EnhancedSearch(q.Term, q.SearchMode, govs)
		govs = outcome.Results
		report = &domain.SearchReport{
			Param:           q.SearchParam,
			Requested:       q.SearchMode.Normalize(),
			ModeUsed:        outcome.ModeUsed,
			FallbackApplied: outcome.FallbackApplied,
		}

		metrics.RecordSearch(string(outcome.ModeUsed), outcome.FallbackApplied)
		span.SetAttributes(
			attribute.String(telemetry.AttrSearchParam, q.SearchParam),
			attribute.String(telemetry.AttrSearchMode, string(outcome.ModeUsed)),
			attribute.Bool(telemetry.AttrSearchFallback, outcome.FallbackApplied),
		)
		logging.FromContext(ctx).Info("search resolved",
			"term", q.Term,
			"param", q.SearchParam,
			"search_used", outcome.ModeUsed,
			"fallback_applied", outcome.FallbackApplied,
			"results", len(outcome.Results),
		)
	}

	if q.PostalCode != "" {
		govs = FilterByPostalCode(q.PostalCode, govs)
		span.SetAttributes(attribute.String(telemetry.AttrPostalCode, q.PostalCode))
	}

	if q.Sort != domain.SortNone {
		govs = SortGovernorates(govs, q.Sort, q.Order)
		span.SetAttributes(
			attribute.String(telemetry.AttrSortField, string(q.Sort)),
			attribute.String(telemetry.AttrSortOrder, string(q.Order)),
		)
	}

	span.SetAttributes(attribute.Int(telemetry.AttrResultCount, len(govs)))
	metrics.ObserveResult("list", len(govs))
	return domain.ListResult{Governorates: govs, Search: report}, nil
}

// Nearby returns the delegations within the requested radius, or the whole
// dataset when the parameters do not form an active query.
func (s *MunicipalityService) Nearby(ctx context.Context, params domain.NearbyParams) ([]domain.Governorate, error) {
	ctx, span := telemetry.Tracer().Start(ctx, telemetry.SpanNearby)
	defer span.End()

	govs, err := s.snapshot(ctx, span)
	if err != nil {
		return nil, err
	}

	q := s.opts.Nearby.Resolve(params)
	metrics.RecordNearby(q.Active)
	span.SetAttributes(attribute.Bool(telemetry.AttrNearbyActive, q.Active))
	if q.Active {
		span.SetAttributes(attribute.Float64(telemetry.AttrNearbyRadius, q.RadiusKm))
		govs = WithinRadius(q.Center, q.RadiusKm, govs)
	} else {
		logging.FromContext(ctx).Debug("nearby filter disabled, returning full dataset")
	}

	span.SetAttributes(attribute.Int(telemetry.AttrResultCount, len(govs)))
	metrics.ObserveResult("nearby", len(govs))
	return govs, nil
}

// Stats counts governorates, delegations and distinct postal codes.
func (s *MunicipalityService) Stats(ctx context.Context) (domain.DatasetStats, error) {
	ctx, span := telemetry.Tracer().Start(ctx, telemetry.SpanStats)
	defer span.End()

	govs, err := s.snapshot(ctx, span)
	if err != nil {
		return domain.DatasetStats{}, err
	}
	return domain.ComputeStats(govs), nil
}

// Suggest returns near-miss names for term. limit is clamped to
// [1, MaxSuggestLimit]; zero or less means DefaultSuggestLimit.
func (s *MunicipalityService) Suggest(ctx context.Context, term string, limit int) ([]domain.Suggestion, error) {
	ctx, span := telemetry.Tracer().Start(ctx, telemetry.SpanSuggest)
	defer span.End()

	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	if limit > MaxSuggestLimit {
		limit = MaxSuggestLimit
	}

	govs, err := s.snapshot(ctx, span)
	if err != nil {
		return nil, err
	}
	metrics.Suggestions.Inc()
	return Suggest(term, govs, s.opts.SuggestMaxDistance, limit), nil
}

// snapshot returns a private deep copy of the dataset for one query.
func (s *MunicipalityService) snapshot(ctx context.Context, span trace.Span) ([]domain.Governorate, error) {
	govs, err := s.repo.Governorates(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("load governorates: %w", err)
	}
	return domain.CloneGovernorates(govs), nil
}
