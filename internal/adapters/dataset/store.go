package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samirrijal/tunimap/internal/core/domain"
	"github.com/samirrijal/tunimap/internal/core/ports"
	"github.com/samirrijal/tunimap/internal/pkg/geospatial"
	"github.com/samirrijal/tunimap/internal/pkg/metrics"
	"github.com/samirrijal/tunimap/internal/pkg/telemetry"
)

// ErrInvalidDataset is returned when a loaded dataset breaks a structural rule.
var ErrInvalidDataset = errors.New("invalid dataset")

// Store is the immutable in-memory dataset. It is safe for concurrent use
// because nothing writes to it after NewStore returns.
type Store struct {
	govs []domain.Governorate
}

// NewStore validates govs and keeps a private copy.
func NewStore(govs []domain.Governorate) (*Store, error) {
	if err := Validate(govs); err != nil {
		return nil, err
	}
	return &Store{govs: domain.CloneGovernorates(govs)}, nil
}

// Load reads govs from src and builds a Store.
func Load(ctx context.Context, src ports.DatasetSource) (*Store, error) {
	ctx, span := telemetry.Tracer().Start(ctx, telemetry.SpanLoad)
	defer span.End()

	start := time.Now()
	govs, err := src.Load(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	st, err := NewStore(govs)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	metrics.DatasetLoadDuration.Observe(time.Since(start).Seconds())

	n := st.DelegationCount()
	metrics.SetDataset(len(st.govs), n)
	slog.Info("dataset loaded",
		"governorates", len(st.govs),
		"delegations", n,
		"took", time.Since(start).String(),
	)
	return st, nil
}

// Governorates implements ports.DatasetRepository. The returned slice is a
// deep copy.
func (s *Store) Governorates(ctx context.Context) ([]domain.Governorate, error) {
	return domain.CloneGovernorates(s.govs), nil
}

// Stats summarises the loaded dataset.
func (s *Store) Stats() domain.DatasetStats { return domain.ComputeStats(s.govs) }

// Len returns the number of governorates.
func (s *Store) Len() int { return len(s.govs) }

// DelegationCount returns the number of delegations across all governorates.
func (s *Store) DelegationCount() int {
	n := 0
	for _, g := range s.govs {
		n += len(g.Delegations)
	}
	return n
}

// Validate checks the structural rules every dataset must satisfy.
func Validate(govs []domain.Governorate) error {
	if len(govs) == 0 {
		return fmt.Errorf("%w: no governorates", ErrInvalidDataset)
	}

	var errs []string
	seen := make(map[string]struct{}, len(govs))
	for i, g := range govs {
		if strings.TrimSpace(g.Name) == "" {
			errs = append(errs, fmt.Sprintf("governorate #%d has no name", i))
			continue
		}
		key := strings.ToLower(g.Name)
		if _, dup := seen[key]; dup {
			errs = append(errs, fmt.Sprintf("duplicate governorate %q", g.Name))
		}
		seen[key] = struct{}{}

		for j, d := range g.Delegations {
			if strings.TrimSpace(d.Name) == "" {
				errs = append(errs, fmt.Sprintf("%s: delegation #%d has no name", g.Name, j))
			}
			if !geospatial.ValidCoordinate(d.Latitude, d.Longitude) {
				errs = append(errs, fmt.Sprintf("%s/%s: coordinate (%v, %v) out of range",
					g.Name, d.Name, d.Latitude, d.Longitude))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidDataset, strings.Join(errs, "\n  - "))
	}
	return nil
}
