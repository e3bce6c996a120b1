package ports

import (
	"context"

	"github.com/samirrijal/tunimap/internal/core/domain"
)

// DatasetSource loads the governorate hierarchy once at startup.
type DatasetSource interface {
	Load(ctx context.Context) ([]domain.Governorate, error)
}

// DatasetRepository serves the loaded hierarchy. Implementations must return
// a copy the caller may modify freely.
type DatasetRepository interface {
	Governorates(ctx context.Context) ([]domain.Governorate, error)
}

// DatasetWriter replaces the persisted hierarchy in one step.
type DatasetWriter interface {
	Seed(ctx context.Context, govs []domain.Governorate, progress func(n int)) error
}
