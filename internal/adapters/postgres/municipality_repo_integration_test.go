//go:build integration
// +build integration

package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrijal/tunimap/internal/adapters/dataset"
	"github.com/samirrijal/tunimap/internal/adapters/postgres"
	"github.com/samirrijal/tunimap/internal/pkg/config"
)

// setupTestDB connects to the test database and applies the schema.
func setupTestDB(t *testing.T) *postgres.DB {
	t.Setenv("TUNIMAP_DATASET_SOURCE", config.SourcePostgres)
	cfg, err := config.Load("tunimap-test")
	require.NoError(t, err, "load config")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := postgres.New(ctx, cfg.Database.DSN(), cfg.Database.MaxConns)
	require.NoError(t, err, "connect db")
	t.Cleanup(db.Close)

	schema, err := os.ReadFile("../../../migrations/001_municipalities.sql")
	require.NoError(t, err)
	_, err = db.Pool.Exec(ctx, string(schema))
	require.NoError(t, err, "apply schema")

	return db
}

func TestMunicipalityRepo_SeedThenLoad(t *testing.T) {
	db := setupTestDB(t)
	repo := postgres.NewMunicipalityRepo(db)
	ctx := context.Background()

	want, err := dataset.Decode(dataset.EmbeddedJSON())
	require.NoError(t, err)

	written := 0
	require.NoError(t, repo.Seed(ctx, want, func(n int) { written += n }))
	assert.Equal(t, 265, written)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Seeding again replaces rather than appends.
	require.NoError(t, repo.Seed(ctx, want[:2], nil))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	st, err := dataset.Load(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Len())
}
