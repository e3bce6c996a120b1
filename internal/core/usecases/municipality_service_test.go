package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrijal/tunimap/internal/core/domain"
	"github.com/samirrijal/tunimap/internal/core/usecases"
)

func newService(govs []domain.Governorate) *usecases.MunicipalityService {
	return usecases.NewMunicipalityService(staticRepo(govs), usecases.DefaultMunicipalityOptions())
}

func TestMunicipalityService_ListNoParams(t *testing.T) {
	svc := newService(fixture())
	res, err := svc.List(context.Background(), domain.MunicipalityQuery{})
	require.NoError(t, err)
	assert.Equal(t, fixture(), res.Governorates)
	assert.Nil(t, res.Search)
}

func TestMunicipalityService_ListSearchReport(t *testing.T) {
	svc := newService(fixture())
	q := domain.MunicipalityQuery{Term: "ARIANA VILLE", SearchMode: domain.SearchGovernorate, SearchParam: "search"}

	res, err := svc.List(context.Background(), q)
	require.NoError(t, err)
	require.NotNil(t, res.Search)
	assert.Equal(t, "search", res.Search.Param)
	assert.Equal(t, domain.SearchGovernorate, res.Search.Requested)
	assert.Equal(t, domain.SearchDelegation, res.Search.ModeUsed)
	assert.True(t, res.Search.FallbackApplied)
	require.Len(t, res.Governorates, 1)
	assert.Equal(t, []string{"ARIANA VILLE"}, delegationNames(res.Governorates[0]))
}

func TestMunicipalityService_ListPipelineOrder(t *testing.T) {
	svc := newService(fixture())

	// Search narrows first, postal code applies to what is left.
	res, err := svc.List(context.Background(), domain.MunicipalityQuery{
		Term: "ezzouhour", SearchMode: domain.SearchDelegation, SearchParam: "delegation",
		PostalCode: "1279",
	})
	require.NoError(t, err)
	require.Len(t, res.Governorates, 1)
	assert.Equal(t, "KASSERINE", res.Governorates[0].Name)

	// Postal code outside the search result yields nothing.
	res, err = svc.List(context.Background(), domain.MunicipalityQuery{
		Term: "ariana", SearchMode: domain.SearchGovernorate, SearchParam: "search",
		PostalCode: "3000",
	})
	require.NoError(t, err)
	assert.NotNil(t, res.Governorates)
	assert.Empty(t, res.Governorates)
}

func TestMunicipalityService_ListSorted(t *testing.T) {
	svc := newService(fixture())
	res, err := svc.List(context.Background(), domain.MunicipalityQuery{
		Term: "ezzouhour", SearchMode: domain.SearchDelegation, SearchParam: "delegation",
		Sort: domain.SortName, Order: domain.OrderAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"KASSERINE", "TUNIS"}, govNames(res.Governorates))
}

func TestMunicipalityService_DoesNotMutateDataset(t *testing.T) {
	backing := fixture()
	svc := newService(backing)
	ctx := context.Background()

	res, err := svc.List(ctx, domain.MunicipalityQuery{Sort: domain.SortName, Order: domain.OrderDesc})
	require.NoError(t, err)
	res.Governorates[0].Name = "MUTATED"
	res.Governorates[0].Delegations[0].PostalCode = "0000"

	near, err := svc.Nearby(ctx, domain.NearbyParams{})
	require.NoError(t, err)
	near[0].Delegations = nil

	assert.Equal(t, fixture(), backing)
}

func TestMunicipalityService_ListIdempotent(t *testing.T) {
	svc := newService(fixture())
	q := domain.MunicipalityQuery{
		Term: "a", SearchMode: domain.SearchGovernorate, SearchParam: "search",
		Sort: domain.SortNameAr, Order: domain.OrderDesc,
	}
	first, err := svc.List(context.Background(), q)
	require.NoError(t, err)
	second, err := svc.List(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMunicipalityService_RepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := usecases.NewMunicipalityService(&mockDatasetRepo{
		governoratesFn: func(context.Context) ([]domain.Governorate, error) { return nil, boom },
	}, usecases.DefaultMunicipalityOptions())

	_, err := svc.List(context.Background(), domain.MunicipalityQuery{})
	assert.ErrorIs(t, err, boom)
	_, err = svc.Nearby(context.Background(), domain.NearbyParams{})
	assert.ErrorIs(t, err, boom)
	_, err = svc.Stats(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = svc.Suggest(context.Background(), "x", 1)
	assert.ErrorIs(t, err, boom)
}

func ptr(v float64) *float64 { return &v }

func TestMunicipalityService_Nearby(t *testing.T) {
	svc := newService(fixture())
	ctx := context.Background()

	got, err := svc.Nearby(ctx, domain.NearbyParams{Lat: ptr(36.8), Lng: ptr(10.19), Radius: ptr(10)})
	require.NoError(t, err)
	assert.Equal(t, []string{"ARIANA", "TUNIS", "BEN AROUS"}, govNames(got))
	assert.Contains(t, delegationNames(got[0]), "ARIANA VILLE")

	// Invalid or missing parameters return everything.
	got, err = svc.Nearby(ctx, domain.NearbyParams{Lat: ptr(36.8), Lng: ptr(10.19)})
	require.NoError(t, err)
	assert.Equal(t, fixture(), got)
}

func TestMunicipalityService_NearbyZeroPolicy(t *testing.T) {
	ctx := context.Background()
	params := domain.NearbyParams{Lat: ptr(36.866011), Lng: ptr(10.193923), Radius: ptr(0)}

	got, err := newService(fixture()).Nearby(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, fixture(), got, "zero radius disables the filter by default")

	strict := usecases.NewMunicipalityService(staticRepo(fixture()), usecases.MunicipalityOptions{
		Nearby: domain.NearbyPolicy{ZeroDisablesFilter: false},
	})
	got, err = strict.Nearby(ctx, params)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"ARIANA VILLE"}, delegationNames(got[0]))
}

func TestMunicipalityService_Stats(t *testing.T) {
	st, err := newService(fixture()).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DatasetStats{Governorates: 5, Delegations: 10, PostalCodes: 10}, st)
}

func TestMunicipalityService_SuggestClampsLimit(t *testing.T) {
	svc := newService(fixture())
	ctx := context.Background()

	got, err := svc.Suggest(ctx, "ezzouhour", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.Suggest(ctx, "ezzouhour", 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.LessOrEqual(t, len(got), usecases.DefaultSuggestLimit)
}
