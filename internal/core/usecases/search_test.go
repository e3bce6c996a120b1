package usecases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrijal/tunimap/internal/core/domain"
	"github.com/samirrijal/tunimap/internal/core/usecases"
)

func TestSearchByGovernorate(t *testing.T) {
	govs := fixture()

	got := usecases.SearchByGovernorate("ari", govs)
	require.Len(t, got, 1)
	assert.Equal(t, "ARIANA", got[0].Name)
	assert.Len(t, got[0].Delegations, 2, "whole governorate is returned")

	got = usecases.SearchByGovernorate("تونس", govs)
	assert.Equal(t, []string{"TUNIS"}, govNames(got))

	assert.Equal(t, govNames(govs), govNames(usecases.SearchByGovernorate("", govs)))
	assert.NotNil(t, usecases.SearchByGovernorate("zzz", govs))
	assert.Empty(t, usecases.SearchByGovernorate("zzz", govs))
}

func TestSearchByDelegation_ProjectsMatches(t *testing.T) {
	govs := fixture()

	got := usecases.SearchByDelegation("ezzouhour", govs)
	assert.Equal(t, []string{"TUNIS", "KASSERINE"}, govNames(got))
	for _, g := range got {
		assert.Equal(t, []string{"EZZOUHOUR"}, delegationNames(g))
	}

	// Input untouched.
	assert.Len(t, govs[1].Delegations, 2)
}

func TestSearchByDelegation_Arabic(t *testing.T) {
	got := usecases.SearchByDelegation("سكرة", fixture())
	require.Len(t, got, 1)
	assert.Equal(t, []string{"LA SOUKRA"}, delegationNames(got[0]))
}

func TestEnhancedSearch_FallsBackToDelegation(t *testing.T) {
	out := usecases.EnhancedSearch("ARIANA VILLE", domain.SearchGovernorate, fixture())

	assert.True(t, out.FallbackApplied)
	assert.Equal(t, domain.SearchDelegation, out.ModeUsed)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "ARIANA", out.Results[0].Name)
	assert.Equal(t, []string{"ARIANA VILLE"}, delegationNames(out.Results[0]))
}

func TestEnhancedSearch_PrimaryHit(t *testing.T) {
	out := usecases.EnhancedSearch("ariana", domain.SearchDelegation, fixture())

	assert.False(t, out.FallbackApplied)
	assert.Equal(t, domain.SearchDelegation, out.ModeUsed)
	require.Len(t, out.Results, 1)
	assert.Equal(t, []string{"ARIANA VILLE"}, delegationNames(out.Results[0]))
}

func TestEnhancedSearch_FallsBackToGovernorate(t *testing.T) {
	out := usecases.EnhancedSearch("sfax", domain.SearchDelegation, fixture())
	assert.False(t, out.FallbackApplied, "SFAX VILLE matches as a delegation")

	out = usecases.EnhancedSearch("kasserine", domain.SearchDelegation, fixture())
	assert.False(t, out.FallbackApplied)

	out = usecases.EnhancedSearch("صفاقس", domain.SearchDelegation, fixture())
	assert.False(t, out.FallbackApplied)

	out = usecases.EnhancedSearch("تونس", domain.SearchDelegation, fixture())
	assert.True(t, out.FallbackApplied)
	assert.Equal(t, domain.SearchGovernorate, out.ModeUsed)
	assert.Equal(t, []string{"TUNIS"}, govNames(out.Results))
	assert.Len(t, out.Results[0].Delegations, 2)
}

func TestEnhancedSearch_NoMatch(t *testing.T) {
	out := usecases.EnhancedSearch("zzzz", domain.SearchGovernorate, fixture())
	assert.True(t, out.FallbackApplied)
	assert.Equal(t, domain.SearchDelegation, out.ModeUsed)
	assert.NotNil(t, out.Results)
	assert.Empty(t, out.Results)
}

func TestEnhancedSearch_EmptyTermMatchesAll(t *testing.T) {
	govs := fixture()
	out := usecases.EnhancedSearch("", domain.SearchGovernorate, govs)
	assert.False(t, out.FallbackApplied)
	assert.Equal(t, govNames(govs), govNames(out.Results))
}

func TestEnhancedSearch_UnknownModeIsGovernorate(t *testing.T) {
	out := usecases.EnhancedSearch("tunis", domain.SearchMode("city"), fixture())
	assert.Equal(t, domain.SearchGovernorate, out.ModeUsed)
	assert.False(t, out.FallbackApplied)
}

func TestEnhancedSearch_Idempotent(t *testing.T) {
	govs := fixture()
	first := usecases.EnhancedSearch("ezz", domain.SearchGovernorate, govs)
	second := usecases.EnhancedSearch("ezz", domain.SearchGovernorate, govs)
	assert.Equal(t, first, second)
	assert.Equal(t, fixture(), govs)
}
