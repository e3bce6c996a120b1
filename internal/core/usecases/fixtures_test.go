package usecases_test

import (
	"context"

	"github.com/samirrijal/tunimap/internal/core/domain"
)

// --- Mock DatasetRepository ---

type mockDatasetRepo struct {
	governoratesFn func(ctx context.Context) ([]domain.Governorate, error)
}

func (m *mockDatasetRepo) Governorates(ctx context.Context) ([]domain.Governorate, error) {
	if m.governoratesFn != nil {
		return m.governoratesFn(ctx)
	}
	return nil, nil
}

// staticRepo hands out the same backing slice on every call so tests can
// detect mutation.
func staticRepo(govs []domain.Governorate) *mockDatasetRepo {
	return &mockDatasetRepo{governoratesFn: func(context.Context) ([]domain.Governorate, error) {
		return govs, nil
	}}
}

func fixture() []domain.Governorate {
	return []domain.Governorate{
		{Name: "ARIANA", NameAr: "أريانة", Code: "ARIANA", Delegations: []domain.Delegation{
			{Name: "ARIANA VILLE", NameAr: "أريانة المدينة", Code: "ARIANA VILLE", PostalCode: "2058", Latitude: 36.866011, Longitude: 10.193923},
			{Name: "LA SOUKRA", NameAr: "سكرة", Code: "LA SOUKRA", PostalCode: "2036", Latitude: 36.8732, Longitude: 10.2414},
		}},
		{Name: "TUNIS", NameAr: "تونس", Code: "TUNIS", Delegations: []domain.Delegation{
			{Name: "BAB BHAR", NameAr: "باب البحر", Code: "BAB BHAR", PostalCode: "1000", Latitude: 36.799, Longitude: 10.18},
			{Name: "EZZOUHOUR", NameAr: "الزهور", Code: "EZZOUHOUR", PostalCode: "2052", Latitude: 36.78, Longitude: 10.12},
		}},
		{Name: "KASSERINE", NameAr: "القصرين", Code: "KASSERINE", Delegations: []domain.Delegation{
			{Name: "KASSERINE NORD", NameAr: "القصرين الشمالية", Code: "KASSERINE NORD", PostalCode: "1200", Latitude: 35.1676, Longitude: 8.8365},
			{Name: "EZZOUHOUR", NameAr: "الزهور", Code: "EZZOUHOUR", PostalCode: "1279", Latitude: 35.18, Longitude: 8.86},
		}},
		{Name: "SFAX", NameAr: "صفاقس", Code: "SFAX", Delegations: []domain.Delegation{
			{Name: "SFAX VILLE", NameAr: "صفاقس المدينة", Code: "SFAX VILLE", PostalCode: "3000", Latitude: 34.7406, Longitude: 10.7603},
			{Name: "AGAREB", NameAr: "عقارب", Code: "AGAREB", PostalCode: "3030", Latitude: 34.7417, Longitude: 10.5294},
		}},
		{Name: "BEN AROUS", NameAr: "بن عروس", Code: "BEN AROUS", Delegations: []domain.Delegation{
			{Name: "BEN AROUS", NameAr: "بن عروس", Code: "BEN AROUS", PostalCode: "2013", Latitude: 36.7531, Longitude: 10.2189},
			{Name: "EL MOUROUJ", NameAr: "المروج", Code: "EL MOUROUJ", PostalCode: "2074", Latitude: 36.7333, Longitude: 10.2},
		}},
	}
}

func govNames(govs []domain.Governorate) []string {
	out := make([]string, len(govs))
	for i, g := range govs {
		out[i] = g.Name
	}
	return out
}

func delegationNames(g domain.Governorate) []string {
	out := make([]string, len(g.Delegations))
	for i, d := range g.Delegations {
		out[i] = d.Name
	}
	return out
}
