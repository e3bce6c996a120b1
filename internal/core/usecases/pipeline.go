package usecases

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/samirrijal/tunimap/internal/core/domain"
)

// FilterByPostalCode keeps delegations whose postal code equals code exactly
// and drops governorates left empty. An empty code is a no-op.
func FilterByPostalCode(code string, govs []domain.Governorate) []domain.Governorate {
	if code == "" {
		return govs
	}
	out := make([]domain.Governorate, 0, len(govs))
	for _, g := range govs {
		var kept []domain.Delegation
		for _, d := range g.Delegations {
			if d.PostalCode == code {
				kept = append(kept, d)
			}
		}
		if len(kept) > 0 {
			out = append(out, g.WithDelegations(kept))
		}
	}
	return out
}

// SortGovernorates returns govs ordered by field using locale collation on
// lower-cased names: English for name, Arabic for nameAr. Ties keep input
// order. An unknown field returns govs unchanged.
func SortGovernorates(govs []domain.Governorate, field domain.SortField, order domain.SortOrder) []domain.Governorate {
	if !field.Known() {
		return govs
	}

	key := func(g domain.Governorate) string { return strings.ToLower(g.Name) }
	tag := language.English
	if field == domain.SortNameAr {
		key = func(g domain.Governorate) string { return strings.ToLower(g.NameAr) }
		tag = language.Arabic
	}

	// collate.Collator keeps internal buffers and is not safe for concurrent use.
	col := collate.New(tag)
	sign := 1
	if order == domain.OrderDesc {
		sign = -1
	}

	out := slices.Clone(govs)
	slices.SortStableFunc(out, func(a, b domain.Governorate) int {
		return sign * col.CompareString(key(a), key(b))
	})
	return out
}
