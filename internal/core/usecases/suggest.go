package usecases

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/samirrijal/tunimap/internal/core/domain"
)

// Suggest lists governorate and delegation names within maxDistance edits of
// term, closest first, at most limit entries. Each name is compared in both
// scripts and the smaller distance wins.
func Suggest(term string, govs []domain.Governorate, maxDistance, limit int) []domain.Suggestion {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := []domain.Suggestion{}
	if needle == "" || limit <= 0 {
		return out
	}

	for _, g := range govs {
		if d, ok := nameDistance(needle, g.Name, g.NameAr, maxDistance); ok {
			out = append(out, domain.Suggestion{
				Kind:          domain.SuggestionGovernorate,
				Name:          g.Name,
				NameAr:        g.NameAr,
				Governorate:   g.Name,
				GovernorateAr: g.NameAr,
				Distance:      d,
			})
		}
		for _, del := range g.Delegations {
			if d, ok := nameDistance(needle, del.Name, del.NameAr, maxDistance); ok {
				out = append(out, domain.Suggestion{
					Kind:          domain.SuggestionDelegation,
					Name:          del.Name,
					NameAr:        del.NameAr,
					Governorate:   g.Name,
					GovernorateAr: g.NameAr,
					Distance:      d,
				})
			}
		}
	}

	slices.SortStableFunc(out, func(a, b domain.Suggestion) int {
		return cmp.Or(
			cmp.Compare(a.Distance, b.Distance),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.Governorate, b.Governorate),
		)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func nameDistance(needle, name, nameAr string, maxDistance int) (int, bool) {
	best := levenshtein.ComputeDistance(needle, strings.ToLower(name))
	if nameAr != "" {
		best = min(best, levenshtein.ComputeDistance(needle, strings.ToLower(nameAr)))
	}
	return best, best <= maxDistance
}
