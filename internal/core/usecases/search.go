package usecases

import (
	"strings"

	"github.com/samirrijal/tunimap/internal/core/domain"
)

// SearchOutcome is the result of EnhancedSearch.
type SearchOutcome struct {
	Results         []domain.Governorate
	ModeUsed        domain.SearchMode
	FallbackApplied bool
}

// SearchByGovernorate returns the governorates whose English or Arabic name
// contains term, case-insensitively, with all their delegations. An empty
// term matches everything.
func SearchByGovernorate(term string, govs []domain.Governorate) []domain.Governorate {
	needle := strings.ToLower(term)
	out := make([]domain.Governorate, 0, len(govs))
	for _, g := range govs {
		if matches(needle, g.Name, g.NameAr) {
			out = append(out, g.Clone())
		}
	}
	return out
}

// SearchByDelegation returns one projected copy per governorate holding only
// the delegations whose English or Arabic name contains term. Governorates
// left without delegations are dropped.
func SearchByDelegation(term string, govs []domain.Governorate) []domain.Governorate {
	needle := strings.ToLower(term)
	out := make([]domain.Governorate, 0, len(govs))
	for _, g := range govs {
		var kept []domain.Delegation
		for _, d := range g.Delegations {
			if matches(needle, d.Name, d.NameAr) {
				kept = append(kept, d)
			}
		}
		if len(kept) > 0 {
			out = append(out, g.WithDelegations(kept))
		}
	}
	return out
}

// EnhancedSearch runs the primary mode and, only when it yields nothing, the
// other mode over the same input. It switches at most once.
func EnhancedSearch(term string, primary domain.SearchMode, govs []domain.Governorate) SearchOutcome {
	mode := primary.Normalize()
	if res := searchBy(mode, term, govs); len(res) > 0 {
		return SearchOutcome{Results: res, ModeUsed: mode}
	}
	fallback := mode.Other()
	return SearchOutcome{
		Results:         searchBy(fallback, term, govs),
		ModeUsed:        fallback,
		FallbackApplied: true,
	}
}

func searchBy(mode domain.SearchMode, term string, govs []domain.Governorate) []domain.Governorate {
	if mode == domain.SearchDelegation {
		return SearchByDelegation(term, govs)
	}
	return SearchByGovernorate(term, govs)
}

func matches(needle, name, nameAr string) bool {
	return strings.Contains(strings.ToLower(name), needle) ||
		strings.Contains(strings.ToLower(nameAr), needle)
}
