package domain

import "strings"

// FilterState captures every dimension of the catalog filter controls.
// Empty Categories/Locations and an empty Search impose no constraint.
// The price range and rating bound are always applied; DefaultFilterState
// seeds them so they pass everything.
type FilterState struct {
	Categories []string
	PriceMin   float64
	PriceMax   float64
	Locations  []string
	MinRating  float64
	Search     string
}

// DefaultFilterState returns the identity state for a catalog whose
// highest unit price is maxPrice: applying it leaves the catalog unchanged.
func DefaultFilterState(maxPrice float64) FilterState {
	return FilterState{PriceMax: maxPrice}
}

// Filter reduces catalog to the items satisfying every active predicate.
// The result is a subsequence of catalog in the original relative order:
// the engine never re-sorts, mutates its inputs, or fails. An empty result
// is an ordinary outcome, not an error.
func Filter(catalog []EnrichedProduct, state FilterState) []EnrichedProduct {
	search := strings.ToLower(state.Search)

	result := make([]EnrichedProduct, 0, len(catalog))
	for _, item := range catalog {
		if !matchesSearch(item, search) {
			continue
		}
		if !matchesSet(state.Categories, item.Category) {
			continue
		}
		if item.Price < state.PriceMin || item.Price > state.PriceMax {
			continue
		}
		if !matchesSet(state.Locations, item.Farmer.Location) {
			continue
		}
		if item.Farmer.Rating < state.MinRating {
			continue
		}
		result = append(result, item)
	}

	return result
}

// matchesSearch is a case-insensitive substring match over the product
// name, description, category, and the joined farmer name. Placeholder
// farmers carry an empty name, which is never searched.
func matchesSearch(item EnrichedProduct, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), search) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Category), search) {
		return true
	}
	return item.Farmer.Name != "" && strings.Contains(strings.ToLower(item.Farmer.Name), search)
}

// matchesSet is exact, case-sensitive membership. This asymmetry with the
// search predicate is deliberate: the storefront populates its category and
// location controls from the same strings the data uses, so these values
// arrive verbatim.
func matchesSet(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
