package domain

// Facets are the derived distinct-value lists used to populate filter
// controls. They are computed once from the unfiltered catalog, never per
// filter pass.
type Facets struct {
	Categories []string
	Locations  []string
	MaxPrice   float64
}

// ComputeFacets derives the facet lists from the full catalog.
// Distinct values keep first-seen order. The empty string is a legitimate
// location: it appears whenever a product's farmer join fell back to the
// placeholder. MaxPrice is 0 for an empty catalog.
func ComputeFacets(catalog []EnrichedProduct) Facets {
	facets := Facets{
		Categories: make([]string, 0),
		Locations:  make([]string, 0),
	}

	seenCategories := make(map[string]bool)
	seenLocations := make(map[string]bool)

	for _, item := range catalog {
		if !seenCategories[item.Category] {
			seenCategories[item.Category] = true
			facets.Categories = append(facets.Categories, item.Category)
		}
		if !seenLocations[item.Farmer.Location] {
			seenLocations[item.Farmer.Location] = true
			facets.Locations = append(facets.Locations, item.Farmer.Location)
		}
		if item.Price > facets.MaxPrice {
			facets.MaxPrice = item.Price
		}
	}

	return facets
}
