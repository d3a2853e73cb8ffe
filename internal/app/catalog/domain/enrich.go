package domain

// Enrich joins every product with a projection of its owning farmer.
// The join is total and tolerant: a product whose FarmerID matches no
// farmer receives the zero-value placeholder FarmerRef (empty name and
// location, rating 0), so downstream predicates never dereference a
// missing farmer. Input order is preserved.
func Enrich(products []Product, farmers []Farmer) []EnrichedProduct {
	byID := make(map[string]Farmer, len(farmers))
	for _, f := range farmers {
		byID[f.ID] = f
	}

	enriched := make([]EnrichedProduct, 0, len(products))
	for _, p := range products {
		var ref FarmerRef
		if f, ok := byID[p.FarmerID]; ok {
			ref = FarmerRef{
				ID:       f.ID,
				Name:     f.Name,
				Location: f.Location,
				Rating:   f.Rating,
			}
		}
		enriched = append(enriched, EnrichedProduct{Product: p, Farmer: ref})
	}

	return enriched
}
