package domain

// Catalog is an immutable snapshot of the storefront inventory, joined and
// faceted once at load time. Snapshots are safe for concurrent readers:
// nothing mutates them after BuildCatalog returns.
type Catalog struct {
	Products []EnrichedProduct
	Farmers  []Farmer
	Facets   Facets
}

// BuildCatalog enriches the raw collections and computes facets. The
// farmer collection is kept in full for the directory views.
func BuildCatalog(products []Product, farmers []Farmer) *Catalog {
	enriched := Enrich(products, farmers)
	return &Catalog{
		Products: enriched,
		Farmers:  farmers,
		Facets:   ComputeFacets(enriched),
	}
}

// Filter applies state to the snapshot.
func (c *Catalog) Filter(state FilterState) []EnrichedProduct {
	return Filter(c.Products, state)
}

// DefaultFilterState returns the identity state for this snapshot.
func (c *Catalog) DefaultFilterState() FilterState {
	return DefaultFilterState(c.Facets.MaxPrice)
}

// FindProduct returns the snapshot entry with the given ID.
func (c *Catalog) FindProduct(id string) (EnrichedProduct, error) {
	for _, item := range c.Products {
		if item.ID == id {
			return item, nil
		}
	}
	return EnrichedProduct{}, ErrProductNotFound
}

// FindFarmer returns the full farmer profile with the given ID.
func (c *Catalog) FindFarmer(id string) (Farmer, error) {
	for _, farmer := range c.Farmers {
		if farmer.ID == id {
			return farmer, nil
		}
	}
	return Farmer{}, ErrFarmerNotFound
}
