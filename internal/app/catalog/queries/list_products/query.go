package list_products

import (
	"context"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

// Request contains the raw filter inputs as they arrive from transport.
// Nil price bounds mean "use the catalog's full span".
type Request struct {
	Categories []string
	Locations  []string
	PriceMin   *float64
	PriceMax   *float64
	MinRating  float64
	Search     string
}

// Result is the filtered view plus the facets the storefront needs to
// render its filter controls.
type Result struct {
	Products []domain.EnrichedProduct
	Facets   domain.Facets
}

// Query handles the list products query use case.
type Query struct {
	catalog *domain.Catalog
}

// NewQuery creates a new list products query over a catalog snapshot.
func NewQuery(catalog *domain.Catalog) *Query {
	return &Query{catalog: catalog}
}

// Execute applies the requested filter to the snapshot.
func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	state := q.catalog.DefaultFilterState()
	state.Categories = req.Categories
	state.Locations = req.Locations
	state.MinRating = req.MinRating
	state.Search = req.Search

	if req.PriceMin != nil {
		state.PriceMin = *req.PriceMin
	}
	if req.PriceMax != nil {
		state.PriceMax = *req.PriceMax
	}

	return &Result{
		Products: q.catalog.Filter(state),
		Facets:   q.catalog.Facets,
	}, nil
}
