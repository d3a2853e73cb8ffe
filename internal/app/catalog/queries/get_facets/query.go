package get_facets

import (
	"context"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

// Query handles the facets query use case.
type Query struct {
	catalog *domain.Catalog
}

// NewQuery creates a new facets query over a catalog snapshot.
func NewQuery(catalog *domain.Catalog) *Query {
	return &Query{catalog: catalog}
}

// Execute returns the precomputed facet lists for the snapshot.
func (q *Query) Execute(ctx context.Context) (domain.Facets, error) {
	return q.catalog.Facets, nil
}
