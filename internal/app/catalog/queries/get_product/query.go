package get_product

import (
	"context"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// Query handles the get product query use case.
type Query struct {
	catalog *domain.Catalog
}

// NewQuery creates a new get product query over a catalog snapshot.
func NewQuery(catalog *domain.Catalog) *Query {
	return &Query{catalog: catalog}
}

// Execute retrieves an enriched product by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (domain.EnrichedProduct, error) {
	return q.catalog.FindProduct(req.ProductID)
}
