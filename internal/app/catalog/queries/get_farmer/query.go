package get_farmer

import (
	"context"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

// Request contains the farmer ID to retrieve.
type Request struct {
	FarmerID string
}

// Query handles the get farmer query use case.
type Query struct {
	catalog *domain.Catalog
}

// NewQuery creates a new get farmer query over a catalog snapshot.
func NewQuery(catalog *domain.Catalog) *Query {
	return &Query{catalog: catalog}
}

// Execute retrieves a full farmer profile by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (domain.Farmer, error) {
	return q.catalog.FindFarmer(req.FarmerID)
}
