package list_farmers

import (
	"context"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

// Query handles the farmer directory query use case.
type Query struct {
	catalog *domain.Catalog
}

// NewQuery creates a new list farmers query over a catalog snapshot.
func NewQuery(catalog *domain.Catalog) *Query {
	return &Query{catalog: catalog}
}

// Execute returns every farmer profile in the snapshot.
func (q *Query) Execute(ctx context.Context) ([]domain.Farmer, error) {
	return q.catalog.Farmers, nil
}
