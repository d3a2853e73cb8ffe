package quote_cart

import (
	"context"

	cart "github.com/light-bringer/farmlink-service/internal/app/cart/domain"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

// Request contains the cart line items to price.
type Request struct {
	Items []cart.LineItem
}

// Query handles the cart quote query use case.
type Query struct {
	catalog *domain.Catalog
}

// NewQuery creates a new cart quote query over a catalog snapshot.
func NewQuery(catalog *domain.Catalog) *Query {
	return &Query{catalog: catalog}
}

// Execute prices the requested items against the snapshot.
func (q *Query) Execute(ctx context.Context, req *Request) (*cart.Quote, error) {
	return cart.PriceQuote(q.catalog, req.Items)
}
