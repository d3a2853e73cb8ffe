package repo

import (
	"context"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/contracts"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

// FixtureCatalog serves the embedded demo dataset. It is the default
// backend for local development and the seed source for cmd/seed.
type FixtureCatalog struct{}

var _ contracts.CatalogProvider = (*FixtureCatalog)(nil)

// NewFixtureCatalog creates a fixture-backed catalog provider.
func NewFixtureCatalog() *FixtureCatalog {
	return &FixtureCatalog{}
}

// ListProducts returns a copy of the fixture products in source order.
func (c *FixtureCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, len(fixtureProducts))
	copy(products, fixtureProducts)
	return products, nil
}

// ListFarmers returns a copy of the fixture farmers.
func (c *FixtureCatalog) ListFarmers(ctx context.Context) ([]domain.Farmer, error) {
	farmers := make([]domain.Farmer, len(fixtureFarmers))
	copy(farmers, fixtureFarmers)
	return farmers, nil
}
