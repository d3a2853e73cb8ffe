package contracts

import (
	"context"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

// CatalogProvider supplies the raw product and farmer collections the
// service snapshots once at startup. Implementations must return products
// in a stable source order; that order defines the display order of every
// filtered view.
type CatalogProvider interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListFarmers(ctx context.Context) ([]domain.Farmer, error)
}
