package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/contracts"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
	"github.com/light-bringer/farmlink-service/internal/models/m_farmer"
	"github.com/light-bringer/farmlink-service/internal/models/m_product"
	"github.com/light-bringer/farmlink-service/internal/pkg/query"
)

// SpannerCatalog implements CatalogProvider over Cloud Spanner.
// Products are returned ordered by created_at with product_id as a
// tie-break, so every snapshot built from the same data has the same
// source order.
type SpannerCatalog struct {
	client *spanner.Client
}

var _ contracts.CatalogProvider = (*SpannerCatalog)(nil)

// NewSpannerCatalog creates a Spanner-backed catalog provider.
func NewSpannerCatalog(client *spanner.Client) *SpannerCatalog {
	return &SpannerCatalog{client: client}
}

// ListProducts retrieves every product row in stable source order.
func (c *SpannerCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Columns...).
		OrderBy(m_product.CreatedAt, query.Asc).
		OrderBy(m_product.ProductID, query.Asc).
		Build()

	iter := c.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]domain.Product, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		products = append(products, data.ToDomain())
	}

	return products, nil
}

// ListFarmers retrieves every farmer row.
func (c *SpannerCatalog) ListFarmers(ctx context.Context) ([]domain.Farmer, error) {
	stmt := query.From(m_farmer.TableName).
		Select(m_farmer.Columns...).
		OrderBy(m_farmer.FarmerID, query.Asc).
		Build()

	iter := c.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	farmers := make([]domain.Farmer, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate farmers: %w", err)
		}

		var data m_farmer.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse farmer: %w", err)
		}
		farmers = append(farmers, data.ToDomain())
	}

	return farmers, nil
}

// CountProducts returns the number of product rows. The seed tool uses it
// to report what a run left behind.
func (c *SpannerCatalog) CountProducts(ctx context.Context) (int64, error) {
	stmt := query.From(m_product.TableName).Count().Build()

	iter := c.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}

	return count, nil
}
