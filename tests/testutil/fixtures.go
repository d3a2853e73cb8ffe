package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
	"github.com/light-bringer/farmlink-service/internal/models/m_farmer"
	"github.com/light-bringer/farmlink-service/internal/models/m_product"
	"github.com/light-bringer/farmlink-service/internal/pkg/committer"
)

// TestFarmer returns a farmer profile with sensible defaults.
func TestFarmer(id, name, location string, rating float64) domain.Farmer {
	return domain.Farmer{
		ID:       id,
		Name:     name,
		Email:    id + "@example.com",
		Location: location,
		Rating:   rating,
		Bio:      "Test farmer",
		JoinedAt: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		Image:    "/images/farmers/" + id + ".jpg",
	}
}

// TestProduct returns a product with sensible defaults.
func TestProduct(id, name, category string, price float64, farmerID string, createdAt time.Time) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        name,
		Description: "Test product",
		Category:    category,
		Price:       price,
		Unit:        "kg",
		Quantity:    100,
		Image:       "/images/products/" + id + ".jpg",
		FarmerID:    farmerID,
		CreatedAt:   createdAt,
	}
}

// SeedCatalog writes the given farmers and products in one transaction.
func SeedCatalog(t *testing.T, client *spanner.Client, farmers []domain.Farmer, products []domain.Product) {
	t.Helper()

	plan := committer.NewPlan()
	farmerModel := m_farmer.NewModel()
	productModel := m_product.NewModel()

	for _, farmer := range farmers {
		plan.Add(farmerModel.InsertMut(m_farmer.FromDomain(farmer)))
	}
	for _, product := range products {
		plan.Add(productModel.InsertMut(m_product.FromDomain(product)))
	}

	comm := committer.NewCommitter(client)
	require.NoError(t, comm.Apply(context.Background(), plan), "failed to seed catalog")
}
