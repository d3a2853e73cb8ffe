//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/repo"
	"github.com/light-bringer/farmlink-service/tests/testutil"
)

func TestSpannerCatalog_ListProducts(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()

	farmers := []domain.Farmer{
		testutil.TestFarmer("f1", "Rajesh Patel", "Gujarat", 4.8),
		testutil.TestFarmer("f2", "Anita Sharma", "Punjab", 4.5),
	}
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	products := []domain.Product{
		testutil.TestProduct("p2", "Fresh Tomatoes", "Vegetables", 40, "f2", base.Add(24*time.Hour)),
		testutil.TestProduct("p1", "Roma Tomatoes", "Vegetables", 45, "f1", base),
		testutil.TestProduct("p3", "Basmati Rice", "Grains", 120, "f1", base.Add(48*time.Hour)),
	}
	testutil.SeedCatalog(t, client, farmers, products)

	catalog := repo.NewSpannerCatalog(client)

	got, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Rows come back in insertion order regardless of write order.
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)
	assert.Equal(t, "p3", got[2].ID)
	assert.Equal(t, "Roma Tomatoes", got[0].Name)
	assert.Equal(t, 45.0, got[0].Price)
	assert.Equal(t, "f1", got[0].FarmerID)
}

func TestSpannerCatalog_ListFarmers(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()

	farmers := []domain.Farmer{
		testutil.TestFarmer("f2", "Anita Sharma", "Punjab", 4.5),
		testutil.TestFarmer("f1", "Rajesh Patel", "Gujarat", 4.8),
	}
	testutil.SeedCatalog(t, client, farmers, nil)

	catalog := repo.NewSpannerCatalog(client)

	got, err := catalog.ListFarmers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "f1", got[0].ID)
	assert.Equal(t, "Gujarat", got[0].Location)
	assert.Equal(t, "f2", got[1].ID)
}

func TestSpannerCatalog_EmptyTables(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	catalog := repo.NewSpannerCatalog(client)

	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	farmers, err := catalog.ListFarmers(ctx)
	require.NoError(t, err)
	assert.Empty(t, farmers)
}

func TestSpannerCatalog_SnapshotJoin(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()

	farmers := []domain.Farmer{testutil.TestFarmer("f1", "Rajesh Patel", "Gujarat", 4.8)}
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	products := []domain.Product{
		testutil.TestProduct("p1", "Roma Tomatoes", "Vegetables", 45, "f1", base),
		testutil.TestProduct("p2", "Brown Rice", "Grains", 90, "missing", base.Add(time.Hour)),
	}
	testutil.SeedCatalog(t, client, farmers, products)

	provider := repo.NewSpannerCatalog(client)
	loadedProducts, err := provider.ListProducts(ctx)
	require.NoError(t, err)
	loadedFarmers, err := provider.ListFarmers(ctx)
	require.NoError(t, err)

	catalog := domain.BuildCatalog(loadedProducts, loadedFarmers)
	require.Len(t, catalog.Products, 2)

	assert.Equal(t, "Rajesh Patel", catalog.Products[0].Farmer.Name)

	// Orphaned farmer reference joins to an empty placeholder.
	assert.Equal(t, "", catalog.Products[1].Farmer.Name)
	assert.Equal(t, 0.0, catalog.Products[1].Farmer.Rating)
}
