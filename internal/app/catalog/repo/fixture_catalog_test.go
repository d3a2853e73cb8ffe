package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

func TestFixtureCatalog_ListProducts(t *testing.T) {
	provider := NewFixtureCatalog()

	products, err := provider.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 14)

	t.Run("source order is stable", func(t *testing.T) {
		assert.Equal(t, "p1", products[0].ID)
		assert.Equal(t, "p14", products[len(products)-1].ID)
	})

	t.Run("callers get a copy", func(t *testing.T) {
		products[0].Name = "mutated"

		again, err := provider.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Roma Tomatoes", again[0].Name)
	})
}

func TestFixtureCatalog_ListFarmers(t *testing.T) {
	provider := NewFixtureCatalog()

	farmers, err := provider.ListFarmers(context.Background())
	require.NoError(t, err)
	assert.Len(t, farmers, 5)
}

func TestFixtureCatalog_SnapshotExercisesPlaceholderJoin(t *testing.T) {
	provider := NewFixtureCatalog()
	ctx := context.Background()

	products, err := provider.ListProducts(ctx)
	require.NoError(t, err)
	farmers, err := provider.ListFarmers(ctx)
	require.NoError(t, err)

	cat := domain.BuildCatalog(products, farmers)

	// p8 and p10/p14 reference farmers missing from the dataset.
	orphans := 0
	for _, item := range cat.Products {
		if item.Farmer == (domain.FarmerRef{}) {
			orphans++
		}
	}
	assert.Equal(t, 3, orphans)

	// The placeholder surfaces the empty location facet.
	assert.Contains(t, cat.Facets.Locations, "")
	assert.Equal(t, 650.0, cat.Facets.MaxPrice)
}
