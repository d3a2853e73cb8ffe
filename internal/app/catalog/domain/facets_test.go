package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFacets(t *testing.T) {
	cat := testCatalog()

	facets := cat.Facets

	t.Run("categories in first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"Vegetables", "Grains", "Fruits", "Dairy & Honey"}, facets.Categories)
	})

	t.Run("locations include the placeholder empty string", func(t *testing.T) {
		assert.Equal(t, []string{"Gujarat", "Punjab", "Haryana", ""}, facets.Locations)
	})

	t.Run("max price spans the full catalog", func(t *testing.T) {
		assert.Equal(t, 450.0, facets.MaxPrice)
	})
}

func TestComputeFacets_Deduplicates(t *testing.T) {
	products := []Product{
		{ID: "p1", Category: "Vegetables", Price: 40, FarmerID: "f1"},
		{ID: "p2", Category: "Vegetables", Price: 60, FarmerID: "f1"},
		{ID: "p3", Category: "Grains", Price: 55, FarmerID: "f1"},
	}
	farmers := []Farmer{{ID: "f1", Location: "Punjab", Rating: 4.0}}

	facets := ComputeFacets(Enrich(products, farmers))

	assert.Equal(t, []string{"Vegetables", "Grains"}, facets.Categories)
	assert.Equal(t, []string{"Punjab"}, facets.Locations)
	assert.Equal(t, 60.0, facets.MaxPrice)
}

func TestComputeFacets_EmptyCatalog(t *testing.T) {
	facets := ComputeFacets(nil)

	assert.Empty(t, facets.Categories)
	assert.Empty(t, facets.Locations)
	assert.Zero(t, facets.MaxPrice)
}
