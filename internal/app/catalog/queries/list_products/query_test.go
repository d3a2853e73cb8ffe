package list_products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

func snapshot() *domain.Catalog {
	products := []domain.Product{
		{ID: "p1", Name: "Roma Tomatoes", Description: "Fresh tomatoes.", Category: "Vegetables", Price: 45, FarmerID: "f1"},
		{ID: "p2", Name: "Basmati Rice", Description: "Aromatic rice.", Category: "Grains", Price: 160, FarmerID: "f2"},
		{ID: "p3", Name: "Organic Honey", Description: "Raw honey.", Category: "Dairy & Honey", Price: 450, FarmerID: "missing"},
	}
	farmers := []domain.Farmer{
		{ID: "f1", Name: "Rajesh Patel", Location: "Gujarat", Rating: 4.8},
		{ID: "f2", Name: "Anita Sharma", Location: "Punjab", Rating: 4.5},
	}
	return domain.BuildCatalog(products, farmers)
}

func TestQuery_Execute_NoConstraints(t *testing.T) {
	q := NewQuery(snapshot())

	result, err := q.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Len(t, result.Products, 3)
	assert.Equal(t, 450.0, result.Facets.MaxPrice)
}

func TestQuery_Execute_AppliesBounds(t *testing.T) {
	q := NewQuery(snapshot())

	min := 50.0
	max := 200.0
	result, err := q.Execute(context.Background(), &Request{PriceMin: &min, PriceMax: &max})
	require.NoError(t, err)

	require.Len(t, result.Products, 1)
	assert.Equal(t, "p2", result.Products[0].ID)
}

func TestQuery_Execute_NilBoundsDefaultToFullSpan(t *testing.T) {
	q := NewQuery(snapshot())

	// Only the lower bound provided; upper defaults to MaxPrice so the
	// most expensive item still passes.
	min := 100.0
	result, err := q.Execute(context.Background(), &Request{PriceMin: &min})
	require.NoError(t, err)

	assert.Equal(t, []string{"p2", "p3"}, productIDs(result.Products))
}

func TestQuery_Execute_CombinedDimensions(t *testing.T) {
	q := NewQuery(snapshot())

	result, err := q.Execute(context.Background(), &Request{
		Categories: []string{"Vegetables", "Grains"},
		MinRating:  4.6,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"p1"}, productIDs(result.Products))
}

func TestQuery_Execute_SearchReachesFarmerName(t *testing.T) {
	q := NewQuery(snapshot())

	result, err := q.Execute(context.Background(), &Request{Search: "rajesh"})
	require.NoError(t, err)

	assert.Equal(t, []string{"p1"}, productIDs(result.Products))
}

func productIDs(items []domain.EnrichedProduct) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
