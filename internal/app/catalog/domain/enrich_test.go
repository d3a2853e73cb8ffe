package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrich(t *testing.T) {
	products := []Product{
		{ID: "p1", Name: "Tomatoes", FarmerID: "f1"},
		{ID: "p2", Name: "Ghee", FarmerID: "f9"},
	}
	farmers := []Farmer{
		{ID: "f1", Name: "Rajesh Patel", Email: "rajesh@example.com", Location: "Gujarat", Rating: 4.8, Bio: "Organic vegetables."},
	}

	enriched := Enrich(products, farmers)
	require.Len(t, enriched, 2)

	t.Run("matched farmer is projected onto the product", func(t *testing.T) {
		assert.Equal(t, FarmerRef{ID: "f1", Name: "Rajesh Patel", Location: "Gujarat", Rating: 4.8}, enriched[0].Farmer)
	})

	t.Run("unmatched farmer becomes the zero placeholder", func(t *testing.T) {
		assert.Equal(t, FarmerRef{}, enriched[1].Farmer)
	})

	t.Run("product fields carry through unchanged", func(t *testing.T) {
		assert.Equal(t, "p1", enriched[0].ID)
		assert.Equal(t, "Tomatoes", enriched[0].Name)
	})

	t.Run("input order is preserved", func(t *testing.T) {
		assert.Equal(t, []string{"p1", "p2"}, ids(enriched))
	})
}

func TestEnrich_EmptyInputs(t *testing.T) {
	assert.Empty(t, Enrich(nil, nil))
	assert.Empty(t, Enrich(nil, []Farmer{{ID: "f1"}}))

	enriched := Enrich([]Product{{ID: "p1", FarmerID: "f1"}}, nil)
	require.Len(t, enriched, 1)
	assert.Equal(t, FarmerRef{}, enriched[0].Farmer)
}
