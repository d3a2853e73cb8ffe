package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

func quoteCatalog() *catalog.Catalog {
	products := []catalog.Product{
		{ID: "p1", Name: "Roma Tomatoes", Category: "Vegetables", Price: 45, Unit: "kg", Quantity: 200, FarmerID: "f1"},
		{ID: "p2", Name: "Organic Honey", Category: "Dairy & Honey", Price: 450, Unit: "bottle", Quantity: 2, FarmerID: "f1"},
	}
	farmers := []catalog.Farmer{
		{ID: "f1", Name: "Rajesh Patel", Location: "Gujarat", Rating: 4.8},
	}
	return catalog.BuildCatalog(products, farmers)
}

func TestPriceQuote(t *testing.T) {
	cat := quoteCatalog()

	quote, err := PriceQuote(cat, []LineItem{
		{ProductID: "p1", Quantity: 3},
		{ProductID: "p2", Quantity: 2},
	})
	require.NoError(t, err)

	require.Len(t, quote.Lines, 2)
	assert.Equal(t, "135.00", quote.Lines[0].LineTotal.String())
	assert.Equal(t, "900.00", quote.Lines[1].LineTotal.String())
	assert.Equal(t, "1035.00", quote.Total.String())

	t.Run("lines carry the enriched product", func(t *testing.T) {
		assert.Equal(t, "Rajesh Patel", quote.Lines[0].Product.Farmer.Name)
	})
}

func TestPriceQuote_Errors(t *testing.T) {
	cat := quoteCatalog()

	t.Run("empty cart", func(t *testing.T) {
		_, err := PriceQuote(cat, nil)
		assert.ErrorIs(t, err, ErrEmptyQuote)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := PriceQuote(cat, []LineItem{{ProductID: "nope", Quantity: 1}})
		assert.ErrorIs(t, err, ErrUnknownProduct)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := PriceQuote(cat, []LineItem{{ProductID: "p1", Quantity: 0}})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := PriceQuote(cat, []LineItem{{ProductID: "p1", Quantity: -2}})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("over available stock", func(t *testing.T) {
		_, err := PriceQuote(cat, []LineItem{{ProductID: "p2", Quantity: 3}})
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("exactly available stock is allowed", func(t *testing.T) {
		quote, err := PriceQuote(cat, []LineItem{{ProductID: "p2", Quantity: 2}})
		require.NoError(t, err)
		assert.Equal(t, "900.00", quote.Total.String())
	})
}
