package domain

import (
	"fmt"

	catalog "github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

// LineItem is a requested product and quantity, as sent by the storefront
// cart.
type LineItem struct {
	ProductID string
	Quantity  int64
}

// QuoteLine is a priced line item.
type QuoteLine struct {
	Product   catalog.EnrichedProduct
	Quantity  int64
	UnitPrice *Money
	LineTotal *Money
}

// Quote is the priced view of a cart against a catalog snapshot. It is a
// calculation, not an order: nothing is reserved or persisted.
type Quote struct {
	Lines []QuoteLine
	Total *Money
}

// PriceQuote prices the requested line items against the snapshot.
// Validation is per line: the first offending line aborts the quote.
func PriceQuote(cat *catalog.Catalog, items []LineItem) (*Quote, error) {
	if len(items) == 0 {
		return nil, ErrEmptyQuote
	}

	quote := &Quote{
		Lines: make([]QuoteLine, 0, len(items)),
		Total: ZeroMoney(),
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, ErrInvalidQuantity)
		}

		product, err := cat.FindProduct(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, ErrUnknownProduct)
		}

		if item.Quantity > product.Quantity {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, ErrInsufficientStock)
		}

		unitPrice := MoneyFromFloat(product.Price)
		lineTotal := unitPrice.MultiplyInt64(item.Quantity)

		quote.Lines = append(quote.Lines, QuoteLine{
			Product:   product,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
		quote.Total = quote.Total.Add(lineTotal)
	}

	return quote, nil
}
