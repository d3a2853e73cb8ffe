package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrEmptyQuote        = errors.New("quote requires at least one line item")
	ErrUnknownProduct    = errors.New("product not in catalog")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
)
