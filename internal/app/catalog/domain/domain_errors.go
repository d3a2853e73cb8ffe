package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrProductNotFound = errors.New("product not found")
	ErrFarmerNotFound  = errors.New("farmer not found")
)
