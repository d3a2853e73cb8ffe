package domain

import "time"

// Product is a single listing published by a farmer.
// Records are treated as pre-validated input: the catalog layer never
// rejects a product, it only filters (see Filter).
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       float64
	Unit        string
	Quantity    int64
	Image       string
	FarmerID    string
	CreatedAt   time.Time
}

// Farmer is the full producer profile as stored by the catalog provider.
type Farmer struct {
	ID       string
	Name     string
	Email    string
	Location string
	Rating   float64
	Bio      string
	JoinedAt time.Time
	Image    string
}

// FarmerRef is the subset of farmer fields denormalized onto a product
// at enrichment time. A zero-value FarmerRef is the placeholder used when
// a product's FarmerID matches no farmer.
type FarmerRef struct {
	ID       string
	Name     string
	Location string
	Rating   float64
}

// EnrichedProduct is a product joined with its owning farmer's projection.
// The join happens once, when the catalog snapshot is built; later changes
// to the farmer set do not propagate into existing snapshots.
type EnrichedProduct struct {
	Product
	Farmer FarmerRef
}
