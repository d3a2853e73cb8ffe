package m_product

import (
	"time"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID   string    `spanner:"product_id"`
	Name        string    `spanner:"name"`
	Description string    `spanner:"description"`
	Category    string    `spanner:"category"`
	Price       float64   `spanner:"price"`
	Unit        string    `spanner:"unit"`
	Quantity    int64     `spanner:"quantity"`
	Image       string    `spanner:"image"`
	FarmerID    string    `spanner:"farmer_id"`
	CreatedAt   time.Time `spanner:"created_at"`
}

// FromDomain converts a catalog product into its row representation.
func FromDomain(p domain.Product) *Data {
	return &Data{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Unit:        p.Unit,
		Quantity:    p.Quantity,
		Image:       p.Image,
		FarmerID:    p.FarmerID,
		CreatedAt:   p.CreatedAt,
	}
}

// ToDomain converts a row back into a catalog product.
func (d *Data) ToDomain() domain.Product {
	return domain.Product{
		ID:          d.ProductID,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Price:       d.Price,
		Unit:        d.Unit,
		Quantity:    d.Quantity,
		Image:       d.Image,
		FarmerID:    d.FarmerID,
		CreatedAt:   d.CreatedAt,
	}
}
