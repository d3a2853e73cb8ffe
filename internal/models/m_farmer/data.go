package m_farmer

import (
	"time"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

// Data represents the database model for the farmers table.
type Data struct {
	FarmerID string    `spanner:"farmer_id"`
	Name     string    `spanner:"name"`
	Email    string    `spanner:"email"`
	Location string    `spanner:"location"`
	Rating   float64   `spanner:"rating"`
	Bio      string    `spanner:"bio"`
	JoinedAt time.Time `spanner:"joined_at"`
	Image    string    `spanner:"image"`
}

// FromDomain converts a farmer profile into its row representation.
func FromDomain(f domain.Farmer) *Data {
	return &Data{
		FarmerID: f.ID,
		Name:     f.Name,
		Email:    f.Email,
		Location: f.Location,
		Rating:   f.Rating,
		Bio:      f.Bio,
		JoinedAt: f.JoinedAt,
		Image:    f.Image,
	}
}

// ToDomain converts a row back into a farmer profile.
func (d *Data) ToDomain() domain.Farmer {
	return domain.Farmer{
		ID:       d.FarmerID,
		Name:     d.Name,
		Email:    d.Email,
		Location: d.Location,
		Rating:   d.Rating,
		Bio:      d.Bio,
		JoinedAt: d.JoinedAt,
		Image:    d.Image,
	}
}
