package m_farmer

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the farmers table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a farmer.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.FarmerID,
			data.Name,
			data.Email,
			data.Location,
			data.Rating,
			data.Bio,
			data.JoinedAt,
			data.Image,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a farmer.
func (m *Model) DeleteMut(farmerID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{farmerID})
}
