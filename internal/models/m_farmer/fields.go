package m_farmer

// Field name constants for the farmers table.
const (
	TableName = "farmers"

	FarmerID = "farmer_id"
	Name     = "name"
	Email    = "email"
	Location = "location"
	Rating   = "rating"
	Bio      = "bio"
	JoinedAt = "joined_at"
	Image    = "image"
)

// Columns lists every column in read order for SELECT statements.
var Columns = []string{
	FarmerID,
	Name,
	Email,
	Location,
	Rating,
	Bio,
	JoinedAt,
	Image,
}
