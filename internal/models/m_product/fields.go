package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID   = "product_id"
	Name        = "name"
	Description = "description"
	Category    = "category"
	Price       = "price"
	Unit        = "unit"
	Quantity    = "quantity"
	Image       = "image"
	FarmerID    = "farmer_id"
	CreatedAt   = "created_at"
)

// Columns lists every column in read order for SELECT statements.
var Columns = []string{
	ProductID,
	Name,
	Description,
	Category,
	Price,
	Unit,
	Quantity,
	Image,
	FarmerID,
	CreatedAt,
}
