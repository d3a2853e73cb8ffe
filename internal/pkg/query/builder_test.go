package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_SelectAll(t *testing.T) {
	stmt := From("products").Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectColumns(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name", "price").
		Build()

	assert.Equal(t, "SELECT product_id, name, price FROM products", stmt.SQL)
}

func TestBuilder_Where(t *testing.T) {
	stmt := From("products").
		Where(Eq("category", "Vegetables")).
		Build()

	assert.Equal(t, "SELECT * FROM products WHERE category = @p0", stmt.SQL)
	assert.Equal(t, "Vegetables", stmt.Params["p0"])
}

func TestBuilder_MultipleWhereCombinedWithAnd(t *testing.T) {
	stmt := From("products").
		Where(Eq("category", "Grains")).
		Where(Eq("farmer_id", "f5")).
		Build()

	assert.Equal(t, "SELECT * FROM products WHERE category = @p0 AND farmer_id = @p1", stmt.SQL)
	assert.Equal(t, "Grains", stmt.Params["p0"])
	assert.Equal(t, "f5", stmt.Params["p1"])
}

func TestBuilder_OrderByWithTieBreak(t *testing.T) {
	stmt := From("products").
		OrderBy("created_at", Asc).
		OrderBy("product_id", Asc).
		Build()

	assert.Equal(t, "SELECT * FROM products ORDER BY created_at ASC, product_id ASC", stmt.SQL)
}

func TestBuilder_OrderByDesc(t *testing.T) {
	stmt := From("farmers").
		OrderBy("rating", Desc).
		Build()

	assert.Equal(t, "SELECT * FROM farmers ORDER BY rating DESC", stmt.SQL)
}

func TestBuilder_LimitAndOffset(t *testing.T) {
	stmt := From("products").
		Limit(50).
		Offset(100).
		Build()

	assert.Equal(t, "SELECT * FROM products LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, int64(50), stmt.Params["limit"])
	assert.Equal(t, int64(100), stmt.Params["offset"])
}

func TestBuilder_CountClearsSortingAndPagination(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(Eq("category", "Fruits")).
		OrderBy("created_at", Asc).
		Limit(10).
		Count().
		Build()

	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE category = @p0", stmt.SQL)
	assert.Equal(t, "Fruits", stmt.Params["p0"])
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("product_id")

	withWhere := base.Where(Eq("category", "Vegetables"))

	assert.Equal(t, "SELECT product_id FROM products", base.Build().SQL)
	assert.Equal(t, "SELECT product_id FROM products WHERE category = @p0", withWhere.Build().SQL)
}
