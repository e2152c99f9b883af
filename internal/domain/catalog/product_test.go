package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ProductInput {
	return ProductInput{
		Name:        "Fresh Chicken Breast",
		Description: "Boneless and skinless",
		Price:       decimal.NewFromFloat(299.0),
		Category:    "chicken",
		Image:       "https://example.com/chicken.jpg",
		Stock:       50,
		Weight:      "500g",
		Origin:      "Farm Fresh",
		Storage:     "Keep refrigerated",
	}
}

func TestNewProduct(t *testing.T) {
	product, err := NewProduct(validInput())
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, "Fresh Chicken Breast", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(299.0)))
	assert.Equal(t, 50, product.Stock)
	assert.False(t, product.CreatedAt.IsZero())
	assert.Nil(t, product.UpdatedAt)
}

func TestNewProduct_TrimsName(t *testing.T) {
	input := validInput()
	input.Name = "  Chicken Wings  "
	product, err := NewProduct(input)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Wings", product.Name)
}

func TestNewProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProductInput)
	}{
		{"empty name", func(i *ProductInput) { i.Name = "" }},
		{"whitespace name", func(i *ProductInput) { i.Name = "   " }},
		{"negative price", func(i *ProductInput) { i.Price = decimal.NewFromFloat(-1) }},
		{"negative stock", func(i *ProductInput) { i.Stock = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			product, err := NewProduct(input)
			assert.Error(t, err)
			assert.Nil(t, product)
		})
	}
}

func TestNewProduct_ZeroPriceAllowed(t *testing.T) {
	input := validInput()
	input.Price = decimal.Zero
	product, err := NewProduct(input)
	require.NoError(t, err)
	assert.True(t, product.Price.IsZero())
}

func TestProduct_Replace(t *testing.T) {
	product, err := NewProduct(validInput())
	require.NoError(t, err)

	id := product.ID
	createdAt := product.CreatedAt

	updated := validInput()
	updated.Name = "Chicken Drumsticks"
	updated.Price = decimal.NewFromFloat(199.0)
	updated.Stock = 40

	require.NoError(t, product.Replace(updated))

	assert.Equal(t, id, product.ID)
	assert.Equal(t, createdAt, product.CreatedAt)
	assert.Equal(t, "Chicken Drumsticks", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(199.0)))
	assert.Equal(t, 40, product.Stock)
	require.NotNil(t, product.UpdatedAt)
}

func TestProduct_ReplaceInvalidInput(t *testing.T) {
	product, err := NewProduct(validInput())
	require.NoError(t, err)

	bad := validInput()
	bad.Name = ""
	assert.Error(t, product.Replace(bad))
	// A failed replace leaves the product untouched
	assert.Equal(t, "Fresh Chicken Breast", product.Name)
	assert.Nil(t, product.UpdatedAt)
}
