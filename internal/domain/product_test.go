package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_JSONIncludesInStock(t *testing.T) {
	b, err := json.Marshal(Product{ID: 1, Name: "Lamp", Price: 9.5, Stock: 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Lamp","description":"","price":9.5,"stock":0,"inStock":false}`, string(b))

	b, err = json.Marshal([]Product{{ID: 2, Stock: 3}})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"inStock":true`)
}

func TestProduct_MatchName(t *testing.T) {
	p := Product{Name: "Laptop Pro 15"}
	assert.True(t, p.MatchName(""))
	assert.True(t, p.MatchName("laptop"))
	assert.True(t, p.MatchName("PRO"))
	assert.False(t, p.MatchName("mouse"))
}

func TestProductPatch(t *testing.T) {
	price := 99.99
	neg := -1.0
	empty := " "
	stock := -2

	p := Product{ID: 1, Name: "Laptop", Description: "d", Price: 1299.99, Stock: 50}
	patch := ProductPatch{Price: &price}
	require.NoError(t, patch.Validate())
	patch.Apply(&p)
	assert.Equal(t, Product{ID: 1, Name: "Laptop", Description: "d", Price: 99.99, Stock: 50}, p)

	for name, bad := range map[string]ProductPatch{
		"negative price": {Price: &neg},
		"blank name":     {Name: &empty},
		"negative stock": {Stock: &stock},
	} {
		assert.ErrorIs(t, bad.Validate(), ErrValidation, name)
	}
}

func TestErrors(t *testing.T) {
	err := NotFound("user", 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "user 7 not found")

	err = Invalid("items[%d].quantity must be greater than 0", 0)
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "validation failed: items[0].quantity must be greater than 0")
}
