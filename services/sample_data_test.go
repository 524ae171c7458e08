package services

import (
	"testing"

	"elsabor_server/handling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleProductsWellFormed(t *testing.T) {
	products := SampleProducts()
	require.NotEmpty(t, products)

	for _, p := range products {
		assert.NotEmpty(t, p.ID, "product %q", p.Title)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Category)
		assert.Greater(t, p.Price, 0.0, "product %q", p.Title)
	}

	// sample rows must already be in normalized form
	assert.Equal(t, products, handling.NormalizeProductRows(SampleProducts()))
}

func TestSampleCategoriesIncludeDefault(t *testing.T) {
	categories := SampleCategories()
	require.NotEmpty(t, categories)

	ids := make(map[string]bool, len(categories))
	for _, c := range categories {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.False(t, ids[c.ID], "duplicate id %q", c.ID)
		ids[c.ID] = true
	}
	assert.True(t, ids[DefaultCategoryID], "default category must exist")
}
