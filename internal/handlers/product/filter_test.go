package product

import (
	"testing"
	"time"

	"shopkart_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []models.Product {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{Title: "Aurora X1 Smartphone", Brand: "Aurora", Category: "Electronics", CreatedAt: base},
		{Title: "Nimbus 24\" Monitor", Brand: "Nimbus", Category: "Electronics", CreatedAt: base.Add(time.Hour)},
		{Title: "Fleece Jacket", Brand: "Everwarm", Category: "Clothing", CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestMatchesQuery(t *testing.T) {
	p := models.Product{Title: "Aurora X1 Smartphone", Brand: "Aurora"}

	assert.True(t, matchesQuery(p, "phone"), "substring of the title")
	assert.True(t, matchesQuery(p, "AURORA"), "case-insensitive brand match")
	assert.True(t, matchesQuery(p, "x1"))
	assert.False(t, matchesQuery(p, "nimbus"))
}

func TestFilterProductsByCategory(t *testing.T) {
	filtered := filterProducts(sampleCatalog(), "Electronics", "")
	require.Len(t, filtered, 2)
	for _, p := range filtered {
		assert.Equal(t, "Electronics", p.Category)
	}
}

func TestFilterProductsByQueryOrBrand(t *testing.T) {
	filtered := filterProducts(sampleCatalog(), "", "everwarm")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Fleece Jacket", filtered[0].Title)
}

func TestFilterProductsWhitespaceQueryIgnored(t *testing.T) {
	filtered := filterProducts(sampleCatalog(), "", "   ")
	assert.Len(t, filtered, 3)
}

func TestFilterProductsCombined(t *testing.T) {
	filtered := filterProducts(sampleCatalog(), "Electronics", "monitor")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Nimbus 24\" Monitor", filtered[0].Title)
}

func TestSortProductsNewest(t *testing.T) {
	products := sampleCatalog()
	sortProductsNewest(products)

	assert.Equal(t, "Fleece Jacket", products[0].Title)
	assert.Equal(t, "Aurora X1 Smartphone", products[2].Title)
}
