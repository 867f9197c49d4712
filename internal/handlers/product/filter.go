package product

import (
	"sort"
	"strings"

	"shopkart_back_end/internal/models"
)

// matchesQuery reports whether the term appears case-insensitively inside
// the product's title or brand.
func matchesQuery(p models.Product, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Brand), q)
}

// filterProducts applies the listing filters: category equality and the
// optional free-text term. A blank or whitespace-only term is ignored.
func filterProducts(products []models.Product, category, q string) []models.Product {
	q = strings.TrimSpace(q)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// sortProductsNewest orders a listing newest first.
func sortProductsNewest(products []models.Product) {
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}
