package faq

import (
	"testing"
	"time"

	"shopkart_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFaqs() []models.Faq {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []models.Faq{
		{Question: "How do refunds work?", Category: "Payments", Lang: "en", IsActive: true, Order: 1, CreatedAt: base},
		{Question: "Is cash on delivery available?", Category: "Payments", Lang: "en", IsActive: true, Order: 0, CreatedAt: base},
		{Question: "Old payments question", Category: "Payments", Lang: "en", IsActive: false, Order: 0, CreatedAt: base},
		{Question: "भुगतान कैसे करें?", Category: "Payments", Lang: "hi", IsActive: true, Order: 0, CreatedAt: base},
		{Question: "How do I track my order?", Category: "Orders", Lang: "en", IsActive: true, Order: 0, CreatedAt: base},
		{Question: "Where is my invoice?", Category: "Orders", Lang: "en", IsActive: true, Order: 0, CreatedAt: base.Add(time.Hour)},
	}
}

func TestFilterFaqsPublicDefaults(t *testing.T) {
	// category=Payments, lang=en, active only
	active := true
	filtered := filterFaqs(sampleFaqs(), faqFilter{Category: "Payments", Lang: "en", IsActive: &active})

	require.Len(t, filtered, 2)
	for _, f := range filtered {
		assert.Equal(t, "Payments", f.Category)
		assert.Equal(t, "en", f.Lang)
		assert.True(t, f.IsActive)
	}
}

func TestFilterFaqsAdminNoDefaults(t *testing.T) {
	filtered := filterFaqs(sampleFaqs(), faqFilter{})
	assert.Len(t, filtered, 6, "admin listing with no filters sees everything")

	inactive := false
	filtered = filterFaqs(sampleFaqs(), faqFilter{IsActive: &inactive})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Old payments question", filtered[0].Question)
}

func TestFilterFaqsTrimsCategory(t *testing.T) {
	filtered := filterFaqs(sampleFaqs(), faqFilter{Category: "  Orders  "})
	assert.Len(t, filtered, 2)
}

func TestMatchesFaqQuery(t *testing.T) {
	f := models.Faq{
		Question: "Is cash on delivery available?",
		Answer:   "Yes, COD is supported everywhere we ship.",
		Category: "Payments",
		Tags:     []string{"cod", "checkout"},
	}

	assert.True(t, matchesFaqQuery(f, "DELIVERY"), "case-insensitive question match")
	assert.True(t, matchesFaqQuery(f, "supported"), "answer match")
	assert.True(t, matchesFaqQuery(f, "payment"), "category substring")
	assert.True(t, matchesFaqQuery(f, "checkout"), "tag match")
	assert.False(t, matchesFaqQuery(f, "refund"))
}

func TestFilterFaqsByQuery(t *testing.T) {
	filtered := filterFaqsByQuery(sampleFaqs(), "track")
	require.Len(t, filtered, 1)
	assert.Equal(t, "How do I track my order?", filtered[0].Question)

	assert.Empty(t, filterFaqsByQuery(sampleFaqs(), "warranty"))
}

func TestSortFaqs(t *testing.T) {
	faqs := sampleFaqs()
	sortFaqs(faqs)

	// category A→Z first: Orders before Payments
	assert.Equal(t, "Orders", faqs[0].Category)
	// within a category, newest first when order ties
	assert.Equal(t, "Where is my invoice?", faqs[0].Question)
	assert.Equal(t, "How do I track my order?", faqs[1].Question)

	// within Payments, display order ascending
	assert.Equal(t, "Payments", faqs[2].Category)
	payments := faqs[2:]
	orders := make([]int, 0, len(payments))
	for _, f := range payments {
		orders = append(orders, f.Order)
	}
	assert.IsNonDecreasing(t, orders)
}
