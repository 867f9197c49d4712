package faq

import (
	"sort"
	"strings"

	"shopkart_back_end/internal/models"
)

type faqFilter struct {
	Category string
	Lang     string
	IsActive *bool
}

// filterFaqs applies the listing filters. Empty fields and a nil IsActive
// match everything.
func filterFaqs(faqs []models.Faq, filter faqFilter) []models.Faq {
	category := strings.TrimSpace(filter.Category)

	filtered := make([]models.Faq, 0, len(faqs))
	for _, f := range faqs {
		if filter.IsActive != nil && f.IsActive != *filter.IsActive {
			continue
		}
		if filter.Lang != "" && f.Lang != filter.Lang {
			continue
		}
		if category != "" && f.Category != category {
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered
}

// matchesFaqQuery reports whether the term appears case-insensitively in the
// question, answer, category, or any tag.
func matchesFaqQuery(f models.Faq, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(f.Question), q) ||
		strings.Contains(strings.ToLower(f.Answer), q) ||
		strings.Contains(strings.ToLower(f.Category), q) {
		return true
	}
	for _, tag := range f.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func filterFaqsByQuery(faqs []models.Faq, q string) []models.Faq {
	filtered := make([]models.Faq, 0, len(faqs))
	for _, f := range faqs {
		if matchesFaqQuery(f, q) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// sortFaqs orders a listing by category A→Z, then the manual display order,
// then newest first.
func sortFaqs(faqs []models.Faq) {
	sort.Slice(faqs, func(i, j int) bool {
		if faqs[i].Category != faqs[j].Category {
			return faqs[i].Category < faqs[j].Category
		}
		if faqs[i].Order != faqs[j].Order {
			return faqs[i].Order < faqs[j].Order
		}
		return faqs[i].CreatedAt.After(faqs[j].CreatedAt)
	})
}
