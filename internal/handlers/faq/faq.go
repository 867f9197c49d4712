package faq

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/models"
	"shopkart_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

const defaultLang = "en"

const selectFaqColumns = `SELECT faq_id, category, question, answer, lang, is_active, display_order, tags, created_at, updated_at FROM faqs`

//
// ❓ GET /api/faqs?category=&lang=&q= — public, active entries only
//
func GetFaqs(c *gin.Context) {
	lang := c.Query("lang")
	if lang == "" {
		lang = defaultLang
	}

	active := true
	filter := faqFilter{
		Category: c.Query("category"),
		Lang:     lang,
		IsActive: &active,
	}

	faqs, err := listFaqs(c.Query("q"), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not read FAQs: " + err.Error()})
		return
	}

	// lightweight caching (5 minutes)
	c.Header("Cache-Control", "public, max-age=300")

	c.JSON(http.StatusOK, gin.H{"count": len(faqs), "faqs": faqs})
}

//
// 🛠️ GET /api/admin/faqs?category=&lang=&isActive=&q= — no defaults
//
func AdminListFaqs(c *gin.Context) {
	filter := faqFilter{
		Category: c.Query("category"),
		Lang:     c.Query("lang"),
	}

	if isActiveParam := c.Query("isActive"); isActiveParam != "" {
		active := isActiveParam == "true"
		filter.IsActive = &active
	}

	faqs, err := listFaqs(c.Query("q"), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not read FAQs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(faqs), "faqs": faqs})
}

// listFaqs fetches candidate entries — the Elasticsearch faqs index when a
// search term is present, the table otherwise — then filters and sorts.
func listFaqs(q string, filter faqFilter) ([]models.Faq, error) {
	var faqs []models.Faq
	var err error

	q = strings.TrimSpace(q)
	if q != "" {
		faqs, err = searchFaqs(q)
		if err != nil {
			// index unreachable: scan the table and match in memory, the
			// same fallback the product search uses
			faqs, err = scanAllFaqs()
			if err != nil {
				return nil, err
			}
			faqs = filterFaqsByQuery(faqs, q)
		}
	} else {
		faqs, err = scanAllFaqs()
		if err != nil {
			return nil, err
		}
	}

	faqs = filterFaqs(faqs, filter)
	sortFaqs(faqs)
	return faqs, nil
}

func scanAllFaqs() ([]models.Faq, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(selectFaqColumns).Iter()

	faqs := []models.Faq{}
	var f models.Faq
	for iter.Scan(&f.ID, &f.Category, &f.Question, &f.Answer, &f.Lang,
		&f.IsActive, &f.Order, &f.Tags, &f.CreatedAt, &f.UpdatedAt) {
		faqs = append(faqs, f)
		f = models.Faq{}
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return faqs, nil
}

// searchFaqs runs the term through the faqs index and decodes the hits.
func searchFaqs(q string) ([]models.Faq, error) {
	hits, err := services.SearchFaqs(q)
	if err != nil {
		return nil, err
	}

	faqs := make([]models.Faq, 0, len(hits))
	for _, hit := range hits {
		data, err := json.Marshal(hit)
		if err != nil {
			continue
		}
		var f models.Faq
		if err := json.Unmarshal(data, &f); err == nil {
			faqs = append(faqs, f)
		}
	}
	return faqs, nil
}

//
// ➕ POST /api/admin/faqs
//
func AdminCreateFaq(c *gin.Context) {
	var input struct {
		Category string   `json:"category"`
		Question string   `json:"question"`
		Answer   string   `json:"answer"`
		Lang     string   `json:"lang"`
		IsActive *bool    `json:"isActive"`
		Order    int      `json:"order"`
		Tags     []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	input.Category = strings.TrimSpace(input.Category)
	input.Question = strings.TrimSpace(input.Question)
	input.Answer = strings.TrimSpace(input.Answer)
	if input.Category == "" || input.Question == "" || input.Answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "category, question, and answer are required"})
		return
	}
	if input.Lang == "" {
		input.Lang = defaultLang
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	if input.Tags == nil {
		input.Tags = []string{}
	}

	now := time.Now()
	f := models.Faq{
		ID:        gocql.TimeUUID(),
		Category:  input.Category,
		Question:  input.Question,
		Answer:    input.Answer,
		Lang:      input.Lang,
		IsActive:  isActive,
		Order:     input.Order,
		Tags:      input.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return
	}

	if err := session.Query(`INSERT INTO faqs (faq_id, category, question, answer, lang, is_active, display_order, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.Category, f.Question, f.Answer, f.Lang, f.IsActive, f.Order,
		f.Tags, f.CreatedAt, f.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create FAQ: " + err.Error()})
		return
	}

	go services.IndexFaq(f)

	c.JSON(http.StatusCreated, f)
}

//
// ✏️ PUT /api/admin/faqs/:id — partial update
//
func AdminUpdateFaq(c *gin.Context) {
	f, ok := findFaq(c)
	if !ok {
		return
	}

	var input struct {
		Category *string   `json:"category"`
		Question *string   `json:"question"`
		Answer   *string   `json:"answer"`
		Lang     *string   `json:"lang"`
		IsActive *bool     `json:"isActive"`
		Order    *int      `json:"order"`
		Tags     *[]string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Category != nil {
		f.Category = strings.TrimSpace(*input.Category)
	}
	if input.Question != nil {
		f.Question = strings.TrimSpace(*input.Question)
	}
	if input.Answer != nil {
		f.Answer = strings.TrimSpace(*input.Answer)
	}
	if input.Lang != nil {
		f.Lang = *input.Lang
	}
	if input.IsActive != nil {
		f.IsActive = *input.IsActive
	}
	if input.Order != nil {
		f.Order = *input.Order
	}
	if input.Tags != nil {
		f.Tags = *input.Tags
	}
	f.UpdatedAt = time.Now()

	if ok := persistFaq(c, f); !ok {
		return
	}

	go services.IndexFaq(f)
	c.JSON(http.StatusOK, f)
}

//
// 🔀 PATCH /api/admin/faqs/:id/toggle
//
func AdminToggleFaq(c *gin.Context) {
	f, ok := findFaq(c)
	if !ok {
		return
	}

	f.IsActive = !f.IsActive
	f.UpdatedAt = time.Now()

	if ok := persistFaq(c, f); !ok {
		return
	}

	go services.IndexFaq(f)
	c.JSON(http.StatusOK, f)
}

//
// 🗑️ DELETE /api/admin/faqs/:id
//
func AdminDeleteFaq(c *gin.Context) {
	f, ok := findFaq(c)
	if !ok {
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return
	}

	if err := session.Query(`DELETE FROM faqs WHERE faq_id = ?`, f.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete FAQ: " + err.Error()})
		return
	}

	go services.DeleteDocument(services.FaqIndex, f.ID.String())

	c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted"})
}

func findFaq(c *gin.Context) (models.Faq, bool) {
	var f models.Faq

	fid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
		return f, false
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return f, false
	}

	if err := session.Query(selectFaqColumns+` WHERE faq_id = ?`, gocql.UUID(fid)).Scan(
		&f.ID, &f.Category, &f.Question, &f.Answer, &f.Lang,
		&f.IsActive, &f.Order, &f.Tags, &f.CreatedAt, &f.UpdatedAt); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "FAQ not found"})
		return f, false
	}

	return f, true
}

func persistFaq(c *gin.Context, f models.Faq) bool {
	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return false
	}

	if err := session.Query(`UPDATE faqs SET category = ?, question = ?, answer = ?, lang = ?, is_active = ?, display_order = ?, tags = ?, updated_at = ? WHERE faq_id = ?`,
		f.Category, f.Question, f.Answer, f.Lang, f.IsActive, f.Order,
		f.Tags, f.UpdatedAt, f.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update FAQ: " + err.Error()})
		return false
	}

	return true
}
