package faq

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postCreateFaq(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/faqs", AdminCreateFaq)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/faqs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAdminCreateFaqRejectsMissingFields(t *testing.T) {
	w := postCreateFaq(t, `{"category": "Payments", "question": "Is COD available?"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "category, question, and answer are required")
}

func TestAdminCreateFaqRejectsWhitespaceOnlyFields(t *testing.T) {
	// whitespace-only values must not slip past the required-field check
	w := postCreateFaq(t, `{"category": "   ", "question": "Is COD available?", "answer": "Yes."}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "category, question, and answer are required")

	w = postCreateFaq(t, `{"category": "Payments", "question": "\t\n", "answer": "Yes."}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postCreateFaq(t, `{"category": "Payments", "question": "Is COD available?", "answer": "  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
