package user

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postAddToCart(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/add", AddToCart)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCartRejectsExplicitZeroQty(t *testing.T) {
	w := postAddToCart(t, `{"productId": "p1", "qty": 0}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "qty must be >= 1")
}

func TestAddToCartRejectsNegativeQty(t *testing.T) {
	w := postAddToCart(t, `{"productId": "p1", "qty": -1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "qty must be >= 1")
}

func TestAddToCartDefaultsAbsentQty(t *testing.T) {
	// no qty field at all: validation passes with a default of 1 and the
	// handler moves on to the product lookup, which fails here because the
	// id is not a real product
	w := postAddToCart(t, `{"productId": "p1"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestAddToCartRequiresProductID(t *testing.T) {
	w := postAddToCart(t, `{"qty": 2}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "productId required")
}
