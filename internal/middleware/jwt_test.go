package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shopkart_back_end/internal/models"
	"shopkart_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter() (*gin.Engine, *Claims) {
	gin.SetMode(gin.TestMode)

	var seen Claims
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		claims, _ := CurrentUser(c)
		seen = claims
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/admin", AuthRequired(), RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, &seen
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredAcceptsCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, seen := authTestRouter()

	token, err := utils.GenerateJWT(models.User{
		ID: "u1", Name: "Asha", Email: "asha@example.com", IsAdmin: false,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.AuthCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", seen.UserID)
	assert.Equal(t, "asha@example.com", seen.Email)
	assert.False(t, seen.IsAdmin)
}

func TestAuthRequiredAcceptsBearerFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, seen := authTestRouter()

	token, err := utils.GenerateJWT(models.User{ID: "u2", Email: "b@example.com"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u2", seen.UserID)
}

func TestAuthRequiredRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := authTestRouter()

	token, err := utils.GenerateJWT(models.User{ID: "u1"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.AuthCookieName, Value: token + "x"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := authTestRouter()

	customer, err := utils.GenerateJWT(models.User{ID: "u1", IsAdmin: false})
	require.NoError(t, err)
	admin, err := utils.GenerateJWT(models.User{ID: "u2", IsAdmin: true})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: utils.AuthCookieName, Value: customer})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: utils.AuthCookieName, Value: admin})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
