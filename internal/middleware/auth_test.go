package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrportal/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewerFromClaims(t *testing.T) {
	viewer, ok := ViewerFromClaims(jwt.MapClaims{
		"sub":      "u-1",
		"name":     "Ana",
		"email":    "ana@example.com",
		"role":     model.RoleDivHead,
		"division": "OPS",
	})
	require.True(t, ok)
	assert.Equal(t, "u-1", viewer.ID)
	assert.Equal(t, "Ana", viewer.Name)
	assert.Equal(t, "ana@example.com", viewer.Email)
	assert.Equal(t, model.RoleDivHead, viewer.Role)
	assert.Equal(t, "OPS", viewer.Division)
}

func TestViewerFromClaimsDefaultsDivision(t *testing.T) {
	viewer, ok := ViewerFromClaims(jwt.MapClaims{"role": model.RoleStaff})
	require.True(t, ok)
	assert.Equal(t, model.DivisionGeneral, viewer.Division)
}

func TestViewerFromClaimsRequiresRole(t *testing.T) {
	_, ok := ViewerFromClaims(jwt.MapClaims{"name": "Ana"})
	assert.False(t, ok)

	_, ok = ViewerFromClaims(jwt.MapClaims{"role": ""})
	assert.False(t, ok)
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(GetJWTSecret())
	require.NoError(t, err)
	return signed
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", RequireAuth(), func(c *gin.Context) {
		viewer, _ := CurrentViewer(c)
		c.JSON(http.StatusOK, viewer)
	})
	r.GET("/admin-only", RequireAuth(), RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAuthBearerToken(t *testing.T) {
	r := authRouter()
	token := signToken(t, jwt.MapClaims{
		"sub":  "u-1",
		"name": "Ana",
		"role": model.RoleStaff,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ana"`)
}

func TestRequireAuthCookie(t *testing.T) {
	r := authRouter()
	token := signToken(t, jwt.MapClaims{
		"sub":  "u-1",
		"name": "Ana",
		"role": model.RoleStaff,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthRejectsMissingAndBadTokens(t *testing.T) {
	r := authRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	expired := signToken(t, jwt.MapClaims{
		"role": model.RoleStaff,
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	r := authRouter()

	staff := signToken(t, jwt.MapClaims{
		"role": model.RoleStaff,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+staff)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := signToken(t, jwt.MapClaims{
		"role": model.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
