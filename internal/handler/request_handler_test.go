package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrportal/internal/middleware"
	"hrportal/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bearerToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "0f8fad5b-d9cb-469f-a165-70867728950e",
		"name":     "Ana",
		"email":    "ana@example.com",
		"role":     role,
		"division": "OPS",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(middleware.GetJWTSecret())
	require.NoError(t, err)
	return "Bearer " + signed
}

// submitRouter serves the submission routes only; binding failures never
// reach the services, so none are wired.
func submitRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRequestHandler(nil, nil)
	h.RegisterRoutes(r.Group(""))
	return r
}

func TestSubmitMissingRequiredFieldReturns400(t *testing.T) {
	r := submitRouter()

	req := httptest.NewRequest(http.MethodPost, "/private/", strings.NewReader(`{"request_type":"time_off"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, model.RoleStaff))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Status string `json:"status"`
		Error  string `json:"error"`
		Reason string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "validation", body.Reason)
	assert.Contains(t, body.Error, "Title")
}

func TestSubmitMalformedJSONReturns400(t *testing.T) {
	r := submitRouter()

	for _, path := range []string{"/private/", "/cuti/", "/dinasDalamKota/", "/dinasLuarKota/"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, model.RoleStaff))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}
