package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrportal/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuditService struct {
	logs  []model.AuditLog
	total int64
}

func (s *stubAuditService) List(_ context.Context, _, _ int) ([]model.AuditLog, int64, error) {
	return s.logs, s.total, nil
}

func TestAuditListUsesResponseEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuditHandler(&stubAuditService{
		logs:  []model.AuditLog{{Action: model.ActionStageApprove, EntityName: "Ana"}},
		total: 1,
	})
	h.RegisterRoutes(r.Group(""))

	req := httptest.NewRequest(http.MethodGet, "/audit?page=1&limit=20", nil)
	req.Header.Set("Authorization", bearerToken(t, model.RoleAdmin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status     string `json:"status"`
		StatusCode int    `json:"status_code"`
		Data       struct {
			Items []model.AuditLog `json:"items"`
			Meta  struct {
				Page  int   `json:"page"`
				Limit int   `json:"limit"`
				Total int64 `json:"total"`
			} `json:"meta"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, http.StatusOK, body.StatusCode)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, model.ActionStageApprove, body.Data.Items[0].Action)
	assert.Equal(t, int64(1), body.Data.Meta.Total)
	assert.Equal(t, 20, body.Data.Meta.Limit)
}

func TestAuditListRejectsNonAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuditHandler(&stubAuditService{})
	h.RegisterRoutes(r.Group(""))

	req := httptest.NewRequest(http.MethodGet, "/audit", nil)
	req.Header.Set("Authorization", bearerToken(t, model.RoleStaff))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
