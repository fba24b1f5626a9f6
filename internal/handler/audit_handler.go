package handler

import (
	"net/http"

	"hrportal/internal/middleware"
	"hrportal/internal/model"
	"hrportal/internal/service"
	"hrportal/pkg/pagination"
	"hrportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	audits service.AuditService
}

func NewAuditHandler(audits service.AuditService) *AuditHandler {
	return &AuditHandler{audits: audits}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	audit := router.Group("/audit", middleware.RequireAuth(), middleware.RequireRole(model.RoleAdmin))
	{
		audit.GET("", h.List)
	}
}

// List returns the audit trail, newest first, paginated
func (h *AuditHandler) List(c *gin.Context) {
	params := pagination.Parse(c)

	logs, total, err := h.audits.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"items": logs,
		"meta":  pagination.MetaFor(params, total),
	}))
}
