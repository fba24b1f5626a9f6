package handler

import (
	"net/http"

	"hrportal/internal/feed"
	"hrportal/internal/middleware"
	"hrportal/internal/model"
	"hrportal/internal/service"
	"hrportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feeds service.FeedService
}

func NewFeedHandler(feeds service.FeedService) *FeedHandler {
	return &FeedHandler{feeds: feeds}
}

func (h *FeedHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/requests", middleware.RequireAuth())
	{
		requests.GET("/feed", h.ReviewerFeed)
		requests.GET("/my", h.MyFeed)
	}
}

// ReviewerFeed returns the merged, filtered review feed for the viewer.
// Filters: ?search= free text, ?status= approval status, ?kind= collection
// segment (private, cuti, dinasDalamKota, dinasLuarKota).
func (h *FeedHandler) ReviewerFeed(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
		return
	}

	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	items, err := h.feeds.ReviewerFeed(c.Request.Context(), viewer, filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// MyFeed returns the viewer's own submissions across all four kinds.
func (h *FeedHandler) MyFeed(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
		return
	}

	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	items, err := h.feeds.MyFeed(c.Request.Context(), viewer, filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

func parseFilters(c *gin.Context) (feed.Filters, error) {
	filters := feed.Filters{
		Search: c.Query("search"),
		Status: model.ApprovalStatus(c.Query("status")),
	}
	if segment := c.Query("kind"); segment != "" {
		kind, ok := model.KindFromCollection(segment)
		if !ok {
			return feed.Filters{}, &service.ValidationError{Msg: "unknown kind " + segment}
		}
		filters.Kind = kind
	}
	return filters, nil
}
