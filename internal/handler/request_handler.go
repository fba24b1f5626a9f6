package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hrportal/internal/approval"
	"hrportal/internal/middleware"
	"hrportal/internal/model"
	"hrportal/internal/service"
	"hrportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requests service.RequestService
	actions  service.ActionService
}

func NewRequestHandler(requests service.RequestService, actions service.ActionService) *RequestHandler {
	return &RequestHandler{requests: requests, actions: actions}
}

// RegisterRoutes mounts one route group per request kind. The stage action
// routes are generated from the kind's approval chain, so a kind without a
// Finance stage simply has no finance endpoint and no policy check can be
// skipped by a hand-written path.
func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	for _, kind := range model.Kinds {
		group := router.Group("/"+kind.Collection(), middleware.RequireAuth())
		group.POST("/", h.submit(kind))
		group.GET("/my", h.my(kind))
		group.GET("/by-division", h.byDivision(kind))
		group.GET("/all", middleware.RequireRole(model.RoleAdmin), h.all(kind))

		for _, stage := range approval.Chain(kind) {
			group.PUT("/:id/"+string(stage)+"-approve", h.stageAction(kind, stage, approval.ActionApprove))
			group.PUT("/:id/"+string(stage)+"-deny", h.stageAction(kind, stage, approval.ActionReject))
		}
	}
}

// submit binds the kind-specific payload and creates the record on behalf of
// the authenticated viewer.
func (h *RequestHandler) submit(kind model.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := middleware.CurrentViewer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return
		}

		var (
			rec model.Request
			err error
		)
		switch kind {
		case model.KindPersonalLeave:
			var in service.PersonalLeaveInput
			if err = bindJSON(c, &in); err == nil {
				rec, err = h.requests.SubmitPersonalLeave(c.Request.Context(), viewer, in)
			}
		case model.KindAnnualLeave:
			var in service.AnnualLeaveInput
			if err = bindJSON(c, &in); err == nil {
				rec, err = h.requests.SubmitAnnualLeave(c.Request.Context(), viewer, in)
			}
		case model.KindInTownTravel:
			var in service.InTownTravelInput
			if err = bindJSON(c, &in); err == nil {
				rec, err = h.requests.SubmitInTownTravel(c.Request.Context(), viewer, in)
			}
		case model.KindOutOfTownTravel:
			var in service.OutOfTownTravelInput
			if err = bindJSON(c, &in); err == nil {
				rec, err = h.requests.SubmitOutOfTownTravel(c.Request.Context(), viewer, in)
			}
		}
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusCreated, response.Success(http.StatusCreated, rec))
	}
}

// bindJSON binds the payload, turning malformed JSON and missing required
// fields into validation errors so writeError maps them to 400.
func bindJSON(c *gin.Context, in interface{}) error {
	if err := c.ShouldBindJSON(in); err != nil {
		return &service.ValidationError{Msg: err.Error()}
	}
	return nil
}

// my lists the viewer's own submissions of one kind.
func (h *RequestHandler) my(kind model.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := middleware.CurrentViewer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return
		}

		records, err := h.requests.MyRequests(c.Request.Context(), viewer, kind)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Success(http.StatusOK, records))
	}
}

// byDivision lists a kind for a reviewing viewer, scoped to their division
// (or company-wide for admin and the HRD & GA head).
func (h *RequestHandler) byDivision(kind model.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := middleware.CurrentViewer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return
		}

		records, err := h.requests.ByDivision(c.Request.Context(), viewer, kind)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Success(http.StatusOK, records))
	}
}

// all lists every record of a kind (admin only, gated at registration).
func (h *RequestHandler) all(kind model.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := h.requests.AllRequests(c.Request.Context(), kind)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Success(http.StatusOK, records))
	}
}

// stageAction applies one stage decision to one record.
func (h *RequestHandler) stageAction(kind model.Kind, stage approval.Stage, action approval.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := middleware.CurrentViewer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid request id"))
			return
		}

		rec, err := h.actions.ApplyStage(c.Request.Context(), viewer, kind, uint(id), stage, action)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Success(http.StatusOK, rec))
	}
}

// writeError maps service and approval errors onto the wire contract:
// 400 validation, 403 policy denial, 404 missing record, 409 stale stage.
func writeError(c *gin.Context, err error) {
	var validation *service.ValidationError
	var authz *approval.AuthorizationError
	var stale *approval.StaleStateError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, response.ErrorWithReason(http.StatusBadRequest, validation.Error(), "validation"))
	case errors.As(err, &stale):
		c.JSON(http.StatusConflict, response.ErrorWithReason(http.StatusConflict, stale.Error(), approval.ReasonStaleState))
	case errors.As(err, &authz):
		c.JSON(http.StatusForbidden, response.ErrorWithReason(http.StatusForbidden, authz.Error(), authz.Reason))
	case errors.Is(err, service.ErrNotReviewer):
		c.JSON(http.StatusForbidden, response.ErrorWithReason(http.StatusForbidden, err.Error(), approval.ReasonNotPermitted))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorWithReason(http.StatusNotFound, err.Error(), "not_found"))
	default:
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
	}
}
