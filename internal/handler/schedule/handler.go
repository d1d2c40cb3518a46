package schedule

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/doctor-channel/internal/middleware"
	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/service/schedule"
	"github.com/jwalitptl/doctor-channel/pkg/httputil"
)

type Handler struct {
	service *schedule.Service
}

func NewHandler(service *schedule.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	schedules := r.Group("/schedules")
	{
		schedules.GET("", h.ListSchedules)
		schedules.GET("/:id", h.GetSchedule)

		schedules.POST("", auth.RequireAdmin(), h.CreateSchedule)
		schedules.PUT("/:id", auth.RequireAdmin(), h.UpdateSchedule)
		schedules.DELETE("/:id", auth.RequireAdmin(), h.DeleteSchedule)
	}
}

func (h *Handler) CreateSchedule(c *gin.Context) {
	var req model.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, httputil.BindError(err))
		return
	}

	s, err := h.service.CreateSchedule(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, s)
}

func (h *Handler) GetSchedule(c *gin.Context) {
	s, err := h.service.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, s)
}

// ListSchedules accepts an optional ?doctorId= filter.
func (h *Handler) ListSchedules(c *gin.Context) {
	schedules, err := h.service.ListSchedules(c.Request.Context(), c.Query("doctorId"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, schedules)
}

func (h *Handler) UpdateSchedule(c *gin.Context) {
	var req model.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, httputil.BindError(err))
		return
	}

	s, err := h.service.UpdateSchedule(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, s)
}

func (h *Handler) DeleteSchedule(c *gin.Context) {
	if err := h.service.DeleteSchedule(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
